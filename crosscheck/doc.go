/*
Package crosscheck validates ordered maps against independently computed
reference sequences.

A reference sequence is a list of integers in ascending order, one per line,
produced by an external process (or any other reader). Package crosscheck
builds a tree from the same keys, walks it and reports the first divergence.
The reference is streamed through a broadcaster, so several consumers (the
collector and a progress tracer) may observe it while it is produced.

_________________________________________________________________________

# BSD 3-Clause License

Copyright (c) 2021–26, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package crosscheck

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap.crosscheck'
func tracer() tracing.Trace {
	return tracing.Select("ordmap.crosscheck")
}
