package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/crosscheck"
	"github.com/npillmayer/schuko/tracing"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ordcheck: %s\n", err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "ordcheck",
		Usage:   "cross-check ordered maps against reference sequences",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "trace-level",
			Usage:   "trace level (Debug, Info, Error)",
			Value:   "Error",
			EnvVars: []string{"ORDCHECK_TRACE_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		level := traceLevel(cctx.String("trace-level"))
		tracing.Select("ordmap").SetTraceLevel(level)
		tracing.Select("ordmap.crosscheck").SetTraceLevel(level)
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "primes",
			Usage:     "build a tree of primes and compare it with a reference sequence",
			ArgsUsage: "[-- <ref-arg> ...]",
			Action:    runPrimes,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "limit",
					Usage:   "largest number to consider",
					Value:   10000,
					EnvVars: []string{"ORDCHECK_LIMIT"},
				},
				&cli.StringFlag{
					Name:    "order",
					Usage:   "insertion order: shuffled, ascending or descending",
					Value:   "shuffled",
					EnvVars: []string{"ORDCHECK_ORDER"},
				},
				&cli.Uint64Flag{
					Name:  "seed",
					Usage: "seed for shuffled insertion",
					Value: 1,
				},
				&cli.StringFlag{
					Name:    "ref-cmd",
					Usage:   "external command printing the reference primes, one per line; arguments follow after '--', {limit} is replaced by the limit",
					EnvVars: []string{"ORDCHECK_REF_CMD"},
				},
				&cli.BoolFlag{
					Name:    "check-invariants",
					Usage:   "check tree invariants after every change (slow)",
					EnvVars: []string{"ORDCHECK_CHECK_INVARIANTS"},
				},
			},
		},
		{
			Name:   "demo",
			Usage:  "run the built-in scenarios",
			Action: runDemo,
		},
		{
			Name:      "dot",
			Usage:     "print a tree built from the given integer keys in Graphviz DOT format",
			ArgsUsage: "<key> [<key> ...]",
			Action:    runDot,
		},
	}
	return app.Run(args)
}

func runPrimes(cctx *cli.Context) error {
	ctx := cctx.Context
	if ctx == nil {
		ctx = context.Background()
	}
	limit := cctx.Int("limit")
	order, err := crosscheck.ParseOrder(cctx.String("order"))
	if err != nil {
		return err
	}
	name, args, err := refCommand(cctx, limit)
	if err != nil {
		return err
	}
	keys := crosscheck.Sieve(limit)
	tree, err := crosscheck.BuildTree(keys, crosscheck.BuildOptions{
		Order:           order,
		Seed:            cctx.Uint64("seed"),
		CheckInvariants: cctx.Bool("check-invariants"),
	})
	if err != nil {
		return err
	}
	var ref []int
	if name != "" {
		ref, err = crosscheck.RunReference(ctx, name, args...)
	} else {
		var in strings.Builder
		for _, p := range crosscheck.Sieve(limit) {
			in.WriteString(strconv.Itoa(p))
			in.WriteByte('\n')
		}
		ref, err = crosscheck.ReadReference(ctx, strings.NewReader(in.String()))
	}
	if err != nil {
		return err
	}
	p := crosscheck.NewPrinter(os.Stdout)
	r := crosscheck.Compare(fmt.Sprintf("primes ≤ %d, %s insertion", limit, order), tree, ref)
	p.Print(r)
	if !r.OK() {
		return cli.Exit("tree does not match reference", 2)
	}
	return nil
}

// refCommand returns the external reference command and its arguments.
// The command is named by --ref-cmd, its arguments are the positional
// arguments of 'primes'. "{limit}" is replaced by the limit in every argument.
// An empty name means no external command is to be run.
func refCommand(cctx *cli.Context, limit int) (string, []string, error) {
	name := strings.TrimSpace(cctx.String("ref-cmd"))
	args := cctx.Args().Slice()
	if name == "" {
		if cctx.IsSet("ref-cmd") {
			return "", nil, errors.New("--ref-cmd must name a command")
		}
		if len(args) > 0 {
			return "", nil, fmt.Errorf("unexpected arguments %q without --ref-cmd", args)
		}
		return "", nil, nil
	}
	for i, arg := range args {
		args[i] = strings.ReplaceAll(arg, "{limit}", strconv.Itoa(limit))
	}
	return name, args, nil
}

func runDemo(cctx *cli.Context) error {
	p := crosscheck.NewPrinter(os.Stdout)
	failed := 0
	for _, sc := range crosscheck.Scenarios() {
		detail, err := sc.Run()
		if err != nil {
			failed++
			detail = fmt.Sprintf("%s (%s)", detail, err.Error())
		}
		p.Outcome(sc.Name, err == nil, detail)
	}
	p.Rule()
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d scenario(s) failed", failed), 2)
	}
	return nil
}

func runDot(cctx *cli.Context) error {
	tree := ordmap.NewOrdered[int, int]()
	for i, arg := range cctx.Args().Slice() {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("key #%d: %w", i+1, err)
		}
		tree.AddIfAbsent(k, i)
	}
	return ordmap.Tree2Dot(os.Stdout, tree, nil)
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
