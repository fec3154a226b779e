package crosscheck

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/guiguan/caster"
)

// Source broadcasts a reference sequence of integers to its subscribers.
//
// Clients subscribe first and then start reading with ReadFrom or Run. Every
// parsed number is published to all subscribers; at the end of input the
// subscriber channels are closed.
type Source struct {
	cast      *caster.Caster // broadcaster for parsed numbers
	mu        sync.Mutex
	published int   // count of numbers published
	lastError error // remember first read or parse error
}

// NewSource creates a source. Subscriptions end when ctx is done.
func NewSource(ctx context.Context) *Source {
	return &Source{
		cast: caster.New(ctx),
	}
}

// Subscribe registers a new subscriber, receiving every number published
// after the call as an int. capacity is the channel buffer size.
func (src *Source) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	sub, ok := src.cast.Sub(ctx, capacity)
	if !ok {
		return nil, fmt.Errorf("reference source already closed")
	}
	return sub, nil
}

// ReadFrom reads one integer per line from r and publishes them. Blank lines
// are skipped. ReadFrom closes the source when r is exhausted or a line cannot
// be parsed.
func (src *Source) ReadFrom(r io.Reader) error {
	defer src.cast.Close()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return src.fail(fmt.Errorf("reference line %d: %w", lineno, err))
		}
		if !src.cast.Pub(n) {
			return src.fail(fmt.Errorf("reference source closed before line %d", lineno))
		}
		src.mu.Lock()
		src.published++
		src.mu.Unlock()
	}
	if err := scanner.Err(); err != nil {
		return src.fail(fmt.Errorf("reading reference: %w", err))
	}
	return nil
}

// Run starts an external command and publishes the numbers it prints to
// stdout. It waits for the command to finish. If the output cannot be parsed,
// the command is killed. The tail of the command's stderr is included in
// errors reported for a failing command.
func (src *Source) Run(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	stderr := &tailBuffer{limit: stderrTail}
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay // children of the command may keep stderr open
	out, err := cmd.StdoutPipe()
	if err != nil {
		src.cast.Close()
		return src.fail(err)
	}
	if err := cmd.Start(); err != nil {
		src.cast.Close()
		return src.fail(fmt.Errorf("starting reference command %q: %w", name, err))
	}
	tracer().Infof("reference command %q started", name)
	readErr := src.ReadFrom(out)
	if readErr != nil {
		cancel()
	}
	if err := cmd.Wait(); err != nil && readErr == nil {
		if msg := stderr.String(); msg != "" {
			return src.fail(fmt.Errorf("reference command %q: %w: %s", name, err, msg))
		}
		return src.fail(fmt.Errorf("reference command %q: %w", name, err))
	}
	return readErr
}

const (
	stderrTail = 512
	waitDelay  = 2 * time.Second
)

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (tb *tailBuffer) Write(p []byte) (int, error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.buf = append(tb.buf, p...)
	if over := len(tb.buf) - tb.limit; over > 0 {
		tb.buf = append(tb.buf[:0], tb.buf[over:]...)
	}
	return len(p), nil
}

// String returns the buffered tail, trimmed of surrounding white space.
func (tb *tailBuffer) String() string {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return strings.TrimSpace(string(tb.buf))
}

// Published returns the number of values published so far.
func (src *Source) Published() int {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.published
}

// Err returns the first error encountered while reading.
func (src *Source) Err() error {
	src.mu.Lock()
	defer src.mu.Unlock()
	return src.lastError
}

func (src *Source) fail(err error) error {
	src.mu.Lock()
	defer src.mu.Unlock()
	if src.lastError == nil {
		src.lastError = err
	}
	tracer().Errorf("%s", err.Error())
	return err
}

// Collect gathers all numbers from a subscription until it is closed.
func Collect(sub <-chan interface{}) []int {
	var seq []int
	for m := range sub {
		if n, ok := m.(int); ok {
			seq = append(seq, n)
		}
	}
	return seq
}

// ReadReference reads a reference sequence from r, one integer per line.
func ReadReference(ctx context.Context, r io.Reader) ([]int, error) {
	return stream(ctx, func(src *Source) error {
		return src.ReadFrom(r)
	})
}

// RunReference runs an external command and collects the reference
// sequence it prints.
func RunReference(ctx context.Context, name string, args ...string) ([]int, error) {
	return stream(ctx, func(src *Source) error {
		return src.Run(ctx, name, args...)
	})
}

// stream wires a collector and a progress tracer to a new source and lets
// produce fill it.
func stream(ctx context.Context, produce func(*Source) error) ([]int, error) {
	src := NewSource(ctx)
	collector, err := src.Subscribe(ctx, 64)
	if err != nil {
		return nil, err
	}
	progress, err := src.Subscribe(ctx, 64)
	if err != nil {
		return nil, err
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		n := 0
		for range progress {
			n++
			if n%1000 == 0 {
				tracer().Debugf("reference: %d numbers received", n)
			}
		}
	}()
	var seq []int
	wg.Add(1)
	go func() {
		defer wg.Done()
		seq = Collect(collector)
	}()
	prodErr := produce(src)
	wg.Wait()
	if prodErr != nil {
		return seq, prodErr
	}
	if len(seq) != src.Published() {
		return seq, fmt.Errorf("reference truncated: %d of %d numbers received", len(seq), src.Published())
	}
	return seq, nil
}
