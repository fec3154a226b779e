package crosscheck

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Printer outputs reports to a console or any other writer.
//
// When writing to a terminal, results are colored and rules are drawn to the
// width of the terminal. Other writers get plain text.
type Printer struct {
	w      io.Writer
	ok     *color.Color
	fail   *color.Color
	detail *color.Color
	width  int // line length in fixed-width characters
}

// NewPrinter creates a printer for w. If w is a terminal, colors are
// switched on and the line width is taken from it.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		w:      w,
		ok:     color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		detail: color.New(color.FgBlue),
		width:  60,
	}
	f, isFile := w.(*os.File)
	if isFile && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 20 {
			p.width = min(width, 100)
		}
		tracer().P("format", "console").Debugf("setting line length to %d", p.width)
		p.ok.EnableColor()
		p.fail.EnableColor()
		p.detail.EnableColor()
		return p
	}
	p.ok.DisableColor()
	p.fail.DisableColor()
	p.detail.DisableColor()
	return p
}

// Rule prints a horizontal line.
func (p *Printer) Rule() {
	fmt.Fprintln(p.w, strings.Repeat("-", p.width))
}

// Print outputs a report.
func (p *Printer) Print(r Report) {
	status := p.ok.Sprint("PASS")
	if !r.OK() {
		status = p.fail.Sprint("FAIL")
	}
	fmt.Fprintf(p.w, "%s  %s\n", status, r.Name)
	p.detail.Fprintf(p.w, "      entries %d/%d, count %d, height %d\n", r.Actual, r.Expected, r.Count, r.Height)
	if r.Mismatch >= 0 {
		p.fail.Fprintf(p.w, "      first divergence at #%d: want %d, got %d\n", r.Mismatch, r.Want, r.Got)
	}
	if r.Err != nil {
		p.fail.Fprintf(p.w, "      error: %s\n", r.Err.Error())
	}
}

// Line prints a line of free-form output, prefixed by a label.
func (p *Printer) Line(label, format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s  %s\n", p.detail.Sprint(label), fmt.Sprintf(format, args...))
}

// Outcome prints a colored PASS/FAIL line for a named result.
func (p *Printer) Outcome(name string, ok bool, detail string) {
	status := p.ok.Sprint("PASS")
	if !ok {
		status = p.fail.Sprint("FAIL")
	}
	fmt.Fprintf(p.w, "%s  %s: %s\n", status, name, detail)
}
