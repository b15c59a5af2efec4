package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/Hrothnar/linkzip/pkg/style"
)

// Progress receives per-entry progress while an archive is written.
// Implementations must tolerate Start never being called (empty jobs).
type Progress interface {
	Start(total int)
	Step(index int, archivePath string)
	Finish(written int, outputPath string)
}

// NewProgress picks a renderer for w: an animated progress bar when w
// is a terminal, a plain overwritten percentage line otherwise.
func NewProgress(w io.Writer) Progress {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return &termProgress{out: w}
	}
	return &plainProgress{out: w}
}

// NewPlainProgress always renders the plain overwritten line, even on a
// terminal. Parallel split jobs use one of these each so their output
// does not fight over a shared cursor.
func NewPlainProgress(w io.Writer) Progress {
	return &plainProgress{out: w}
}

// plainProgress reproduces the reference console output: a fixed-width
// percentage overwritten in place, then a one-line summary.
type plainProgress struct {
	out     io.Writer
	stepped bool
	total   int
}

func (p *plainProgress) Start(total int) {
	p.total = total
}

func (p *plainProgress) Step(index int, archivePath string) {
	if p.total <= 0 {
		return
	}
	pct := index * 100 / p.total
	fmt.Fprintf(p.out, "\r[%3d%%] %s", pct, archivePath)
	p.stepped = true
}

func (p *plainProgress) Finish(written int, outputPath string) {
	if p.stepped {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, style.Success(fmt.Sprintf("Done: %d items -> %s", written, outputPath)))
}

// termProgress renders a pterm progress bar.
type termProgress struct {
	out io.Writer
	bar *pterm.ProgressbarPrinter
}

func (p *termProgress) Start(total int) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(total).
		WithWriter(p.out).
		WithTitle("archiving").
		Start()
	if err != nil {
		return
	}
	p.bar = bar
}

func (p *termProgress) Step(index int, archivePath string) {
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(archivePath)
	p.bar.Increment()
}

func (p *termProgress) Finish(written int, outputPath string) {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	fmt.Fprintln(p.out, style.Success(fmt.Sprintf("Done: %d items -> %s", written, outputPath)))
}

// Discard is a Progress that renders nothing.
type Discard struct{}

func (Discard) Start(int)          {}
func (Discard) Step(int, string)   {}
func (Discard) Finish(int, string) {}
