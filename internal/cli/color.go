package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// palette hands out color funcs for one writer. Colors are on only when the
// writer is a terminal and NO_COLOR is unset, so piped output stays plain.
type palette struct {
	enabled bool
}

func newPalette(w io.Writer, getenv func(string) string) palette {
	return palette{enabled: isTerminal(w) && getenv("NO_COLOR") == ""}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p palette) sprint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Bold renders a in bold.
func (p palette) Bold(a ...interface{}) string { return p.sprint(color.Bold)(a...) }

// Red renders a in bold red.
func (p palette) Red(a ...interface{}) string { return p.sprint(color.FgRed, color.Bold)(a...) }

// Green renders a in green.
func (p palette) Green(a ...interface{}) string { return p.sprint(color.FgGreen)(a...) }

// Yellow renders a in yellow.
func (p palette) Yellow(a ...interface{}) string { return p.sprint(color.FgYellow)(a...) }
