package pkg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

const DefaultWidth = 80

var pieceAttrs = [mino.CanonicalCount]color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgHiRed,
	color.FgHiGreen,
}

// Printer writes result sets as plain or colored text.
type Printer struct {
	out   io.Writer
	width int

	header *color.Color
	dim    *color.Color
	pieces [mino.CanonicalCount]*color.Color
}

func NewPrinter(out io.Writer, colored bool, width int) *Printer {
	if width <= 0 {
		width = DefaultWidth
	}

	p := &Printer{
		out:    out,
		width:  width,
		header: color.New(color.FgCyan, color.Bold),
		dim:    color.New(color.Faint),
	}
	for i, attr := range pieceAttrs {
		p.pieces[i] = color.New(attr)
	}

	for _, c := range p.colors() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// NewTerminalPrinter colors output only when f is a terminal and fits it to
// the terminal width.
func NewTerminalPrinter(f *os.File) *Printer {
	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	width := DefaultWidth
	if w, _, err := term.GetSize(int(fd)); err == nil {
		width = w
	}
	return NewPrinter(f, tty, width)
}

func (p *Printer) colors() []*color.Color {
	colors := []*color.Color{p.header, p.dim}
	for _, c := range p.pieces {
		colors = append(colors, c)
	}
	return colors
}

// Print writes every result set, optionally with an example tiling per
// combination.
func (p *Printer) Print(results []*bagfill.ResultSet, examples bool) error {
	for i, rs := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(p.out); err != nil {
				return err
			}
		}
		if err := p.printSet(rs, examples); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printSet(rs *bagfill.ResultSet, examples bool) error {
	p.header.Fprintf(p.out, "%dx%d", rs.Width, rs.Height)
	p.dim.Fprintf(p.out, "  %d combinations, %d tilings, %d placements\n",
		rs.Len(), rs.Stats.Tilings, rs.Stats.Placements)
	p.dim.Fprintln(p.out, strings.Repeat("-", p.width))

	if rs.Len() == 0 {
		_, err := fmt.Fprintln(p.out, "  no combination fills this bag")
		return err
	}

	for _, r := range rs.Results() {
		if err := p.printCombination(r.Combination); err != nil {
			return err
		}
		if examples && r.Example != nil {
			if err := p.printTiling(r.Example); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Printer) printCombination(c bagfill.Combination) error {
	names := make([]string, len(c))
	for i, piece := range c {
		names[i] = p.pieces[piece].Sprint(piece.String())
	}

	line := "  {" + strings.Join(names, ", ") + "}"
	_, err := fmt.Fprintln(p.out, line)
	return err
}

// printTiling labels each placed piece with a letter in placement order.
func (p *Printer) printTiling(t *bagfill.Tiling) error {
	var b strings.Builder
	for row := 0; row < t.Height; row++ {
		b.WriteString("    ")
		for col := 0; col < t.Width; col++ {
			piece, depth := t.PieceAt(row, col)
			b.WriteString(p.pieces[piece].Sprint(string(rune('A' + (depth-1)%26))))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}
