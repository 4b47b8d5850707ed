package gui

import (
	"fmt"
	"strings"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

const cellWidth = 2

// colorTag formats a tview color tag for a tcell hex value
func colorTag(v int32) string {
	return "[" + fmtHex(v) + "]"
}

// renderTiling draws every cell as a block in its piece's color
func renderTiling(t *bagfill.Tiling, theme Theme) string {
	if t == nil {
		return "no example tiling"
	}

	var b strings.Builder
	for row := 0; row < t.Height; row++ {
		for col := 0; col < t.Width; col++ {
			p, depth := t.PieceAt(row, col)
			color := Shade(theme.Pieces[p], depth)
			b.WriteString(colorTag(color.Hex()))
			b.WriteString(strings.Repeat("█", cellWidth))
		}
		b.WriteString("[-]\n")
	}
	return b.String()
}

// renderLegend lists the pieces of a combination with their colors
func renderLegend(c bagfill.Combination, theme Theme) string {
	counts := c.Counts()

	var b strings.Builder
	for _, p := range mino.AllCanonical() {
		if counts[p] == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s██[-] %dx %s\n", colorTag(theme.Pieces[p].Hex()), counts[p], p)
	}
	return b.String()
}

// renderStats summarizes the search behind a result set
func renderStats(rs *bagfill.ResultSet) string {
	return fmt.Sprintf("%s | %d candidates, %d placements, %d tilings",
		rs, rs.Stats.Candidates, rs.Stats.Placements, rs.Stats.Tilings)
}
