package bagfill

import (
	"fmt"
	"strings"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// Bag is the grid being tiled. Every cell holds 0 when empty or the 1-based
// depth of the placement that covers it.
type Bag struct {
	w, h  int
	cells []int
}

func NewBag(width, height int) *Bag {
	return &Bag{w: width, h: height, cells: make([]int, width*height)}
}

func (b *Bag) Width() int  { return b.w }
func (b *Bag) Height() int { return b.h }

func (b *Bag) contains(row, col int) bool {
	return row >= 0 && row < b.h && col >= 0 && col < b.w
}

func (b *Bag) index(row, col int) int {
	return row*b.w + col
}

// Cell returns the depth marker of a cell. Callers bounds-check first.
func (b *Bag) Cell(row, col int) int {
	if !b.contains(row, col) {
		panic(fmt.Sprintf("cell (%d,%d) outside %dx%d bag", row, col, b.w, b.h))
	}
	return b.cells[b.index(row, col)]
}

func (b *Bag) Occupied(row, col int) bool {
	return b.Cell(row, col) != 0
}

// Place stamps depth on every cell of piece anchored at (row, col). Nothing is
// written unless every cell is inside the bag and empty.
func (b *Bag) Place(piece mino.OrientedPiece, row, col, depth int) bool {
	for _, p := range piece.Offsets {
		r, c := row+p.Row, col+p.Col
		if !b.contains(r, c) || b.cells[b.index(r, c)] != 0 {
			return false
		}
	}

	for _, p := range piece.Offsets {
		b.cells[b.index(row+p.Row, col+p.Col)] = depth
	}

	return true
}

// EraseFrom clears every cell placed at depth or deeper.
func (b *Bag) EraseFrom(depth int) {
	for i, d := range b.cells {
		if d >= depth {
			b.cells[i] = 0
		}
	}
}

// Full reports whether no cell is empty.
func (b *Bag) Full() bool {
	for _, d := range b.cells {
		if d == 0 {
			return false
		}
	}
	return true
}

// Snapshot copies the depth markers row by row.
func (b *Bag) Snapshot() [][]int {
	rows := make([][]int, b.h)
	for r := range rows {
		rows[r] = make([]int, b.w)
		copy(rows[r], b.cells[b.index(r, 0):b.index(r, 0)+b.w])
	}
	return rows
}

func (b *Bag) String() string {
	var s strings.Builder
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			if c > 0 {
				s.WriteRune(' ')
			}
			d := b.cells[b.index(r, c)]
			if d == 0 {
				s.WriteRune('.')
			} else {
				fmt.Fprintf(&s, "%d", d)
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
