package mino

import (
	"sort"
	"strings"
)

// Mino is an ordered list of cell offsets.
type Mino []Point

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Row < m[j].Row || (m[i].Row == m[j].Row && m[i].Col < m[j].Col)
}

func (m Mino) Equal(other Mino) bool {
	if len(m) != len(other) {
		return false
	}

	for i := 0; i < len(m); i++ {
		if !m.HasPoint(other[i]) {
			return false
		}
	}

	return true
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

// String renders the offsets in row-major order, so two minos covering the
// same cells always print the same.
func (m Mino) String() string {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	var b strings.Builder
	for i := range newMino {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(newMino[i].String())
	}

	return b.String()
}

func (m Mino) minCoords() (int, int) {
	minr := m[0].Row
	minc := m[0].Col
	for i := 1; i < len(m); i++ {
		if m[i].Row < minr {
			minr = m[i].Row
		}
		if m[i].Col < minc {
			minc = m[i].Col
		}
	}
	return minr, minc
}

// Origin translates the mino so that its bounding box starts at (0,0).
func (m Mino) Origin() Mino {
	minr, minc := m.minCoords()

	newMino := make(Mino, len(m))
	for i := 0; i < len(m); i++ {
		newMino[i] = Point{m[i].Row - minr, m[i].Col - minc}
	}

	return newMino
}

// Anchor sorts the mino in row-major order and translates it so that its
// first cell is (0,0). Offsets of later cells may be negative.
func (m Mino) Anchor() Mino {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	first := newMino[0]
	for i := range newMino {
		newMino[i] = newMino[i].Sub(first)
	}

	return newMino
}

func (m Mino) Rotate90() Mino {
	newMino := make(Mino, len(m))
	for i := range m {
		newMino[i] = m[i].Rotate90()
	}
	return newMino
}

func (m Mino) Reflect() Mino {
	newMino := make(Mino, len(m))
	for i := range m {
		newMino[i] = m[i].Reflect()
	}
	return newMino
}

// Size returns the number of rows and columns of the bounding box.
func (m Mino) Size() (int, int) {
	o := m.Origin()

	var r, c int
	for _, p := range o {
		if p.Row > r {
			r = p.Row
		}
		if p.Col > c {
			c = p.Col
		}
	}

	return r + 1, c + 1
}

func (m Mino) Render() string {
	var b strings.Builder

	o := m.Origin()
	h, w := o.Size()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if o.HasPoint(Point{r, c}) {
				b.WriteRune('X')
			} else {
				b.WriteRune(' ')
			}
		}

		b.WriteRune('\n')
	}

	return b.String()
}
