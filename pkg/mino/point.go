package mino

import (
	"strconv"
	"strings"
)

// Point is a cell offset in matrix notation: Row grows downward, Col grows to
// the right.
type Point struct {
	Row, Col int
}

func (p Point) Rotate90() Point { return Point{p.Col, -p.Row} }
func (p Point) Reflect() Point  { return Point{p.Row, -p.Col} }

func (p Point) Add(o Point) Point { return Point{p.Row + o.Row, p.Col + o.Col} }
func (p Point) Sub(o Point) Point { return Point{p.Row - o.Row, p.Col - o.Col} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.Row))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Col))
	b.WriteRune(')')

	return b.String()
}
