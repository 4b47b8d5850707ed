package mino

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// OrientedPiece is one fixed rotation or mirror image of a shape. Offsets[0]
// is always the anchor (0,0).
type OrientedPiece struct {
	Offsets   Mino
	Canonical Canonical
}

func (op OrientedPiece) Blocks() int {
	return len(op.Offsets)
}

func (op OrientedPiece) String() string {
	return fmt.Sprintf("%s[%s]", op.Canonical, op.Offsets)
}

type shape struct {
	canonical Canonical
	cells     Mino

	// mirror folds the reflected variants into the same canonical piece. The
	// skew pieces keep their mirror images apart.
	mirror bool
}

var shapes = []shape{
	{TrominoStraight, Mino{{0, 0}, {0, 1}, {0, 2}}, true},
	{TrominoL, Mino{{0, 0}, {1, 0}, {1, 1}}, true},
	{TetrominoStraight, Mino{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, true},
	{TetrominoSquare, Mino{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, true},
	{TetrominoT, Mino{{0, 0}, {0, 1}, {0, 2}, {1, 1}}, true},
	{TetrominoL, Mino{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, true},
	{TetrominoS, Mino{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, false},
	{TetrominoZ, Mino{{0, 0}, {0, 1}, {1, 1}, {1, 2}}, false},
}

var (
	catalogue   []OrientedPiece
	fingerprint uint64
)

func init() {
	catalogue = buildCatalogue(shapes)

	var b strings.Builder
	for _, op := range catalogue {
		b.WriteString(op.String())
		b.WriteRune('\n')
	}
	fingerprint = xxhash.Sum64String(b.String())
}

func buildCatalogue(shapes []shape) []OrientedPiece {
	var pieces []OrientedPiece
	for _, s := range shapes {
		if len(s.cells) != s.canonical.Blocks() {
			panic(fmt.Sprintf("shape %s has %d cells, want %d", s.canonical, len(s.cells), s.canonical.Blocks()))
		}

		seen := make(map[string]bool)
		m := s.cells
		for r := 0; r < 4; r++ {
			variants := []Mino{m}
			if s.mirror {
				variants = append(variants, m.Reflect())
			}

			for _, v := range variants {
				anchored := v.Anchor()
				if key := anchored.String(); !seen[key] {
					seen[key] = true
					pieces = append(pieces, newOrientedPiece(anchored, s.canonical))
				}
			}

			m = m.Rotate90()
		}
	}

	return pieces
}

func newOrientedPiece(offsets Mino, c Canonical) OrientedPiece {
	if offsets[0] != (Point{}) {
		panic(fmt.Sprintf("oriented %s does not start at its anchor: %s", c, offsets))
	}
	if len(offsets) != c.Blocks() {
		panic(fmt.Sprintf("oriented %s has %d cells, want %d", c, len(offsets), c.Blocks()))
	}

	return OrientedPiece{Offsets: offsets, Canonical: c}
}

// AllOrientedPieces returns the catalogue. The returned slice is shared and
// must not be modified.
func AllOrientedPieces() []OrientedPiece {
	return catalogue
}

func CanonicalOf(op OrientedPiece) Canonical {
	return op.Canonical
}

// Fingerprint identifies the catalogue contents. It changes whenever a shape
// or its canonical mapping changes.
func Fingerprint() uint64 {
	return fingerprint
}

// Only returns the orientations of the given canonical pieces.
func Only(allowed ...Canonical) []OrientedPiece {
	var pieces []OrientedPiece
	for _, op := range catalogue {
		for _, c := range allowed {
			if op.Canonical == c {
				pieces = append(pieces, op)
				break
			}
		}
	}
	return pieces
}

// Shape returns the base shape of a canonical piece.
func Shape(c Canonical) Mino {
	for _, s := range shapes {
		if s.canonical == c {
			return s.cells
		}
	}
	return nil
}
