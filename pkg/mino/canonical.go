package mino

import "fmt"

// Canonical is the orientation-independent identity of a piece. The order of
// the constants is the order pieces sort in within a combination.
type Canonical int

const (
	TrominoStraight Canonical = iota
	TrominoL
	TetrominoStraight
	TetrominoSquare
	TetrominoT
	TetrominoL
	TetrominoS
	TetrominoZ

	CanonicalCount = int(iota)
)

var canonicalNames = [CanonicalCount]string{
	TrominoStraight:   "TrominoStraight",
	TrominoL:          "TrominoL",
	TetrominoStraight: "TetrominoStraight",
	TetrominoSquare:   "TetrominoSquare",
	TetrominoT:        "TetrominoT",
	TetrominoL:        "TetrominoL",
	TetrominoS:        "TetrominoS",
	TetrominoZ:        "TetrominoZ",
}

var canonicalBlocks = [CanonicalCount]int{
	TrominoStraight:   3,
	TrominoL:          3,
	TetrominoStraight: 4,
	TetrominoSquare:   4,
	TetrominoT:        4,
	TetrominoL:        4,
	TetrominoS:        4,
	TetrominoZ:        4,
}

func (c Canonical) Valid() bool {
	return c >= 0 && int(c) < CanonicalCount
}

func (c Canonical) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Canonical(%d)", int(c))
	}
	return canonicalNames[c]
}

// Blocks returns the number of cells covered by the piece.
func (c Canonical) Blocks() int {
	return canonicalBlocks[c]
}

func (c Canonical) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid canonical piece %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Canonical) UnmarshalText(text []byte) error {
	parsed, err := ParseCanonical(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ParseCanonical(name string) (Canonical, error) {
	for i, n := range canonicalNames {
		if n == name {
			return Canonical(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece: %s", name)
}

// AllCanonical lists every canonical piece in sort order.
func AllCanonical() []Canonical {
	all := make([]Canonical, CanonicalCount)
	for i := range all {
		all[i] = Canonical(i)
	}
	return all
}
