package bagfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

func orientation(t *testing.T, c mino.Canonical, offsets string) mino.OrientedPiece {
	t.Helper()
	for _, op := range mino.AllOrientedPieces() {
		if op.Canonical == c && op.Offsets.String() == offsets {
			return op
		}
	}
	t.Fatalf("no orientation %s of %s", offsets, c)
	return mino.OrientedPiece{}
}

func TestNewBagEmpty(t *testing.T) {
	b := NewBag(3, 2)
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			assert.False(t, b.Occupied(row, col))
		}
	}
	assert.False(t, b.Full())
}

func TestBagOccupiedOutOfRange(t *testing.T) {
	b := NewBag(2, 2)
	assert.Panics(t, func() { b.Occupied(2, 0) })
	assert.Panics(t, func() { b.Occupied(0, -1) })
}

func TestBagPlace(t *testing.T) {
	horizontal := orientation(t, mino.TrominoStraight, "(0,0),(0,1),(0,2)")
	s := orientation(t, mino.TetrominoS, "(0,0),(0,1),(1,-1),(1,0)")

	b := NewBag(3, 2)
	require.True(t, b.Place(horizontal, 0, 0, 1))
	for col := 0; col < 3; col++ {
		assert.Equal(t, 1, b.Cell(0, col))
		assert.Equal(t, 0, b.Cell(1, col))
	}

	before := b.Snapshot()

	assert.False(t, b.Place(horizontal, 0, 0, 2), "overlap")
	assert.False(t, b.Place(horizontal, 1, 1, 2), "past the right edge")
	assert.False(t, b.Place(s, 1, 0, 2), "negative offset left of the bag")
	assert.False(t, b.Place(s, 1, 1, 2), "below the bag")
	assert.Equal(t, before, b.Snapshot(), "failed placements must not write")

	require.True(t, b.Place(horizontal, 1, 0, 2))
	assert.True(t, b.Full())
}

func TestBagEraseFrom(t *testing.T) {
	vertical := orientation(t, mino.TrominoStraight, "(0,0),(1,0),(2,0)")

	b := NewBag(4, 3)
	for col := 0; col < 4; col++ {
		require.True(t, b.Place(vertical, 0, col, col+1))
	}
	before := b.Snapshot()

	b.EraseFrom(3)

	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			assert.Less(t, b.Cell(row, col), 3)
			if before[row][col] < 3 {
				assert.Equal(t, before[row][col], b.Cell(row, col))
			} else {
				assert.False(t, b.Occupied(row, col))
			}
		}
	}

	b.EraseFrom(1)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			assert.False(t, b.Occupied(row, col))
		}
	}
}

func TestBagString(t *testing.T) {
	square := orientation(t, mino.TetrominoSquare, "(0,0),(0,1),(1,0),(1,1)")

	b := NewBag(3, 2)
	require.True(t, b.Place(square, 0, 1, 1))
	assert.Equal(t, ". 1 1\n. 1 1\n", b.String())
}
