package pkg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
)

func generateAll(t *testing.T, sizes ...[2]int) []*bagfill.ResultSet {
	t.Helper()
	results := make([]*bagfill.ResultSet, len(sizes))
	for i, s := range sizes {
		rs, err := bagfill.Generate(s[0], s[1])
		require.NoError(t, err)
		results[i] = rs
	}
	return results
}

func TestPrintPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, 20)

	require.NoError(t, p.Print(generateAll(t, [2]int{4, 2}, [2]int{1, 1}), false))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "4x2  3 combinations")
	assert.Contains(t, out, strings.Repeat("-", 20)+"\n")
	assert.Contains(t, out, "  {TetrominoStraight, TetrominoStraight}\n")
	assert.Contains(t, out, "  {TetrominoSquare, TetrominoSquare}\n")
	assert.Contains(t, out, "  {TetrominoL, TetrominoL}\n")
	assert.Contains(t, out, "1x1  0 combinations")
	assert.Contains(t, out, "no combination fills this bag")
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, 0)

	require.NoError(t, p.Print(generateAll(t, [2]int{2, 2}), true))
	out := buf.String()

	assert.Contains(t, out, strings.Repeat("-", DefaultWidth))
	assert.Contains(t, out, "  {TetrominoSquare}\n    AA\n    AA\n")
}

func TestPrintColored(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, 10)

	require.NoError(t, p.Print(generateAll(t, [2]int{3, 1}), false))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "TrominoStraight")
}
