package gui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

func generate(t *testing.T, width, height int) *bagfill.ResultSet {
	t.Helper()
	rs, err := bagfill.Generate(width, height)
	require.NoError(t, err)
	return rs
}

func TestRenderTiling(t *testing.T) {
	rs := generate(t, 3, 2)
	for _, r := range rs.Results() {
		out := renderTiling(r.Example, ThemeBasic)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, 2)
		for _, line := range lines {
			assert.Equal(t, 3*cellWidth, strings.Count(line, "█"), line)
			assert.True(t, strings.HasSuffix(line, "[-]"))
		}
	}

	assert.Equal(t, "no example tiling", renderTiling(nil, ThemeBasic))
}

func TestRenderLegend(t *testing.T) {
	c := bagfill.Combination{mino.TrominoL, mino.TrominoL, mino.TetrominoT}
	out := renderLegend(c, ThemeBasic)

	assert.Contains(t, out, "2x TrominoL")
	assert.Contains(t, out, "1x TetrominoT")
	assert.NotContains(t, out, "TetrominoSquare")
}

func TestThemeHexRoundTrip(t *testing.T) {
	h := ThemeBasic.Hex()
	assert.Equal(t, "basic", h.Name)
	for _, p := range h.Pieces {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, p)
	}

	imported, err := ImportThemes("basic", []ThemeHex{h})
	require.NoError(t, err)
	assert.Equal(t, ThemeBasic.Pieces, imported.Pieces)

	_, err = ImportThemes("missing", []ThemeHex{h})
	assert.Error(t, err)
}

func TestPaletteDistinct(t *testing.T) {
	seen := make(map[int32]bool)
	for _, c := range Palette(mino.CanonicalCount, 0.6, 0.65) {
		assert.False(t, seen[c.Hex()], "duplicate color %06x", c.Hex())
		seen[c.Hex()] = true
	}

	base := ThemeBasic.Pieces[mino.TetrominoT]
	assert.Equal(t, base, Shade(base, 4))
	assert.NotEqual(t, base, Shade(base, 1))
}

func TestViewerSelection(t *testing.T) {
	results := []*bagfill.ResultSet{generate(t, 4, 2), generate(t, 1, 1)}
	v := NewViewer(results, ThemeBasic)

	assert.Equal(t, 2, v.Sizes.GetItemCount())
	assert.Equal(t, 3, v.Combinations.GetRowCount())
	assert.Contains(t, v.Legend.GetText(true), "2x TetrominoStraight")
	assert.Contains(t, v.Status.GetText(true), "4x2: 3 combinations")

	v.selectCombination(1)
	assert.Contains(t, v.Legend.GetText(true), "2x TetrominoSquare")

	v.selectSize(1)
	assert.Equal(t, 0, v.Combinations.GetRowCount())
	assert.Contains(t, v.Tiling.GetText(true), "no combination fills this bag")

	v.selectSize(5)
	assert.Same(t, results[1], v.current)
}
