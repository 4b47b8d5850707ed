package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// Theme is used for dynamically coloring the viewer
type Theme struct {
	Name     string
	Label    tcell.Color
	Border   tcell.Color
	Empty    tcell.Color
	Selected tcell.Color
	Pieces   [mino.CanonicalCount]tcell.Color
}

// ThemeHex is the serialisable form of a Theme
type ThemeHex struct {
	Name     string                      `json:"name" yaml:"name"`
	Label    string                      `json:"label" yaml:"label"`
	Border   string                      `json:"border" yaml:"border"`
	Empty    string                      `json:"empty" yaml:"empty"`
	Selected string                      `json:"selected" yaml:"selected"`
	Pieces   [mino.CanonicalCount]string `json:"pieces" yaml:"pieces"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	h := ThemeHex{
		Name:     t.Name,
		Label:    fmtHex(t.Label.Hex()),
		Border:   fmtHex(t.Border.Hex()),
		Empty:    fmtHex(t.Empty.Hex()),
		Selected: fmtHex(t.Selected.Hex()),
	}
	for i, c := range t.Pieces {
		h.Pieces[i] = fmtHex(c.Hex())
	}
	return h
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	th := Theme{
		Name:     t.Name,
		Label:    tcell.GetColor(t.Label),
		Border:   tcell.GetColor(t.Border),
		Empty:    tcell.GetColor(t.Empty),
		Selected: tcell.GetColor(t.Selected),
	}
	for i, c := range t.Pieces {
		th.Pieces[i] = tcell.GetColor(c)
	}
	return th
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, errors.New("theme: no theme found")
}

// Palette spreads n hues evenly around the HCL wheel.
func Palette(n int, chroma, luminance float64) []tcell.Color {
	colors := make([]tcell.Color, n)
	for i := range colors {
		c := colorful.Hcl(float64(i)*360/float64(n), chroma, luminance).Clamped()
		colors[i] = tcell.GetColor(c.Hex())
	}
	return colors
}

// Shade lightens a piece color by depth so neighbouring pieces of the same
// type stay distinguishable.
func Shade(base tcell.Color, depth int) tcell.Color {
	t := float64(depth%4) * 0.12
	if t == 0 {
		return base
	}

	c, err := colorful.Hex(fmtHex(base.Hex()))
	if err != nil {
		return base
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	return tcell.GetColor(c.BlendLab(white, t).Clamped().Hex())
}

func newBasicTheme() Theme {
	t := Theme{
		Name:     "basic",
		Label:    tcell.Color247,
		Border:   tcell.Color240,
		Empty:    tcell.Color236,
		Selected: tcell.Color226,
	}
	copy(t.Pieces[:], Palette(mino.CanonicalCount, 0.6, 0.65))
	return t
}

// ThemeBasic is the default theme
var ThemeBasic = newBasicTheme()
