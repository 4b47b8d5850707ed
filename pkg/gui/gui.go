package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/bagfill"
)

const DefaultStatusText = "Tab to switch panes, arrow keys to browse, q to quit"

// Viewer browses enumerated bags: sizes on the left, the combinations of the
// selected size in the middle and an example tiling on the right.
type Viewer struct {
	App          *tview.Application
	Layout       *tview.Grid
	Sizes        *tview.List
	Combinations *tview.Table
	Tiling       *tview.TextView
	Legend       *tview.TextView
	Status       *tview.TextView

	theme   Theme
	results []*bagfill.ResultSet
	current *bagfill.ResultSet
}

func NewViewer(results []*bagfill.ResultSet, theme Theme) *Viewer {
	v := &Viewer{
		App:          tview.NewApplication(),
		Sizes:        tview.NewList().ShowSecondaryText(false),
		Combinations: tview.NewTable().SetSelectable(true, false),
		Tiling:       tview.NewTextView().SetDynamicColors(true),
		Legend:       tview.NewTextView().SetDynamicColors(true),
		Status:       tview.NewTextView().SetText(DefaultStatusText),
		theme:        theme,
		results:      results,
	}

	v.Sizes.SetBorder(true).SetTitle(" Bags ").SetBorderColor(theme.Border)
	v.Combinations.SetBorder(true).SetTitle(" Combinations ").SetBorderColor(theme.Border)
	v.Tiling.SetBorder(true).SetTitle(" Example ").SetBorderColor(theme.Border)
	v.Legend.SetBorder(true).SetTitle(" Pieces ").SetBorderColor(theme.Border)
	v.Status.SetTextColor(theme.Label)

	for i, rs := range results {
		i := i
		v.Sizes.AddItem(fmt.Sprintf("%dx%d (%d)", rs.Width, rs.Height, rs.Len()), "", 0, func() {
			v.App.SetFocus(v.Combinations)
			v.selectSize(i)
		})
	}
	v.Sizes.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		v.selectSize(index)
	})
	v.Combinations.SetSelectionChangedFunc(func(row, col int) {
		v.selectCombination(row)
	})

	v.Layout = tview.NewGrid().
		SetRows(-1, 1).
		SetColumns(20, -2, -1).
		AddItem(v.Sizes, 0, 0, 1, 1, 0, 0, true).
		AddItem(v.Combinations, 0, 1, 1, 1, 0, 0, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(v.Tiling, 0, 2, false).
			AddItem(v.Legend, 0, 1, false), 0, 2, 1, 1, 0, 0, false).
		AddItem(v.Status, 1, 0, 1, 3, 0, 0, false)

	v.App.SetInputCapture(v.handleKey)

	if len(results) > 0 {
		v.selectSize(0)
	}

	return v
}

func (v *Viewer) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		v.App.Stop()
		return nil
	case tcell.KeyTab:
		if v.App.GetFocus() == v.Sizes {
			v.App.SetFocus(v.Combinations)
		} else {
			v.App.SetFocus(v.Sizes)
		}
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			v.App.Stop()
			return nil
		}
	}
	return event
}

func (v *Viewer) selectSize(i int) {
	if i < 0 || i >= len(v.results) {
		return
	}
	v.current = v.results[i]

	v.Combinations.Clear()
	for row, c := range v.current.Combinations() {
		v.Combinations.SetCell(row, 0, tview.NewTableCell(fmt.Sprintf("%d", len(c))).
			SetTextColor(v.theme.Label))
		v.Combinations.SetCell(row, 1, tview.NewTableCell(c.String()).
			SetExpansion(1))
	}
	v.Combinations.ScrollToBeginning()

	v.Status.SetText(renderStats(v.current))
	if v.current.Len() == 0 {
		v.Tiling.SetText("no combination fills this bag")
		v.Legend.Clear()
		return
	}
	v.Combinations.Select(0, 0)
	v.selectCombination(0)
}

func (v *Viewer) selectCombination(row int) {
	if v.current == nil {
		return
	}

	results := v.current.Results()
	if row < 0 || row >= len(results) {
		return
	}

	v.Tiling.SetText(renderTiling(results[row].Example, v.theme))
	v.Legend.SetText(renderLegend(results[row].Combination, v.theme))
}

func (v *Viewer) Run() error {
	return v.App.SetRoot(v.Layout, true).EnableMouse(true).Run()
}
