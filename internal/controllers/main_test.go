package controllers

import (
	"errors"
	"image/color"
	"testing"

	"budget-tracker/internal/logger"
	"budget-tracker/internal/models"
	"budget-tracker/internal/palette"
	"budget-tracker/internal/render"
	"budget-tracker/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(highlight bool) *MainController {
	return NewMainController(models.NewSampleRepository(), logger.NewNop(), nil, highlight)
}

func TestSnapshot_Highlighted(t *testing.T) {
	mc := newController(true)

	list := mc.Snapshot()

	require.Len(t, list.Rows, 4)
	assert.Equal(t, render.DefaultTitle, list.Title)
	assert.Equal(t, color.Color(palette.Green), list.Rows[0].Color)
	for _, row := range list.Rows[1:] {
		assert.Equal(t, color.Color(palette.Orange), row.Color, row.Category)
	}
}

func TestSetHighlightExpenses_SwapsOverride(t *testing.T) {
	mc := newController(true)
	before := mc.Snapshot()

	mc.SetHighlightExpenses(false)
	after := mc.Snapshot()

	assert.False(t, mc.HighlightExpenses())
	assert.Empty(t, mc.Overrides())
	for i := range before.Rows {
		assert.Equal(t, before.Rows[i].Amount, after.Rows[i].Amount)
		assert.Equal(t, before.Rows[i].ID, after.Rows[i].ID)
	}
	assert.Equal(t, color.Color(palette.Red), after.Rows[1].Color)
}

func TestSnapshot_Idempotent(t *testing.T) {
	mc := newController(false)

	assert.Equal(t, mc.Snapshot(), mc.Snapshot())
}

func TestEvents(t *testing.T) {
	mc := newController(false)

	var got []interface{}
	mc.AddEventListener("highlight_changed", func(data interface{}) error {
		got = append(got, data)
		return nil
	})
	mc.AddEventListener("highlight_changed", func(interface{}) error {
		return errors.New("listener failed")
	})

	mc.SetHighlightExpenses(true)
	mc.SetHighlightExpenses(true)
	mc.SetHighlightExpenses(false)

	assert.Equal(t, []interface{}{true, false}, got)

	mc.Shutdown()
	mc.SetHighlightExpenses(true)
	assert.Len(t, got, 2)
}

func TestSetMainView_RendersAndToggles(t *testing.T) {
	test.NewTempApp(t)

	w := test.NewWindow(nil)
	defer w.Close()

	mc := newController(true)
	mc.SetTitle("My Budget")
	view := views.NewMainView(w)
	mc.SetMainView(view)

	assert.Equal(t, "My Budget", w.Title())
	assert.Equal(t, mc.Snapshot().Rows, view.Rendered())
	assert.True(t, view.GetToolbar().IsHighlighted())
	assert.Equal(t, "Expense: orange | Income: green", view.GetStatusBar().GetColors())

	mc.SetHighlightExpenses(false)

	assert.Equal(t, mc.Snapshot().Rows, view.Rendered())
	assert.Equal(t, color.Color(palette.Red), view.ExpenseColor())
	assert.False(t, view.GetToolbar().IsHighlighted())
	assert.Equal(t, "Expense: red | Income: green", view.GetStatusBar().GetColors())
}
