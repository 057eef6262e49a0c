package components

import (
	"budget-tracker/internal/environment"
	"budget-tracker/internal/models"
	"budget-tracker/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// EntryRow shows one entry's direction and amount. The amount color comes from
// the context handed down by the enclosing list and is re-resolved on Refresh.
type EntryRow struct {
	widget.BaseWidget

	entry  models.FinancialEntry
	values *environment.Values

	direction *widget.Label
	amount    *canvas.Text
}

// NewEntryRow creates a row bound to values
func NewEntryRow(entry models.FinancialEntry, values *environment.Values) *EntryRow {
	row := &EntryRow{
		entry:  entry,
		values: values,
	}

	rendered := render.RenderRow(entry, values)
	row.direction = widget.NewLabel(rendered.Direction)
	row.amount = canvas.NewText(rendered.Amount, rendered.Color)
	row.amount.Alignment = fyne.TextAlignTrailing

	row.ExtendBaseWidget(row)
	return row
}

// CreateRenderer implements fyne.Widget
func (r *EntryRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewHBox(r.direction, layout.NewSpacer(), r.amount)
	return widget.NewSimpleRenderer(content)
}

// SetEnvironment rebinds the row to a new scope and redraws it
func (r *EntryRow) SetEnvironment(values *environment.Values) {
	r.values = values
	r.Refresh()
}

// Refresh resolves the context again before redrawing
func (r *EntryRow) Refresh() {
	r.apply()
	r.direction.Refresh()
	r.amount.Refresh()
	r.BaseWidget.Refresh()
}

// Entry returns the entry displayed by the row
func (r *EntryRow) Entry() models.FinancialEntry {
	return r.entry
}

// Rendered returns what the row currently displays
func (r *EntryRow) Rendered() render.Row {
	return render.Row{
		ID:        r.entry.ID(),
		Category:  r.entry.Category(),
		Direction: r.direction.Text,
		Amount:    r.amount.Text,
		Color:     r.amount.Color,
	}
}

func (r *EntryRow) apply() {
	rendered := render.RenderRow(r.entry, r.values)
	r.direction.Text = rendered.Direction
	r.amount.Text = rendered.Amount
	r.amount.Color = rendered.Color
}
