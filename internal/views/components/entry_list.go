package components

import (
	"budget-tracker/internal/environment"
	"budget-tracker/internal/models"
	"budget-tracker/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// EntryList renders the entries section. Context overrides are applied once
// here and shared by every row below.
type EntryList struct {
	scroll  *container.Scroll
	content *fyne.Container
	header  *widget.Label
	rows    []*EntryRow

	values    *environment.Values
	overrides []render.Override
}

// NewEntryList creates a list with one row per entry, in order
func NewEntryList(entries []models.FinancialEntry, values *environment.Values, overrides ...render.Override) *EntryList {
	list := &EntryList{
		values:    values,
		overrides: overrides,
	}
	list.createComponents(entries)
	list.buildLayout()
	return list
}

// createComponents initializes the header and rows
func (l *EntryList) createComponents(entries []models.FinancialEntry) {
	l.header = widget.NewLabelWithStyle(render.SectionTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	scope := l.Scope()
	l.rows = make([]*EntryRow, 0, len(entries))
	for _, entry := range entries {
		l.rows = append(l.rows, NewEntryRow(entry, scope))
	}
}

// buildLayout constructs the scrollable section
func (l *EntryList) buildLayout() {
	l.content = container.NewVBox(l.header, widget.NewSeparator())
	for _, row := range l.rows {
		l.content.Add(row)
	}
	l.scroll = container.NewVScroll(l.content)
}

// SetEnvironment replaces the parent context and container overrides, then
// pushes the derived scope to every row
func (l *EntryList) SetEnvironment(values *environment.Values, overrides ...render.Override) {
	l.values = values
	l.overrides = overrides

	scope := l.Scope()
	for _, row := range l.rows {
		row.SetEnvironment(scope)
	}
}

// Scope returns the context seen by the rows
func (l *EntryList) Scope() *environment.Values {
	return render.ContainerScope(l.values, l.overrides...)
}

// Rendered returns the displayed rows in order
func (l *EntryList) Rendered() []render.Row {
	rows := make([]render.Row, 0, len(l.rows))
	for _, row := range l.rows {
		rows = append(rows, row.Rendered())
	}
	return rows
}

// Header returns the section label text
func (l *EntryList) Header() string {
	return l.header.Text
}

// GetContainer returns the list's root object
func (l *EntryList) GetContainer() fyne.CanvasObject {
	return l.scroll
}

// Refresh redraws every row
func (l *EntryList) Refresh() {
	for _, row := range l.rows {
		row.Refresh()
	}
}
