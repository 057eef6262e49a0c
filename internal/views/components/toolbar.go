package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the display controls above the entries
type Toolbar struct {
	container      *fyne.Container
	highlightCheck *widget.Check
	countLabel     *widget.Label

	// Event handlers
	highlightHandler func(bool)
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.highlightCheck = widget.NewCheck("Highlight expenses", nil)
	t.countLabel = widget.NewLabel("0 entries")
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(
		t.highlightCheck,
		widget.NewSeparator(),
		t.countLabel,
	)
}

// setupEventHandlers connects widget events
func (t *Toolbar) setupEventHandlers() {
	t.highlightCheck.OnChanged = func(checked bool) {
		if t.highlightHandler != nil {
			t.highlightHandler(checked)
		}
	}
}

// SetHighlightHandler sets the handler for the highlight toggle
func (t *Toolbar) SetHighlightHandler(handler func(bool)) {
	t.highlightHandler = handler
}

// SetHighlighted updates the toggle without firing the handler
func (t *Toolbar) SetHighlighted(highlighted bool) {
	handler := t.highlightCheck.OnChanged
	t.highlightCheck.OnChanged = nil
	t.highlightCheck.SetChecked(highlighted)
	t.highlightCheck.OnChanged = handler
}

// IsHighlighted returns the toggle state
func (t *Toolbar) IsHighlighted() bool {
	return t.highlightCheck.Checked
}

// SetEntryCount updates the entry counter
func (t *Toolbar) SetEntryCount(count int) {
	if count == 1 {
		t.countLabel.SetText("1 entry")
		return
	}
	t.countLabel.SetText(fmt.Sprintf("%d entries", count))
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
