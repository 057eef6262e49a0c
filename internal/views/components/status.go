package components

import (
	"fmt"
	"image/color"

	"budget-tracker/internal/palette"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and the active amount colors
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	colorsLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.colorsLabel = widget.NewLabel("Colors: --")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.colorsLabel,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetColors shows which colors expense and income amounts currently use
func (sb *StatusBar) SetColors(expense, income color.Color) {
	info := fmt.Sprintf("Expense: %s | Income: %s", palette.Name(expense), palette.Name(income))
	sb.colorsLabel.SetText(info)
}

// GetColors returns the colors summary text
func (sb *StatusBar) GetColors() string {
	return sb.colorsLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.colorsLabel.SetText("Colors: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
