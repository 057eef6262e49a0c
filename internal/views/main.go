package views

import (
	"image/color"

	"budget-tracker/internal/environment"
	"budget-tracker/internal/models"
	"budget-tracker/internal/render"
	"budget-tracker/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single budget screen
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	titleLabel    *widget.Label
	toolbar       *components.Toolbar
	entryList     *components.EntryList
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	highlightHandler func(bool)
}

// NewMainView creates the view inside window
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates the fixed UI components
func (mv *MainView) initializeComponents() {
	mv.titleLabel = widget.NewLabelWithStyle(render.DefaultTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	mv.toolbar = components.NewToolbar()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout around the entry list
func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.titleLabel,
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.entryList.GetContainer(),
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.toolbar.SetHighlightHandler(func(highlighted bool) {
		if mv.highlightHandler != nil {
			mv.highlightHandler(highlighted)
		}
	})
}

// SetHighlightHandler sets the handler for the highlight toggle
func (mv *MainView) SetHighlightHandler(handler func(bool)) {
	mv.highlightHandler = handler
}

// ShowEntries builds the entry list once and lays out the window
func (mv *MainView) ShowEntries(entries []models.FinancialEntry, values *environment.Values, overrides ...render.Override) {
	mv.entryList = components.NewEntryList(entries, values, overrides...)
	mv.toolbar.SetEntryCount(len(entries))
	mv.toolbar.SetHighlighted(len(overrides) > 0)
	mv.updateColors()
	mv.buildLayout()
}

// ApplyEnvironment re-renders the existing rows under a new context
func (mv *MainView) ApplyEnvironment(values *environment.Values, overrides ...render.Override) {
	if mv.entryList == nil {
		return
	}
	mv.entryList.SetEnvironment(values, overrides...)
	mv.toolbar.SetHighlighted(len(overrides) > 0)
	mv.updateColors()
}

func (mv *MainView) updateColors() {
	scope := mv.entryList.Scope()
	mv.statusBar.SetColors(
		environment.ExpenseTextColor.Get(scope),
		environment.IncomeTextColor.Get(scope),
	)
}

// Rendered returns the rows currently on screen
func (mv *MainView) Rendered() []render.Row {
	if mv.entryList == nil {
		return nil
	}
	return mv.entryList.Rendered()
}

// ExpenseColor reports the expense color currently in effect for the list
func (mv *MainView) ExpenseColor() color.Color {
	if mv.entryList == nil {
		return environment.ExpenseTextColor.Default()
	}
	return environment.ExpenseTextColor.Get(mv.entryList.Scope())
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	fyne.Do(func() {
		mv.statusBar.SetStatus(status)
	})
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	fyne.Do(func() {
		dialog.ShowError(err, mv.window)
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetStatusBar returns the status bar component
func (mv *MainView) GetStatusBar() *components.StatusBar {
	return mv.statusBar
}

// SetWindowTitle updates the window title and heading
func (mv *MainView) SetWindowTitle(title string) {
	mv.window.SetTitle(title)
	mv.titleLabel.SetText(title)
}
