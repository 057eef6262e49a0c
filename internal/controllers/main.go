package controllers

import (
	"fmt"
	"sync"

	"budget-tracker/internal/environment"
	"budget-tracker/internal/logger"
	"budget-tracker/internal/models"
	"budget-tracker/internal/palette"
	"budget-tracker/internal/render"
	"budget-tracker/internal/views"
)

const componentName = "MainController"

// EventHandler represents a function that handles application events
type EventHandler func(data interface{}) error

// MainController connects the entry repository, the ambient context and the view
type MainController struct {
	repo   *models.EntryRepository
	logger logger.Logger
	title  string

	// Views
	mainView *views.MainView

	// State management
	mu        sync.RWMutex
	root      *environment.Values
	highlight bool

	// Event handlers
	eventHandlers map[string][]EventHandler
	eventMu       sync.RWMutex
}

// NewMainController creates a controller rendering repo's entries under root.
// highlight selects the orange expense override on the list container.
func NewMainController(repo *models.EntryRepository, log logger.Logger, root *environment.Values, highlight bool) *MainController {
	return &MainController{
		repo:          repo,
		logger:        log,
		title:         render.DefaultTitle,
		root:          root,
		highlight:     highlight,
		eventHandlers: make(map[string][]EventHandler),
	}
}

// SetTitle sets the screen title used by Snapshot and the window
func (mc *MainController) SetTitle(title string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.title = title
}

// SetMainView associates the main view with this controller and renders the entries
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	view.SetHighlightHandler(mc.SetHighlightExpenses)
	view.SetWindowTitle(mc.Title())
	view.ShowEntries(mc.repo.Entries(), mc.Root(), mc.Overrides()...)
	view.UpdateStatus(fmt.Sprintf("Showing %d entries", mc.repo.Count()))

	mc.logger.Info(componentName, "entries rendered", map[string]interface{}{
		"rows":          mc.repo.Count(),
		"highlight":     mc.HighlightExpenses(),
		"expense_color": palette.Name(view.ExpenseColor()),
	})
}

// SetHighlightExpenses swaps the container override and re-renders the rows.
// Entries are left untouched.
func (mc *MainController) SetHighlightExpenses(highlight bool) {
	mc.mu.Lock()
	changed := mc.highlight != highlight
	mc.highlight = highlight
	mc.mu.Unlock()

	if !changed {
		return
	}

	if mc.mainView != nil {
		mc.mainView.ApplyEnvironment(mc.Root(), mc.Overrides()...)
	}

	mc.logger.Debug(componentName, "expense highlight changed", map[string]interface{}{
		"highlight": highlight,
	})
	mc.emitEvent("highlight_changed", highlight)
}

// HighlightExpenses reports whether the orange expense override is active
func (mc *MainController) HighlightExpenses() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.highlight
}

// Title returns the screen title
func (mc *MainController) Title() string {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.title
}

// Root returns the context the list container inherits
func (mc *MainController) Root() *environment.Values {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.root
}

// Overrides returns the overrides attached to the list container
func (mc *MainController) Overrides() []render.Override {
	if mc.HighlightExpenses() {
		return []render.Override{render.HighlightExpenses}
	}
	return nil
}

// Snapshot renders the current state without touching the view
func (mc *MainController) Snapshot() render.List {
	return render.RenderList(mc.Title(), mc.repo.Entries(), mc.Root(), mc.Overrides()...)
}

// AddEventListener registers a handler for an event type
func (mc *MainController) AddEventListener(eventType string, handler EventHandler) {
	mc.eventMu.Lock()
	defer mc.eventMu.Unlock()
	mc.eventHandlers[eventType] = append(mc.eventHandlers[eventType], handler)
}

// emitEvent runs every handler for eventType on the calling goroutine
func (mc *MainController) emitEvent(eventType string, data interface{}) {
	mc.eventMu.RLock()
	handlers := mc.eventHandlers[eventType]
	mc.eventMu.RUnlock()

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			mc.handleError(fmt.Sprintf("Event handler error (%s)", eventType), err)
		}
	}
}

// handleError logs err and surfaces it in the view when one is attached
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error(componentName, err, map[string]interface{}{
		"context": title,
	})

	if mc.mainView != nil {
		mc.mainView.UpdateStatus(title)
		mc.mainView.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}

// Shutdown releases controller resources
func (mc *MainController) Shutdown() {
	mc.eventMu.Lock()
	mc.eventHandlers = make(map[string][]EventHandler)
	mc.eventMu.Unlock()

	mc.logger.Info(componentName, "controller shutdown completed", nil)
}
