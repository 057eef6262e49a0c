package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/controllers"
	"budget-tracker/internal/environment"
	"budget-tracker/internal/logger"
	"budget-tracker/internal/models"
	"budget-tracker/internal/render"
	"budget-tracker/internal/shutdown"
	"budget-tracker/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Budget Tracker"
	AppID      = "com.example.budget-tracker"
	AppVersion = "1.0.0"
)

// Application holds the long-lived pieces of the desktop app
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	controller *controllers.MainController
	view       *views.MainView
	repo       *models.EntryRepository

	shutdown *shutdown.Manager
}

func main() {
	cfg := config.Load()
	appLogger := logger.NewConsoleLogger(cfg.LogLevel())

	if err := cfg.Validate(); err != nil {
		appLogger.Error("Main", fmt.Errorf("config validation: %w", err), nil)
		os.Exit(1)
	}

	repo := models.NewSampleRepository()
	controller := controllers.NewMainController(repo, appLogger, rootEnvironment(), cfg.HighlightExpenses)
	controller.SetTitle(cfg.WindowTitle)

	if cfg.OutputMode == config.OutputText {
		if err := render.WriteText(os.Stdout, controller.Snapshot()); err != nil {
			appLogger.Error("Main", err, nil)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application := NewApplication(cfg, appLogger, repo, controller)
	application.Run(ctx)
}

// rootEnvironment is the app-wide context. Both color keys fall back to
// their defaults, so it starts empty.
func rootEnvironment() *environment.Values {
	return nil
}

// NewApplication creates the window and wires the view to the controller
func NewApplication(cfg *config.Config, log logger.Logger, repo *models.EntryRepository, controller *controllers.MainController) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(cfg.WindowTitle)
	window.Resize(fyne.NewSize(420, 360))
	window.CenterOnScreen()

	log.Info("Main", "Application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"entries":    repo.Count(),
		"highlight":  cfg.HighlightExpenses,
		"log_level":  cfg.LogLevel().String(),
	})

	view := views.NewMainView(window)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		controller: controller,
		view:       view,
		repo:       repo,
		shutdown:   shutdown.NewManager(log, 5*time.Second),
	}

	application.shutdown.Register("app", shutdown.ShutdownFunc(func() {
		fyne.Do(fyneApp.Quit)
	}))
	application.shutdown.Register("controller", controller)

	window.SetOnClosed(func() {
		log.Info("Main", "Window closed", nil)
		application.shutdown.Shutdown()
	})

	return application
}

// Run shows the window and blocks until the app quits
func (a *Application) Run(ctx context.Context) {
	a.shutdown.Listen(ctx)
	a.window.ShowAndRun()
	a.shutdown.Shutdown()

	a.logger.Info("Main", "Application terminated", nil)
}
