package app

import (
	"fyne.io/fyne/v2"

	"secret-wallet/internal/config"
	"secret-wallet/internal/controllers"
	"secret-wallet/internal/logger"
	"secret-wallet/internal/models"
	"secret-wallet/internal/shutdown"
	"secret-wallet/internal/storage"
	"secret-wallet/internal/views"
)

const AppVersion = "0.1.0"

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	config  config.Config
	logger  logger.Logger

	store      *storage.Store
	stateRepo  *models.StateRepository
	controller *controllers.MainController
	view       *views.MainView
	shutdown   *shutdown.Manager
}

// NewApplication assembles the wallet shell on top of fyneApp, restoring the
// previous session's state from its preferences.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fyneApp.Settings().SetTheme(views.NewTheme(cfg.UI.Theme))

	window := fyneApp.NewWindow(cfg.App.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	store := storage.NewStore(fyneApp.Preferences(), log)
	stateRepo := models.NewStateRepository(store.LoadOrDefault())

	controller := controllers.NewMainController(stateRepo, store, log)
	view := views.NewMainView(window, views.Options{Debug: cfg.Debug})
	controller.SetMainView(view)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register("state", controller)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		store:      store,
		stateRepo:  stateRepo,
		controller: controller,
		view:       view,
		shutdown:   shutdownMgr,
	}

	a.setupMenus()
	a.setupLifecycle()

	state := stateRepo.Snapshot()
	log.Info("Application", "initialization complete", map[string]interface{}{
		"version": AppVersion,
		"app_id":  cfg.App.ID,
		"theme":   cfg.UI.Theme,
		"account": state.SelectedAccount(),
		"mode":    state.Mode.String(),
		"debug":   cfg.Debug,
	})

	return a, nil
}

func (a *Application) setupLifecycle() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	lc := a.fyneApp.Lifecycle()
	lc.SetOnStarted(func() {
		a.logger.Debug("Application", "event loop started", nil)
	})
	lc.SetOnStopped(func() {
		a.shutdown.Shutdown()
		a.logger.Debug("Application", "event loop stopped", nil)
	})
}

// Run shows the window and blocks in the toolkit's event loop. SIGINT and
// SIGTERM persist state and quit the loop.
func (a *Application) Run() error {
	stop := a.shutdown.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})
	defer stop()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown persists state and releases components. Safe to call repeatedly.
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

// Controller returns the main controller
func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

// View returns the main view
func (a *Application) View() *views.MainView {
	return a.view
}

// Window returns the main window
func (a *Application) Window() fyne.Window {
	return a.window
}
