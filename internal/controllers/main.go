package controllers

import (
	"secret-wallet/internal/logger"
	"secret-wallet/internal/models"
)

// View is what the controller drives. Handlers registered here are invoked on
// the UI goroutine.
type View interface {
	SetAccountChangeHandler(func(int))
	SetAddSnip20Handler(func())
	SetRefreshHandler(func())
	SetCloseDialogHandler(func())
	Render(models.State)
}

// StateSaver persists the application state.
type StateSaver interface {
	Save(models.State) error
}

// MainController applies user intents to the state repository and re-renders
// the view after every change.
type MainController struct {
	stateRepo *models.StateRepository
	saver     StateSaver
	view      View
	logger    logger.Logger
}

// NewMainController creates a new main controller
func NewMainController(stateRepo *models.StateRepository, saver StateSaver, log logger.Logger) *MainController {
	return &MainController{
		stateRepo: stateRepo,
		saver:     saver,
		logger:    log,
	}
}

// SetMainView associates the view with this controller and renders the
// current state into it.
func (mc *MainController) SetMainView(view View) {
	mc.view = view

	view.SetAccountChangeHandler(func(index int) {
		if err := mc.SelectAccount(index); err != nil {
			mc.logger.Error("Controller", err, map[string]interface{}{
				"index": index,
			})
		}
	})
	view.SetAddSnip20Handler(mc.AddSnip20)
	view.SetRefreshHandler(mc.Refresh)
	view.SetCloseDialogHandler(mc.CloseDialog)

	mc.render()
}

// SelectAccount makes index the selected account.
func (mc *MainController) SelectAccount(index int) error {
	if err := mc.stateRepo.SelectAccount(index); err != nil {
		return err
	}

	state := mc.stateRepo.Snapshot()
	mc.logger.Debug("Controller", "account selected", map[string]interface{}{
		"index":   index,
		"account": state.SelectedAccount(),
	})

	mc.renderState(state)
	return nil
}

// AddSnip20 opens the Add Snip20 dialog.
func (mc *MainController) AddSnip20() {
	mc.setMode(models.ModeAddingSnip20, "add_snip20")
}

// Refresh currently opens the Add Snip20 dialog as well; balances are not
// queried yet.
func (mc *MainController) Refresh() {
	mc.setMode(models.ModeAddingSnip20, "refresh")
}

// CloseDialog closes the Add Snip20 dialog.
func (mc *MainController) CloseDialog() {
	mc.setMode(models.ModeBrowsing, "close")
}

// State returns a snapshot of the current state
func (mc *MainController) State() models.State {
	return mc.stateRepo.Snapshot()
}

// Save persists the current state.
func (mc *MainController) Save() error {
	return mc.saver.Save(mc.stateRepo.Snapshot())
}

// Shutdown persists the state. Failures are logged, never fatal.
func (mc *MainController) Shutdown() {
	if err := mc.Save(); err != nil {
		mc.logger.Error("Controller", err, map[string]interface{}{
			"stage": "shutdown",
		})
		return
	}
	mc.logger.Info("Controller", "state persisted", nil)
}

func (mc *MainController) setMode(mode models.UIMode, trigger string) {
	if !mc.stateRepo.SetMode(mode) {
		return
	}

	mc.logger.Debug("Controller", "mode changed", map[string]interface{}{
		"mode":    mode.String(),
		"trigger": trigger,
	})
	mc.render()
}

func (mc *MainController) render() {
	mc.renderState(mc.stateRepo.Snapshot())
}

func (mc *MainController) renderState(state models.State) {
	if mc.view == nil {
		return
	}
	mc.view.Render(state)
}
