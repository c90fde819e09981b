package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"secret-wallet/internal/models"
	"secret-wallet/internal/views/components"
)

// Options tune the main view
type Options struct {
	Debug bool
}

// MainView lays out the wallet shell: the account side panel on the right,
// the row list in the centre and the Add Snip20 dialog over both.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	sidePanel    *components.SidePanel
	rowList      *components.RowList
	snip20Dialog *components.Snip20Dialog
}

// NewMainView creates the main view for window
func NewMainView(window fyne.Window, opts Options) *MainView {
	mv := &MainView{
		window: window,
	}

	mv.initializeComponents(opts)
	mv.buildLayout()

	return mv
}

func (mv *MainView) initializeComponents(opts Options) {
	mv.sidePanel = components.NewSidePanel()
	mv.rowList = components.NewRowList(opts.Debug)
	mv.snip20Dialog = components.NewSnip20Dialog(mv.window)
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		nil,                         // top
		nil,                         // bottom
		nil,                         // left
		mv.sidePanel.GetContainer(), // right
		mv.rowList.GetContainer(),   // center
	)
}

// SetAccountChangeHandler sets the handler for account selection
func (mv *MainView) SetAccountChangeHandler(handler func(int)) {
	mv.sidePanel.SetAccountChangeHandler(handler)
}

// SetAddSnip20Handler sets the handler for the Add Snip20 button
func (mv *MainView) SetAddSnip20Handler(handler func()) {
	mv.sidePanel.SetAddSnip20Handler(handler)
}

// SetRefreshHandler sets the handler for the Refresh button
func (mv *MainView) SetRefreshHandler(handler func()) {
	mv.sidePanel.SetRefreshHandler(handler)
}

// SetCloseDialogHandler sets the handler for closing the Add Snip20 dialog
func (mv *MainView) SetCloseDialogHandler(handler func()) {
	mv.snip20Dialog.SetCloseHandler(handler)
}

// Render makes every widget reflect state. Must run on the UI goroutine.
func (mv *MainView) Render(state models.State) {
	mv.sidePanel.Render(state)
	mv.snip20Dialog.SetVisible(state.DialogOpen())
}

// Show installs the view as window content and shows the window.
func (mv *MainView) Show() {
	mv.window.SetContent(mv.mainContainer)
	mv.window.Show()
	mv.rowList.StickToBottom()
}

// SidePanel returns the account side panel
func (mv *MainView) SidePanel() *components.SidePanel {
	return mv.sidePanel
}

// RowList returns the central row list
func (mv *MainView) RowList() *components.RowList {
	return mv.rowList
}

// Snip20Dialog returns the Add Snip20 dialog
func (mv *MainView) Snip20Dialog() *components.Snip20Dialog {
	return mv.snip20Dialog
}
