package components

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"secret-wallet/internal/models"
)

// SidePanel holds account selection, balances and the token actions.
type SidePanel struct {
	container *fyne.Container

	Heading         *widget.Label
	AccountSelect   *widget.Select
	AssetBox        *fyne.Container
	AddSnip20Button *widget.Button
	RefreshButton   *widget.Button

	accountChangeHandler func(int)
	addSnip20Handler     func()
	refreshHandler       func()

	// set while Render pushes state into the widgets so the select does not
	// echo programmatic changes back as user input
	rendering bool
}

// NewSidePanel creates the side panel component
func NewSidePanel() *SidePanel {
	sp := &SidePanel{}
	sp.createComponents()
	sp.buildLayout()
	sp.setupEventHandlers()
	return sp
}

func (sp *SidePanel) createComponents() {
	sp.Heading = widget.NewLabelWithStyle("Menu", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	sp.AccountSelect = widget.NewSelect(nil, nil)
	sp.AssetBox = container.NewVBox()

	sp.AddSnip20Button = widget.NewButton("Add Snip20", nil)
	sp.RefreshButton = widget.NewButton("Refresh", nil)

	sp.setAssets(models.PlaceholderAssets())
}

func (sp *SidePanel) buildLayout() {
	sp.container = container.NewVBox(
		sp.Heading,
		widget.NewSeparator(),
		sp.AccountSelect,
		sp.AssetBox,
		sp.AddSnip20Button,
		sp.RefreshButton,
	)
}

func (sp *SidePanel) setupEventHandlers() {
	sp.AccountSelect.OnChanged = func(string) {
		if sp.rendering || sp.accountChangeHandler == nil {
			return
		}
		if index := sp.AccountSelect.SelectedIndex(); index >= 0 {
			sp.accountChangeHandler(index)
		}
	}

	sp.AddSnip20Button.OnTapped = func() {
		if sp.addSnip20Handler != nil {
			sp.addSnip20Handler()
		}
	}

	sp.RefreshButton.OnTapped = func() {
		if sp.refreshHandler != nil {
			sp.refreshHandler()
		}
	}
}

func (sp *SidePanel) setAssets(assets []models.Asset) {
	sp.AssetBox.RemoveAll()
	for _, asset := range assets {
		sp.AssetBox.Add(widget.NewLabel(asset.String()))
	}
}

// SetAccountChangeHandler sets the handler receiving the chosen account index
func (sp *SidePanel) SetAccountChangeHandler(handler func(int)) {
	sp.accountChangeHandler = handler
}

// SetAddSnip20Handler sets the handler for the Add Snip20 button
func (sp *SidePanel) SetAddSnip20Handler(handler func()) {
	sp.addSnip20Handler = handler
}

// SetRefreshHandler sets the handler for the Refresh button
func (sp *SidePanel) SetRefreshHandler(handler func()) {
	sp.refreshHandler = handler
}

// Render brings the account selector in line with state.
func (sp *SidePanel) Render(state models.State) {
	sp.rendering = true
	defer func() { sp.rendering = false }()

	if !slices.Equal(sp.AccountSelect.Options, state.Accounts) {
		sp.AccountSelect.Options = slices.Clone(state.Accounts)
		sp.AccountSelect.Refresh()
	}
	if sp.AccountSelect.SelectedIndex() != state.Account {
		sp.AccountSelect.SetSelectedIndex(state.Account)
	}
}

// GetContainer returns the side panel container
func (sp *SidePanel) GetContainer() *fyne.Container {
	return sp.container
}
