package app

import "fyne.io/fyne/v2"

func (a *Application) setupMenus() {
	walletMenu := fyne.NewMenu("Wallet",
		fyne.NewMenuItem("Add Snip20...", a.controller.AddSnip20),
		fyne.NewMenuItem("Refresh", a.controller.Refresh),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(walletMenu))
}
