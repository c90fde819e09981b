package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const Snip20DialogTitle = "AddSnip20"

// Snip20Dialog is the modal shown while a token is being added. Its fields are
// descriptive text only.
type Snip20Dialog struct {
	dialog *dialog.CustomDialog

	Title       *widget.Label
	Address     *widget.Label
	AuthMethods *widget.Label
	CloseButton *widget.Button

	visible      bool
	closeHandler func()
}

// NewSnip20Dialog creates the dialog attached to parent. It starts hidden.
func NewSnip20Dialog(parent fyne.Window) *Snip20Dialog {
	d := &Snip20Dialog{
		Title:       widget.NewLabel("Add Snip20"),
		Address:     widget.NewLabel("Address"),
		AuthMethods: widget.NewLabel("Authenticate with VK, Permit or custom permit"),
	}
	d.CloseButton = widget.NewButton("Close", d.requestClose)

	content := container.NewVBox(
		d.Title,
		d.Address,
		d.AuthMethods,
		d.CloseButton,
	)
	d.dialog = dialog.NewCustomWithoutButtons(Snip20DialogTitle, content, parent)

	// Dismissal that did not come from Hide still has to reach the controller.
	d.dialog.SetOnClosed(func() {
		if d.visible {
			d.visible = false
			if d.closeHandler != nil {
				d.closeHandler()
			}
		}
	})

	return d
}

func (d *Snip20Dialog) requestClose() {
	if d.closeHandler != nil {
		d.closeHandler()
	}
}

// SetCloseHandler sets the handler for the Close button
func (d *Snip20Dialog) SetCloseHandler(handler func()) {
	d.closeHandler = handler
}

// SetVisible shows or hides the dialog. Repeated calls are no-ops.
func (d *Snip20Dialog) SetVisible(visible bool) {
	if d.visible == visible {
		return
	}
	d.visible = visible
	if visible {
		d.dialog.Show()
	} else {
		d.dialog.Hide()
	}
}

// IsVisible returns true if the dialog is showing
func (d *Snip20Dialog) IsVisible() bool {
	return d.visible
}
