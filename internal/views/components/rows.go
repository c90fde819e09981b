package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"secret-wallet/internal/models"
)

// RowList is the central scrolling list. Rows are created lazily by the
// list as they scroll into view.
type RowList struct {
	container *fyne.Container

	List         *widget.List
	DebugWarning *widget.Label
}

// NewRowList creates the central list. The debug warning is only visible
// when debug is set.
func NewRowList(debug bool) *RowList {
	rl := &RowList{}

	rl.List = widget.NewList(
		func() int {
			return models.PlaceholderRowCount
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			item.(*widget.Label).SetText(models.PlaceholderRow(id))
		},
	)

	rl.DebugWarning = widget.NewLabelWithStyle("⚠ Debug build ⚠", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	if !debug {
		rl.DebugWarning.Hide()
	}

	rl.container = container.NewBorder(nil, rl.DebugWarning, nil, nil, rl.List)
	return rl
}

// StickToBottom scrolls the list to its last row.
func (rl *RowList) StickToBottom() {
	rl.List.ScrollToBottom()
}

// GetContainer returns the list container
func (rl *RowList) GetContainer() *fyne.Container {
	return rl.container
}
