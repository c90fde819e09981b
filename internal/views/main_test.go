package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secret-wallet/internal/config"
	"secret-wallet/internal/models"
)

func newTestView(t *testing.T, opts Options) *MainView {
	t.Helper()
	w := test.NewTempApp(t).NewWindow("test")
	t.Cleanup(w.Close)

	mv := NewMainView(w, opts)
	mv.Show()
	return mv
}

func TestRenderSelectsAccount(t *testing.T) {
	mv := newTestView(t, Options{})
	state := models.DefaultState()

	for i := range state.Accounts {
		state.Account = i
		mv.Render(state)
		assert.Equal(t, state.Accounts[i], mv.SidePanel().AccountSelect.Selected)
	}
}

func TestRenderDoesNotEchoSelection(t *testing.T) {
	mv := newTestView(t, Options{})
	var calls int
	mv.SetAccountChangeHandler(func(int) { calls++ })

	state := models.DefaultState()
	state.Account = 2
	mv.Render(state)

	assert.Zero(t, calls)
}

func TestUserSelectionReachesHandler(t *testing.T) {
	mv := newTestView(t, Options{})
	mv.Render(models.DefaultState())

	var got []int
	mv.SetAccountChangeHandler(func(i int) { got = append(got, i) })

	mv.SidePanel().AccountSelect.SetSelectedIndex(1)
	mv.SidePanel().AccountSelect.SetSelectedIndex(2)

	assert.Equal(t, []int{1, 2}, got)
}

func TestButtonsReachHandlers(t *testing.T) {
	mv := newTestView(t, Options{})
	var added, refreshed, closed int
	mv.SetAddSnip20Handler(func() { added++ })
	mv.SetRefreshHandler(func() { refreshed++ })
	mv.SetCloseDialogHandler(func() { closed++ })

	test.Tap(mv.SidePanel().AddSnip20Button)
	test.Tap(mv.SidePanel().RefreshButton)
	test.Tap(mv.Snip20Dialog().CloseButton)

	assert.Equal(t, 1, added)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1, closed)
}

func TestRenderTogglesDialog(t *testing.T) {
	mv := newTestView(t, Options{})
	state := models.DefaultState()

	mv.Render(state)
	assert.False(t, mv.Snip20Dialog().IsVisible())

	state.Mode = models.ModeAddingSnip20
	mv.Render(state)
	assert.True(t, mv.Snip20Dialog().IsVisible())

	state.Mode = models.ModeBrowsing
	mv.Render(state)
	assert.False(t, mv.Snip20Dialog().IsVisible())
}

func TestHidingDialogDoesNotReportClose(t *testing.T) {
	mv := newTestView(t, Options{})
	var closed int
	mv.SetCloseDialogHandler(func() { closed++ })

	state := models.DefaultState()
	state.Mode = models.ModeAddingSnip20
	mv.Render(state)
	state.Mode = models.ModeBrowsing
	mv.Render(state)

	assert.Zero(t, closed)
}

func TestDialogLabels(t *testing.T) {
	mv := newTestView(t, Options{})
	d := mv.Snip20Dialog()

	assert.Equal(t, "Add Snip20", d.Title.Text)
	assert.Equal(t, "Address", d.Address.Text)
	assert.Equal(t, "Authenticate with VK, Permit or custom permit", d.AuthMethods.Text)
	assert.Equal(t, "Close", d.CloseButton.Text)
}

func TestSidePanelContent(t *testing.T) {
	mv := newTestView(t, Options{})
	sp := mv.SidePanel()

	assert.Equal(t, "Menu", sp.Heading.Text)
	require.Len(t, sp.AssetBox.Objects, 2)
	assert.Equal(t, "scrt: 20", sp.AssetBox.Objects[0].(*widget.Label).Text)
	assert.Equal(t, "SHD: 30", sp.AssetBox.Objects[1].(*widget.Label).Text)
	assert.Equal(t, "Add Snip20", sp.AddSnip20Button.Text)
	assert.Equal(t, "Refresh", sp.RefreshButton.Text)
}

func TestRowList(t *testing.T) {
	mv := newTestView(t, Options{})
	list := mv.RowList().List

	assert.Equal(t, models.PlaceholderRowCount, list.Length())

	item := list.CreateItem()
	list.UpdateItem(3, item)
	assert.Equal(t, "This is row 4", item.(*widget.Label).Text)
}

func TestDebugWarningVisibility(t *testing.T) {
	assert.False(t, newTestView(t, Options{}).RowList().DebugWarning.Visible())
	assert.True(t, newTestView(t, Options{Debug: true}).RowList().DebugWarning.Visible())
}

func TestNewTheme(t *testing.T) {
	dark := NewTheme(config.ThemeDark)
	light := NewTheme(config.ThemeLight)
	def := theme.DefaultTheme()

	assert.Equal(t,
		def.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		def.Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, def.Size(theme.SizeNamePadding), dark.Size(theme.SizeNamePadding))

}
