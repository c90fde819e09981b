package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestDialog(t *testing.T) *Snip20Dialog {
	t.Helper()
	w := test.NewTempApp(t).NewWindow("test")
	t.Cleanup(w.Close)
	return NewSnip20Dialog(w)
}

func TestSnip20DialogDismissReportsClose(t *testing.T) {
	d := newTestDialog(t)
	var closed int
	d.SetCloseHandler(func() { closed++ })

	d.SetVisible(true)
	d.dialog.Hide()

	assert.Equal(t, 1, closed)
	assert.False(t, d.IsVisible())

	d.SetVisible(false)
	assert.Equal(t, 1, closed)
}

func TestSnip20DialogSetVisibleIsIdempotent(t *testing.T) {
	d := newTestDialog(t)
	var closed int
	d.SetCloseHandler(func() { closed++ })

	d.SetVisible(true)
	d.SetVisible(true)
	assert.True(t, d.IsVisible())

	d.SetVisible(false)
	d.SetVisible(false)
	assert.False(t, d.IsVisible())
	assert.Zero(t, closed)
}
