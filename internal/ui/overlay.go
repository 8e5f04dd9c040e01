package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"trade-search/internal/search"
	"trade-search/internal/types"
)

// overlayHeaderY is the screen line of the results grid header: title, toolbar, header.
const overlayHeaderY = 2

// overlayView is the full-screen results view of a submitted search.
type overlayView struct {
	overlay *search.Overlay
	grid    *gridView[types.SearchResult]
	keys    keyMap
	styles  Styles

	notes   textinput.Model
	editing bool
	status  string
}

func newOverlayView(o *search.Overlay, keys keyMap, styles Styles, pxPerCell int) *overlayView {
	notes := textinput.New()
	notes.Placeholder = "notes"
	notes.Prompt = "Notes: "
	notes.CharLimit = 256
	notes.Width = 48
	return &overlayView{
		overlay: o,
		grid:    newGridView(o.Grid, keys, styles, pxPerCell),
		keys:    keys,
		styles:  styles,
		notes:   notes,
	}
}

func (o *overlayView) SetSize(w, h int) {
	// Below the grid: pricing panel, status, help.
	o.grid.SetBounds(0, overlayHeaderY, w, h-overlayHeaderY-3)
	o.notes.Width = max(16, w-12)
}

// Update handles a key while the overlay is open. It reports true when the
// overlay should close.
func (o *overlayView) Update(ctx context.Context, msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, o.grid.Update(msg)
	}

	if o.editing {
		switch {
		case km.Type == tea.KeyEnter:
			o.overlay.Notes = strings.TrimSpace(o.notes.Value())
			o.stopEditing()
		case key.Matches(km, o.keys.Close):
			o.stopEditing()
		default:
			var cmd tea.Cmd
			o.notes, cmd = o.notes.Update(km)
			return false, cmd
		}
		return false, nil
	}

	if o.grid.Capturing() {
		return false, o.grid.Update(km)
	}

	switch {
	case key.Matches(km, o.keys.Close):
		return true, nil
	case key.Matches(km, o.keys.Price):
		priced := o.overlay.Price(ctx)
		o.status = fmt.Sprintf("Submitted %s for %s", pluralTrades(len(priced)), o.overlay.PricingMode)
		return false, nil
	case key.Matches(km, o.keys.SACCR):
		o.overlay.ToggleSACCR()
		return false, nil
	case key.Matches(km, o.keys.EditNotes):
		o.editing = true
		o.notes.SetValue(o.overlay.Notes)
		o.notes.CursorEnd()
		return false, o.notes.Focus()
	}
	return false, o.grid.Update(km)
}

func (o *overlayView) stopEditing() {
	o.notes.Blur()
	o.editing = false
}

func (o *overlayView) View() string {
	var b strings.Builder
	b.WriteString(o.styles.Title.Render("Search Results · " + o.overlay.Title()))
	b.WriteString("\n")
	b.WriteString(o.grid.Toolbar("Trades"))
	b.WriteString("\n")
	b.WriteString(o.grid.View())
	b.WriteString("\n")

	saccr := "off"
	if o.overlay.SACCR {
		saccr = "on"
	}
	notes := o.overlay.Notes
	if o.editing {
		notes = o.notes.View()
	} else if notes == "" {
		notes = o.styles.Muted.Render("Notes: —")
	} else {
		notes = "Notes: " + notes
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s",
		o.styles.Label.Render("Pricing mode:"), o.overlay.PricingMode,
		o.styles.Label.Render("KVA SACCR:"), saccr,
		notes))
	b.WriteString("\n")
	b.WriteString(o.styles.OK.Render(o.status))
	return b.String()
}

func pluralTrades(n int) string {
	if n == 1 {
		return "1 trade"
	}
	return humanize.Comma(int64(n)) + " trades"
}
