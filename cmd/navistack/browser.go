package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"github.com/boolean-maybe/navistack/internal/logger"
	"github.com/boolean-maybe/navistack/navistack"
)

// browserUI lays out the current page, its links, an optional history panel
// and a status bar.
//
// Page loads run on their own goroutine and their results are applied with
// QueueUpdateDraw. While one is in flight (busy) navigation and the history
// panel are ignored, so the session is only ever used by one goroutine at a time.
type browserUI struct {
	app     *tview.Application
	session *navistack.Session
	log     logger.Logger
	timeout time.Duration

	content *tview.TextView
	links   *tview.List
	history *tview.TextView
	status  *tview.TextView
	body    *tview.Flex

	showHistory bool
	busy        bool
	lastErr     error
}

func newBrowserUI(s *navistack.Session, log logger.Logger, timeout time.Duration) *browserUI {
	ui := &browserUI{
		app:     tview.NewApplication(),
		session: s,
		log:     log,
		timeout: timeout,
	}

	ui.content = tview.NewTextView()
	ui.content.SetDynamicColors(true).SetWrap(true).SetBorder(true)

	ui.links = tview.NewList()
	ui.links.ShowSecondaryText(false).SetBorder(true).SetTitle(" Links ")
	ui.links.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		ui.navigate("follow", func(ctx context.Context) (*navistack.Page, error) {
			return ui.session.Follow(ctx, index)
		})
	})

	ui.history = tview.NewTextView()
	ui.history.SetDynamicColors(true).SetBorder(true).SetTitle(" History ")

	ui.status = tview.NewTextView()
	ui.status.SetDynamicColors(true)
	ui.status.SetTextAlign(tview.AlignLeft)

	ui.body = tview.NewFlex().
		AddItem(ui.content, 0, 3, false).
		AddItem(ui.links, 0, 1, true)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.body, 0, 1, true).
		AddItem(ui.status, 1, 0, false)

	ui.app.SetRoot(layout, true)
	ui.app.SetInputCapture(ui.handleKey)

	if page := s.Current(); page != nil {
		ui.show(page)
	}
	return ui
}

// Run blocks until the user quits.
func (ui *browserUI) Run() error {
	return ui.app.Run()
}

func (ui *browserUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		ui.navigate("back", ui.session.Back)
		return nil
	case tcell.KeyRight:
		ui.navigate("forward", ui.session.Forward)
		return nil
	case tcell.KeyTab:
		if ui.links.HasFocus() {
			ui.app.SetFocus(ui.content)
		} else {
			ui.app.SetFocus(ui.links)
		}
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case 'q':
		ui.app.Stop()
	case 'b':
		ui.navigate("back", ui.session.Back)
	case 'f':
		ui.navigate("forward", ui.session.Forward)
	case 'r':
		ui.navigate("reload", ui.session.Reload)
	case 'h':
		ui.toggleHistory()
	default:
		return event
	}
	return nil
}

func (ui *browserUI) navigate(action string, move func(context.Context) (*navistack.Page, error)) {
	if ui.busy {
		return
	}
	ui.busy = true
	ui.status.SetText(" [yellow]loading...[-]")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ui.timeout)
		defer cancel()

		page, err := move(ctx)
		ui.app.QueueUpdateDraw(func() {
			ui.busy = false
			if err != nil {
				ui.log.Warn("navigation failed", zap.String("action", action), zap.Error(err))
				ui.lastErr = err
				ui.updateStatus()
				return
			}
			ui.lastErr = nil
			ui.show(page)
		})
	}()
}

func (ui *browserUI) show(page *navistack.Page) {
	ui.content.SetTitle(" " + tview.Escape(page.Title) + " ")
	ui.content.SetText(tview.TranslateANSI(page.Rendered))
	ui.content.ScrollToBeginning()

	ui.links.Clear()
	for _, l := range page.Links {
		ui.links.AddItem(tview.Escape(l.Text), l.URL, 0, nil)
	}

	ui.refreshHistory()
	ui.updateStatus()
}

func (ui *browserUI) toggleHistory() {
	if ui.busy {
		return
	}
	ui.showHistory = !ui.showHistory
	if ui.showHistory {
		ui.refreshHistory()
		ui.body.AddItem(ui.history, 0, 1, false)
	} else {
		ui.body.RemoveItem(ui.history)
	}
}

func (ui *browserUI) refreshHistory() {
	ui.history.SetText(formatHistory(ui.session.Forwards(), ui.session.History()))
}

// formatHistory lists forward pages (farthest first, dimmed), then the
// current page highlighted, then back history.
func formatHistory(forwards, history []string) string {
	var sb strings.Builder
	for i := len(forwards) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "[gray]  %s[-]\n", tview.Escape(forwards[i]))
	}
	for i, loc := range history {
		if i == 0 {
			fmt.Fprintf(&sb, "[yellow]> %s[-]\n", tview.Escape(loc))
			continue
		}
		fmt.Fprintf(&sb, "  %s\n", tview.Escape(loc))
	}
	return sb.String()
}

// updateStatus refreshes the status bar with back/forward availability.
func (ui *browserUI) updateStatus() {
	ui.status.SetText(statusLine(ui.session.CanGoBack(), ui.session.CanGoForward(), ui.lastErr))
}

func statusLine(canBack, canForward bool, lastErr error) string {
	const keyColor = "gray"
	const activeColor = "white"

	indicator := func(active bool, glyph string) string {
		if active {
			return fmt.Sprintf("[%s]%s[-]", activeColor, glyph)
		}
		return "[gray]" + glyph + "[-]"
	}

	status := " Back:" + indicator(canBack, "◀") + " Fwd:" + indicator(canForward, "▶")
	status += fmt.Sprintf(" | Follow:[%s]Enter[-] History:[%s]h[-] Reload:[%s]r[-] Quit:[%s]q[-]",
		keyColor, keyColor, keyColor, keyColor)
	if lastErr != nil {
		status += " | [red]" + tview.Escape(lastErr.Error()) + "[-]"
	}
	return status
}
