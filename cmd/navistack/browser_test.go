package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/boolean-maybe/navistack/internal/logger"
	"github.com/boolean-maybe/navistack/navistack"
)

// onEventLoop runs f on the tview event goroutine and fails if the loop does
// not get to it in time.
func onEventLoop(t *testing.T, ui *browserUI, f func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		ui.app.QueueUpdate(f)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not respond")
	}
}

func TestBrowserUI_NavigateDoesNotBlockEventLoop(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"a.md": "# A\n[b](b.md)\n",
		"b.md": "# B\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cfg := config{Style: "notty", SearchRoots: []string{dir}, CacheSize: 10}
	s, err := newSession(cfg, logger.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}
	if err := openInitial(context.Background(), s, "a.md"); err != nil {
		t.Fatal(err)
	}

	ui := newBrowserUI(s, logger.NewNoopLogger(), time.Second)
	screen := tcell.NewSimulationScreen("UTF-8")
	ui.app.SetScreen(screen)

	runErr := make(chan error, 1)
	go func() { runErr <- ui.app.Run() }()

	started := make(chan struct{})
	release := make(chan struct{})
	finished := make(chan struct{})
	onEventLoop(t, ui, func() {
		ui.navigate("follow", func(ctx context.Context) (*navistack.Page, error) {
			close(started)
			<-release
			defer close(finished)
			return s.Follow(ctx, 0)
		})
	})
	<-started

	var busy bool
	onEventLoop(t, ui, func() { busy = ui.busy })
	if !busy {
		t.Error("browser should report busy while a page loads")
	}

	// a second navigation while busy is ignored
	onEventLoop(t, ui, func() { ui.navigate("back", ui.session.Back) })

	close(release)
	<-finished

	var title string
	deadline := time.Now().Add(5 * time.Second)
	for {
		onEventLoop(t, ui, func() {
			busy = ui.busy
			title = s.Current().Title
		})
		if !busy || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if busy {
		t.Fatal("navigation result was never applied")
	}
	if title != "B" {
		t.Errorf("Title = %q, want B", title)
	}
	if !s.CanGoBack() || s.CanGoForward() {
		t.Errorf("ignored back move changed history: CanGoBack = %v, CanGoForward = %v", s.CanGoBack(), s.CanGoForward())
	}

	ui.app.Stop()
	if err := <-runErr; err != nil {
		t.Errorf("Run error: %v", err)
	}
}
