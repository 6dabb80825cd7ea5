package navistack

import (
	"errors"
	"testing"

	"github.com/boolean-maybe/navistack/list"
	"github.com/google/go-cmp/cmp"
)

type testPage struct {
	url string
}

func TestNavigationHistory_NewHistory(t *testing.T) {
	h := NewNavigationHistory[testPage]()

	if h == nil {
		t.Fatal("NewNavigationHistory should not return nil")
	}

	if h.CanGoBack() {
		t.Error("New history should not have back entries")
	}

	if h.CanGoForward() {
		t.Error("New history should not have forward entries")
	}

	if _, ok := h.Current(); ok {
		t.Error("New history should not have a current page")
	}

	if got := h.History(); len(got) != 0 {
		t.Errorf("History = %v, want empty", got)
	}

	if _, err := h.Back(); !errors.Is(err, list.ErrNoSuchElement) {
		t.Errorf("Back on fresh history error = %v, want ErrNoSuchElement", err)
	}

	if _, err := h.Forward(); !errors.Is(err, list.ErrNoSuchElement) {
		t.Errorf("Forward on fresh history error = %v, want ErrNoSuchElement", err)
	}
}

func TestNavigationHistory_Visit(t *testing.T) {
	h := NewNavigationHistory[testPage]()

	h.Visit(testPage{url: "page1"})

	if h.CanGoBack() {
		t.Error("First visit should not create back history")
	}

	if cur, ok := h.Current(); !ok || cur.url != "page1" {
		t.Errorf("Current = %v, %v; want page1, true", cur, ok)
	}

	h.Visit(testPage{url: "page2"})

	if h.BackStackSize() != 1 {
		t.Errorf("BackStackSize = %d, want 1", h.BackStackSize())
	}
}

func TestNavigationHistory_BackAndForward(t *testing.T) {
	h := NewNavigationHistory[string]()
	h.Visit("A")
	h.Visit("B")

	got, err := h.Back()
	if err != nil {
		t.Fatalf("Back error: %v", err)
	}
	if got != "A" {
		t.Errorf("Back = %q, want A", got)
	}

	if !h.CanGoForward() {
		t.Fatal("Back should create forward history")
	}

	got, err = h.Forward()
	if err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	if got != "B" {
		t.Errorf("Forward = %q, want B", got)
	}

	if h.CanGoForward() {
		t.Error("Forward stack should be empty again")
	}
	if h.BackStackSize() != 1 {
		t.Errorf("BackStackSize = %d, want 1", h.BackStackSize())
	}
}

func TestNavigationHistory_VisitClearsForward(t *testing.T) {
	h := NewNavigationHistory[string]()
	h.Visit("A")
	h.Visit("B")

	if _, err := h.Back(); err != nil {
		t.Fatalf("Back error: %v", err)
	}

	h.Visit("C")

	if h.ForwardStackSize() != 0 {
		t.Errorf("ForwardStackSize = %d, want 0", h.ForwardStackSize())
	}

	if _, err := h.Forward(); !errors.Is(err, ErrNoForwardHistory) {
		t.Errorf("Forward after visit error = %v, want ErrNoForwardHistory", err)
	}

	if diff := cmp.Diff([]string{"C", "A"}, h.History()); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationHistory_BackExhausts(t *testing.T) {
	h := NewNavigationHistory[string]()
	h.Visit("A")
	h.Visit("B")
	h.Visit("C")

	for _, want := range []string{"B", "A"} {
		got, err := h.Back()
		if err != nil {
			t.Fatalf("Back error: %v", err)
		}
		if got != want {
			t.Errorf("Back = %q, want %q", got, want)
		}
	}

	if _, err := h.Back(); !errors.Is(err, ErrNoBackHistory) {
		t.Errorf("Back past start error = %v, want ErrNoBackHistory", err)
	}

	// a failed move leaves state alone
	if cur, _ := h.Current(); cur != "A" {
		t.Errorf("Current = %q, want A", cur)
	}
	if diff := cmp.Diff([]string{"B", "C"}, h.Forwards()); diff != "" {
		t.Errorf("Forwards mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationHistory_SeededHistory(t *testing.T) {
	h := NewNavigationHistoryFrom("P3", "P2", "P1")

	if diff := cmp.Diff([]string{"P3", "P2", "P1"}, h.History()); diff != "" {
		t.Fatalf("History mismatch (-want +got):\n%s", diff)
	}

	got, err := h.Back()
	if err != nil {
		t.Fatalf("Back error: %v", err)
	}
	if got != "P2" {
		t.Errorf("Back = %q, want P2", got)
	}

	if diff := cmp.Diff([]string{"P2", "P1"}, h.History()); diff != "" {
		t.Errorf("History after Back mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"P3"}, h.Forwards()); diff != "" {
		t.Errorf("Forwards after Back mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationHistory_SeededEmptyAndSingle(t *testing.T) {
	empty := NewNavigationHistoryFrom[string]()
	if _, ok := empty.Current(); ok {
		t.Error("empty seed should have no current page")
	}

	single := NewNavigationHistoryFrom("only")
	if cur, ok := single.Current(); !ok || cur != "only" {
		t.Errorf("Current = %q, %v; want only, true", cur, ok)
	}
	if single.CanGoBack() {
		t.Error("single seed should not have back history")
	}
}

func TestNavigationHistory_HistoryDoesNotMutate(t *testing.T) {
	h := NewNavigationHistory[string]()
	for _, p := range []string{"A", "B", "C", "D"} {
		h.Visit(p)
	}
	if _, err := h.Back(); err != nil {
		t.Fatalf("Back error: %v", err)
	}

	first := h.History()
	second := h.History()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("History not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"C", "B", "A"}, first); diff != "" {
		t.Errorf("History mismatch (-want +got):\n%s", diff)
	}

	// moves behave as if History had never been called
	if got, _ := h.Forward(); got != "D" {
		t.Errorf("Forward = %q, want D", got)
	}
	if got, _ := h.Back(); got != "C" {
		t.Errorf("Back = %q, want C", got)
	}
	if got, _ := h.Back(); got != "B" {
		t.Errorf("Back = %q, want B", got)
	}
	if h.ForwardStackSize() != 2 {
		t.Errorf("ForwardStackSize = %d, want 2", h.ForwardStackSize())
	}
}

func TestNavigationHistory_HistoryResultIsCopy(t *testing.T) {
	h := NewNavigationHistoryFrom("B", "A")
	got := h.History()
	got[1] = "changed"

	if diff := cmp.Diff([]string{"B", "A"}, h.History()); diff != "" {
		t.Errorf("History aliased internal state (-want +got):\n%s", diff)
	}
}

func TestNavigationHistory_Clear(t *testing.T) {
	h := NewNavigationHistoryFrom("C", "B", "A")
	_, _ = h.Back()

	h.Clear()

	if _, ok := h.Current(); ok {
		t.Error("Clear should forget the current page")
	}
	if h.CanGoBack() || h.CanGoForward() {
		t.Error("Clear should empty both stacks")
	}

	h.Visit("X")
	if diff := cmp.Diff([]string{"X"}, h.History()); diff != "" {
		t.Errorf("History after Clear mismatch (-want +got):\n%s", diff)
	}
}
