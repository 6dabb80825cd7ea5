package navistack

import (
	"fmt"

	"github.com/boolean-maybe/navistack/list"
	"github.com/boolean-maybe/navistack/stack"
)

// Sentinel errors for NavigationHistory moves. Both match list.ErrNoSuchElement.
var (
	ErrNoBackHistory    = fmt.Errorf("%w: no back history", list.ErrNoSuchElement)
	ErrNoForwardHistory = fmt.Errorf("%w: no forward history", list.ErrNoSuchElement)
)

// NavigationHistory implements browser-like back/forward navigation over
// opaque page identifiers.
//
// It keeps the current page plus two stacks:
// - previous holds pages visited before current, most recent on top
// - forward holds pages reachable with Forward, most recent on top
//
// Visiting a page clears forward history.
type NavigationHistory[T comparable] struct {
	current    T
	hasCurrent bool

	previous *stack.Stack[T]
	forward  *stack.Stack[T]
}

// NewNavigationHistory creates an empty history with no current page.
func NewNavigationHistory[T comparable]() *NavigationHistory[T] {
	return &NavigationHistory[T]{
		previous: stack.New[T](),
		forward:  stack.New[T](),
	}
}

// NewNavigationHistoryFrom creates a history seeded with prior browsing.
// pages are ordered most recent first: pages[0] becomes the current page and
// pages[1] ends up on top of the back stack.
func NewNavigationHistoryFrom[T comparable](pages ...T) *NavigationHistory[T] {
	h := NewNavigationHistory[T]()
	if len(pages) == 0 {
		return h
	}

	h.current = pages[0]
	h.hasCurrent = true

	// pushing in reading order would leave the oldest page on top
	reversed := stack.New[T]()
	for _, p := range pages[1:] {
		reversed.Push(p)
	}
	for !reversed.IsEmpty() {
		p, _ := reversed.Pop()
		h.previous.Push(p)
	}

	return h
}

// Visit makes page current, moving the old current page onto the back stack
// and dropping forward history.
func (h *NavigationHistory[T]) Visit(page T) {
	h.forward.Clear()
	if h.hasCurrent {
		h.previous.Push(h.current)
	}
	h.current = page
	h.hasCurrent = true
}

// Back moves to the previous page and returns it.
func (h *NavigationHistory[T]) Back() (T, error) {
	if h.previous.IsEmpty() {
		var zero T
		return zero, ErrNoBackHistory
	}

	h.forward.Push(h.current)
	h.current, _ = h.previous.Pop()
	return h.current, nil
}

// Forward moves to the next page and returns it.
func (h *NavigationHistory[T]) Forward() (T, error) {
	if h.forward.IsEmpty() {
		var zero T
		return zero, ErrNoForwardHistory
	}

	h.previous.Push(h.current)
	h.current, _ = h.forward.Pop()
	return h.current, nil
}

// History returns the current page followed by the back stack, most recent
// first. Neither stack is modified.
func (h *NavigationHistory[T]) History() []T {
	if !h.hasCurrent {
		return nil
	}

	out := make([]T, 0, 1+h.previous.Size())
	out = append(out, h.current)
	for p := range h.previous.Values() {
		out = append(out, p)
	}
	return out
}

// Forwards returns the forward stack, next page first.
func (h *NavigationHistory[T]) Forwards() []T {
	return h.forward.ToSlice()
}

// Current returns the current page and whether one has been visited.
func (h *NavigationHistory[T]) Current() (T, bool) {
	return h.current, h.hasCurrent
}

// CanGoBack returns true if there are entries in the back stack.
func (h *NavigationHistory[T]) CanGoBack() bool {
	return !h.previous.IsEmpty()
}

// CanGoForward returns true if there are entries in the forward stack.
func (h *NavigationHistory[T]) CanGoForward() bool {
	return !h.forward.IsEmpty()
}

// Clear forgets the current page and both stacks.
func (h *NavigationHistory[T]) Clear() {
	var zero T
	h.current = zero
	h.hasCurrent = false
	h.previous.Clear()
	h.forward.Clear()
}

// BackStackSize returns the number of entries in the back stack.
func (h *NavigationHistory[T]) BackStackSize() int {
	return h.previous.Size()
}

// ForwardStackSize returns the number of entries in the forward stack.
func (h *NavigationHistory[T]) ForwardStackSize() int {
	return h.forward.Size()
}
