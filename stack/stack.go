// Package stack provides a LIFO stack backed by a singly linked list.
package stack

import (
	"iter"

	"github.com/boolean-maybe/navistack/list"
)

// ErrEmpty is returned by Pop and Peek on an empty stack.
var ErrEmpty = list.ErrEmptyCollection

// Stack is a LIFO view over a list.LinkedList; the top is the list's first element.
// The zero value is an empty stack.
type Stack[T comparable] struct {
	items list.LinkedList[T]
}

// New creates an empty stack.
func New[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// Push puts element on top. O(1).
func (s *Stack[T]) Push(element T) {
	s.items.InsertFirst(element)
}

// Pop removes and returns the top element. O(1).
func (s *Stack[T]) Pop() (T, error) {
	return s.items.DeleteFirst()
}

// Peek returns the top element without removing it. O(1).
func (s *Stack[T]) Peek() (T, error) {
	return s.items.GetFirst()
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int { return s.items.Size() }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return s.items.IsEmpty() }

// Clear removes all elements.
func (s *Stack[T]) Clear() { s.items.Clear() }

// Values yields elements top to bottom without popping them.
func (s *Stack[T]) Values() iter.Seq[T] {
	return s.items.Values()
}

// ToSlice returns the elements top to bottom.
func (s *Stack[T]) ToSlice() []T {
	return s.items.ToSlice()
}
