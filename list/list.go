// Package list provides a generic singly linked list with indexed access
// and an iterator that supports removal during traversal.
package list

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked sequence of comparable values.
//
// The zero value is an empty list ready to use. A LinkedList is not safe for
// concurrent use.
type LinkedList[T comparable] struct {
	head  *node[T]
	count int
}

// New creates an empty list.
func New[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// From creates a list holding elems in the given order.
func From[T comparable](elems ...T) *LinkedList[T] {
	l := New[T]()
	for i := len(elems) - 1; i >= 0; i-- {
		l.InsertFirst(elems[i])
	}
	return l
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}

// InsertFirst prepends element. O(1).
func (l *LinkedList[T]) InsertFirst(element T) {
	l.head = &node[T]{value: element, next: l.head}
	l.count++
}

// Insert places element so that it occupies position index.
// index may equal Size(), which appends. O(index).
func (l *LinkedList[T]) Insert(index int, element T) error {
	if index < 0 || index > l.count {
		return outOfRange(index, l.count)
	}

	if index == 0 {
		l.InsertFirst(element)
		return nil
	}

	prev := l.nodeBefore(index)
	prev.next = &node[T]{value: element, next: prev.next}
	l.count++
	return nil
}

// nodeBefore returns the node at position index-1.
// Callers guarantee 0 < index <= count.
func (l *LinkedList[T]) nodeBefore(index int) *node[T] {
	n := l.head
	for i := 0; i < index-1; i++ {
		n = n.next
	}
	return n
}

// GetFirst returns the first element. O(1).
func (l *LinkedList[T]) GetFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.head.value, nil
}

// Get returns the element at index. O(index).
func (l *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, outOfRange(index, l.count)
	}

	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n.value, nil
}

// DeleteFirst removes and returns the first element. O(1).
func (l *LinkedList[T]) DeleteFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyCollection
	}

	first := l.head
	l.head = first.next
	first.next = nil
	l.count--
	return first.value, nil
}

// Delete removes and returns the element at index. O(index).
func (l *LinkedList[T]) Delete(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, outOfRange(index, l.count)
	}

	if index == 0 {
		return l.DeleteFirst()
	}

	prev := l.nodeBefore(index)
	target := prev.next
	prev.next = target.next
	target.next = nil
	l.count--
	return target.value, nil
}

// IndexOf returns the index of the first element equal to element, or -1.
func (l *LinkedList[T]) IndexOf(element T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == element {
			return i
		}
		i++
	}
	return -1
}

// Size returns the number of elements.
func (l *LinkedList[T]) Size() int { return l.count }

// IsEmpty reports whether the list has no elements.
func (l *LinkedList[T]) IsEmpty() bool { return l.count == 0 }

// Clear drops every element. O(1); the detached chain is left to the collector.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.count = 0
}

// ToSlice returns a snapshot of the elements, head to tail.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.count)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// All yields index/element pairs head to tail without modifying the list.
func (l *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values yields elements head to tail without modifying the list.
func (l *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Iterator returns a fresh forward cursor positioned before the first element.
func (l *LinkedList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, next: l.head}
}

func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
