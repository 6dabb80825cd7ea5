package list

import "errors"

// Sentinel errors returned by LinkedList and Iterator operations.
// All of them describe caller misuse; none are transient.
var (
	// ErrEmptyCollection is returned when an operation needs at least one element.
	ErrEmptyCollection = errors.New("collection is empty")
	// ErrOutOfRange is returned when an index argument is outside the valid bound.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNoSuchElement is returned when a cursor or history has nothing left in the requested direction.
	ErrNoSuchElement = errors.New("no such element")
	// ErrIllegalState is returned by Iterator.Remove without a preceding Next.
	ErrIllegalState = errors.New("illegal iterator state")
)
