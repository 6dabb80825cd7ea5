package list

// Iterator is a single-pass forward cursor over a LinkedList.
//
// Remove is the only structural change allowed while iterating; any other
// mutation of the list invalidates the iterator.
type Iterator[T comparable] struct {
	list      *LinkedList[T]
	next      *node[T]
	pos       int // elements yielded and not removed
	canRemove bool
}

// HasNext reports whether Next will yield another element.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < it.list.Size() && it.next != nil
}

// Next returns the current element and advances the cursor.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}

	n := it.next
	it.next = n.next
	it.pos++
	it.canRemove = true
	return n.value, nil
}

// Remove deletes the element most recently returned by Next.
func (it *Iterator[T]) Remove() error {
	if !it.canRemove {
		return ErrIllegalState
	}

	// the successor held in it.next is untouched by deleting its predecessor
	if _, err := it.list.Delete(it.pos - 1); err != nil {
		return err
	}
	it.pos--
	it.canRemove = false
	return nil
}
