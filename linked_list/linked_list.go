// Package linked_list implements a mutable singly linked list of ints.
//
// The list is not safe for concurrent use; callers sharing a List must
// serialize every operation themselves.
package linked_list

import (
	"github.com/goose-lang/std"
	"github.com/sirkon/errors"
)

// Node is one element of a List. It is owned by exactly one predecessor, or
// by the List when it is the head.
type Node struct {
	data int
	next *Node
}

// List is a singly linked list. The zero value is an empty list.
type List struct {
	head *Node
	size int
}

func New() *List {
	return &List{}
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.size
}

// AddHead puts v in front of the list.
func (l *List) AddHead(v int) {
	l.head = &Node{data: v, next: l.head}
	l.size++
}

// RemoveHead drops the first element. It returns ErrEmptyList and leaves the
// list untouched when there is nothing to remove.
func (l *List) RemoveHead() error {
	if l.head == nil {
		return ErrEmptyList
	}
	std.Assert(l.size > 0)

	n := l.head
	l.head = n.next
	n.next = nil
	l.size--
	return nil
}

// RemoveNode unlinks the first element after the head that holds v.
//
// The head itself is never a candidate: a list whose only occurrence of v is
// the head reports ErrValueNotFound. Use RemoveHead to drop the head.
func (l *List) RemoveNode(v int) error {
	if l.head == nil {
		return ErrEmptyList
	}

	prev := l.head
	for prev.next != nil && prev.next.data != v {
		prev = prev.next
	}
	if prev.next == nil {
		return errors.Wrap(ErrValueNotFound, "remove node").Int("value", v)
	}

	n := prev.next
	prev.next = n.next
	n.next = nil
	std.Assert(l.size > 1)
	l.size--
	return nil
}

// AddAfter inserts v right after the first element holding after. Unlike
// RemoveNode, the head may serve as the anchor.
func (l *List) AddAfter(after int, v int) error {
	if l.head == nil {
		return ErrEmptyList
	}

	var anchor = l.head
	for anchor != nil && anchor.data != after {
		anchor = anchor.next
	}
	if anchor == nil {
		return errors.Wrap(ErrValueNotFound, "add after").Int("anchor", after)
	}

	// the new node must take over the old successor before the anchor
	// lets go of it
	anchor.next = &Node{data: v, next: anchor.next}
	l.size++
	return nil
}
