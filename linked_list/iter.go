package linked_list

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/sirkon/errors"
)

const emptyText = "The linked list is empty"

// All yields the values from head to tail. Every range over the result
// starts again at the current head.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

func (l *List) Values() []int {
	vs := make([]int, 0, l.size)
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// String joins values with single spaces.
func (l *List) String() string {
	var b strings.Builder
	for v := range l.All() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Print writes every value followed by a space and ends the line.
//
// An empty list is printed as "The linked list is empty" and ErrEmptyList is
// returned along with it.
func (l *List) Print(w io.Writer) error {
	if l.head == nil {
		if _, err := io.WriteString(w, emptyText+"\n"); err != nil {
			return errors.Wrap(err, "print empty list notice")
		}
		return ErrEmptyList
	}

	var buf []byte
	for v := range l.All() {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')

	if _, err := w.Write(buf); err != nil {
		return errors.Wrap(err, "print list")
	}
	return nil
}
