package linked_list_test

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"sll_code/linked_list"
)

// model mirrors the list with a slice, head at index 0.
type model struct {
	l  *linked_list.List
	vs []int
}

func (m *model) addHead(t *rapid.T) {
	v := rapid.IntRange(0, 5).Draw(t, "v")
	m.l.AddHead(v)
	m.vs = slices.Insert(m.vs, 0, v)
}

func (m *model) removeHead(t *rapid.T) {
	err := m.l.RemoveHead()
	if len(m.vs) == 0 {
		expectErr(t, err, linked_list.ErrEmptyList)
		return
	}
	expectErr(t, err, nil)
	m.vs = m.vs[1:]
}

func (m *model) removeNode(t *rapid.T) {
	v := rapid.IntRange(0, 5).Draw(t, "v")
	err := m.l.RemoveNode(v)
	if len(m.vs) == 0 {
		expectErr(t, err, linked_list.ErrEmptyList)
		return
	}
	// the head never matches
	i := slices.Index(m.vs[1:], v)
	if i < 0 {
		expectErr(t, err, linked_list.ErrValueNotFound)
		return
	}
	expectErr(t, err, nil)
	m.vs = slices.Delete(m.vs, i+1, i+2)
}

func (m *model) addAfter(t *rapid.T) {
	a := rapid.IntRange(0, 5).Draw(t, "after")
	v := rapid.IntRange(0, 5).Draw(t, "v")
	err := m.l.AddAfter(a, v)
	if len(m.vs) == 0 {
		expectErr(t, err, linked_list.ErrEmptyList)
		return
	}
	i := slices.Index(m.vs, a)
	if i < 0 {
		expectErr(t, err, linked_list.ErrValueNotFound)
		return
	}
	expectErr(t, err, nil)
	m.vs = slices.Insert(m.vs, i+1, v)
}

func (m *model) check(t *rapid.T) {
	got := m.l.Values()
	if !slices.Equal(got, m.vs) {
		t.Fatalf("list %v, model %v", got, m.vs)
	}
	if m.l.Len() != len(m.vs) {
		t.Fatalf("Len() = %d, model has %d", m.l.Len(), len(m.vs))
	}
}

func expectErr(t *rapid.T, err error, want error) {
	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
}

func TestLinkedListModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := &model{l: linked_list.New()}
		t.Repeat(map[string]func(*rapid.T){
			"AddHead":    m.addHead,
			"RemoveHead": m.removeHead,
			"RemoveNode": m.removeNode,
			"AddAfter":   m.addAfter,
			"":           m.check,
		})
	})
}

func TestAddHeadReversesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vs := rapid.SliceOf(rapid.Int()).Draw(t, "vs")

		got := fromHeads(vs...).Values()
		want := slices.Clone(vs)
		slices.Reverse(want)
		if !slices.Equal(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}
