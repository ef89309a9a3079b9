package collection

import "github.com/google/uuid"

// SubItem pairs an element of an array-valued draft field with a synthetic
// key assigned at draft-open time. Edits are keyed by that key rather than by
// position, so removing an element can never re-target a pending edit at the
// wrong neighbor.
type SubItem[E any] struct {
	Key   string
	Value E
}

// SubList edits one array-valued field (skills, tags, highlights, steps,
// items, details) within a draft.
type SubList[E any] struct {
	items []SubItem[E]
}

// NewSubList wraps the field's current elements, assigning each a key.
func NewSubList[E any](values []E) *SubList[E] {
	l := &SubList[E]{items: make([]SubItem[E], 0, len(values))}
	for _, v := range values {
		l.items = append(l.items, SubItem[E]{Key: uuid.NewString(), Value: v})
	}
	return l
}

func (l *SubList[E]) Len() int { return len(l.items) }

// Items returns the keyed elements in order.
func (l *SubList[E]) Items() []SubItem[E] { return l.items }

// Values strips the keys, yielding the field value to put back on the draft.
func (l *SubList[E]) Values() []E {
	out := make([]E, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it.Value)
	}
	return out
}

// Append adds one element at the end and returns its key.
func (l *SubList[E]) Append(def E) string {
	key := uuid.NewString()
	l.items = append(l.items, SubItem[E]{Key: key, Value: def})
	return key
}

// UpdateAt replaces the element at index i. An out-of-range index is a
// programming error: these lists are only ever indexed by their own rendered
// positions.
func (l *SubList[E]) UpdateAt(i int, v E) {
	l.items[i].Value = v
}

// RemoveAt removes the element at index i, shifting later elements down.
func (l *SubList[E]) RemoveAt(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// UpdateByKey replaces the element carrying the given key. Returns false if
// the key is gone (e.g. the element was removed while an edit was pending).
func (l *SubList[E]) UpdateByKey(key string, v E) bool {
	for i := range l.items {
		if l.items[i].Key == key {
			l.items[i].Value = v
			return true
		}
	}
	return false
}

// RemoveByKey removes the element carrying the given key.
func (l *SubList[E]) RemoveByKey(key string) bool {
	for i := range l.items {
		if l.items[i].Key == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}
