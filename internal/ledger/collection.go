package ledger

import "encoding/json"

// Record is anything stored in a Collection, identified by a positive integer key.
type Record interface {
	Key() int
}

// Collection is an insertion-ordered list of records with integer ids.
// It is not safe for concurrent use; the Ledger serialises access.
type Collection[T Record] struct {
	items []T
}

func NewCollection[T Record](items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

func (c *Collection[T]) Len() int { return len(c.items) }

// List returns a copy of the records in insertion order.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id int) (T, bool) {
	return c.Find(func(rec T) bool { return rec.Key() == id })
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	for _, rec := range c.items {
		if pred(rec) {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// NextID is one more than the largest id in the collection, or 1 when empty.
func (c *Collection[T]) NextID() int {
	highest := 0
	for _, rec := range c.items {
		highest = max(highest, rec.Key())
	}
	return highest + 1
}

func (c *Collection[T]) Append(rec T) {
	c.items = append(c.items, rec)
}

// Replace swaps the record carrying rec's id in place. It reports false when no such record exists.
func (c *Collection[T]) Replace(rec T) bool {
	for i := range c.items {
		if c.items[i].Key() == rec.Key() {
			c.items[i] = rec
			return true
		}
	}
	return false
}

func (c *Collection[T]) Remove(id int) bool {
	return c.RemoveWhere(func(rec T) bool { return rec.Key() == id }) > 0
}

// RemoveWhere deletes every record matching pred and returns how many were removed.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) int {
	kept := c.items[:0:0]
	for _, rec := range c.items {
		if !pred(rec) {
			kept = append(kept, rec)
		}
	}
	removed := len(c.items) - len(kept)
	c.items = kept
	return removed
}

func (c *Collection[T]) Clone() *Collection[T] {
	return NewCollection(c.items...)
}

func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.List())
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = items
	return nil
}
