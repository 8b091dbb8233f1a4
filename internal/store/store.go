// Package store provides the ordered in-memory log that backs each
// entry kind (activity, food, sleep).
package store

import "github.com/varsha/glucolog/internal/model"

// Log holds entries of one kind, newest first. Order comes from
// inserting at the front, not from sorting on date. Update and Delete
// are keyed by id, never by position, and are no-ops for unknown ids.
type Log[T model.Entry[T]] struct {
	entries []T
}

func New[T model.Entry[T]]() *Log[T] {
	return &Log[T]{}
}

// Insert prepends the entry.
func (l *Log[T]) Insert(e T) {
	l.entries = append([]T{e}, l.entries...)
}

// Update replaces the entry sharing e's id, keeping the stored
// entry's creation date: edits change content, not provenance.
func (l *Log[T]) Update(e T) {
	for i, existing := range l.entries {
		if existing.EntryID() == e.EntryID() {
			l.entries[i] = e.WithDate(existing.EntryDate())
			return
		}
	}
}

// Delete removes the entry with the given id. Deleting twice has the
// same effect as deleting once.
func (l *Log[T]) Delete(id string) {
	for i, existing := range l.entries {
		if existing.EntryID() == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Get returns the entry with the given id.
func (l *Log[T]) Get(id string) (T, bool) {
	for _, e := range l.entries {
		if e.EntryID() == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// All returns the entries in current order, newest first.
func (l *Log[T]) All() []T {
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log[T]) Len() int {
	return len(l.entries)
}
