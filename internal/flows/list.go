// Package flows holds the one list/detail state machine every simple screen
// shares: forum, wishlist, complaints, rewards and news are all a
// fetch-on-mount list, a detail fetch by id, and an optional create that
// appends locally. The screens differ only in their item type and fetch
// function, so they are parameterized here instead of duplicated per domain.
package flows

import (
	"context"

	"github.com/google/uuid"     // Client tags for provisional records
	"github.com/sirupsen/logrus" // Log-only failure path
)

// PlaceholderTimestamp is shown on records appended locally before the
// server has confirmed them.
const PlaceholderTimestamp = "just now"

// Entry wraps a list item with its provenance. A provisional entry was
// appended locally after a create ack: its id and timestamp are client
// guesses, it carries a ClientTag instead, and the next successful Load
// replaces it with server state.
type Entry[T any] struct {
	Item        T
	Provisional bool
	ClientTag   string // uuid, empty on server-confirmed entries
}

// ListView is the shared list screen state. It is driven from the single UI
// goroutine; concurrent Loads race last-writer-wins as the original did.
type ListView[T any] struct {
	fetch   func(ctx context.Context) ([]T, error)
	log     logrus.FieldLogger
	entries []Entry[T]
	closed  bool
}

// NewListView builds a list view-model around a fetch function.
func NewListView[T any](fetch func(ctx context.Context) ([]T, error), log logrus.FieldLogger) *ListView[T] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ListView[T]{fetch: fetch, log: log}
}

// Load fetches the list. On success every entry, provisional ones included,
// is replaced by server state; on failure the current entries stay.
func (v *ListView[T]) Load(ctx context.Context) {
	items, err := v.fetch(ctx)
	if v.closed {
		return // Screen is gone, drop the result
	}
	if err != nil {
		v.log.WithField("error", err.Error()).Warn("List load failed")
		return
	}
	entries := make([]Entry[T], len(items))
	for i, item := range items {
		entries[i] = Entry[T]{Item: item}
	}
	v.entries = entries
}

// Entries returns a copy of the current entries.
func (v *ListView[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(v.entries))
	copy(out, v.entries)
	return out
}

// Len returns the number of entries, provisional included.
func (v *ListView[T]) Len() int {
	return len(v.entries)
}

// AppendProvisional appends a locally-created record after a successful
// create ack and returns its client tag. The record is never trusted as
// server state: the next Load drops it.
func (v *ListView[T]) AppendProvisional(item T) string {
	if v.closed {
		return ""
	}
	tag := uuid.NewString()
	v.entries = append(v.entries, Entry[T]{Item: item, Provisional: true, ClientTag: tag})
	return tag
}

// Close detaches the view-model; late completions become no-ops.
func (v *ListView[T]) Close() {
	v.closed = true
}

// DetailView is the shared detail screen state.
type DetailView[T any] struct {
	fetch  func(ctx context.Context) (*T, error)
	log    logrus.FieldLogger
	item   *T
	closed bool
}

// NewDetailView builds a detail view-model around a fetch function.
func NewDetailView[T any](fetch func(ctx context.Context) (*T, error), log logrus.FieldLogger) *DetailView[T] {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DetailView[T]{fetch: fetch, log: log}
}

// Load fetches the record; failures keep the screen empty.
func (v *DetailView[T]) Load(ctx context.Context) {
	item, err := v.fetch(ctx)
	if v.closed {
		return
	}
	if err != nil {
		v.log.WithField("error", err.Error()).Warn("Detail load failed")
		return
	}
	if item != nil {
		v.item = item
	}
}

// Item returns the loaded record, or nil while empty.
func (v *DetailView[T]) Item() *T {
	return v.item
}

// Close detaches the view-model; late completions become no-ops.
func (v *DetailView[T]) Close() {
	v.closed = true
}
