package store

import "sync"

// WorkingSet is the in-memory snapshot of one dataset plus its file
// history. The remote store is the system of record; the set is rebuilt
// wholesale on load and mutated only through the three entry points below,
// so concurrent load/upload interleavings resolve to whichever operation
// commits last rather than to torn intermediate state.
type WorkingSet[T Batched] struct {
	mu      sync.RWMutex
	rows    []T
	history []FileHistoryEntry
}

// NewWorkingSet returns an empty set.
func NewWorkingSet[T Batched]() *WorkingSet[T] {
	return &WorkingSet[T]{}
}

// ReplaceAll swaps in a freshly loaded snapshot.
func (w *WorkingSet[T]) ReplaceAll(rows []T, history []FileHistoryEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = rows
	w.history = history
}

// Append adds newly uploaded rows and their history entry without
// re-fetching from the store (optimistic local update).
func (w *WorkingSet[T]) Append(rows []T, entry FileHistoryEntry) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = append(w.rows, rows...)
	w.history = append(w.history, entry)
}

// RemoveUpload drops every row and the history entry sharing the batch
// identifier.
func (w *WorkingSet[T]) RemoveUpload(uploadID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.rows[:0]
	for _, row := range w.rows {
		id, _ := row.Upload()
		if id == "" {
			id = LegacyUploadID
		}
		if id != uploadID {
			kept = append(kept, row)
		}
	}
	w.rows = kept

	keptHist := w.history[:0]
	for _, h := range w.history {
		if h.ID != uploadID {
			keptHist = append(keptHist, h)
		}
	}
	w.history = keptHist
}

// Snapshot returns a copy of the current rows.
func (w *WorkingSet[T]) Snapshot() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]T, len(w.rows))
	copy(out, w.rows)
	return out
}

// History returns a copy of the current file history.
func (w *WorkingSet[T]) History() []FileHistoryEntry {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]FileHistoryEntry, len(w.history))
	copy(out, w.history)
	return out
}

// Len reports the current row count.
func (w *WorkingSet[T]) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.rows)
}
