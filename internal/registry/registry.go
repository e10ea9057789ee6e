package registry

import "sync"

// Registry is the shared, append-only list of discovered services together
// with the user's current selection. It is safe for concurrent use.
//
// Records are only ever appended: an index that was valid once stays valid
// and keeps pointing at the same record.
type Registry struct {
	mu       sync.RWMutex
	records  []ServiceRecord
	index    int
	capacity int
	dropped  int
}

// Snapshot is a consistent view of the registry at one instant.
type Snapshot struct {
	Records []ServiceRecord
	// Index is the selected position. It is 0 and meaningless when Records is empty.
	Index   int
	Dropped int
}

// New creates an empty registry. A capacity of 0 or less means unbounded;
// otherwise appends past capacity are dropped.
func New(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{capacity: capacity}
}

// Append adds a record to the end of the list. The selection is untouched.
// It returns false if the registry is full and the record was dropped.
func (r *Registry) Append(rec ServiceRecord) bool {
	rec = rec.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacity > 0 && len(r.records) >= r.capacity {
		r.dropped++
		return false
	}
	r.records = append(r.records, rec)
	return true
}

// Get returns a copy of the record at i.
func (r *Registry) Get(i int) (ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i < 0 || i >= len(r.records) {
		return ServiceRecord{}, false
	}
	return r.records[i].Clone(), true
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// IsEmpty reports whether nothing has been discovered yet.
func (r *Registry) IsEmpty() bool {
	return r.Len() == 0
}

// Selected returns the current selection index.
func (r *Registry) Selected() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index
}

// SelectedRecord returns a copy of the selected record. The index and the
// record are read under the same lock.
func (r *Registry) SelectedRecord() (ServiceRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.records) == 0 {
		return ServiceRecord{}, false
	}
	return r.records[r.index].Clone(), true
}

// MoveSelection moves the selection by delta (-1 or +1). Moves that would
// leave [0, Len()) are ignored, as are moves on an empty registry. It
// reports whether the selection changed.
func (r *Registry) MoveSelection(delta int) bool {
	switch {
	case delta < 0:
		delta = -1
	case delta > 0:
		delta = 1
	default:
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.index + delta
	if len(r.records) == 0 || next < 0 || next >= len(r.records) {
		return false
	}
	r.index = next
	return true
}

// Dropped returns how many records were refused because of the capacity.
func (r *Registry) Dropped() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}

// Snapshot returns the records and selection as seen at one instant.
//
// The returned slice shares storage with the registry. That is safe because
// existing elements are never written again and the slice is capped at its
// length, so a later append by the caller cannot clobber registry data.
// Callers must treat the records as read-only.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.records)
	return Snapshot{
		Records: r.records[:n:n],
		Index:   r.index,
		Dropped: r.dropped,
	}
}
