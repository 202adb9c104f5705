// Package progress counts what the exporter has produced so far. The
// counters are written from many goroutines; the final snapshot feeds the
// end-of-run summary line.
package progress

import "sync/atomic"

// Reporter accumulates per-run counters. The zero value is ready to use.
type Reporter struct {
	subjects  atomic.Int64
	steps     atomic.Int64
	photos    atomic.Int64
	documents atomic.Int64
	bytes     atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Subjects  int64
	Steps     int64
	Photos    int64
	Documents int64
	Bytes     int64
}

// SubjectDone records one fully exported subject.
func (r *Reporter) SubjectDone() {
	r.subjects.Add(1)
}

// StepDone records one rendered step.
func (r *Reporter) StepDone() {
	r.steps.Add(1)
}

// PhotoDone records one materialized image of size bytes.
func (r *Reporter) PhotoDone(size int64) {
	r.photos.Add(1)
	r.bytes.Add(size)
}

// DocumentDone records one materialized document of size bytes.
func (r *Reporter) DocumentDone(size int64) {
	r.documents.Add(1)
	r.bytes.Add(size)
}

// Snapshot returns the current counter values. Concurrent writers may
// still be running; the snapshot is only exact after all of them joined.
func (r *Reporter) Snapshot() Snapshot {
	return Snapshot{
		Subjects:  r.subjects.Load(),
		Steps:     r.steps.Load(),
		Photos:    r.photos.Load(),
		Documents: r.documents.Load(),
		Bytes:     r.bytes.Load(),
	}
}
