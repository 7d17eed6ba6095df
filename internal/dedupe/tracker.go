// Package dedupe flags logical paths that would collide in a NEPAK index
// before the builder ever sorts and writes them.
package dedupe

import "github.com/nepak/nepak/internal/digest"

// Tracker buckets logical paths by a fast xxHash64 fingerprint
// (internal/digest.PathKey) and falls back to an exact string compare on a
// bucket hit, so a fingerprint collision between two distinct paths never
// produces a false "duplicate" report.
type Tracker struct {
	seen map[uint64][]string
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64][]string)}
}

// Track records path and reports whether it has already been seen by this
// tracker. The scan order determines which occurrence is "first"; both are
// otherwise equivalent.
func (t *Tracker) Track(path string) (duplicate bool) {
	key := digest.PathKey(path)
	for _, p := range t.seen[key] {
		if p == path {
			return true
		}
	}
	t.seen[key] = append(t.seen[key], path)
	return false
}

// Count returns the number of distinct paths tracked so far.
func (t *Tracker) Count() int {
	n := 0
	for _, bucket := range t.seen {
		n += len(bucket)
	}
	return n
}
