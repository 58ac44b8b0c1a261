package history

import (
	"time"
)

// Revision is a single record from a document's revision history - an opaque
// identifier and the time the revision was last modified. Records are sourced
// verbatim from the Drive API and never mutated locally.
type Revision struct {
	ID       string
	Modified time.Time
}

// Select picks the revision that best represents the document's state at the
// target instant. The first choice is the earliest revision modified at or
// after the target, i.e. the first revision to supersede the state at that
// moment. If every revision predates the target, the most recent revision at
// or before the target is used instead, scanning in reverse and stopping at
// the first qualifying record. An empty history yields no selection.
//
// Comparisons are in UTC. Revisions sharing the exact earliest-qualifying
// timestamp are won by whichever is encountered first - the comparison tracks
// strict less-than only.
func Select(revisions []Revision, target time.Time) (Revision, bool) {
	utc := target.UTC()

	best := Revision{}
	found := false

	for _, revision := range revisions {
		if !revision.Modified.Before(utc) {
			if !found || revision.Modified.Before(best.Modified) {
				best = revision
				found = true
			}
		}
	}

	if found {
		return best, true
	}

	for i := len(revisions) - 1; i >= 0; i-- {
		if !revisions[i].Modified.After(utc) {
			return revisions[i], true
		}
	}

	return Revision{}, false
}
