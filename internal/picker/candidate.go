// Package picker presents candidate lists through an interactive fuzzy
// selector and returns the user's selection.
package picker

import "context"

// sentinelPrefix is reserved for the create-new row. Listers never emit it
// for real entities, so the sentinel cannot collide with one.
const sentinelPrefix = "[+] "

// Candidate is one selectable row.
type Candidate struct {
	// Key uniquely identifies the entity among its siblings in one
	// listing; action handlers operate on it.
	Key string
	// Display is the rendered row the user filters on.
	Display string
	// Sentinel marks the reserved create-new row.
	Sentinel bool
}

// Sentinel builds the create-new candidate, e.g. Sentinel("branch") renders
// as "[+] create new branch".
func Sentinel(entity string) Candidate {
	return SentinelLabeled("create new " + entity)
}

// SentinelLabeled builds the create-new candidate with a custom label.
func SentinelLabeled(label string) Candidate {
	return Candidate{
		Key:      sentinelPrefix + label,
		Display:  sentinelPrefix + label,
		Sentinel: true,
	}
}

// Options configures one Pick call.
type Options struct {
	// Header is shown above the list.
	Header string
	// Multi enables multi-select (tab toggles marks).
	Multi bool
	// Preview renders contextual detail for the highlighted candidate.
	// It must tolerate the sentinel and failing lookups; it is trusted
	// never to panic.
	Preview func(Candidate) string
}

// Picker presents candidates and returns the chosen ones. Cancellation is a
// normal outcome: an empty selection with a nil error.
type Picker interface {
	Pick(ctx context.Context, candidates []Candidate, opts Options) ([]Candidate, error)
}

// HasSentinel reports whether the selection contains the sentinel.
func HasSentinel(selection []Candidate) bool {
	for _, c := range selection {
		if c.Sentinel {
			return true
		}
	}
	return false
}

// Keys returns the keys of a selection in order.
func Keys(selection []Candidate) []string {
	keys := make([]string, len(selection))
	for i, c := range selection {
		keys[i] = c.Key
	}
	return keys
}
