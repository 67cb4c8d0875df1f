package sanskrit

import "slices"

// ClassVerb is the classification tag of verb entries.
const ClassVerb = "verb"

// Entry is a dictionary entry as seen by the collation rules.
type Entry interface {
	// Class is the word classification tag (verb, substantive, indeclinable).
	Class() string
	// Headform is the primary orthographic form.
	Headform() string
	// RootForm is the grammatical root (dhātu); empty when absent.
	RootForm() string
}

// SortKey returns the string an entry is alphabetized by. Verbs with a root
// sort by their root, everything else by its primary form.
func SortKey(e Entry) string {
	if e == nil {
		return ""
	}
	if e.Class() == ClassVerb {
		if root := e.RootForm(); root != "" {
			return root
		}
	}
	return e.Headform()
}

// CompareEntries orders two entries by their sort keys.
func CompareEntries[E Entry](a, b E) int {
	return Compare(SortKey(a), SortKey(b))
}

// SortEntries returns a copy of entries sorted by SortKey in varṇamālā order.
// Entries with equal keys keep their relative order.
func SortEntries[E Entry](entries []E) []E {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, CompareEntries[E])
	return sorted
}
