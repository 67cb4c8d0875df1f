package sanskrit

import (
	"slices"
	"strings"
)

// Compare orders a and b in varṇamālā sequence. It returns a negative number
// when a sorts before b, a positive number when it sorts after, and zero when
// they are equal. Strings that are empty after trimming sort last.
//
// Comparison walks both strings rune by rune and the first differing rank
// decides the result; a string that is a prefix of the other sorts first.
func Compare(a, b string) int {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	ar := []rune(a)
	br := []rune(b)

	n := max(len(ar), len(br))
	for i := 0; i < n; i++ {
		if i >= len(ar) {
			return -1
		}
		if i >= len(br) {
			return 1
		}

		ra, rb := Rank(ar[i]), Rank(br[i])
		if ra != rb {
			return ra - rb
		}
	}

	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// SortStrings returns a sorted copy of words. Equal words keep their
// relative order.
func SortStrings(words []string) []string {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}
