// Package suggest finds the closest spelling of a misspelled name.
package suggest

import "github.com/agnivade/levenshtein"

// Closest returns the candidate nearest to name by edit distance when it
// is close enough to be a plausible misspelling.  Ties go to the earlier
// candidate.
func Closest(name string, candidates []string) (string, bool) {
	var best string
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist == 0 || bestDist > max(1, len(name)/3) {
		return "", false
	}
	return best, true
}

// Hint formats the result of Closest as a parenthetical suffix for an
// error message or returns the empty string.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return " (did you mean \"" + c + "\"?)"
	}
	return ""
}
