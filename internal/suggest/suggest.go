// Package suggest implements the "Did you mean" ranking spec.md §4.6
// requires of KnownTypeNames and FieldsOnCorrectType: a Damerau-Levenshtein
// distance plus a ranked, capped suggestion list. Grounded on the teacher's
// internal/diff package precedent of factoring a narrow, self-contained
// algorithm into its own internal package instead of inlining it at every
// call site (internal/diff/diff.go, internal/diff/reporter.go); the
// distance/threshold behavior itself is grounded in spec.md §4.6 directly,
// since no pack repo implements fuzzy name suggestion.
package suggest

import (
	"sort"
	"strings"
)

// MaxSuggestions caps every ranked suggestion list this package returns,
// per spec.md §4.6's "capped at 5" rule shared by KnownTypeNames and
// FieldsOnCorrectType.
const MaxSuggestions = 5

// Distance computes the Damerau-Levenshtein edit distance between a and b:
// the minimum number of insertions, deletions, substitutions, and adjacent
// transpositions needed to turn a into b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
	}
	for i := 0; i <= la; i++ {
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := min3(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + cost; t < best {
					best = t
				}
			}
			d[i][j] = best
		}
	}
	return d[la][lb]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Suggestions ranks options by their edit distance to input, discarding
// anything beyond a length-proportional threshold (roughly allowing half of
// input's characters to differ), breaking ties alphabetically, and capping
// the result at MaxSuggestions.
func Suggestions(input string, options []string) []string {
	threshold := len([]rune(input))/2 + 1

	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, opt := range options {
		if opt == input {
			continue
		}
		if dist := Distance(input, opt); dist <= threshold {
			candidates = append(candidates, scored{opt, dist})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// QuotedOrList renders items the way spec.md's diagnostics phrase a
// suggestion list: `"X"`, `"X" or "Y"`, `"X", "Y", or "Z"`.
func QuotedOrList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return orList(quoted)
}

func orList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}
