package script

import "strings"

// AgeFilterAll is the sentinel age filter matching every script.
const AgeFilterAll = "all"

// Filter returns the subsequence of scripts matching the free-text query and
// age-range filter, preserving order. The query matches case-insensitively
// against title or topic; an empty query matches everything. The age filter
// is an exact match unless it is AgeFilterAll. Filter is a pure function of
// its inputs.
func Filter(scripts []SavedScript, query, ageRange string) []SavedScript {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]SavedScript, 0, len(scripts))
	for _, s := range scripts {
		if q != "" &&
			!strings.Contains(strings.ToLower(s.ScriptTitle), q) &&
			!strings.Contains(strings.ToLower(s.Topic), q) {
			continue
		}
		if ageRange != AgeFilterAll && s.TargetAgeRange != ageRange {
			continue
		}
		out = append(out, s)
	}
	return out
}
