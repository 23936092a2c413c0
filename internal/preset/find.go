package preset

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find returns the preset whose name best matches query. An exact
// case-insensitive match wins; otherwise the closest name by edit distance
// is returned if it is within max(2, len(query)/2) edits.
func Find(presets []Preset, query string) (Preset, bool) {
	q := strings.ToLower(clean(query))
	if q == "" {
		return Preset{}, false
	}

	for _, p := range presets {
		if strings.ToLower(p.Name) == q {
			return p, true
		}
	}

	threshold := max(2, len([]rune(q))/2)
	best, bestDist := -1, threshold+1
	for i, p := range presets {
		d := levenshtein.ComputeDistance(q, strings.ToLower(p.Name))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Preset{}, false
	}
	return presets[best], true
}
