package contacts

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// similarThreshold is the largest edit distance, relative to the longer
// name, at which two names count as similar.
const similarThreshold = 0.4

// Similar returns contacts whose name is close to name without being an
// exact match. Case is ignored for the comparison, so "ann" finds "Ann".
func (r *Registry) Similar(name string) []Contact {
	if name == "" {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Contact
	for _, c := range r.contacts {
		if c.Name == name {
			continue
		}
		if nameSimilarity(c.Name, name) < similarThreshold {
			out = append(out, c)
		}
	}
	return out
}

// nameSimilarity returns the normalised edit distance between a and b:
// 0 for names equal ignoring case, 1 for nothing in common.
func nameSimilarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
