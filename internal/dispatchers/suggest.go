package dispatchers

import (
	"cmp"
	"slices"
	"strings"
)

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 3

// levenshtein calculates the case-insensitive edit distance between two strings.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows of the distance matrix
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilar returns up to maxResults candidates within a small edit
// distance of input, closest first. Exact matches are not suggestions.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	var suggestions []suggestion
	seen := make(map[string]bool)

	for _, name := range candidates {
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		if dist := levenshtein(input, name); dist > 0 && dist <= maxSuggestDistance {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	slices.SortFunc(suggestions, func(a, b suggestion) int {
		return cmp.Or(cmp.Compare(a.distance, b.distance), strings.Compare(a.name, b.name))
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
