package match

import "sort"

// Candidates scoring below this similarity are never suggested.
const suggestThreshold = 0.5

// Suggest returns up to limit candidate names ranked by similarity to name,
// best first. Ties break alphabetically for deterministic output.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= suggestThreshold {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.name
	}

	return names
}
