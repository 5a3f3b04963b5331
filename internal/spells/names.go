package spells

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type suggestion struct {
	name  string
	score float64
}

// Suggest returns up to limit registered names close to query, best first.
// Exact matches score 1, prefixes 0.9, and small edit distances less.
func (b *Book) Suggest(query string, limit int) []string {
	query = normaliseName(query)
	if query == "" || limit <= 0 {
		return nil
	}
	results := make([]suggestion, 0, 8)
	for name := range b.names {
		cand := normaliseName(name)
		var score float64
		switch {
		case cand == query:
			score = 1.0
		case strings.HasPrefix(cand, query) && len(query) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(query, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, suggestion{name: name, score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].name < results[j].name
		}
		return results[i].score > results[j].score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, 0, len(results))
	for _, s := range results {
		out = append(out, s.name)
	}
	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normaliseName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	return name
}

// DisplayName turns a catalog name like "magic_sight" into "Magic Sight".
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
