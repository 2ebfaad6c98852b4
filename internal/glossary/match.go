package glossary

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatch returns the index of the row the cursor should land on after the
// query changes. Every row already passed the substring filter, so this only
// ranks: exact title, then title prefix, then any field prefix, then the
// closest fuzzy title match. Returns -1 for an empty slice.
func BestMatch(rows []Row, query string) int {
	if len(rows) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, row := range rows {
		if strings.EqualFold(row.Term.PrimaryName(), trimmed) || strings.EqualFold(row.Term.Abbreviation, trimmed) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Term.PrimaryName()), lower) {
			return i
		}
	}
	for i, row := range rows {
		if strings.HasPrefix(strings.ToLower(row.Term.Chinese), lower) ||
			strings.HasPrefix(strings.ToLower(row.Term.Abbreviation), lower) {
			return i
		}
	}
	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Title()
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(rows) {
		return 0
	}
	return best.OriginalIndex
}
