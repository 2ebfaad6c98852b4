package glossary

import "strings"

const (
	// CategoryAll is the pseudo-category that disables category filtering.
	CategoryAll = "All"
	// Uncategorized marks terms whose category has not been triaged yet.
	Uncategorized = "分类进行中"

	abbreviationSentinel = "null"
)

// Term is one glossary entry as served by GET /terms.
type Term struct {
	English      string `json:"english"`
	Chinese      string `json:"chinese"`
	Abbreviation string `json:"abbreviation"`
	Category     string `json:"category"`
}

// HasAbbreviation reports whether the abbreviation should be displayed. Empty
// values and the "null" sentinel (any case) count as absent.
func (t Term) HasAbbreviation() bool {
	return t.Abbreviation != "" && !strings.EqualFold(t.Abbreviation, abbreviationSentinel)
}

// PrimaryName is the heading shown for a term: the English name, or the
// abbreviation for abbreviation-only entries.
func (t Term) PrimaryName() string {
	if t.English != "" {
		return t.English
	}
	return t.Abbreviation
}

// SortKey orders terms in the flat view.
func SortKey(t Term) string {
	return strings.ToLower(t.PrimaryName())
}

// Matches reports whether query is a case-insensitive substring of any of the
// term's text fields. The raw abbreviation, sentinel included, is searched.
func Matches(t Term, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.English), needle) ||
		strings.Contains(strings.ToLower(t.Chinese), needle) ||
		strings.Contains(strings.ToLower(t.Abbreviation), needle)
}

// CloneTerms produces a shallow copy of the provided terms.
func CloneTerms(terms []Term) []Term {
	if len(terms) == 0 {
		return nil
	}
	dup := make([]Term, len(terms))
	copy(dup, terms)
	return dup
}
