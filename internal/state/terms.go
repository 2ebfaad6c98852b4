package state

import "github.com/atomicstack/term-glossary/internal/glossary"

// TermStore holds the most recent term snapshot. Reads and writes copy the
// slice so callers never share backing arrays with the store.
type TermStore interface {
	Terms() []glossary.Term
	SetTerms([]glossary.Term)
	Loaded() bool
	Categories() []string
}

type termStore struct {
	terms      []glossary.Term
	categories []string
	loaded     bool
}

func NewTermStore() TermStore {
	return &termStore{categories: glossary.Categories(nil)}
}

func (s *termStore) Terms() []glossary.Term {
	return glossary.CloneTerms(s.terms)
}

func (s *termStore) SetTerms(terms []glossary.Term) {
	s.terms = glossary.CloneTerms(terms)
	s.categories = glossary.Categories(s.terms)
	s.loaded = true
}

func (s *termStore) Loaded() bool {
	return s.loaded
}

func (s *termStore) Categories() []string {
	return cloneStrings(s.categories)
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
