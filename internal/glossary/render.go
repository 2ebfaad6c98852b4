package glossary

import (
	"sort"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// NoResults is the placeholder shown when nothing matches the filter.
const NoResults = "没有找到相关术语。"

// Filter is the explicit search state threaded through the UI.
type Filter struct {
	Query    string
	Category string
}

// IsAll reports whether the filter selects the flat "All" view.
func (f Filter) IsAll() bool {
	return f.Category == CategoryAll
}

// Row is one rendered term.
type Row struct {
	Term Term
	// Category is the inline category label; empty when suppressed.
	Category string
}

// Title returns the primary name with the abbreviation suffix when present.
func (r Row) Title() string {
	title := r.Term.PrimaryName()
	if r.Term.HasAbbreviation() {
		title += " (" + r.Term.Abbreviation + ")"
	}
	return title
}

// Detail returns the translated name.
func (r Row) Detail() string {
	return r.Term.Chinese
}

// Section groups rows under an optional heading. The flat view produces a
// single section without a heading.
type Section struct {
	Heading string
	Rows    []Row
}

// View is the complete projection of a filter over a term snapshot.
type View struct {
	Filter   Filter
	Sections []Section
}

// Empty reports whether the view holds no rows.
func (v View) Empty() bool {
	return v.Len() == 0
}

// Len returns the number of rows across all sections.
func (v View) Len() int {
	n := 0
	for _, section := range v.Sections {
		n += len(section.Rows)
	}
	return n
}

// Rows flattens the view into display order.
func (v View) Rows() []Row {
	rows := make([]Row, 0, v.Len())
	for _, section := range v.Sections {
		rows = append(rows, section.Rows...)
	}
	return rows
}

// Titles returns the row titles in display order.
func (v View) Titles() []string {
	rows := v.Rows()
	titles := make([]string, len(rows))
	for i, row := range rows {
		titles[i] = row.Title()
	}
	return titles
}

// Select returns the terms matching f, in store order.
func Select(terms []Term, f Filter) []Term {
	matched := make([]Term, 0, len(terms))
	for _, term := range terms {
		if !f.IsAll() && term.Category != f.Category {
			continue
		}
		if !Matches(term, f.Query) {
			continue
		}
		matched = append(matched, term)
	}
	return matched
}

// Render projects terms through f. It never mutates terms and returns a
// freshly built View on every call.
func Render(terms []Term, f Filter) View {
	matched := Select(terms, f)
	view := View{Filter: f}
	if len(matched) == 0 {
		return view
	}
	if f.IsAll() {
		view.Sections = []Section{flatSection(matched)}
		return view
	}
	view.Sections = groupedSections(matched)
	return view
}

func flatSection(terms []Term) Section {
	sorted := CloneTerms(terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return SortKey(sorted[i]) < SortKey(sorted[j])
	})
	rows := make([]Row, len(sorted))
	for i, term := range sorted {
		row := Row{Term: term}
		if term.Category != Uncategorized {
			row.Category = term.Category
		}
		rows[i] = row
	}
	return Section{Rows: rows}
}

func groupedSections(terms []Term) []Section {
	groups := linkedhashmap.New()
	for _, term := range terms {
		var rows []Row
		if existing, ok := groups.Get(term.Category); ok {
			rows = existing.([]Row)
		}
		groups.Put(term.Category, append(rows, Row{Term: term}))
	}
	sections := make([]Section, 0, groups.Size())
	it := groups.Iterator()
	for it.Next() {
		sections = append(sections, Section{
			Heading: it.Key().(string),
			Rows:    it.Value().([]Row),
		})
	}
	return sections
}
