package glossary

import (
	"strings"

	"github.com/atomicstack/term-glossary/internal/format/table"
)

// LineKind classifies a line of a laid-out view.
type LineKind int

const (
	LinePlaceholder LineKind = iota
	LineHeading
	LineRow
)

// Line is one display line of a View. Row is the flat row index for LineRow
// entries and -1 otherwise.
type Line struct {
	Kind LineKind
	Text string
	Row  int
}

// Lines lays the view out as plain text: a single placeholder line when empty,
// otherwise an optional heading per section followed by its rows, with title,
// translation and inline category aligned in columns.
func (v View) Lines() []Line {
	if v.Empty() {
		return []Line{{Kind: LinePlaceholder, Text: NoResults, Row: -1}}
	}
	lines := make([]Line, 0, v.Len()+len(v.Sections))
	idx := 0
	for _, section := range v.Sections {
		if section.Heading != "" {
			lines = append(lines, Line{Kind: LineHeading, Text: section.Heading, Row: -1})
		}
		cells := make([][]string, len(section.Rows))
		for i, row := range section.Rows {
			category := ""
			if row.Category != "" {
				category = "(" + row.Category + ")"
			}
			cells[i] = []string{row.Title(), row.Detail(), category}
		}
		for _, text := range table.Format(cells, nil) {
			lines = append(lines, Line{Kind: LineRow, Text: text, Row: idx})
			idx++
		}
	}
	return lines
}

// Text joins Lines into a newline-separated string.
func (v View) Text() string {
	lines := v.Lines()
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}
