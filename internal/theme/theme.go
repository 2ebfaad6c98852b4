package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	Loading           *lipgloss.Style
	Category          *lipgloss.Style
	ActiveCategory    *lipgloss.Style
	Heading           *lipgloss.Style
	Item              *lipgloss.Style
	ItemDetail        *lipgloss.Style
	ItemCategory      *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Placeholder       *lipgloss.Style
	Error             *lipgloss.Style
	Success           *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	Modal             *lipgloss.Style
	ModalTitle        *lipgloss.Style
	Label             *lipgloss.Style
}

// palette holds the colours a font variant overrides.
type palette struct {
	accent    lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	highlight lipgloss.Color
	border    lipgloss.Border
	bold      bool
}

var basePalette = palette{
	accent:    lipgloss.Color("33"),
	text:      lipgloss.Color("252"),
	muted:     lipgloss.Color("245"),
	highlight: lipgloss.Color("238"),
	border:    lipgloss.RoundedBorder(),
}

func newStyles(p palette) Styles {
	return Styles{
		Title: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		Loading: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Italic(true),
		),
		Category: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		),
		ActiveCategory: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(p.accent).Bold(true).Padding(0, 1),
		),
		Heading: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true).Underline(true),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(p.text).Bold(p.bold),
		),
		ItemDetail: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
		ItemCategory: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(p.highlight).Bold(true),
		),
		Placeholder: ptr(
			lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Success: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Filter: ptr(
			lipgloss.NewStyle().Foreground(p.text),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(p.accent).Blink(true),
		),
		Modal: ptr(
			lipgloss.NewStyle().Border(p.border).BorderForeground(p.accent).Padding(0, 1),
		),
		ModalTitle: ptr(
			lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(p.muted),
		),
	}
}

var defaultStyles = newStyles(basePalette)

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
