package theme

import "github.com/charmbracelet/lipgloss"

// Font is a selectable display face. Terminals cannot switch typefaces, so
// each font maps onto its own style set instead.
type Font struct {
	Name   string
	Family string
}

var fonts = []Font{
	{Name: "致一宋体", Family: "ZhiYiSongTi"},
	{Name: "狮尾锯齿黑体", Family: "SweiAliasSansCJKscRegular"},
	{Name: "缝合像素字体 (10px)", Family: "FusionPixelProportionalSC10"},
	{Name: "缝合像素字体 (12px)", Family: "FusionPixelProportionalSC12"},
	{Name: "纳米全大宋B", Family: "NanoQyongDaSongB"},
}

// DefaultFamily is applied before the user picks anything.
const DefaultFamily = "ZhiYiSongTi"

var fontPalettes = map[string]palette{
	"ZhiYiSongTi": basePalette,
	"SweiAliasSansCJKscRegular": {
		accent:    lipgloss.Color("208"),
		text:      lipgloss.Color("255"),
		muted:     lipgloss.Color("246"),
		highlight: lipgloss.Color("236"),
		border:    lipgloss.NormalBorder(),
		bold:      true,
	},
	"FusionPixelProportionalSC10": {
		accent:    lipgloss.Color("42"),
		text:      lipgloss.Color("250"),
		muted:     lipgloss.Color("243"),
		highlight: lipgloss.Color("235"),
		border:    lipgloss.BlockBorder(),
	},
	"FusionPixelProportionalSC12": {
		accent:    lipgloss.Color("43"),
		text:      lipgloss.Color("252"),
		muted:     lipgloss.Color("244"),
		highlight: lipgloss.Color("236"),
		border:    lipgloss.ThickBorder(),
	},
	"NanoQyongDaSongB": {
		accent:    lipgloss.Color("167"),
		text:      lipgloss.Color("230"),
		muted:     lipgloss.Color("180"),
		highlight: lipgloss.Color("52"),
		border:    lipgloss.DoubleBorder(),
		bold:      true,
	},
}

var fontStyles = func() map[string]*Styles {
	out := make(map[string]*Styles, len(fontPalettes))
	for family, p := range fontPalettes {
		s := newStyles(p)
		out[family] = &s
	}
	return out
}()

// Fonts returns the selectable fonts in display order.
func Fonts() []Font {
	dup := make([]Font, len(fonts))
	copy(dup, fonts)
	return dup
}

// FontByFamily looks up a font by its family identifier.
func FontByFamily(family string) (Font, bool) {
	for _, f := range fonts {
		if f.Family == family {
			return f, true
		}
	}
	return Font{}, false
}

// ForFont returns the style set for family, falling back to Default for
// unknown families.
func ForFont(family string) *Styles {
	if s, ok := fontStyles[family]; ok {
		return s
	}
	return Default()
}
