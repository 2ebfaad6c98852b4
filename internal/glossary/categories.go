package glossary

import "github.com/emirpasic/gods/sets/linkedhashset"

// preferredOrder lists the domain categories in the order the category bar
// shows them. Uncategorized always follows these; anything unlisted comes last.
var preferredOrder = []string{
	"音频硬件 设备",
	"音频信号 参数",
	"音频效果 处理",
	"其他 通用术语",
}

// PreferredOrder returns a copy of the fixed domain category ordering.
func PreferredOrder() []string {
	return append([]string(nil), preferredOrder...)
}

// Categories derives the category bar entries from a term snapshot. CategoryAll
// is always first, listed categories follow when present, and remaining
// categories keep their first-seen order.
func Categories(terms []Term) []string {
	seen := linkedhashset.New()
	for _, term := range terms {
		seen.Add(term.Category)
	}

	ordered := make([]string, 0, seen.Size()+1)
	ordered = append(ordered, CategoryAll)
	placed := linkedhashset.New(CategoryAll)
	for _, cat := range append(PreferredOrder(), Uncategorized) {
		if seen.Contains(cat) {
			ordered = append(ordered, cat)
			placed.Add(cat)
		}
	}
	for _, value := range seen.Values() {
		cat := value.(string)
		if placed.Contains(cat) {
			continue
		}
		ordered = append(ordered, cat)
		placed.Add(cat)
	}
	return ordered
}

// IndexOfCategory returns the position of category within categories, or -1.
func IndexOfCategory(categories []string, category string) int {
	for i, cat := range categories {
		if cat == category {
			return i
		}
	}
	return -1
}
