package theme

import "testing"

func TestFontsListedInOrder(t *testing.T) {
	got := Fonts()
	if len(got) != 5 {
		t.Fatalf("expected five fonts, got %d", len(got))
	}
	if got[0].Family != DefaultFamily {
		t.Fatalf("expected default family first, got %q", got[0].Family)
	}
	if got[2].Name != "缝合像素字体 (10px)" || got[2].Family != "FusionPixelProportionalSC10" {
		t.Fatalf("unexpected third font %#v", got[2])
	}
	got[0].Name = "mutated"
	if Fonts()[0].Name == "mutated" {
		t.Fatalf("expected Fonts to return a copy")
	}
}

func TestEveryFontHasStyles(t *testing.T) {
	for _, f := range Fonts() {
		if ForFont(f.Family) == nil {
			t.Fatalf("missing styles for %q", f.Family)
		}
		if _, ok := FontByFamily(f.Family); !ok {
			t.Fatalf("lookup failed for %q", f.Family)
		}
	}
	if ForFont("Comic Sans") != Default() {
		t.Fatalf("expected unknown family to fall back to default styles")
	}
	if _, ok := FontByFamily("Comic Sans"); ok {
		t.Fatalf("expected unknown family lookup to fail")
	}
}

func TestFontStylesDiffer(t *testing.T) {
	a := ForFont("ZhiYiSongTi").Heading.Render("x")
	b := ForFont("NanoQyongDaSongB").Heading.Render("x")
	if a == "" || b == "" {
		t.Fatalf("expected rendered headings")
	}
}
