package main

import "testing"

func TestExtForMime(t *testing.T) {
	cases := map[string]string{
		"image/png":     ".png",
		"image/jpeg":    ".jpg",
		"image/webp":    ".webp",
		"image/unknown": ".png",
		"":              ".png",
	}
	for mime, want := range cases {
		if got := extForMime(mime); got != want {
			t.Errorf("extForMime(%q) = %q, want %q", mime, got, want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Mont Saint-Michel":  "Mont-Saint-Michel",
		"京都 哲学の道":            "京都-哲学の道",
		"a/b\\c:d":           "a-b-c-d",
		"what? <here> \"x\"": "what-here-x",
		"   ":                "watercolor",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
