package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello, World!", "hello-world"},
		{"already clean", "already-clean", "already-clean"},
		{"surrounding noise", "  --Trim Me--  ", "trim-me"},
		{"punctuation run", "a...b___c", "a-b-c"},
		{"digits kept", "Top 10 Priorities for 2026", "top-10-priorities-for-2026"},
		{"uppercase", "UPPER CASE", "upper-case"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
		{"non-latin letters drop", "नेपाली title", "title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.title); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}
