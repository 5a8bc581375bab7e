package models

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Centrifugal Pumps", "centrifugal-pumps"},
		{"Acme Tools & Co.", "acme-tools-co"},
		{"  Spaced   Out  ", "spaced-out"},
		{"already-dashed", "already-dashed"},
		{"UPPER", "upper"},
		{"Ltd. (India)", "ltd-india"},
		{"", ""},
		{"&&&", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Acme Tools & Co.", "Centrifugal Pumps", "a  b   c"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
