package utils

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lookbook", "lookbook"},
		{"Bridal Lehengas 2026", "bridal-lehengas-2026"},
		{"  Mohey & Rang  ", "mohey-rang"},
		{"Café Couture", "cafe-couture"},
		{"---", ""},
	}

	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
