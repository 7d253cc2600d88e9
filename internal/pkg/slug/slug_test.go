package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World!", "hello-world"},
		{"hello-world", "hello-world"},
		{"  Annual   Fundraiser 2026  ", "annual-fundraiser-2026"},
		{"Chai & Mandazi Morning", "chai-mandazi-morning"},
		{"Café Culture", "cafe-culture"},
		{"UPPER_snake_case", "upper-snake-case"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
