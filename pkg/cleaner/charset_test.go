package cleaner

import "testing"

func TestBasicAllowed(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'అ', true},
		{'ఀ', true},
		{'౿', true},
		{'ಀ', false}, // Kannada
		{'7', true},
		{'a', false},
		{'Z', false},
		{' ', true},
		{'\n', true},
		{'\u00A0', true},
		{'₹', true},
		{'—', true},
		{'–', true},
		{'…', true},
		{'/', false},
		{'\u200C', true},
		{'\u200D', true},
		{'@', false},
		{'<', false},
	}

	for _, tt := range tests {
		if got := BasicAllowed(tt.r); got != tt.want {
			t.Errorf("BasicAllowed(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestStrictAllowed(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'అ', true},
		{'a', true},
		{'Z', true},
		{'/', true},
		{'\u200C', false},
		{'\u200D', false},
		{'|', false},
		{'ä', false},
	}

	for _, tt := range tests {
		if got := StrictAllowed(tt.r); got != tt.want {
			t.Errorf("StrictAllowed(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestFilterStrict(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"AP|TS", "AP TS"},
		{"డౌన్‌లోడ్", "డౌన్ లోడ్"},
		{"a★★★b", "a b"},
		{"COVID-19 10/08", "COVID-19 10/08"},
	}

	for _, tt := range tests {
		if got := FilterStrict(tt.input); got != tt.want {
			t.Errorf("FilterStrict(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestContainsTelugu(t *testing.T) {
	if !ContainsTelugu("AP లో") {
		t.Error("expected Telugu to be detected")
	}
	if ContainsTelugu("2024 AP") {
		t.Error("expected no Telugu")
	}
}

func TestCollapseSpace(t *testing.T) {
	if got := CollapseSpace("  a \t\n b  "); got != "a b" {
		t.Errorf("CollapseSpace() = %q, want %q", got, "a b")
	}
}
