package strict

import (
	"testing"
)

func TestRules_UIWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ఈ రోజు Click వార్తలు", "ఈ రోజు  వార్తలు"},
		{"PDF ఫైల్", " ఫైల్"},
		{"live updates తాజా", " తాజా"},
		{"LiveUpdate ఇక్కడ", " ఇక్కడ"},
		{"clicked ఒకసారి", "clicked ఒకసారి"},
		{"downloads", "downloads"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := RemoveAll(CategoryUIWords, tt.input); got != tt.want {
				t.Errorf("RemoveAll(ui_words, %q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRules_Junk(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"డౌన్ లోడ్ చేసుకోండి", true},
		{"డౌన్లోడ్ చేసుకోండి", true},
		{"డౌన్‌లోడ్ చేసుకోండి", true},
		{"ఇక్కడ చూడండి", true},
		{"ఇక్కడచూడండి", true},
		{"క్లిక్ చేయండి", true},
		{"Clicked", true},
		{"getPDF", true},
		{"DOWNLOADS", true},
		{"liveupdate", true},
		{"ప్రభుత్వం కొత్త పథకం", false},
		{"ఇక్కడ వర్షం పడింది", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchAny(CategoryJunk, tt.input); got != tt.want {
				t.Errorf("MatchAny(junk, %q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRules_NotePrefix(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"గమనిక: వివరాలు", true},
		{"గమనిక - వివరాలు", true},
		{"గమనిక, వివరాలు", true},
		{"గమనిక-వివరాలు", true},
		{"గమనికలు", false},
		{"ముఖ్య గమనిక: వివరాలు", false},
		{"గమనిక", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchAny(CategoryNotePrefix, tt.input); got != tt.want {
				t.Errorf("MatchAny(note_prefix, %q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRules_Importance(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"పరీక్ష తేదీలు", true},
		{"సూచనలు", true},
		{"ప్రకటన విడుదల", true},
		{"అధికారిక", true},
		{"హెచ్చరిక జారీ", true},
		{"జాగ్రత్త వహించండి", true},
		{"Travel ADVISORY", true},
		{"public notice", true},
		{"new Guidelines", true},
		{"సినిమా విడుదల", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchAny(CategoryImportance, tt.input); got != tt.want {
				t.Errorf("MatchAny(importance, %q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTagAddresses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "with_pincode",
			input: "50-17-64, Hyderabad 500016",
			want:  "[ADDRESS] 50-17-64, Hyderabad 500016 [/ADDRESS]",
		},
		{
			name:  "spaced_pincode",
			input: "ఇంటి నం 1-2-3 విజయవాడ 520 001 వద్ద",
			want:  "ఇంటి నం [ADDRESS] 1-2-3 విజయవాడ 520 001 [/ADDRESS] వద్ద",
		},
		{
			name:  "no_pincode",
			input: "ప్లాట్ 12/4 లో",
			want:  "ప్లాట్ [ADDRESS] 12/4 [/ADDRESS] లో",
		},
		{
			name:  "plain_number",
			input: "మొత్తం 2024 మంది",
			want:  "మొత్తం 2024 మంది",
		},
		{
			name:  "two_addresses",
			input: "1-1 మరియు 2-2",
			want:  "[ADDRESS] 1-1 [/ADDRESS] మరియు [ADDRESS] 2-2 [/ADDRESS]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TagAddresses(tt.input); got != tt.want {
				t.Errorf("TagAddresses(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsShortShape(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"7", true},
		{"2024", true},
		{"12345", false},
		{"1/8/2025", true},
		{"01-08-25", true},
		{"2025-08-01", true},
		{"2025/8/1", true},
		{"1/8/202", false},
		{"1/8", false},
		{"30 రోజులు", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsShortShape(tt.input); got != tt.want {
			t.Errorf("IsShortShape(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEnglishRatio(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 0},
		{"abcd", 1},
		{"ab12", 0.5},
		{"తెలుగు", 0},
		{"ab  ", 0.5},
	}

	for _, tt := range tests {
		if got := EnglishRatio(tt.input); got != tt.want {
			t.Errorf("EnglishRatio(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestKeepAfterPostRules(t *testing.T) {
	terms := DefaultSideStoryTerms

	tests := []struct {
		input string
		want  bool
	}{
		{"సాధారణ వార్త ఇక్కడ", true},
		{": ప్రారంభంలో కోలన్", false},
		{"మధ్యలో : కోలన్ ఉంది", true},
		{"తారల (ఫొటోలు) ఇవే", false},
		{"హీరో బర్త్ డే వేడుకలు", false},
		{"థాయిలాండ్ పర్యటన", false},
	}

	for _, tt := range tests {
		if got := KeepAfterPostRules(tt.input, terms); got != tt.want {
			t.Errorf("KeepAfterPostRules(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if !KeepAfterPostRules("థాయిలాండ్ పర్యటన", nil) {
		t.Error("side-story terms should not apply when none are configured")
	}
}
