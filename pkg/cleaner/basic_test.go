package cleaner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markup_whitespace_and_duplicate",
			input: "<p>నమస్తే   తెలుగు</p>\nనమస్తే   తెలుగు",
			want:  "నమస్తే తెలుగు",
		},
		{
			// ASCII letters are outside the basic set, so "world" goes.
			name:  "ascii_letters_removed",
			input: "<p>నమస్తే   world</p>\nనమస్తే   world",
			want:  "నమస్తే",
		},
		{
			name:  "crlf_lines",
			input: "మొదటి\r\nరెండవ\r\nమొదటి",
			want:  "మొదటి\nరెండవ",
		},
		{
			name:  "digits_and_punctuation_kept",
			input: "ధర ₹500 (సుమారు) – 2024…",
			want:  "ధర ₹500 (సుమారు) – 2024…",
		},
		{
			name:  "symbols_deleted_not_replaced",
			input: "తెలుగు★వార్తలు @#",
			want:  "తెలుగువార్తలు",
		},
		{
			name:  "zero_width_joiners_kept",
			input: "డౌన్‌లోడ్",
			want:  "డౌన్‌లోడ్",
		},
		{
			name:  "blank_lines_dropped",
			input: "ఒకటి\n\n\nరెండు\n   \n",
			want:  "ఒకటి\nరెండు",
		},
		{
			name:  "tag_spanning_attributes",
			input: `<a href="x" class="y">లింక్</a>`,
			want:  "లింక్",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only_english",
			input: "Hello World",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanText_NFC(t *testing.T) {
	// U+0C46 U+0C56 composes to U+0C48 (ై).
	decomposed := "\u0C15\u0C46\u0C56"
	composed := "\u0C15\u0C48"

	if got := CleanText(decomposed); got != composed {
		t.Errorf("CleanText() = %q, want NFC %q", got, composed)
	}
}

func TestCleanText_InvalidUTF8(t *testing.T) {
	input := "తెలుగు\xff\xfe"
	got := CleanText(input)
	if got != "తెలుగు" {
		t.Errorf("CleanText() = %q, want %q", got, "తెలుగు")
	}
}

func TestCleanText_NFCFailurePassesThrough(t *testing.T) {
	buf := &bytes.Buffer{}
	logger.Init(logger.Options{Output: buf})
	orig := composeNFC
	composeNFC = func(string) string { panic("table corrupt") }
	t.Cleanup(func() {
		composeNFC = orig
		logger.Init(logger.Options{})
	})

	if got := CleanText("<b>తెలుగు</b>"); got != "తెలుగు" {
		t.Errorf("CleanText() = %q, want %q", got, "తెలుగు")
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "unicode normalization failed") {
		t.Errorf("expected normalization warning, got:\n%s", out)
	}
	if !strings.Contains(out, "table corrupt") {
		t.Errorf("warning should carry the panic value:\n%s", out)
	}
}

func TestCleanText_BlankLinesDropped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single_blank", "తెలుగు\n\nభాష", "తెలుగు\nభాష"},
		{"repeated_blanks", "తెలుగు\n\n\n  \nభాష\n", "తెలుగు\nభాష"},
		{"blank_after_filter", "తెలుగు\nEnglish only\nభాష", "తెలుగు\nభాష"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"<div>హైదరాబాద్‌లో వర్షం</div>\nహైదరాబాద్‌లో వర్షం\n<b>COVID-19</b> కేసులు 42",
		"  ఒకటి  \r\n\tరెండు\t\n",
		"<<>>మూడు<<x>>",
	}

	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("not idempotent: once=%q twice=%q", once, twice)
		}
	}
}

func TestCleanText_OutputCharset(t *testing.T) {
	input := "<p>AP ప్రభుత్వం 😀 announced ₹1,000/- సాయం</p>\n© 2024 Eenadu"
	got := CleanText(input)

	for _, r := range got {
		if !BasicAllowed(r) {
			t.Errorf("output contains disallowed rune %q (U+%04X)", r, r)
		}
	}
}

func TestCleanText_UniqueLines(t *testing.T) {
	input := strings.Repeat("అదే వాక్యం\n", 10) + "వేరే వాక్యం\nఅదే వాక్యం"
	got := CleanText(input)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "అదే వాక్యం" || lines[1] != "వేరే వాక్యం" {
		t.Errorf("unexpected order: %q", lines)
	}
}

func TestCleanAny(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "<i>తెలుగు</i>", "తెలుగు"},
		{"nil", nil, ""},
		{"int", 42, ""},
		{"bytes", []byte("తెలుగు"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAny(tt.input); got != tt.want {
				t.Errorf("CleanAny() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBasicCleaner(t *testing.T) {
	c := NewBasic()
	if c.Name() != "basic" {
		t.Errorf("Name() = %q, want %q", c.Name(), "basic")
	}

	got, err := c.Clean("<p>వార్త</p>")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "వార్త" {
		t.Errorf("Clean() = %q, want %q", got, "వార్త")
	}
}
