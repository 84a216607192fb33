package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// capture points the logger at a buffer for the rest of the test.
func capture(t *testing.T, opts Options) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	opts.Output = buf
	Init(opts)
	t.Cleanup(func() { Init(Options{}) })
	return buf
}

func TestOptions_Level(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelInfo},
		{"debug", Options{Debug: true}, slog.LevelDebug},
		{"quiet", Options{Quiet: true}, slog.LevelError},
		{"quiet_wins_over_debug", Options{Debug: true, Quiet: true}, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Level(); got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		logged  []string
		dropped []string
	}{
		{
			name:    "default",
			opts:    Options{},
			logged:  []string{"info-msg", "warn-msg", "error-msg"},
			dropped: []string{"debug-msg"},
		},
		{
			name:   "debug",
			opts:   Options{Debug: true},
			logged: []string{"debug-msg", "info-msg"},
		},
		{
			name:    "quiet",
			opts:    Options{Quiet: true},
			logged:  []string{"error-msg"},
			dropped: []string{"debug-msg", "info-msg", "warn-msg"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.opts)
			Debug("debug-msg")
			Info("info-msg")
			Warn("warn-msg")
			Error("error-msg")

			out := buf.String()
			for _, m := range tt.logged {
				if !strings.Contains(out, m) {
					t.Errorf("output missing %q:\n%s", m, out)
				}
			}
			for _, m := range tt.dropped {
				if strings.Contains(out, m) {
					t.Errorf("output should not contain %q:\n%s", m, out)
				}
			}
		})
	}
}

func TestComponent_TagsRecords(t *testing.T) {
	buf := capture(t, Options{JSON: true})

	Component("server").Info("request", "status", 200)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["component"] != "server" {
		t.Errorf("component = %v, want server", rec["component"])
	}
	if rec["msg"] != "request" {
		t.Errorf("msg = %v, want request", rec["msg"])
	}
	if rec["status"] != float64(200) {
		t.Errorf("status = %v, want 200", rec["status"])
	}
}

func TestComponent_FollowsLaterInit(t *testing.T) {
	// Created before Init, as the server does in its constructor.
	log := Component("server").With("request_id", "abc")

	buf := capture(t, Options{Debug: true})
	log.Debug("late debug")

	out := buf.String()
	for _, want := range []string{"late debug", "component=server", "request_id=abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestComponent_GroupFollowsLaterInit(t *testing.T) {
	log := Component("crawler").WithGroup("page")

	buf := capture(t, Options{JSON: true})
	log.Info("fetched", "seq", 1)

	var rec struct {
		Component string         `json:"component"`
		Page      map[string]any `json:"page"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec.Component != "crawler" {
		t.Errorf("component = %q, want crawler", rec.Component)
	}
	if rec.Page["seq"] != float64(1) {
		t.Errorf("page.seq = %v, want 1", rec.Page["seq"])
	}
}

func TestComponent_QuietDropsInfo(t *testing.T) {
	log := Component("server")
	buf := capture(t, Options{Quiet: true})

	log.Info("request")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 3, "abc…"},
		{"telugu_runes", "తెలుగు భాష", 4, "తెలు…"},
		{"zero", "abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, tt.n); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
