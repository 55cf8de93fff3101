package shared

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSameArtist(t *testing.T) {
	tc := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "identical", a: "Drake", b: "Drake", want: true},
		{name: "mixed case", a: "DrAkE", b: "drake", want: true},
		{name: "surrounding whitespace", a: "  Drake ", b: "drake", want: true},
		{name: "different", a: "Drake", b: "Future", want: false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameArtist(tt.a, tt.b); got != tt.want {
				t.Errorf("SameArtist(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFormatFollowers(t *testing.T) {
	tc := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tc {
		if got := FormatFollowers(tt.in); got != tt.want {
			t.Errorf("FormatFollowers(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	if got := ParseLogLevel("DEBUG"); got != log.DebugLevel {
		t.Errorf("expected debug level, got %v", got)
	}
	if got := ParseLogLevel(""); got != log.InfoLevel {
		t.Errorf("expected info level for empty string, got %v", got)
	}
	if got := ParseLogLevel("chatty"); got != log.InfoLevel {
		t.Errorf("expected info level for unknown string, got %v", got)
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "degrees.log")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	logger.Info("hello")
}
