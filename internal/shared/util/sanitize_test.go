package util

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		" my/Resume.pdf ":    "my_Resume.pdf",
		"a\\b.html":          "a_b.html",
		"Jane\r\nDoe.pdf":    "JaneDoe.pdf",
		"Résumé Ünïcode.pdf": "Résumé Ünïcode.pdf",
	}
	for in, want := range cases {
		got, err := SanitizeFileName(in)
		if err != nil {
			t.Fatalf("SanitizeFileName(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
	for _, bad := range []string{"", "   ", "../x.pdf", "\x00\x01"} {
		if _, err := SanitizeFileName(bad); !errors.Is(err, ErrInvalidFileName) {
			t.Fatalf("expected %q to be rejected, got %v", bad, err)
		}
	}
}

func TestSanitizeFileNameTruncatesKeepingExtension(t *testing.T) {
	got, err := SanitizeFileName(strings.Repeat("é", 300) + ".pdf")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if n := utf8.RuneCountInString(got); n != MaxFileNameRunes {
		t.Fatalf("expected %d runes, got %d", MaxFileNameRunes, n)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Fatalf("expected extension to survive, got %q", got)
	}
}
