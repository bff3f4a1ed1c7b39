package util

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFileNameRunes caps names used for storage keys and downloads.
const MaxFileNameRunes = 128

var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName flattens path separators, drops control characters and
// rejects traversal. Overlong names keep their extension.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidFileName
	}
	return truncateName(s, MaxFileNameRunes), nil
}

func truncateName(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	ext := ""
	if i := strings.LastIndexByte(s, '.'); i > 0 && utf8.RuneCountInString(s[i:]) <= 10 {
		ext = s[i:]
	}
	base := []rune(strings.TrimSuffix(s, ext))
	return string(base[:limit-utf8.RuneCountInString(ext)]) + ext
}
