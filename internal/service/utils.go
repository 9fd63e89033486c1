package service

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxTextLength matches the VARCHAR(63) columns of the recommendations table.
const maxTextLength = 63

// sanitizeText drops invalid UTF-8 sequences, which PostgreSQL rejects, and
// enforces the column length.
func sanitizeText(field, s string) (string, error) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	if utf8.RuneCountInString(s) > maxTextLength {
		return "", fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidRecommendation, field, maxTextLength)
	}
	return s, nil
}
