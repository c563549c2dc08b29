package middleware

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// Input validation and sanitization utilities

const (
	maxFileNameLen = 255
	// MaxAnswers bounds the number of entries accepted in one questionnaire.
	MaxAnswers = 200
)

var answerIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateUploadName cleans a client-supplied file name down to its base
// name. Only the extension decides the deck type, so the rest is cosmetic.
func ValidateUploadName(name string) (string, error) {
	name = SanitizeString(name)
	// browsers on windows can send the full path
	name = strings.ReplaceAll(name, `\`, "/")
	name = filepath.Base(name)
	if name == "" || name == "." || name == "/" || name == ".." {
		return "", eris.New("file name cannot be empty")
	}
	if len(name) > maxFileNameLen {
		return "", eris.Errorf("file name too long (max %d chars)", maxFileNameLen)
	}
	return name, nil
}

// ValidateAnswerIDs checks questionnaire keys: alphanumeric, dash,
// underscore, max 64 chars, at most MaxAnswers entries.
func ValidateAnswerIDs(ids []string) error {
	if len(ids) > MaxAnswers {
		return eris.Errorf("too many answers: %d (max %d)", len(ids), MaxAnswers)
	}
	for _, id := range ids {
		if !answerIDPattern.MatchString(id) {
			return eris.Errorf("invalid question id %q", id)
		}
	}
	return nil
}
