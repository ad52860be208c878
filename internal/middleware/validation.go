package middleware

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxQuestionLength bounds inbound questions.
const MaxQuestionLength = 1000

// ValidateQuestion validates the question of an ask request.
func ValidateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return errors.New("question cannot be empty")
	}
	if utf8.RuneCountInString(question) > MaxQuestionLength {
		return errors.New("question exceeds maximum length")
	}
	if !utf8.ValidString(question) {
		return errors.New("question must be valid UTF-8")
	}
	return nil
}
