package validator

import (
	"unicode/utf8"

	"github.com/elparchetipk/sicora-app-sub000/pkg/sanitizer"
)

// Result is the outcome of a single validation. Message is set only on
// failure and is always suitable for direct display. Sanitized is set only
// on success and holds the trimmed, NFD-normalized form of the input.
type Result struct {
	Valid     bool
	Message   string
	Sanitized string
}

const (
	// maxInputRunes bounds regex cost against adversarial input,
	// independent of the requested pattern.
	maxInputRunes = 1000

	tooLongMessage   = "input too long (max 1000 characters)"
	dangerousMessage = "potentially dangerous content detected"
)

// Validate normalizes raw and checks it against the named pattern.
// Validation failure is represented entirely in the Result; the only panic
// is an unknown pattern, which is a configuration error.
func Validate(raw string, p Pattern) Result {
	return ValidateWithMessage(raw, p, "")
}

// ValidateWithMessage is Validate with a custom pattern-failure message.
// The override applies only to pattern mismatches; the length-guard and
// dangerous-content messages are fixed.
func ValidateWithMessage(raw string, p Pattern, message string) Result {
	r := lookup(p)

	working := sanitizer.Normalize(raw)

	// Ordered cheapest-first. The length guard bounds the cost of every
	// later check, and the threat scan runs before the business pattern so
	// dangerous content cannot slip through a permissive rule.
	if utf8.RuneCountInString(working) > maxInputRunes {
		return Result{Message: tooLongMessage}
	}
	if sanitizer.ContainsThreat(working) {
		return Result{Message: dangerousMessage}
	}
	if !r.check(working) {
		if message == "" {
			message = r.message
		}
		return Result{Message: message}
	}

	return Result{Valid: true, Sanitized: working}
}
