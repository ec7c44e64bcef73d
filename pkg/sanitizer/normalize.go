package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims leading and trailing whitespace and applies Unicode
// canonical decomposition (NFD). The result is the working value every
// validation rule sees and the sanitized value returned on success.
// Normalize is idempotent.
func Normalize(s string) string {
	return norm.NFD.String(strings.TrimSpace(s))
}
