package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Pattern identifies one registered validation rule.
type Pattern string

// Registered patterns. The set is fixed at process start.
const (
	NationalID         Pattern = "national-id"
	InstitutionalEmail Pattern = "institutional-email"
	GenericEmail       Pattern = "generic-email"
	PersonName         Pattern = "person-name"
	FichaCode          Pattern = "ficha-code"
	Phone              Pattern = "phone"
	Password           Pattern = "password"
	CourseCode         Pattern = "course-code"
	SafeFreeText       Pattern = "safe-free-text"
	SecureURL          Pattern = "secure-url"
	CenterCode         Pattern = "center-code"
	UUIDv4             Pattern = "uuid-v4"
)

var (
	nationalIDRegex = regexp.MustCompile(`^[0-9]{7,10}$`)
	fichaCodeRegex  = regexp.MustCompile(`^[0-9]{7}$`)
	centerCodeRegex = regexp.MustCompile(`^[0-9]{4}$`)
	phoneRegex      = regexp.MustCompile(`^(\+57)?[0-9]{10}$`)
	courseCodeRegex = regexp.MustCompile(`^[A-Z0-9-]{3,20}$`)

	// RFC 5322 atext plus dots in the local part; the domain is fixed.
	institutionalEmailRegex = regexp.MustCompile("^[A-Za-z0-9.!#$%&'*+/=?^_`{|}~-]+@sena\\.edu\\.co$")

	// Rules run on the NFD-normalized working value, so accented letters
	// arrive as an ASCII base letter plus a combining mark (U+0300-U+036F).
	personNameRegex   = regexp.MustCompile(`^[a-zA-Z\x{0300}-\x{036F} ]{2,50}$`)
	safeFreeTextRegex = regexp.MustCompile(`^[a-zA-Z0-9\x{0300}-\x{036F} .,;:¡!¿?()'"-]{0,500}$`)

	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

type rule struct {
	check   func(string) bool
	message string
}

// patternRules maps every Pattern to its matching rule and default failure
// message. Built once at init; there is no runtime mutation API.
var patternRules = map[Pattern]rule{
	NationalID:         {nationalIDRegex.MatchString, "must contain between 7 and 10 digits"},
	InstitutionalEmail: {institutionalEmailRegex.MatchString, "must use an institutional @sena.edu.co address"},
	GenericEmail:       {checkEmail, "invalid email format"},
	PersonName:         {personNameRegex.MatchString, "only letters, spaces, and accents allowed (2–50 chars)"},
	FichaCode:          {fichaCodeRegex.MatchString, "ficha code must be exactly 7 digits"},
	Phone:              {phoneRegex.MatchString, "format: +57 300 123 4567 or 300 123 4567"},
	Password:           {checkPassword, "min 8 chars: upper, lower, digit, symbol"},
	CourseCode:         {courseCodeRegex.MatchString, "invalid course code format"},
	SafeFreeText:       {safeFreeTextRegex.MatchString, "contains disallowed characters or exceeds 500 chars"},
	SecureURL:          {checkSecureURL, "only valid HTTPS URLs allowed"},
	CenterCode:         {centerCodeRegex.MatchString, "center code must be 4 digits"},
	UUIDv4:             {checkUUIDv4, "invalid UUID format"},
}

// lookup returns the rule for p. An unknown pattern is a configuration
// error, not a validation failure, so it panics rather than degrading.
func lookup(p Pattern) rule {
	r, ok := patternRules[p]
	if !ok {
		panic(fmt.Sprintf("validator: unknown pattern %q", p))
	}
	return r
}

// Known reports whether p names a registered pattern.
func Known(p Pattern) bool {
	_, ok := patternRules[p]
	return ok
}

// Patterns returns every registered pattern identifier in sorted order.
func Patterns() []Pattern {
	ids := make([]Pattern, 0, len(patternRules))
	for p := range patternRules {
		ids = append(ids, p)
	}
	slices.Sort(ids)
	return ids
}

func checkEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	// ParseAddress also accepts display-name forms; the bare address must
	// be all there was.
	if addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

func checkPassword(s string) bool {
	// Runes, not bytes: multibyte letters must count once, the same
	// measure the pipeline's length guard uses.
	if utf8.RuneCountInString(s) < 8 {
		return false
	}
	return uppercaseRegex.MatchString(s) &&
		lowercaseRegex.MatchString(s) &&
		digitRegex.MatchString(s) &&
		specialCharRegex.MatchString(s)
}

func checkSecureURL(s string) bool {
	if !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host != ""
}

func checkUUIDv4(s string) bool {
	// Fast rejection: canonical form only, so check length and hyphen
	// positions before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 4
}
