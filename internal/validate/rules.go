// internal/validate/rules.go
//
// Swimspot – field validation rules.
//
// Context
//   Every user-editable field maps to one rule chain here.  A chain is a
//   pure function from the current (already sanitized) value to a
//   user-facing message, where the empty string means valid.  Rules run in
//   a fixed short-circuit order, so the first failing rule owns the message
//   the user sees.
//
// Workflow
//   •  One exported function per field kind (Email, Password, PlaceTitle, …).
//   •  Field(kind, value, label) dispatches through the kind registry and
//      then applies the suspicious-content guard, with the shape or length
//      message taking precedence when both would fire.
//   •  Lengths count runes, not bytes.  Titles like “Озеро” are five
//      characters, and the limits mean characters to the person typing.
//   •  Required checks trim first; max-length checks use the untrimmed
//      length, the stricter of the two readings.
//
// Style
//   Comments follow the house guide: full sentences, two space spacing,
//   Oxford comma.
//
//------------------------------------------------------------------------------

package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yanizio/swimspot/internal/sanitize"
)

// -----------------------------------------------------------------------------
// Field kinds
// -----------------------------------------------------------------------------

// Kind names a rule chain in form definitions.  KindOptional accepts any
// value and exists for inputs (infrastructure checkboxes) that carry no
// shape rules but still pass through the content guard.
const (
	KindEmail         = "email"
	KindPassword      = "password"       // registration strength rules
	KindLoginPassword = "login_password" // backend is authoritative; length only
	KindTitle         = "title"
	KindLocation      = "location"
	KindDescription   = "description"
	KindTransport     = "transport"
	KindComment       = "comment"
	KindAccessZone    = "access_zone"
	KindOptional      = "optional"
)

// chains maps kind → rule chain.  The label parameter is only meaningful for
// KindLocation; the other chains ignore it.
var chains = map[string]func(value, label string) string{
	KindEmail:         func(v, _ string) string { return Email(v) },
	KindPassword:      func(v, _ string) string { return Password(v) },
	KindLoginPassword: func(v, _ string) string { return LoginPassword(v) },
	KindTitle:         func(v, _ string) string { return PlaceTitle(v) },
	KindLocation:      Location,
	KindDescription:   func(v, _ string) string { return Description(v) },
	KindTransport:     func(v, _ string) string { return Transport(v) },
	KindComment:       func(v, _ string) string { return Comment(v) },
	KindAccessZone:    func(v, _ string) string { return AccessZone(v) },
	KindOptional:      func(_, _ string) string { return "" },
}

// KnownKind reports whether kind names a registered rule chain.  The form
// definition loader uses it to fail fast on typos.
func KnownKind(kind string) bool {
	_, ok := chains[kind]
	return ok
}

// Field validates value against the rule chain for kind, then against the
// suspicious-content guard.  A shape or length failure wins over the guard;
// the guard only overrides a chain that passed.
func Field(kind, value, label string) string {
	chain, ok := chains[kind]
	if !ok {
		return fmt.Sprintf("Unknown field kind %q.", kind)
	}
	if msg := chain(value, label); msg != "" {
		return msg
	}
	return sanitize.CheckSuspicious(value)
}

// -----------------------------------------------------------------------------
// Rule chains
// -----------------------------------------------------------------------------

// Standard local@domain.tld shape; deliberately simple, the backend has the
// final word.
var emailShape = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email: required → min 5 → max 254 → local@domain.tld shape.
func Email(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Email is required."
	}
	switch n := utf8.RuneCountInString(v); {
	case n < 5:
		return "Email is too short."
	case n > 254:
		return "Email is too long."
	}
	if !emailShape.MatchString(v) {
		return "Email format is invalid."
	}
	return ""
}

// Password (registration): required → min 6 → max 128 → has letter → has
// digit → no whitespace.  Whitespace is significant, never trimmed.
func Password(v string) string {
	if v == "" {
		return "Password is required."
	}
	switch n := utf8.RuneCountInString(v); {
	case n < 6:
		return "Password must be at least 6 characters."
	case n > 128:
		return "Password is too long."
	}
	if !strings.ContainsFunc(v, unicode.IsLetter) {
		return "Password must contain letters."
	}
	if !strings.ContainsFunc(v, unicode.IsDigit) {
		return "Password must contain digits."
	}
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return "Password must not contain spaces."
	}
	return ""
}

// LoginPassword: required → max 128.  No strength or shape rules on login;
// the stored credential decides, not us.
func LoginPassword(v string) string {
	if v == "" {
		return "Password is required."
	}
	if utf8.RuneCountInString(v) > 128 {
		return "Password is too long."
	}
	return ""
}

// PlaceTitle: required → min 2 → max 100 → not all digits.
func PlaceTitle(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Place name is required."
	}
	if utf8.RuneCountInString(t) < 2 {
		return "Place name must be at least 2 characters."
	}
	if utf8.RuneCountInString(v) > 100 {
		return "Place name must not exceed 100 characters."
	}
	if allDigits(t) {
		return "Place name cannot consist of digits only."
	}
	return ""
}

// Location: required → min 2 → max 50 → not all digits.  Shared by region
// and city; the caller supplies the label the messages lead with.
func Location(v, label string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return fmt.Sprintf("%s is required.", label)
	}
	if utf8.RuneCountInString(t) < 2 {
		return fmt.Sprintf("%s must be at least 2 characters.", label)
	}
	if utf8.RuneCountInString(v) > 50 {
		return fmt.Sprintf("%s must not exceed 50 characters.", label)
	}
	if allDigits(t) {
		return fmt.Sprintf("%s cannot consist of digits only.", label)
	}
	return ""
}

// Description: optional, max 1000.
func Description(v string) string {
	if v != "" && utf8.RuneCountInString(v) > 1000 {
		return "Description must not exceed 1000 characters."
	}
	return ""
}

// Transport: optional, max 300.
func Transport(v string) string {
	if v != "" && utf8.RuneCountInString(v) > 300 {
		return "Transport description must not exceed 300 characters."
	}
	return ""
}

// Comment: required → min 3 → max 500 → not all digits.
func Comment(v string) string {
	t := strings.TrimSpace(v)
	if t == "" {
		return "Comment cannot be empty."
	}
	if utf8.RuneCountInString(t) < 3 {
		return "Comment must be at least 3 characters."
	}
	if utf8.RuneCountInString(v) > 500 {
		return "Comment must not exceed 500 characters."
	}
	if allDigits(t) {
		return "Comment cannot consist of digits only."
	}
	return ""
}

// AccessZone: required non-empty selection.
func AccessZone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Select an access zone."
	}
	return ""
}

// -----------------------------------------------------------------------------
// Password strength (UX only)
// -----------------------------------------------------------------------------

// PasswordStrength scores pw 0–4 for the registration strength meter: one
// point each for length ≥ 6, any letter, any digit, and length ≥ 8.  It
// drives a visual indicator and never gates submission.
func PasswordStrength(pw string) int {
	n := utf8.RuneCountInString(pw)
	score := 0
	if n >= 6 {
		score++
	}
	if strings.ContainsFunc(pw, unicode.IsLetter) {
		score++
	}
	if strings.ContainsFunc(pw, unicode.IsDigit) {
		score++
	}
	if n >= 8 {
		score++
	}
	return score
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
