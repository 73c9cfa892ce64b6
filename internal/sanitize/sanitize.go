// internal/sanitize/sanitize.go
//
// Swimspot – input sanitization and content guard.
//
// Context
//   Every string a user types flows through this package before the
//   validators in internal/validate see it.  Normalize collapses whitespace
//   for single-line fields, CheckSuspicious rejects obvious markup or script
//   injection, and StripMarkup is the submit-time belt-and-braces pass that
//   removes any HTML the pattern scan did not anticipate.
//
// Workflow
//   •  Normalize(s)        – whitespace collapse + trim.  Idempotent.
//   •  CheckSuspicious(s)  – fixed user-facing message on injection
//      signatures, empty string when clean.
//   •  StripMarkup(s)      – bluemonday StrictPolicy, applied when building
//      the submission payload, never per keystroke.
//
// Style
//   Comments follow the house guide: full sentences, two space spacing,
//   Oxford comma.
//
//------------------------------------------------------------------------------

package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// SuspiciousMsg is the single message returned for every injection pattern.
// Deliberately unspecific so the check leaks nothing about what was matched.
const SuspiciousMsg = "Suspicious content detected."

var (
	wsRun = regexp.MustCompile(`\s+`)

	// Injection signatures.  Matched case-insensitively against the raw
	// value; shape validators run first, this check overrides a pass.
	suspicious = []*regexp.Regexp{
		regexp.MustCompile(`(?i)<script`),
		regexp.MustCompile(`(?i)javascript:`),
		regexp.MustCompile(`(?i)on\w+\s*=`),
		regexp.MustCompile(`(?i)<iframe`),
		regexp.MustCompile(`(?i)data:text/html`),
	}

	// strict removes every tag and attribute.  Built once at init; the
	// policy is safe for concurrent use.
	strict = bluemonday.StrictPolicy()
)

// Normalize collapses any run of whitespace to a single space and trims the
// ends.  Applying it twice yields the same result as applying it once, so
// per-keystroke callers never fight earlier passes.
//
// Do not call it on passwords (internal whitespace is significant there and
// rejected by the validator instead) or per keystroke on multi-line fields
// (it would collapse the newline the user just typed).
func Normalize(s string) string {
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// CheckSuspicious scans s for markup and script-injection signatures.  It
// returns SuspiciousMsg on the first match, otherwise the empty string.
func CheckSuspicious(s string) string {
	for _, re := range suspicious {
		if re.MatchString(s) {
			return SuspiciousMsg
		}
	}
	return ""
}

// StripMarkup removes all HTML tags and attributes from s.  Used when the
// validated form payload is assembled; values shown back to the user keep
// their raw text so nothing silently disappears mid-edit.
func StripMarkup(s string) string {
	return strict.Sanitize(s)
}
