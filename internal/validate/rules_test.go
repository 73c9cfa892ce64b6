// internal/validate/rules_test.go
//
// Unit-tests for the field rule chains.
//
// Context
// -------
// Each chain is exercised with a small table: empty and whitespace-only
// input for required fields, boundary lengths, the all-digits rule, and the
// interaction between shape messages and the suspicious-content guard.
//
// Run: go test ./internal/validate -v

package validate

import (
	"strings"
	"testing"

	"github.com/yanizio/swimspot/internal/sanitize"
)

func TestRequiredFields_EmptyAndWhitespace(t *testing.T) {
	required := map[string]func(string) string{
		"email":          Email,
		"password":       Password,
		"login_password": LoginPassword,
		"title":          PlaceTitle,
		"comment":        Comment,
		"access_zone":    AccessZone,
	}
	for name, fn := range required {
		if fn("") == "" {
			t.Errorf("%s: empty input accepted", name)
		}
	}
	// Whitespace-only counts as empty for the trim-aware chains.  Passwords
	// keep whitespace significant, so they are checked separately below.
	for _, name := range []string{"email", "title", "comment", "access_zone"} {
		if required[name]("   ") == "" {
			t.Errorf("%s: whitespace-only input accepted", name)
		}
	}
	if msg := Location("   ", "Region"); msg == "" {
		t.Error("location: whitespace-only input accepted")
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"user@example.com", true},
		{"user@", false},
		{"", false},
		{"a@b", false},                                   // too short
		{strings.Repeat("a", 255) + "@example.com", false}, // over 254
		{"no-at-sign.example.com", false},
	}
	for _, c := range cases {
		got := Email(c.in)
		if (got == "") != c.valid {
			t.Errorf("Email(%q) = %q, want valid=%v", c.in, got, c.valid)
		}
	}
	if msg := Email(strings.Repeat("a", 255) + "@x.io"); msg != "Email is too long." {
		t.Errorf("oversized email: got %q, want the length message", msg)
	}
}

func TestPassword_Registration(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"abc123", true},
		{"abcdef", false},   // no digit
		{"123456", false},   // no letter
		{"abc123 ", false},  // embedded space
		{"abc 123", false},  // embedded space
		{"a1b2", false},     // too short
		{"пароль1", true},   // Cyrillic letters count as letters
		{strings.Repeat("a1", 65), false}, // 130 runes, over 128
	}
	for _, c := range cases {
		got := Password(c.in)
		if (got == "") != c.valid {
			t.Errorf("Password(%q) = %q, want valid=%v", c.in, got, c.valid)
		}
	}
}

func TestLoginPassword_LenientByDesign(t *testing.T) {
	// Login deliberately skips strength rules; only presence and max length
	// apply.  "abcdef" fails registration but passes login.
	if msg := LoginPassword("abcdef"); msg != "" {
		t.Errorf("login password rejected lenient input: %q", msg)
	}
	if msg := LoginPassword(strings.Repeat("x", 129)); msg == "" {
		t.Error("login password over 128 accepted")
	}
}

func TestPlaceTitle(t *testing.T) {
	if msg := PlaceTitle("Озеро"); msg != "" {
		t.Errorf("PlaceTitle(Озеро) = %q, want valid", msg)
	}
	if msg := PlaceTitle("12345"); msg != "Place name cannot consist of digits only." {
		t.Errorf("all-digit title: got %q, want the digits message", msg)
	}
	if msg := PlaceTitle(strings.Repeat("я", 101)); msg != "Place name must not exceed 100 characters." {
		t.Errorf("101-char title: got %q, want the length message", msg)
	}
	if msg := PlaceTitle("Я"); msg == "" {
		t.Error("one-character title accepted")
	}
}

func TestLocation_LabelInMessage(t *testing.T) {
	if msg := Location("", "Region"); !strings.HasPrefix(msg, "Region") {
		t.Errorf("label missing from message: %q", msg)
	}
	if msg := Location("777", "City"); msg != "City cannot consist of digits only." {
		t.Errorf("all-digit location: got %q", msg)
	}
	if msg := Location(strings.Repeat("a", 51), "City"); msg != "City must not exceed 50 characters." {
		t.Errorf("oversized location: got %q", msg)
	}
	if msg := Location("Moscow", "City"); msg != "" {
		t.Errorf("valid location rejected: %q", msg)
	}
}

func TestOptionalTextFields(t *testing.T) {
	if msg := Description(""); msg != "" {
		t.Errorf("empty description rejected: %q", msg)
	}
	if msg := Description(strings.Repeat("a", 1001)); msg == "" {
		t.Error("1001-char description accepted")
	}
	if msg := Transport(""); msg != "" {
		t.Errorf("empty transport rejected: %q", msg)
	}
	if msg := Transport(strings.Repeat("a", 301)); msg == "" {
		t.Error("301-char transport accepted")
	}
}

func TestComment(t *testing.T) {
	if msg := Comment("ab"); msg == "" {
		t.Error("two-character comment accepted")
	}
	if msg := Comment("123"); msg != "Comment cannot consist of digits only." {
		t.Errorf("all-digit comment: got %q", msg)
	}
	if msg := Comment(strings.Repeat("a", 501)); msg != "Comment must not exceed 500 characters." {
		t.Errorf("oversized comment: got %q", msg)
	}
	if msg := Comment("great spot"); msg != "" {
		t.Errorf("valid comment rejected: %q", msg)
	}
}

func TestMaxLength_WinsOverOtherwiseValidContent(t *testing.T) {
	// Untrimmed length is what the max check sees: 99 letters padded with
	// spaces past 100 must fail even though the trimmed content is fine.
	padded := strings.Repeat("a", 99) + strings.Repeat(" ", 5)
	if msg := PlaceTitle(padded); msg != "Place name must not exceed 100 characters." {
		t.Errorf("padded title: got %q, want the length message", msg)
	}
}

func TestField_SuspiciousComposition(t *testing.T) {
	// Shape passes, guard fires.
	if msg := Field(KindTitle, "Nice <script> lake", ""); msg != sanitize.SuspiciousMsg {
		t.Errorf("suspicious title: got %q", msg)
	}
	// Shape fails first; its message takes precedence over the guard.
	long := strings.Repeat("a", 100) + "<script>"
	if msg := Field(KindTitle, long, ""); msg != "Place name must not exceed 100 characters." {
		t.Errorf("length message should take precedence over the guard, got %q", msg)
	}
	// Optional kind still passes through the guard.
	if msg := Field(KindOptional, "<iframe>", ""); msg != sanitize.SuspiciousMsg {
		t.Errorf("optional kind skipped the guard: %q", msg)
	}
	if msg := Field(KindLocation, "", "Region"); !strings.HasPrefix(msg, "Region") {
		t.Errorf("label not threaded through Field: %q", msg)
	}
	if msg := Field("no_such_kind", "x", ""); msg == "" {
		t.Error("unknown kind accepted")
	}
}

func TestPasswordStrength(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 1},        // letters only
		{"abc123", 3},     // len ≥ 6, letters, digits
		{"abcd1234", 4},   // adds len ≥ 8
		{"12345678", 3},   // no letters
		{"abcdefgh", 3},   // no digits
	}
	for _, c := range cases {
		if got := PasswordStrength(c.in); got != c.want {
			t.Errorf("PasswordStrength(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
