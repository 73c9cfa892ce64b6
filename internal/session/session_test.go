// internal/session/session_test.go
//
// Unit-tests for the session cache and its token persistence.
//
// Context
// -------
// fakeAuth ── minimal Authenticator that lets each test script the
// collaborator's answers without any network.  The TokenStore runs against
// t.TempDir, so persistence is exercised for real.
//
// Run: go test ./internal/session -v

package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/yanizio/swimspot/internal/api"
)

// fakeAuth satisfies Authenticator with injectable results.
type fakeAuth struct {
	creds    api.Credentials
	credsErr error
	ident    api.Identity
	identErr error

	profileCalls int
}

func (f *fakeAuth) Login(context.Context, string, string) (api.Credentials, error) {
	return f.creds, f.credsErr
}

func (f *fakeAuth) Register(context.Context, string, string) (api.Credentials, error) {
	return f.creds, f.credsErr
}

func (f *fakeAuth) FetchProfile(context.Context, string) (api.Identity, error) {
	f.profileCalls++
	return f.ident, f.identErr
}

func newCache(t *testing.T, auth Authenticator) (*Cache, *TokenStore) {
	t.Helper()
	store, err := NewTokenStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewTokenStore: %v", err)
	}
	return New(auth, store, zap.NewNop().Sugar()), store
}

func TestBootstrap_NoStoredToken(t *testing.T) {
	fa := &fakeAuth{}
	c, _ := newCache(t, fa)

	if c.Status() != Unknown {
		t.Fatalf("initial status = %v, want unknown", c.Status())
	}

	c.Bootstrap(context.Background())
	if c.Status() != Anonymous {
		t.Fatalf("status = %v, want anonymous", c.Status())
	}
	if fa.profileCalls != 0 {
		t.Fatal("profile fetched without a stored token")
	}
}

func TestBootstrap_RehydratesStoredToken(t *testing.T) {
	fa := &fakeAuth{ident: api.Identity{ID: 5, Email: "user@example.com"}}
	c, store := newCache(t, fa)
	if err := store.Save("tok-5"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	c.Bootstrap(context.Background())

	ident, token, ok := c.Current()
	if !ok || token != "tok-5" || ident.Email != "user@example.com" {
		t.Fatalf("rehydration failed: ok=%v token=%q ident=%+v", ok, token, ident)
	}
	if !c.Authenticated() {
		t.Fatal("Authenticated() = false after rehydration")
	}
}

func TestBootstrap_RejectedTokenClearsStorage(t *testing.T) {
	fa := &fakeAuth{identErr: api.ErrRejected}
	c, store := newCache(t, fa)
	if err := store.Save("stale"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	c.Bootstrap(context.Background())

	if c.Status() != Anonymous {
		t.Fatalf("status = %v, want anonymous", c.Status())
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("rejected token still persisted")
	}
}

func TestBootstrap_NetworkFailureAlsoClears(t *testing.T) {
	fa := &fakeAuth{identErr: errors.New("connection refused")}
	c, store := newCache(t, fa)
	store.Save("tok")

	c.Bootstrap(context.Background())
	if c.Status() != Anonymous {
		t.Fatalf("status = %v, want anonymous", c.Status())
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("token survived an unreachable profile service")
	}
}

func TestLogin_SuccessPersistsToken(t *testing.T) {
	fa := &fakeAuth{creds: api.Credentials{
		Token: "tok-new",
		User:  api.Identity{ID: 9, Email: "new@example.com"},
	}}
	c, store := newCache(t, fa)
	c.Bootstrap(context.Background())

	if !c.Login(context.Background(), "new@example.com", "abc123") {
		t.Fatal("login reported failure")
	}
	if _, token, ok := c.Current(); !ok || token != "tok-new" {
		t.Fatalf("session not opened: ok=%v token=%q", ok, token)
	}
	if tok, ok, _ := store.Load(); !ok || tok != "tok-new" {
		t.Fatalf("token not persisted: ok=%v tok=%q", ok, tok)
	}
}

func TestLogin_FailureLeavesStateUntouched(t *testing.T) {
	fa := &fakeAuth{ident: api.Identity{ID: 5, Email: "old@example.com"}}
	c, store := newCache(t, fa)
	store.Save("tok-5")
	c.Bootstrap(context.Background()) // authenticated as old@example.com

	fa.credsErr = api.ErrRejected
	if c.Login(context.Background(), "other@example.com", "bad") {
		t.Fatal("rejected login reported success")
	}

	ident, token, ok := c.Current()
	if !ok || token != "tok-5" || ident.Email != "old@example.com" {
		t.Fatalf("prior session disturbed: ok=%v token=%q ident=%+v", ok, token, ident)
	}
}

func TestRegister_OpensSession(t *testing.T) {
	fa := &fakeAuth{creds: api.Credentials{Token: "tok-r", User: api.Identity{Email: "r@example.com"}}}
	c, _ := newCache(t, fa)
	c.Bootstrap(context.Background())

	if !c.Register(context.Background(), "r@example.com", "abc123") {
		t.Fatal("register reported failure")
	}
	if !c.Authenticated() {
		t.Fatal("register did not open a session")
	}
}

func TestLogout(t *testing.T) {
	fa := &fakeAuth{creds: api.Credentials{Token: "tok", User: api.Identity{Email: "u@example.com"}}}
	c, store := newCache(t, fa)
	c.Bootstrap(context.Background())
	c.Login(context.Background(), "u@example.com", "abc123")

	c.Logout()
	if c.Status() != Anonymous {
		t.Fatalf("status = %v, want anonymous", c.Status())
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("token survived logout")
	}

	// Logging out twice is harmless.
	c.Logout()
}

func TestTokenStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTokenStore(dir)
	if err != nil {
		t.Fatalf("NewTokenStore: %v", err)
	}
	if err := store.Save("secret"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fi, err := os.Stat(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := fi.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file mode = %o, want 600", perm)
	}

	tok, ok, err := store.Load()
	if err != nil || !ok || tok != "secret" {
		t.Fatalf("round trip failed: tok=%q ok=%v err=%v", tok, ok, err)
	}
}
