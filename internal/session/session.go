// internal/session/session.go
//
// Swimspot – process-wide session cache.
//
// Context
//   The cache holds the one authenticated identity the process knows about,
//   together with its bearer credential.  It starts Unknown, attempts to
//   rehydrate from the persisted token exactly once (Bootstrap), and then
//   settles into Anonymous or Authenticated.  Identity and credential are
//   set and cleared strictly together: there is never an identity without a
//   credential the backend accepted.
//
//   The cache is constructed once in cmd/web and handed to every consumer
//   explicitly.  Nothing reads ambient globals; consumers re-read the cache
//   on each use, so nobody holds a stale copy.
//
// Workflow
//   •  Bootstrap  – stored token → profile fetch; ANY failure clears the
//      stored token and settles Anonymous.  The only suspending startup step.
//   •  Login / Register – delegate to the auth collaborator; failure leaves
//      prior state untouched and reports false, never panics.
//   •  Logout     – synchronous clear, always succeeds.
//   •  Current / Status / Authenticated – snapshot reads.
//
// Style
//   Two-space sentence spacing, Oxford comma, terse inline notes.
//
//------------------------------------------------------------------------------

package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/yanizio/swimspot/internal/api"
	"github.com/yanizio/swimspot/internal/metrics"
)

// Status is the cache's lifecycle position.  Consumers must treat Unknown
// as “still loading”, not as anonymous.
type Status int

const (
	Unknown Status = iota
	Anonymous
	Authenticated
)

func (s Status) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "invalid"
	}
}

// Authenticator is the slice of the auth collaborator the cache needs.
// *api.AuthClient satisfies it; tests substitute fakes.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (api.Credentials, error)
	Register(ctx context.Context, email, password string) (api.Credentials, error)
	FetchProfile(ctx context.Context, token string) (api.Identity, error)
}

// Cache is the single process-wide session holder.
type Cache struct {
	auth  Authenticator
	store *TokenStore
	log   *zap.SugaredLogger

	// Guarded state.  The web server serves requests concurrently even
	// though each user interaction is sequential, so reads take the lock.
	mu     sync.RWMutex
	status Status
	ident  api.Identity
	token  string
}

// New wires a Cache to its collaborator, its persistence, and a logger.
// The cache starts Unknown; call Bootstrap before serving.
func New(auth Authenticator, store *TokenStore, log *zap.SugaredLogger) *Cache {
	return &Cache{auth: auth, store: store, log: log, status: Unknown}
}

// Bootstrap rehydrates the session from the persisted credential.  It runs
// once at process start: a stored token is presented to the profile
// collaborator, and any failure, rejection or transport, clears the token
// and settles the cache to Anonymous.
func (c *Cache) Bootstrap(ctx context.Context) {
	token, ok, err := c.store.Load()
	if err != nil {
		c.log.Warnw("token load failed", "error", err)
	}
	if !ok {
		metrics.SessionBootstraps.WithLabelValues("no_token").Inc()
		c.settle(Anonymous, api.Identity{}, "")
		return
	}

	ident, err := c.auth.FetchProfile(ctx, token)
	if err != nil {
		c.log.Infow("stored credential rejected, clearing", "error", err)
		if cerr := c.store.Clear(); cerr != nil {
			c.log.Warnw("token clear failed", "error", cerr)
		}
		metrics.SessionBootstraps.WithLabelValues("rejected").Inc()
		c.settle(Anonymous, api.Identity{}, "")
		return
	}

	metrics.SessionBootstraps.WithLabelValues("rehydrated").Inc()
	c.settle(Authenticated, ident, token)
	c.log.Infow("session rehydrated", "user", ident.Email)
}

// Login exchanges credentials for a session.  On success the token is
// persisted and the cache becomes Authenticated; on any failure the prior
// state is left untouched and false is returned.
func (c *Cache) Login(ctx context.Context, email, password string) bool {
	return c.acquire(ctx, email, password, c.auth.Login, "login")
}

// Register creates an account and, like Login, opens a session on success.
func (c *Cache) Register(ctx context.Context, email, password string) bool {
	return c.acquire(ctx, email, password, c.auth.Register, "register")
}

// Logout clears identity and credential, erases the persisted token, and
// settles to Anonymous.  Synchronous; always succeeds.
func (c *Cache) Logout() {
	if err := c.store.Clear(); err != nil {
		c.log.Warnw("token clear failed", "error", err)
	}
	c.settle(Anonymous, api.Identity{}, "")
}

// Current returns a snapshot of the identity and credential.  ok is false
// unless the cache is Authenticated.
func (c *Cache) Current() (ident api.Identity, token string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ident, c.token, c.status == Authenticated
}

// Status returns the tri-state lifecycle position.
func (c *Cache) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Authenticated satisfies form.Authorizer.
func (c *Cache) Authenticated() bool { return c.Status() == Authenticated }

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

type acquireFn func(ctx context.Context, email, password string) (api.Credentials, error)

func (c *Cache) acquire(ctx context.Context, email, password string, fn acquireFn, op string) bool {
	creds, err := fn(ctx, email, password)
	if err != nil {
		// Rejection and unreachability read the same to the caller; the
		// distinction only matters in the log.
		c.log.Infow(op+" failed", "email", email, "error", err)
		return false
	}

	if err := c.store.Save(creds.Token); err != nil {
		c.log.Warnw("token persist failed", "error", err)
		// The session is still valid for this process lifetime.
	}
	c.settle(Authenticated, creds.User, creds.Token)
	c.log.Infow(op+" succeeded", "user", creds.User.Email)
	return true
}

func (c *Cache) settle(st Status, ident api.Identity, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = st
	c.ident = ident
	c.token = token
}
