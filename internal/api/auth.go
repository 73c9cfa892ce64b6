// internal/api/auth.go
//
// Auth service collaborator: login, register, and profile fetch.
//

package api

import "context"

const authService = "auth"

// AuthClient talks to the auth service.  It satisfies session.Authenticator.
type AuthClient struct {
	c *Client
}

// NewAuthClient wraps the shared transport.
func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges an email and password for Credentials.  A wrong password
// surfaces as ErrRejected.
func (a *AuthClient) Login(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := a.c.postJSON(ctx, authService, "/auth-service/auth/login",
		"", credentialsRequest{Email: email, Password: password}, &creds)
	return creds, err
}

// Register creates an account and opens a session in one round trip.
func (a *AuthClient) Register(ctx context.Context, email, password string) (Credentials, error) {
	var creds Credentials
	err := a.c.postJSON(ctx, authService, "/auth-service/auth/register",
		"", credentialsRequest{Email: email, Password: password}, &creds)
	return creds, err
}

// FetchProfile resolves a stored bearer token to the identity it belongs
// to.  ErrRejected means the token is no longer valid.
func (a *AuthClient) FetchProfile(ctx context.Context, token string) (Identity, error) {
	var ident Identity
	err := a.c.getJSON(ctx, authService, "/auth-service/auth/me", token, &ident)
	return ident, err
}
