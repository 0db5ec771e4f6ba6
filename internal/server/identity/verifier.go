// Package identity validates third-party identity tokens presented on
// Authenticate calls and extracts the profile claims the engine needs.
package identity

import "context"

// Claims is the profile extracted from a verified identity token.
type Claims struct {
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
	Locale        string
	Provider      string
}

// Verifier checks an opaque identity token with its issuer. Verify returns
// common.ErrorInvalidArgument when the token is missing, malformed, expired
// or rejected by the issuer.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
