package domain

import "context"

// Identity is the externally-validated profile returned by the OAuth
// provider after a successful authorization-code exchange. Subject is the
// provider's stable opaque user id.
type Identity struct {
	Subject string
	Name    string
	Email   string
	Picture string
}

// IdentityProvider exchanges an OAuth authorization code for the signed-in
// user's identity.
type IdentityProvider interface {
	Exchange(ctx context.Context, code string) (*Identity, error)
}
