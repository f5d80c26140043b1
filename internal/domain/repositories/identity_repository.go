package repositories

import "context"

// IdentityRepository resolves the owner/repo identifier of a local checkout.
type IdentityRepository interface {
	Resolve(ctx context.Context, dir string) (string, error)
}
