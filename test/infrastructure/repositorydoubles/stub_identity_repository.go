//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// StubIdentityRepository implements repositories.IdentityRepository from a fixed table.
type StubIdentityRepository struct {
	Identities   map[string]string // dir -> owner/repo
	ResolveErr   error
	ResolvedDirs []string
}

var _ repositories.IdentityRepository = (*StubIdentityRepository)(nil)

func (s *StubIdentityRepository) Resolve(_ context.Context, dir string) (string, error) {
	s.ResolvedDirs = append(s.ResolvedDirs, dir)
	if s.ResolveErr != nil {
		return "", s.ResolveErr
	}
	return s.Identities[dir], nil
}
