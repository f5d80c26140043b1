//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// SpyManifestRepository implements repositories.ManifestRepository as a configurable spy.
type SpyManifestRepository struct {
	// --- identity ---
	ManifestName string

	// --- Detect ---
	DetectResult bool
	DetectedDirs []string

	// --- Scan ---
	Manifests   map[string]entities.Manifest // dir -> manifest
	ScanErr     error
	ScannedDirs []string
}

var _ repositories.ManifestRepository = (*SpyManifestRepository)(nil)

func (s *SpyManifestRepository) Name() string { return s.ManifestName }

func (s *SpyManifestRepository) Detect(dir string) bool {
	s.DetectedDirs = append(s.DetectedDirs, dir)
	return s.DetectResult
}

func (s *SpyManifestRepository) Scan(_ context.Context, dir string) (entities.Manifest, error) {
	s.ScannedDirs = append(s.ScannedDirs, dir)
	if s.ScanErr != nil {
		return entities.Manifest{}, s.ScanErr
	}
	return s.Manifests[dir], nil
}
