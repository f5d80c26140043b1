//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// StubGraphRepository implements repositories.GraphRepository in memory.
type StubGraphRepository struct {
	// --- Load ---
	Graph         *entities.DependencyGraph
	LoadErr       error
	LoadLocations []string
	LoadModes     []entities.AdjacencyMode

	// --- Save ---
	SaveErr       error
	SavedGraph    *entities.DependencyGraph
	SaveLocations []string
}

var _ repositories.GraphRepository = (*StubGraphRepository)(nil)

func (s *StubGraphRepository) Load(
	_ context.Context, location string, mode entities.AdjacencyMode,
) (*entities.DependencyGraph, error) {
	s.LoadLocations = append(s.LoadLocations, location)
	s.LoadModes = append(s.LoadModes, mode)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.Graph, nil
}

func (s *StubGraphRepository) Save(_ context.Context, location string, graph *entities.DependencyGraph) error {
	s.SaveLocations = append(s.SaveLocations, location)
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.SavedGraph = graph
	return nil
}
