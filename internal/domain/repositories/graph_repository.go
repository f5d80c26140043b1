package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

var (
	// ErrGraphNotFound is returned when no graph snapshot exists at the requested location.
	ErrGraphNotFound = errors.New("graph snapshot not found")
	// ErrUnsupportedFormat is returned for snapshot encodings the store cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported graph format")
)

// GraphRepository persists and restores materialized graph snapshots.
type GraphRepository interface {
	Load(ctx context.Context, location string, mode entities.AdjacencyMode) (*entities.DependencyGraph, error)
	Save(ctx context.Context, location string, graph *entities.DependencyGraph) error
}
