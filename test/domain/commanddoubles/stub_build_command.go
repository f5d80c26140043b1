//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// StubBuildCommand is a stub implementation of commands.Build.
type StubBuildCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Graph            *entities.DependencyGraph
	LastSettings     *entities.Settings
	LastOpts         commands.BuildOptions
}

var _ commands.Build = (*StubBuildCommand)(nil)

func (s *StubBuildCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.BuildOptions,
) (*entities.DependencyGraph, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Graph, s.ExecuteErr
}
