//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// StubCyclesCommand is a stub implementation of commands.Cycles.
type StubCyclesCommand struct {
	Cycles     []entities.DependencyCycle
	ExecuteErr error
	LastOpts   commands.GraphOptions
}

var _ commands.Cycles = (*StubCyclesCommand)(nil)

func (s *StubCyclesCommand) Execute(
	_ context.Context, opts commands.GraphOptions,
) ([]entities.DependencyCycle, error) {
	s.LastOpts = opts
	return s.Cycles, s.ExecuteErr
}

// StubImpactCommand is a stub implementation of commands.Impact.
type StubImpactCommand struct {
	Result           *entities.ImpactAnalysis
	ExecuteErr       error
	ExecuteCallCount int
	LastOpts         commands.ImpactOptions
}

var _ commands.Impact = (*StubImpactCommand)(nil)

func (s *StubImpactCommand) Execute(
	_ context.Context, opts commands.ImpactOptions,
) (*entities.ImpactAnalysis, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}

// StubPathCommand is a stub implementation of commands.Path.
type StubPathCommand struct {
	// --- Shortest ---
	ShortestPath []string
	ShortestErr  error

	// --- All ---
	AllPaths [][]string
	AllErr   error

	LastOpts commands.PathOptions
}

var _ commands.Path = (*StubPathCommand)(nil)

func (s *StubPathCommand) Shortest(_ context.Context, opts commands.PathOptions) ([]string, error) {
	s.LastOpts = opts
	return s.ShortestPath, s.ShortestErr
}

func (s *StubPathCommand) All(_ context.Context, opts commands.PathOptions) ([][]string, error) {
	s.LastOpts = opts
	return s.AllPaths, s.AllErr
}

// StubSummaryCommand is a stub implementation of commands.Summary.
type StubSummaryCommand struct {
	// --- Execute ---
	Summary    entities.GraphSummary
	ExecuteErr error
	LastOpts   commands.SummaryOptions

	// --- Visualize ---
	Visualization entities.VisualizationData
	VisualizeErr  error
}

var _ commands.Summary = (*StubSummaryCommand)(nil)

func (s *StubSummaryCommand) Execute(
	_ context.Context, opts commands.SummaryOptions,
) (entities.GraphSummary, error) {
	s.LastOpts = opts
	return s.Summary, s.ExecuteErr
}

func (s *StubSummaryCommand) Visualize(
	_ context.Context, _ commands.GraphOptions,
) (entities.VisualizationData, error) {
	return s.Visualization, s.VisualizeErr
}
