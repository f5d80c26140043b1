//go:build unit

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	builders "github.com/rios0rios0/crossgraph/test/domain/entitybuilders"
)

func TestAnalyzeImpact(t *testing.T) {
	t.Parallel()

	t.Run("should follow dependents around a cross-repository cycle", func(t *testing.T) {
		t.Parallel()

		// given
		graph := crossRepoTriangle()

		// when
		result := analysis.AnalyzeImpact(graph, "repoA:pkg1")

		// then
		require.NotNil(t, result)
		assert.Equal(t, []string{"repoB:pkg1"}, result.DirectImpact)
		assert.Equal(t, []string{"repoA:pkg2"}, result.TransitiveImpact)
		assert.Equal(t, []string{"repoB", "repoA"}, result.AffectedRepositories)
		assert.Equal(t, 67, result.ImpactScore)
		assert.Equal(t, [][]string{{"repoA:pkg1", "repoB:pkg1", "repoA:pkg2"}}, result.CriticalPath)
	})

	t.Run("should return nil for an unknown node", func(t *testing.T) {
		t.Parallel()

		// given
		graph := crossRepoTriangle()

		// when
		result := analysis.AnalyzeImpact(graph, "repoZ:missing")

		// then
		assert.Nil(t, result)
	})

	t.Run("should report zero impact for a node nobody depends on", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewGraphBuilder().
			WithNodes("repoA:app", "repoA:lib").
			WithEdge("repoA:app", "repoA:lib").
			BuildGraph()

		// when
		result := analysis.AnalyzeImpact(graph, "repoA:app")

		// then
		require.NotNil(t, result)
		assert.Equal(t, 0, result.ImpactScore)
		assert.NotNil(t, result.DirectImpact)
		assert.Empty(t, result.DirectImpact)
		assert.Empty(t, result.TransitiveImpact)
		assert.Empty(t, result.AffectedRepositories)
		assert.Empty(t, result.CriticalPath)
	})

	t.Run("should skip same-repository chains when collecting critical paths", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewGraphBuilder().
			WithNodes("repoA:a", "repoA:b", "repoA:c", "repoA:d").
			WithChain("repoA:a", "repoA:b", "repoA:c", "repoA:d").
			BuildGraph()

		// when
		result := analysis.AnalyzeImpact(graph, "repoA:d")

		// then
		require.NotNil(t, result)
		assert.Equal(t, []string{"repoA:c"}, result.DirectImpact)
		assert.Equal(t, []string{"repoA:b", "repoA:a"}, result.TransitiveImpact)
		assert.Equal(t, 75, result.ImpactScore)
		assert.Empty(t, result.CriticalPath)
	})

	t.Run("should only impact nodes that reach the target through dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewGraphBuilder().
			WithNodes("repoA:app", "repoB:svc", "repoC:lib", "repoC:util", "repoD:other").
			WithChain("repoA:app", "repoB:svc", "repoC:lib", "repoC:util").
			WithEdge("repoD:other", "repoC:util").
			WithEdge("repoA:app", "repoD:other").
			BuildGraph()

		for _, target := range graph.NodeIDs() {
			// when
			result := analysis.AnalyzeImpact(graph, target)

			// then
			require.NotNil(t, result)
			assert.GreaterOrEqual(t, result.ImpactScore, 0)
			assert.LessOrEqual(t, result.ImpactScore, 100)
			assert.NotContains(t, result.DirectImpact, target)
			assert.NotContains(t, result.TransitiveImpact, target)
			for _, impacted := range append(result.DirectImpact, result.TransitiveImpact...) {
				assert.NotNil(t, analysis.FindShortestPath(graph, impacted, target),
					"%s is impacted by %s but does not depend on it", impacted, target)
			}
		}
	})
}

func TestAnalyzeImpactCriticalPathCap(t *testing.T) {
	t.Parallel()

	t.Run("should keep at most ten critical paths", func(t *testing.T) {
		t.Parallel()

		// given
		builder := builders.NewGraphBuilder().WithNodes("core:lib", "hub:mid")
		builder.WithEdge("hub:mid", "core:lib")
		for _, id := range ringIDs("leaf", 12) {
			builder.WithNodes(id).WithEdge(id, "hub:mid")
		}
		graph := builder.BuildGraph()

		// when
		result := analysis.AnalyzeImpact(graph, "core:lib")

		// then
		require.NotNil(t, result)
		assert.Len(t, result.TransitiveImpact, 12)
		assert.Len(t, result.CriticalPath, 10)
		assert.Equal(t, []string{"core:lib", "hub:mid", "leaf:na"}, result.CriticalPath[0])
		assert.Equal(t, []string{"hub", "leaf"}, result.AffectedRepositories)
	})
}
