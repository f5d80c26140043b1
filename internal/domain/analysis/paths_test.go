//go:build unit

package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/crossgraph/internal/domain/analysis"
	builders "github.com/rios0rios0/crossgraph/test/domain/entitybuilders"
)

func TestFindShortestPath(t *testing.T) {
	t.Parallel()

	graph := builders.NewGraphBuilder().
		WithNodes("repoA:a", "repoA:b", "repoB:c", "repoB:d", "repoC:island").
		WithChain("repoA:a", "repoA:b", "repoB:c", "repoB:d").
		WithEdge("repoA:a", "repoB:c").
		BuildGraph()

	t.Run("should prefer the chain with the fewest hops", func(t *testing.T) {
		t.Parallel()

		// when
		path := analysis.FindShortestPath(graph, "repoA:a", "repoB:d")

		// then
		assert.Equal(t, []string{"repoA:a", "repoB:c", "repoB:d"}, path)
	})

	t.Run("should return the single node when source equals target", func(t *testing.T) {
		t.Parallel()

		// when
		path := analysis.FindShortestPath(graph, "repoA:b", "repoA:b")

		// then
		assert.Equal(t, []string{"repoA:b"}, path)
	})

	t.Run("should not walk against edge direction", func(t *testing.T) {
		t.Parallel()

		// when
		path := analysis.FindShortestPath(graph, "repoB:d", "repoA:a")

		// then
		assert.Nil(t, path)
	})

	t.Run("should return nil for unreachable or unknown nodes", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, analysis.FindShortestPath(graph, "repoA:a", "repoC:island"))
		assert.Nil(t, analysis.FindShortestPath(graph, "repoZ:missing", "repoA:a"))
		assert.Nil(t, analysis.FindShortestPath(graph, "repoA:a", "repoZ:missing"))
	})
}

func TestGetAllPaths(t *testing.T) {
	t.Parallel()

	t.Run("should enumerate every chain down to the leaves", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewGraphBuilder().
			WithNodes("repoA:a", "repoA:b", "repoA:c", "repoB:d").
			WithEdge("repoA:a", "repoA:b").
			WithEdge("repoA:a", "repoA:c").
			WithEdge("repoA:b", "repoB:d").
			BuildGraph()

		// when
		paths := analysis.GetAllPaths(graph, "repoA:a", 10)

		// then
		assert.Equal(t, [][]string{
			{"repoA:a", "repoA:b", "repoB:d"},
			{"repoA:a", "repoA:c"},
		}, paths)
	})

	t.Run("should cut chains at the maximum depth", func(t *testing.T) {
		t.Parallel()

		// given
		graph := builders.NewGraphBuilder().
			WithNodes("repoA:a", "repoA:b", "repoA:c", "repoA:d").
			WithChain("repoA:a", "repoA:b", "repoA:c", "repoA:d").
			BuildGraph()

		// when
		paths := analysis.GetAllPaths(graph, "repoA:a", 2)

		// then
		assert.Equal(t, [][]string{{"repoA:a", "repoA:b", "repoA:c"}}, paths)
	})

	t.Run("should stop a chain where it would revisit a node", func(t *testing.T) {
		t.Parallel()

		// when
		paths := analysis.GetAllPaths(crossRepoTriangle(), "repoA:pkg1", 10)

		// then
		assert.Equal(t, [][]string{{"repoA:pkg1", "repoA:pkg2", "repoB:pkg1"}}, paths)
	})

	t.Run("should fall back to the default depth for non-positive limits", func(t *testing.T) {
		t.Parallel()

		// given
		ids := ringIDs("repoA", 12)
		graph := builders.NewGraphBuilder().WithNodes(ids...).WithChain(ids...).BuildGraph()

		// when
		paths := analysis.GetAllPaths(graph, ids[0], 0)

		// then
		assert.Len(t, paths, 1)
		assert.Len(t, paths[0], analysis.DefaultMaxPathDepth+1)
	})

	t.Run("should return an empty list for an unknown start", func(t *testing.T) {
		t.Parallel()

		// when
		paths := analysis.GetAllPaths(crossRepoTriangle(), "repoZ:missing", 5)

		// then
		assert.NotNil(t, paths)
		assert.Empty(t, paths)
	})
}
