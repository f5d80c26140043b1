//go:build unit

package analysis_test

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	builders "github.com/rios0rios0/crossgraph/test/domain/entitybuilders"
)

// crossRepoTriangle is repoA:pkg1 -> repoA:pkg2 -> repoB:pkg1 -> repoA:pkg1.
func crossRepoTriangle() *entities.DependencyGraph {
	return builders.NewGraphBuilder().
		WithNodes("repoA:pkg1", "repoA:pkg2", "repoB:pkg1").
		WithChain("repoA:pkg1", "repoA:pkg2", "repoB:pkg1", "repoA:pkg1").
		BuildGraph()
}

func ringIDs(repo string, size int) []string {
	ids := make([]string, 0, size)
	for i := range size {
		ids = append(ids, repo+":n"+string(rune('a'+i)))
	}
	return ids
}
