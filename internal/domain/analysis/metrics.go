package analysis

import (
	"math"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// CalculateRepositoryMetrics aggregates adjacency counts, dependency depth and a
// simplified cyclomatic complexity for every repository, in first-seen order.
func CalculateRepositoryMetrics(graph *entities.DependencyGraph) []entities.RepositoryMetrics {
	repositories := graph.Repositories()
	metrics := make([]entities.RepositoryMetrics, len(repositories))
	index := make(map[string]int, len(repositories))
	for i, repo := range repositories {
		index[repo] = i
		metrics[i] = entities.RepositoryMetrics{
			Repository:      repo,
			PackageManagers: make(map[string]int),
		}
	}

	for _, node := range graph.Nodes() {
		m := &metrics[index[node.Repository]]
		m.NodeCount++
		m.DependencyCount += len(node.Dependencies)
		m.DependentCount += len(node.Dependents)
		if node.PackageManager != "" {
			m.PackageManagers[node.PackageManager]++
		}
		for _, dep := range node.Dependencies {
			depRepo := graph.RepositoryOf(dep)
			if graph.HasNode(dep) && depRepo != node.Repository {
				m.CrossRepoDependencies++
			}
		}
	}

	depths := newDepthCalculator(graph)
	depthSums := make([]int, len(metrics))
	for _, id := range graph.NodeIDs() {
		i := index[graph.RepositoryOf(id)]
		depth := depths.depth(id)
		depthSums[i] += depth
		if depth > metrics[i].Health.MaxDepth {
			metrics[i].Health.MaxDepth = depth
		}
	}

	intraEdges := make([]int, len(metrics))
	for _, edge := range graph.Edges() {
		if !graph.HasNode(edge.From) {
			continue
		}
		i := index[graph.RepositoryOf(edge.From)]
		switch edge.Type {
		case entities.EdgeDirect:
			metrics[i].Health.DirectDependencies++
		case entities.EdgeDev:
			metrics[i].Health.DevDependencies++
		}
		if graph.HasNode(edge.To) && graph.RepositoryOf(edge.To) == graph.RepositoryOf(edge.From) {
			intraEdges[i]++
		}
	}

	for i := range metrics {
		m := &metrics[i]
		m.Health.TotalDependencies = m.DependencyCount
		if m.NodeCount > 0 {
			m.Health.AverageDepth = float64(depthSums[i]) / float64(m.NodeCount)
		}
		m.Complexity = max(1, intraEdges[i]-m.NodeCount+2)
	}
	return metrics
}

// depthCalculator measures the longest dependency chain below a node. A node already
// on the current descent contributes zero, which caps depth on cyclic paths instead of
// recursing forever, so every node gets the value a fresh walk from it would give.
// Only nodes that sit on no cycle are memoized: their walk never runs into the
// current descent, so their depth does not depend on how they were reached.
type depthCalculator struct {
	graph  *entities.DependencyGraph
	onPath map[string]int
	memo   map[string]int
}

func newDepthCalculator(graph *entities.DependencyGraph) *depthCalculator {
	return &depthCalculator{
		graph:  graph,
		onPath: make(map[string]int),
		memo:   make(map[string]int),
	}
}

func (it *depthCalculator) depth(id string) int {
	d, _ := it.walk(id)
	return d
}

// walk returns the depth of id and the shallowest descent position it ran into
// (math.MaxInt when none).
func (it *depthCalculator) walk(id string) (int, int) {
	if d, ok := it.memo[id]; ok {
		return d, math.MaxInt
	}
	if pos, ok := it.onPath[id]; ok {
		return 0, pos
	}
	pos := len(it.onPath)
	it.onPath[id] = pos
	deepest, hit := 0, math.MaxInt
	for _, dep := range it.graph.Dependencies(id) {
		d, h := it.walk(dep)
		deepest = max(deepest, 1+d)
		hit = min(hit, h)
	}
	delete(it.onPath, id)
	if hit > pos {
		it.memo[id] = deepest
	}
	return deepest, hit
}
