package analysis

import (
	"math"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

const (
	maxCriticalPaths    = 10
	criticalPathMinimum = 3 // nodes, target included
	maxImpactScore      = 100
)

type impactItem struct {
	id   string
	path []string
}

// AnalyzeImpact walks the dependents of nodeID breadth-first to find everything that
// would break if it changed. It returns nil when nodeID is not in the graph.
//
// ImpactScore is the share of the graph reached (direct plus transitive over total
// nodes, scaled to 0-100). It is a reachability fraction only: it does not weight by
// cycle severity, repository span or criticality.
func AnalyzeImpact(graph *entities.DependencyGraph, nodeID string) *entities.ImpactAnalysis {
	if !graph.HasNode(nodeID) {
		return nil
	}

	result := &entities.ImpactAnalysis{
		TargetNode:           nodeID,
		DirectImpact:         []string{},
		TransitiveImpact:     []string{},
		AffectedRepositories: []string{},
		CriticalPath:         [][]string{},
	}

	visited := map[string]bool{nodeID: true}
	affected := make(map[string]bool)
	markAffected := func(id string) {
		repo := graph.RepositoryOf(id)
		if !affected[repo] {
			affected[repo] = true
			result.AffectedRepositories = append(result.AffectedRepositories, repo)
		}
	}

	var queue []impactItem
	for _, dependent := range graph.Dependents(nodeID) {
		if visited[dependent] {
			continue
		}
		visited[dependent] = true
		result.DirectImpact = append(result.DirectImpact, dependent)
		markAffected(dependent)
		queue = append(queue, impactItem{id: dependent, path: []string{nodeID, dependent}})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if len(current.path) >= criticalPathMinimum &&
			len(result.CriticalPath) < maxCriticalPaths &&
			len(distinctRepositories(graph, current.path)) > 1 {
			result.CriticalPath = append(result.CriticalPath, current.path)
		}

		for _, dependent := range graph.Dependents(current.id) {
			if visited[dependent] {
				continue
			}
			visited[dependent] = true
			result.TransitiveImpact = append(result.TransitiveImpact, dependent)
			markAffected(dependent)

			path := make([]string, len(current.path), len(current.path)+1)
			copy(path, current.path)
			queue = append(queue, impactItem{id: dependent, path: append(path, dependent)})
		}
	}

	result.ImpactScore = impactScore(len(result.DirectImpact)+len(result.TransitiveImpact), graph.Len())
	return result
}

func impactScore(impacted, total int) int {
	if total == 0 {
		return 0
	}
	score := float64(impacted) / float64(total) * maxImpactScore
	return int(math.Round(math.Min(maxImpactScore, score)))
}
