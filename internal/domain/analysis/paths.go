package analysis

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// DefaultMaxPathDepth bounds GetAllPaths when the caller passes a non-positive depth.
const DefaultMaxPathDepth = 10

// FindShortestPath returns the fewest-hop dependency chain from fromID to toID, both
// ends included, or nil when either ID is unknown or toID is unreachable.
func FindShortestPath(graph *entities.DependencyGraph, fromID, toID string) []string {
	if !graph.HasNode(fromID) || !graph.HasNode(toID) {
		return nil
	}
	if fromID == toID {
		return []string{fromID}
	}

	parent := map[string]string{fromID: ""}
	queue := []string{fromID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dep := range graph.Dependencies(current) {
			if _, seen := parent[dep]; seen {
				continue
			}
			parent[dep] = current
			if dep == toID {
				return unwindPath(parent, fromID, toID)
			}
			queue = append(queue, dep)
		}
	}
	return nil
}

func unwindPath(parent map[string]string, fromID, toID string) []string {
	var reversed []string
	for id := toID; id != fromID; id = parent[id] {
		reversed = append(reversed, id)
	}
	reversed = append(reversed, fromID)

	path := make([]string, len(reversed))
	for i, id := range reversed {
		path[len(reversed)-1-i] = id
	}
	return path
}

// GetAllPaths enumerates dependency chains starting at fromID. A chain ends at a leaf,
// when maxDepth hops have been taken, or when every remaining dependency is already on
// the chain (cycles stop at the repeat point).
func GetAllPaths(graph *entities.DependencyGraph, fromID string, maxDepth int) [][]string {
	if !graph.HasNode(fromID) {
		return [][]string{}
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxPathDepth
	}

	walker := &pathWalker{
		graph:    graph,
		maxDepth: maxDepth,
		visited:  make(map[string]bool),
		paths:    [][]string{},
	}
	walker.walk(fromID, []string{fromID})
	return walker.paths
}

type pathWalker struct {
	graph    *entities.DependencyGraph
	maxDepth int
	visited  map[string]bool
	paths    [][]string
}

func (it *pathWalker) walk(id string, path []string) {
	if len(path)-1 >= it.maxDepth {
		it.emit(path)
		return
	}

	it.visited[id] = true
	extended := false
	for _, dep := range it.graph.Dependencies(id) {
		if it.visited[dep] {
			continue
		}
		extended = true
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		it.walk(dep, append(next, dep))
	}
	it.visited[id] = false

	if !extended {
		it.emit(path)
	}
}

func (it *pathWalker) emit(path []string) {
	it.paths = append(it.paths, path)
}
