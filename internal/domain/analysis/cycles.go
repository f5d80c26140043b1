package analysis

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// mediumCycleThreshold is the node count above which a same-repository cycle is medium.
const mediumCycleThreshold = 5

// DetectCycles runs a depth-first search over the dependency adjacency and reports
// every back edge it meets as a cycle. Traversal follows the graph's ingestion order,
// so results are deterministic for a given snapshot.
func DetectCycles(graph *entities.DependencyGraph) []entities.DependencyCycle {
	detector := &cycleDetector{
		graph:          graph,
		visited:        make(map[string]bool),
		recursionStack: make(map[string]bool),
	}
	for _, id := range graph.NodeIDs() {
		if !detector.visited[id] {
			detector.visit(id)
		}
	}
	return detector.cycles
}

type cycleDetector struct {
	graph          *entities.DependencyGraph
	visited        map[string]bool
	recursionStack map[string]bool
	currentPath    []string
	cycles         []entities.DependencyCycle
}

func (it *cycleDetector) visit(id string) {
	it.visited[id] = true
	it.recursionStack[id] = true
	it.currentPath = append(it.currentPath, id)

	for _, dep := range it.graph.Dependencies(id) {
		if !it.visited[dep] {
			it.visit(dep)
			continue
		}
		if it.recursionStack[dep] {
			it.record(dep)
		}
	}

	it.recursionStack[id] = false
	it.currentPath = it.currentPath[:len(it.currentPath)-1]
}

// record slices the current path from the first occurrence of start and closes the loop.
func (it *cycleDetector) record(start string) {
	from := -1
	for i, id := range it.currentPath {
		if id == start {
			from = i
			break
		}
	}
	if from < 0 {
		return
	}

	nodes := make([]string, 0, len(it.currentPath)-from+1)
	nodes = append(nodes, it.currentPath[from:]...)
	nodes = append(nodes, start)

	repositories := distinctRepositories(it.graph, nodes[:len(nodes)-1])
	length := len(nodes) - 1
	it.cycles = append(it.cycles, entities.DependencyCycle{
		Nodes:        nodes,
		Length:       length,
		Repositories: repositories,
		Severity:     cycleSeverity(len(repositories), length),
	})
}

// cycleSeverity treats any cross-repository cycle as high regardless of its length.
func cycleSeverity(repositoryCount, length int) entities.Severity {
	switch {
	case repositoryCount > 1:
		return entities.SeverityHigh
	case length > mediumCycleThreshold:
		return entities.SeverityMedium
	default:
		return entities.SeverityLow
	}
}

func distinctRepositories(graph *entities.DependencyGraph, ids []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, id := range ids {
		repo := graph.RepositoryOf(id)
		if repo == "" || seen[repo] {
			continue
		}
		seen[repo] = true
		result = append(result, repo)
	}
	return result
}
