//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// GraphBuilder assembles a consistent DependencyGraph from node IDs and edges.
// Node IDs follow "<repository>:<name>"; the repository and name are derived from it.
// Adjacency lists are filled from the edges, so the result passes strict ingestion.
type GraphBuilder struct {
	*testkit.BaseBuilder
	nodes    []entities.DependencyNode
	edges    []entities.DependencyEdge
	versions map[string]string
	managers map[string]string
}

// NewGraphBuilder creates an empty graph builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		versions:    make(map[string]string),
		managers:    make(map[string]string),
	}
}

// WithNodes adds nodes by ID.
func (b *GraphBuilder) WithNodes(ids ...string) *GraphBuilder {
	for _, id := range ids {
		repository, name := splitID(id)
		b.nodes = append(b.nodes, entities.DependencyNode{
			ID:             id,
			Name:           name,
			Version:        "1.0.0",
			Repository:     repository,
			PackageManager: "npm",
		})
	}
	return b
}

// WithVersion overrides the version of a node added with WithNodes.
func (b *GraphBuilder) WithVersion(id, version string) *GraphBuilder {
	b.versions[id] = version
	return b
}

// WithPackageManager overrides the package manager of a node added with WithNodes.
func (b *GraphBuilder) WithPackageManager(id, manager string) *GraphBuilder {
	b.managers[id] = manager
	return b
}

// WithEdge adds a direct edge.
func (b *GraphBuilder) WithEdge(from, to string) *GraphBuilder {
	return b.WithTypedEdge(from, to, entities.EdgeDirect)
}

// WithTypedEdge adds an edge of the given type.
func (b *GraphBuilder) WithTypedEdge(from, to string, edgeType entities.EdgeType) *GraphBuilder {
	b.edges = append(b.edges, entities.DependencyEdge{From: from, To: to, Type: edgeType})
	return b
}

// WithChain adds direct edges between consecutive IDs.
func (b *GraphBuilder) WithChain(ids ...string) *GraphBuilder {
	for i := 0; i+1 < len(ids); i++ {
		b.WithEdge(ids[i], ids[i+1])
	}
	return b
}

// Build creates the graph (satisfies testkit.Builder interface).
func (b *GraphBuilder) Build() interface{} {
	return b.BuildGraph()
}

// BuildNodes returns the nodes with adjacency lists derived from the edges.
func (b *GraphBuilder) BuildNodes() []entities.DependencyNode {
	index := make(map[string]int, len(b.nodes))
	nodes := make([]entities.DependencyNode, len(b.nodes))
	for i, node := range b.nodes {
		if version, ok := b.versions[node.ID]; ok {
			node.Version = version
		}
		if manager, ok := b.managers[node.ID]; ok {
			node.PackageManager = manager
		}
		node.Dependencies = nil
		node.Dependents = nil
		nodes[i] = node
		index[node.ID] = i
	}
	for _, edge := range b.edges {
		if i, ok := index[edge.From]; ok {
			nodes[i].Dependencies = append(nodes[i].Dependencies, edge.To)
		}
		if i, ok := index[edge.To]; ok {
			nodes[i].Dependents = append(nodes[i].Dependents, edge.From)
		}
	}
	return nodes
}

// BuildEdges returns a copy of the edge list.
func (b *GraphBuilder) BuildEdges() []entities.DependencyEdge {
	edges := make([]entities.DependencyEdge, len(b.edges))
	copy(edges, b.edges)
	return edges
}

// BuildGraph creates the graph with a concrete return type. It panics when the
// builder was fed inconsistent data, which only happens on a broken test.
func (b *GraphBuilder) BuildGraph() *entities.DependencyGraph {
	graph, err := entities.NewDependencyGraph(b.BuildNodes(), b.BuildEdges(), entities.AdjacencyStrict)
	if err != nil {
		panic(err)
	}
	return graph
}

// Reset clears the builder state, allowing it to be reused.
func (b *GraphBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.nodes = nil
	b.edges = nil
	b.versions = make(map[string]string)
	b.managers = make(map[string]string)
	return b
}

// Clone creates a deep copy of the GraphBuilder.
func (b *GraphBuilder) Clone() testkit.Builder {
	clone := &GraphBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		nodes:       append([]entities.DependencyNode(nil), b.nodes...),
		edges:       append([]entities.DependencyEdge(nil), b.edges...),
		versions:    make(map[string]string, len(b.versions)),
		managers:    make(map[string]string, len(b.managers)),
	}
	for k, v := range b.versions {
		clone.versions[k] = v
	}
	for k, v := range b.managers {
		clone.managers[k] = v
	}
	return clone
}

func splitID(id string) (string, string) {
	repository, name, found := strings.Cut(id, ":")
	if !found {
		return id, id
	}
	return repository, name
}
