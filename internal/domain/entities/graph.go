package entities

import (
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// RootSuffix marks the synthetic per-repository anchor node ("owner/repo:root").
const RootSuffix = ":root"

// maxReportedViolations caps how many adjacency problems end up in an error message.
const maxReportedViolations = 5

// ErrInconsistentAdjacency is returned when dependencies/dependents disagree with the edge list.
var ErrInconsistentAdjacency = errors.New("inconsistent graph adjacency")

// EdgeType classifies a dependency relationship.
type EdgeType string

const (
	EdgeDirect     EdgeType = "direct"
	EdgeDev        EdgeType = "dev"
	EdgePeer       EdgeType = "peer"
	EdgeTransitive EdgeType = "transitive"
)

// IsValid reports whether the edge type is one of the known kinds.
func (t EdgeType) IsValid() bool {
	switch t {
	case EdgeDirect, EdgeDev, EdgePeer, EdgeTransitive:
		return true
	default:
		return false
	}
}

// AdjacencyMode selects how NewDependencyGraph reacts to adjacency violations.
type AdjacencyMode int

const (
	// AdjacencyRepair appends the missing adjacency entries implied by the edge list.
	AdjacencyRepair AdjacencyMode = iota
	// AdjacencyStrict rejects the graph.
	AdjacencyStrict
)

// DependencyNode is a single package instance inside one repository.
type DependencyNode struct {
	ID             string   `json:"id"             yaml:"id"`
	Name           string   `json:"name"           yaml:"name"`
	Version        string   `json:"version"        yaml:"version"`
	Repository     string   `json:"repository"     yaml:"repository"`
	PackageManager string   `json:"packageManager" yaml:"packageManager"`
	Dependencies   []string `json:"dependencies,omitempty"   yaml:"dependencies,omitempty"`
	Dependents     []string `json:"dependents,omitempty"     yaml:"dependents,omitempty"`
}

// IsRoot reports whether the node is a synthetic repository anchor.
func (n DependencyNode) IsRoot() bool {
	return strings.HasSuffix(n.ID, RootSuffix)
}

// DependencyEdge is a typed directed relationship between two node IDs.
type DependencyEdge struct {
	From string   `json:"from" yaml:"from"`
	To   string   `json:"to"   yaml:"to"`
	Type EdgeType `json:"type" yaml:"type"`
	// Source is the manifest location that declared the edge ("go.mod:6"), empty for
	// hand-written snapshots.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// GraphMetadata holds summary counters computed at ingestion.
type GraphMetadata struct {
	TotalNodes        int `json:"totalNodes"        yaml:"totalNodes"`
	TotalEdges        int `json:"totalEdges"        yaml:"totalEdges"`
	TotalRepositories int `json:"totalRepositories" yaml:"totalRepositories"`
	CrossRepoLinks    int `json:"crossRepoLinks"    yaml:"crossRepoLinks"`
}

// AdjacencyViolation describes one edge whose endpoints do not list each other.
type AdjacencyViolation struct {
	Edge              DependencyEdge
	MissingDependency bool // To is absent from From.Dependencies
	MissingDependent  bool // From is absent from To.Dependents
}

func (v AdjacencyViolation) String() string {
	var parts []string
	if v.MissingDependency {
		parts = append(parts, fmt.Sprintf("%s does not list %s as dependency", v.Edge.From, v.Edge.To))
	}
	if v.MissingDependent {
		parts = append(parts, fmt.Sprintf("%s does not list %s as dependent", v.Edge.To, v.Edge.From))
	}
	return strings.Join(parts, "; ")
}

// DependencyGraph is an immutable multi-repository dependency snapshot. Nodes link to
// each other only through IDs looked up in the node map. Accessors hand out copies, so
// analyses can share one instance across goroutines without locking.
type DependencyGraph struct {
	nodes        map[string]DependencyNode
	order        []string
	edges        []DependencyEdge
	repositories []string
	metadata     GraphMetadata
}

// NewDependencyGraph ingests nodes and edges, checks the bidirectional adjacency
// invariant and computes the metadata counters. Duplicate node IDs keep the first
// occurrence.
func NewDependencyGraph(
	nodes []DependencyNode,
	edges []DependencyEdge,
	mode AdjacencyMode,
) (*DependencyGraph, error) {
	g := &DependencyGraph{
		nodes: make(map[string]DependencyNode, len(nodes)),
		order: make([]string, 0, len(nodes)),
		edges: make([]DependencyEdge, len(edges)),
	}
	copy(g.edges, edges)

	seenRepos := make(map[string]bool)
	for _, node := range nodes {
		if _, exists := g.nodes[node.ID]; exists {
			logger.Debugf("Duplicate node %q ignored", node.ID)
			continue
		}
		node.Dependencies = cloneStrings(node.Dependencies)
		node.Dependents = cloneStrings(node.Dependents)
		g.nodes[node.ID] = node
		g.order = append(g.order, node.ID)
		if !seenRepos[node.Repository] {
			seenRepos[node.Repository] = true
			g.repositories = append(g.repositories, node.Repository)
		}
	}

	violations := g.checkAdjacency()
	if len(violations) > 0 {
		if mode == AdjacencyStrict {
			return nil, violationError(violations)
		}
		g.repairAdjacency(violations)
	}

	g.metadata = GraphMetadata{
		TotalNodes:        len(g.order),
		TotalEdges:        len(g.edges),
		TotalRepositories: len(g.repositories),
		CrossRepoLinks:    g.countCrossRepoEdges(),
	}
	return g, nil
}

// Node returns a copy of the node with the given ID.
func (g *DependencyGraph) Node(id string) (DependencyNode, bool) {
	node, ok := g.nodes[id]
	if !ok {
		return DependencyNode{}, false
	}
	node.Dependencies = cloneStrings(node.Dependencies)
	node.Dependents = cloneStrings(node.Dependents)
	return node, true
}

// HasNode reports whether id is part of the graph.
func (g *DependencyGraph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Dependencies returns the dependency IDs of id that resolve to nodes in the graph.
func (g *DependencyGraph) Dependencies(id string) []string {
	return g.resolved(g.nodes[id].Dependencies)
}

// Dependents returns the dependent IDs of id that resolve to nodes in the graph.
func (g *DependencyGraph) Dependents(id string) []string {
	return g.resolved(g.nodes[id].Dependents)
}

// RepositoryOf returns the owning repository of id, or "" if the node is unknown.
func (g *DependencyGraph) RepositoryOf(id string) string {
	return g.nodes[id].Repository
}

// NodeIDs returns node IDs in ingestion order.
func (g *DependencyGraph) NodeIDs() []string {
	return cloneStrings(g.order)
}

// Nodes returns copies of all nodes in ingestion order.
func (g *DependencyGraph) Nodes() []DependencyNode {
	result := make([]DependencyNode, 0, len(g.order))
	for _, id := range g.order {
		node, _ := g.Node(id)
		result = append(result, node)
	}
	return result
}

// Edges returns a copy of the edge list.
func (g *DependencyGraph) Edges() []DependencyEdge {
	result := make([]DependencyEdge, len(g.edges))
	copy(result, g.edges)
	return result
}

// Repositories returns distinct repositories in first-seen order.
func (g *DependencyGraph) Repositories() []string {
	return cloneStrings(g.repositories)
}

// Metadata returns the ingestion counters.
func (g *DependencyGraph) Metadata() GraphMetadata {
	return g.metadata
}

// Len returns the number of nodes.
func (g *DependencyGraph) Len() int {
	return len(g.order)
}

func (g *DependencyGraph) resolved(ids []string) []string {
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			result = append(result, id)
		}
	}
	return result
}

// checkAdjacency lists edges whose endpoints both exist but do not reference each other.
// Edges to unknown nodes are tolerated: the graph may be partial.
func (g *DependencyGraph) checkAdjacency() []AdjacencyViolation {
	var violations []AdjacencyViolation
	for _, edge := range g.edges {
		from, fromOK := g.nodes[edge.From]
		to, toOK := g.nodes[edge.To]
		if !fromOK || !toOK {
			logger.Debugf("Edge %s -> %s references an unknown node", edge.From, edge.To)
			continue
		}
		violation := AdjacencyViolation{
			Edge:              edge,
			MissingDependency: !containsString(from.Dependencies, edge.To),
			MissingDependent:  !containsString(to.Dependents, edge.From),
		}
		if violation.MissingDependency || violation.MissingDependent {
			violations = append(violations, violation)
		}
	}
	return violations
}

func (g *DependencyGraph) repairAdjacency(violations []AdjacencyViolation) {
	for _, violation := range violations {
		logger.Warnf("Repairing adjacency: %s", violation)
		if violation.MissingDependency {
			from := g.nodes[violation.Edge.From]
			if !containsString(from.Dependencies, violation.Edge.To) {
				from.Dependencies = append(from.Dependencies, violation.Edge.To)
				g.nodes[from.ID] = from
			}
		}
		if violation.MissingDependent {
			to := g.nodes[violation.Edge.To]
			if !containsString(to.Dependents, violation.Edge.From) {
				to.Dependents = append(to.Dependents, violation.Edge.From)
				g.nodes[to.ID] = to
			}
		}
	}
}

func (g *DependencyGraph) countCrossRepoEdges() int {
	count := 0
	for _, edge := range g.edges {
		from, fromOK := g.nodes[edge.From]
		to, toOK := g.nodes[edge.To]
		if fromOK && toOK && from.Repository != to.Repository {
			count++
		}
	}
	return count
}

func violationError(violations []AdjacencyViolation) error {
	shown := violations
	if len(shown) > maxReportedViolations {
		shown = shown[:maxReportedViolations]
	}
	messages := make([]string, 0, len(shown))
	for _, v := range shown {
		messages = append(messages, v.String())
	}
	return fmt.Errorf(
		"%w: %d violation(s): %s",
		ErrInconsistentAdjacency, len(violations), strings.Join(messages, "; "),
	)
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	result := make([]string, len(values))
	copy(result, values)
	return result
}
