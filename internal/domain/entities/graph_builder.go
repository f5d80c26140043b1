package entities

// GraphBuilder materializes a DependencyGraph from scanned repositories. It keeps
// dependencies and dependents consistent so the result always satisfies the adjacency
// invariant.
type GraphBuilder struct {
	nodes      map[string]*DependencyNode
	order      []string
	edges      []DependencyEdge
	edgeSeen   map[edgeKey]bool
	publishers map[string]string // package name -> repository that publishes it
	repos      []ScannedRepository
}

// NewGraphBuilder creates an empty builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		nodes:      make(map[string]*DependencyNode),
		edgeSeen:   make(map[edgeKey]bool),
		publishers: make(map[string]string),
	}
}

// RootID returns the ID of the synthetic anchor node for a repository.
func RootID(repository string) string {
	return repository + RootSuffix
}

// PackageID returns the ID of a package instance inside a repository.
func PackageID(repository, name, version string) string {
	return repository + ":" + name + ":" + version
}

// Add queues a scanned repository. Publishers are indexed immediately so the order in
// which repositories are added does not change which dependencies become cross-repo links.
func (b *GraphBuilder) Add(repo ScannedRepository) *GraphBuilder {
	b.repos = append(b.repos, repo)
	for _, manifest := range repo.Manifests {
		if manifest.Name == "" {
			continue
		}
		if _, taken := b.publishers[manifest.Name]; !taken {
			b.publishers[manifest.Name] = repo.Repository
		}
	}
	// terraform modules and go modules are addressed by their repository path
	if _, taken := b.publishers[repo.Repository]; !taken {
		b.publishers[repo.Repository] = repo.Repository
	}
	return b
}

// Build creates the immutable graph.
func (b *GraphBuilder) Build() (*DependencyGraph, error) {
	for _, repo := range b.repos {
		rootID := RootID(repo.Repository)
		b.ensureNode(DependencyNode{
			ID:             rootID,
			Name:           rootName(repo),
			Version:        rootVersion(repo),
			Repository:     repo.Repository,
			PackageManager: rootPackageManager(repo),
		})
	}

	for _, repo := range b.repos {
		rootID := RootID(repo.Repository)
		for _, manifest := range repo.Manifests {
			for _, dep := range manifest.Dependencies {
				targetID := b.resolveTarget(repo.Repository, manifest, dep)
				b.link(rootID, targetID, dep.Type, dep.Location())
			}
		}
	}

	nodes := make([]DependencyNode, 0, len(b.order))
	for _, id := range b.order {
		nodes = append(nodes, *b.nodes[id])
	}
	return NewDependencyGraph(nodes, b.edges, AdjacencyStrict)
}

func (b *GraphBuilder) resolveTarget(repository string, manifest Manifest, dep Dependency) string {
	if publisher, ok := b.publishers[dep.Name]; ok && publisher != repository {
		return RootID(publisher)
	}
	id := PackageID(repository, dep.Name, dep.Version)
	b.ensureNode(DependencyNode{
		ID:             id,
		Name:           dep.Name,
		Version:        dep.Version,
		Repository:     repository,
		PackageManager: manifest.PackageManager,
	})
	return id
}

func (b *GraphBuilder) ensureNode(node DependencyNode) {
	if _, ok := b.nodes[node.ID]; ok {
		return
	}
	b.nodes[node.ID] = &node
	b.order = append(b.order, node.ID)
}

// edgeKey identifies an edge regardless of where it was declared; the first
// declaration's location is kept.
type edgeKey struct {
	from, to string
	edgeType EdgeType
}

func (b *GraphBuilder) link(from, to string, edgeType EdgeType, source string) {
	if edgeType == "" {
		edgeType = EdgeDirect
	}
	key := edgeKey{from: from, to: to, edgeType: edgeType}
	if b.edgeSeen[key] {
		return
	}
	b.edgeSeen[key] = true
	b.edges = append(b.edges, DependencyEdge{From: from, To: to, Type: edgeType, Source: source})

	source := b.nodes[from]
	if !containsString(source.Dependencies, to) {
		source.Dependencies = append(source.Dependencies, to)
	}
	target := b.nodes[to]
	if !containsString(target.Dependents, from) {
		target.Dependents = append(target.Dependents, from)
	}
}

func rootName(repo ScannedRepository) string {
	for _, manifest := range repo.Manifests {
		if manifest.Name != "" {
			return manifest.Name
		}
	}
	return repo.Repository
}

func rootVersion(repo ScannedRepository) string {
	for _, manifest := range repo.Manifests {
		if manifest.Version != "" {
			return manifest.Version
		}
	}
	return ""
}

func rootPackageManager(repo ScannedRepository) string {
	if len(repo.Manifests) == 0 {
		return ""
	}
	return repo.Manifests[0].PackageManager
}
