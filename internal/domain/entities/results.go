package entities

import "time"

// Severity grades a dependency cycle.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// DependencyCycle is a closed walk in the dependency adjacency. Nodes repeats the
// first ID at the end; Length counts the distinct nodes.
type DependencyCycle struct {
	Nodes        []string `json:"nodes"        yaml:"nodes"`
	Length       int      `json:"length"       yaml:"length"`
	Repositories []string `json:"repositories" yaml:"repositories"`
	Severity     Severity `json:"severity"     yaml:"severity"`
}

// PackageLink is one package-level dependency crossing a repository boundary.
type PackageLink struct {
	From    string `json:"from"    yaml:"from"`
	To      string `json:"to"      yaml:"to"`
	Version string `json:"version" yaml:"version"`
}

// CrossRepoLink aggregates every package-level dependency from one repository to another.
type CrossRepoLink struct {
	SourceRepository string        `json:"sourceRepository" yaml:"sourceRepository"`
	TargetRepository string        `json:"targetRepository" yaml:"targetRepository"`
	Dependencies     []PackageLink `json:"dependencies"     yaml:"dependencies"`
	Type             EdgeType      `json:"type"             yaml:"type"`
}

// DependencyHealth groups per-repository dependency counters and depth figures.
type DependencyHealth struct {
	TotalDependencies  int     `json:"totalDependencies"  yaml:"totalDependencies"`
	DirectDependencies int     `json:"directDependencies" yaml:"directDependencies"`
	DevDependencies    int     `json:"devDependencies"    yaml:"devDependencies"`
	AverageDepth       float64 `json:"averageDepth"       yaml:"averageDepth"`
	MaxDepth           int     `json:"maxDepth"           yaml:"maxDepth"`
}

// RepositoryMetrics is the per-repository aggregation.
type RepositoryMetrics struct {
	Repository            string           `json:"repository"            yaml:"repository"`
	NodeCount             int              `json:"nodeCount"             yaml:"nodeCount"`
	DependencyCount       int              `json:"dependencyCount"       yaml:"dependencyCount"`
	DependentCount        int              `json:"dependentCount"        yaml:"dependentCount"`
	CrossRepoDependencies int              `json:"crossRepoDependencies" yaml:"crossRepoDependencies"`
	Complexity            int              `json:"complexity"            yaml:"complexity"`
	PackageManagers       map[string]int   `json:"packageManagers"       yaml:"packageManagers"`
	Health                DependencyHealth `json:"health"                yaml:"health"`
}

// ImpactAnalysis lists the nodes that would be affected if TargetNode changed.
type ImpactAnalysis struct {
	TargetNode           string     `json:"targetNode"           yaml:"targetNode"`
	DirectImpact         []string   `json:"directImpact"         yaml:"directImpact"`
	TransitiveImpact     []string   `json:"transitiveImpact"     yaml:"transitiveImpact"`
	AffectedRepositories []string   `json:"affectedRepositories" yaml:"affectedRepositories"`
	ImpactScore          int        `json:"impactScore"          yaml:"impactScore"`
	CriticalPath         [][]string `json:"criticalPath"         yaml:"criticalPath"`
}

// DuplicateEntry is one repository/version occurrence of a duplicated package.
type DuplicateEntry struct {
	Repository string `json:"repository" yaml:"repository"`
	Version    string `json:"version"    yaml:"version"`
}

// RankedNode pairs a node with the figure it was ranked by.
type RankedNode struct {
	ID         string `json:"id"         yaml:"id"`
	Repository string `json:"repository" yaml:"repository"`
	Count      int    `json:"count"      yaml:"count"`
}

// RankedRepository pairs a repository with the figure it was ranked by.
type RankedRepository struct {
	Repository string `json:"repository" yaml:"repository"`
	Count      int    `json:"count"      yaml:"count"`
}

// RankedLink pairs a repository pair with the number of package-level links between them.
type RankedLink struct {
	SourceRepository string `json:"sourceRepository" yaml:"sourceRepository"`
	TargetRepository string `json:"targetRepository" yaml:"targetRepository"`
	Count            int    `json:"count"            yaml:"count"`
}

// GraphSummary is the reporting-friendly aggregate of every analysis.
type GraphSummary struct {
	TotalNodes             int                `json:"totalNodes"             yaml:"totalNodes"`
	TotalEdges             int                `json:"totalEdges"             yaml:"totalEdges"`
	TotalRepositories      int                `json:"totalRepositories"      yaml:"totalRepositories"`
	CrossRepoLinks         int                `json:"crossRepoLinks"         yaml:"crossRepoLinks"`
	TotalCycles            int                `json:"totalCycles"            yaml:"totalCycles"`
	CyclesBySeverity       map[Severity]int   `json:"cyclesBySeverity"       yaml:"cyclesBySeverity"`
	DuplicatePackages      int                `json:"duplicatePackages"      yaml:"duplicatePackages"`
	PackageManagers        map[string]int     `json:"packageManagers"        yaml:"packageManagers"`
	MostDependedOn         []RankedNode       `json:"mostDependedOn"         yaml:"mostDependedOn"`
	LargestRepositories    []RankedRepository `json:"largestRepositories"    yaml:"largestRepositories"`
	StrongestRepoCouplings []RankedLink       `json:"strongestRepoCouplings" yaml:"strongestRepoCouplings"`
}

// VisualizationNode is a renderable node.
type VisualizationNode struct {
	ID             string `json:"id"             yaml:"id"`
	Label          string `json:"label"          yaml:"label"`
	Group          string `json:"group"          yaml:"group"`
	PackageManager string `json:"packageManager" yaml:"packageManager"`
	DependentCount int    `json:"dependentCount" yaml:"dependentCount"`
}

// VisualizationEdge is a renderable edge.
type VisualizationEdge struct {
	From      string   `json:"from"      yaml:"from"`
	To        string   `json:"to"        yaml:"to"`
	Type      EdgeType `json:"type"      yaml:"type"`
	CrossRepo bool     `json:"crossRepo" yaml:"crossRepo"`
	Source    string   `json:"source,omitempty" yaml:"source,omitempty"`
}

// VisualizationData is the {nodes, edges} shape consumed by graph renderers.
type VisualizationData struct {
	Nodes []VisualizationNode `json:"nodes" yaml:"nodes"`
	Edges []VisualizationEdge `json:"edges" yaml:"edges"`
}

// AnalysisReport bundles every whole-graph analysis of one snapshot.
type AnalysisReport struct {
	ID          string                      `json:"id"          yaml:"id"`
	GeneratedAt time.Time                   `json:"generatedAt" yaml:"generatedAt"`
	Metadata    GraphMetadata               `json:"metadata"    yaml:"metadata"`
	Summary     GraphSummary                `json:"summary"     yaml:"summary"`
	Cycles      []DependencyCycle           `json:"cycles"      yaml:"cycles"`
	Links       []CrossRepoLink             `json:"links"       yaml:"links"`
	Metrics     []RepositoryMetrics         `json:"metrics"     yaml:"metrics"`
	Duplicates  map[string][]DuplicateEntry `json:"duplicates"  yaml:"duplicates"`
}
