package analysis

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// GenerateSummary composes the whole-graph analyses into aggregate counts and top-N
// rankings. topN values below one fall back to 10.
func GenerateSummary(graph *entities.DependencyGraph, topN int) entities.GraphSummary {
	return summarize(
		graph,
		DetectCycles(graph),
		FindCrossRepoLinks(graph),
		CalculateRepositoryMetrics(graph),
		FindDuplicateDependencies(graph),
		topN,
	)
}

func summarize(
	graph *entities.DependencyGraph,
	cycles []entities.DependencyCycle,
	links []entities.CrossRepoLink,
	metrics []entities.RepositoryMetrics,
	duplicates map[string][]entities.DuplicateEntry,
	topN int,
) entities.GraphSummary {
	if topN < 1 {
		topN = entities.DefaultTop
	}
	meta := graph.Metadata()

	summary := entities.GraphSummary{
		TotalNodes:        meta.TotalNodes,
		TotalEdges:        meta.TotalEdges,
		TotalRepositories: meta.TotalRepositories,
		CrossRepoLinks:    meta.CrossRepoLinks,
		TotalCycles:       len(cycles),
		CyclesBySeverity: map[entities.Severity]int{
			entities.SeverityLow:    0,
			entities.SeverityMedium: 0,
			entities.SeverityHigh:   0,
		},
		DuplicatePackages: len(duplicates),
		PackageManagers:   make(map[string]int),
	}
	for _, cycle := range cycles {
		summary.CyclesBySeverity[cycle.Severity]++
	}

	var dependedOn []entities.RankedNode
	for _, node := range graph.Nodes() {
		if node.PackageManager != "" {
			summary.PackageManagers[node.PackageManager]++
		}
		if count := len(graph.Dependents(node.ID)); count > 0 {
			dependedOn = append(dependedOn, entities.RankedNode{
				ID:         node.ID,
				Repository: node.Repository,
				Count:      count,
			})
		}
	}
	sort.SliceStable(dependedOn, func(i, j int) bool { return dependedOn[i].Count > dependedOn[j].Count })
	summary.MostDependedOn = truncate(dependedOn, topN)

	largest := make([]entities.RankedRepository, 0, len(metrics))
	for _, m := range metrics {
		largest = append(largest, entities.RankedRepository{Repository: m.Repository, Count: m.DependencyCount})
	}
	sort.SliceStable(largest, func(i, j int) bool { return largest[i].Count > largest[j].Count })
	summary.LargestRepositories = truncate(largest, topN)

	couplings := make([]entities.RankedLink, 0, len(links))
	for _, link := range links {
		couplings = append(couplings, entities.RankedLink{
			SourceRepository: link.SourceRepository,
			TargetRepository: link.TargetRepository,
			Count:            len(link.Dependencies),
		})
	}
	sort.SliceStable(couplings, func(i, j int) bool { return couplings[i].Count > couplings[j].Count })
	summary.StrongestRepoCouplings = truncate(couplings, topN)

	return summary
}

// GenerateVisualizationData projects the graph into renderable nodes and edges. Edges
// with an unknown endpoint are dropped.
func GenerateVisualizationData(graph *entities.DependencyGraph) entities.VisualizationData {
	data := entities.VisualizationData{
		Nodes: make([]entities.VisualizationNode, 0, graph.Len()),
		Edges: []entities.VisualizationEdge{},
	}
	for _, node := range graph.Nodes() {
		label := node.Name
		if node.Version != "" {
			label += "@" + node.Version
		}
		data.Nodes = append(data.Nodes, entities.VisualizationNode{
			ID:             node.ID,
			Label:          label,
			Group:          node.Repository,
			PackageManager: node.PackageManager,
			DependentCount: len(graph.Dependents(node.ID)),
		})
	}
	for _, edge := range graph.Edges() {
		if !graph.HasNode(edge.From) || !graph.HasNode(edge.To) {
			continue
		}
		data.Edges = append(data.Edges, entities.VisualizationEdge{
			From:      edge.From,
			To:        edge.To,
			Type:      edge.Type,
			CrossRepo: graph.RepositoryOf(edge.From) != graph.RepositoryOf(edge.To),
			Source:    edge.Source,
		})
	}
	return data
}

// RunAll executes the whole-graph analyses concurrently over the same snapshot and
// bundles them into one report. The graph is never written, so no locking is needed.
func RunAll(ctx context.Context, graph *entities.DependencyGraph, topN int) (*entities.AnalysisReport, error) {
	report := &entities.AnalysisReport{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Metadata:    graph.Metadata(),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		report.Cycles = DetectCycles(graph)
		return groupCtx.Err()
	})
	group.Go(func() error {
		report.Links = FindCrossRepoLinks(graph)
		return groupCtx.Err()
	})
	group.Go(func() error {
		report.Metrics = CalculateRepositoryMetrics(graph)
		return groupCtx.Err()
	})
	group.Go(func() error {
		report.Duplicates = FindDuplicateDependencies(graph)
		return groupCtx.Err()
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	report.Summary = summarize(graph, report.Cycles, report.Links, report.Metrics, report.Duplicates, topN)
	return report, nil
}

func truncate[T any](values []T, n int) []T {
	if values == nil {
		return []T{}
	}
	if len(values) > n {
		return values[:n]
	}
	return values
}
