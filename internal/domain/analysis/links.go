package analysis

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// FindCrossRepoLinks groups every edge that crosses a repository boundary by
// (source repository, target repository). Package-level links are kept as they appear
// in the edge list, repeats included. A link is transitive only when every contributing
// edge is.
func FindCrossRepoLinks(graph *entities.DependencyGraph) []entities.CrossRepoLink {
	index := make(map[string]int)
	var links []entities.CrossRepoLink
	allTransitive := make(map[string]bool)

	for _, edge := range graph.Edges() {
		from, fromOK := graph.Node(edge.From)
		to, toOK := graph.Node(edge.To)
		if !fromOK || !toOK || from.Repository == to.Repository {
			continue
		}

		key := from.Repository + "->" + to.Repository
		i, exists := index[key]
		if !exists {
			i = len(links)
			index[key] = i
			links = append(links, entities.CrossRepoLink{
				SourceRepository: from.Repository,
				TargetRepository: to.Repository,
			})
			allTransitive[key] = true
		}

		links[i].Dependencies = append(links[i].Dependencies, entities.PackageLink{
			From:    from.Name,
			To:      to.Name,
			Version: to.Version,
		})
		if edge.Type != entities.EdgeTransitive {
			allTransitive[key] = false
		}
	}

	for key, i := range index {
		if allTransitive[key] {
			links[i].Type = entities.EdgeTransitive
		} else {
			links[i].Type = entities.EdgeDirect
		}
	}
	return links
}
