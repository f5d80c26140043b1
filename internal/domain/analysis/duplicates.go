package analysis

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// FindDuplicateDependencies groups non-root nodes by package name and keeps the names
// that appear with more than one distinct version. Each group lists its distinct
// repository/version pairs, oldest version first.
func FindDuplicateDependencies(graph *entities.DependencyGraph) map[string][]entities.DuplicateEntry {
	groups := make(map[string][]entities.DuplicateEntry)
	versions := make(map[string]map[string]bool)

	for _, node := range graph.Nodes() {
		if node.IsRoot() {
			continue
		}
		entry := entities.DuplicateEntry{Repository: node.Repository, Version: node.Version}
		if containsEntry(groups[node.Name], entry) {
			continue
		}
		groups[node.Name] = append(groups[node.Name], entry)
		if versions[node.Name] == nil {
			versions[node.Name] = make(map[string]bool)
		}
		versions[node.Name][node.Version] = true
	}

	duplicates := make(map[string][]entities.DuplicateEntry)
	for name, entries := range groups {
		if len(versions[name]) < 2 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return compareVersions(entries[i].Version, entries[j].Version) < 0
		})
		duplicates[name] = entries
	}
	return duplicates
}

// compareVersions orders semantic versions by precedence and falls back to a lexical
// comparison when either side is not valid semver (pip pins, maven ranges, ...).
func compareVersions(a, b string) int {
	ca, cb := canonicalVersion(a), canonicalVersion(b)
	if semver.IsValid(ca) && semver.IsValid(cb) {
		if c := semver.Compare(ca, cb); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func canonicalVersion(version string) string {
	trimmed := strings.TrimLeft(version, "^~=>< ")
	if !strings.HasPrefix(trimmed, "v") {
		trimmed = "v" + trimmed
	}
	return trimmed
}

func containsEntry(entries []entities.DuplicateEntry, target entities.DuplicateEntry) bool {
	for _, entry := range entries {
		if entry == target {
			return true
		}
	}
	return false
}
