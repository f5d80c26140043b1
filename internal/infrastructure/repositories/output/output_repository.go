package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	tabMinWidth = 0
	tabWidth    = 4
	tabPadding  = 2
)

// WriterRepository renders results as JSON, YAML or an aligned text table.
type WriterRepository struct{}

// NewOutputRepository creates the result renderer.
func NewOutputRepository() repositories.OutputRepository {
	return &WriterRepository{}
}

// Write renders value in the given format. Table rendering knows every analysis result
// type and falls back to YAML for anything else.
func (r *WriterRepository) Write(w io.Writer, format string, value any) error {
	switch format {
	case entities.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	case entities.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(value)
	case entities.FormatTable, "":
		return writeTable(w, value)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeTable(w io.Writer, value any) error {
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	switch v := value.(type) {
	case []entities.DependencyCycle:
		fmt.Fprintln(tw, "SEVERITY\tLENGTH\tREPOSITORIES\tCYCLE")
		for _, c := range v {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", c.Severity, c.Length, strings.Join(c.Repositories, ","), strings.Join(c.Nodes, " -> "))
		}
	case []entities.CrossRepoLink:
		fmt.Fprintln(tw, "SOURCE\tTARGET\tTYPE\tPACKAGES")
		for _, l := range v {
			pkgs := make([]string, 0, len(l.Dependencies))
			for _, d := range l.Dependencies {
				pkgs = append(pkgs, fmt.Sprintf("%s->%s@%s", d.From, d.To, d.Version))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.SourceRepository, l.TargetRepository, l.Type, strings.Join(pkgs, ", "))
		}
	case []entities.RepositoryMetrics:
		fmt.Fprintln(tw, "REPOSITORY\tNODES\tDEPS\tDEPENDENTS\tCROSS-REPO\tDIRECT\tDEV\tAVG-DEPTH\tMAX-DEPTH\tCOMPLEXITY")
		for _, m := range v {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\t%d\t%d\n",
				m.Repository, m.NodeCount, m.DependencyCount, m.DependentCount, m.CrossRepoDependencies,
				m.Health.DirectDependencies, m.Health.DevDependencies, m.Health.AverageDepth, m.Health.MaxDepth, m.Complexity)
		}
	case *entities.ImpactAnalysis:
		fmt.Fprintf(tw, "TARGET\t%s\n", v.TargetNode)
		fmt.Fprintf(tw, "SCORE\t%d\n", v.ImpactScore)
		fmt.Fprintf(tw, "DIRECT\t%s\n", strings.Join(v.DirectImpact, ", "))
		fmt.Fprintf(tw, "TRANSITIVE\t%s\n", strings.Join(v.TransitiveImpact, ", "))
		fmt.Fprintf(tw, "REPOSITORIES\t%s\n", strings.Join(v.AffectedRepositories, ", "))
		for _, path := range v.CriticalPath {
			fmt.Fprintf(tw, "CRITICAL\t%s\n", strings.Join(path, " <- "))
		}
	case map[string][]entities.DuplicateEntry:
		fmt.Fprintln(tw, "PACKAGE\tOCCURRENCES")
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			occurrences := make([]string, 0, len(v[name]))
			for _, e := range v[name] {
				occurrences = append(occurrences, e.Repository+"@"+e.Version)
			}
			fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(occurrences, ", "))
		}
	case [][]string:
		for _, path := range v {
			fmt.Fprintln(tw, strings.Join(path, " -> "))
		}
	case []string:
		fmt.Fprintln(tw, strings.Join(v, " -> "))
	case entities.GraphSummary:
		writeSummary(tw, v)
	default:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(value)
	}
	return tw.Flush()
}

func writeSummary(tw *tabwriter.Writer, s entities.GraphSummary) {
	fmt.Fprintf(tw, "NODES\t%d\n", s.TotalNodes)
	fmt.Fprintf(tw, "EDGES\t%d\n", s.TotalEdges)
	fmt.Fprintf(tw, "REPOSITORIES\t%d\n", s.TotalRepositories)
	fmt.Fprintf(tw, "CROSS-REPO EDGES\t%d\n", s.CrossRepoLinks)
	fmt.Fprintf(tw, "CYCLES\t%d (high %d, medium %d, low %d)\n", s.TotalCycles,
		s.CyclesBySeverity[entities.SeverityHigh], s.CyclesBySeverity[entities.SeverityMedium],
		s.CyclesBySeverity[entities.SeverityLow])
	fmt.Fprintf(tw, "DUPLICATE PACKAGES\t%d\n", s.DuplicatePackages)
	for _, n := range s.MostDependedOn {
		fmt.Fprintf(tw, "MOST DEPENDED ON\t%s (%d)\n", n.ID, n.Count)
	}
	for _, r := range s.LargestRepositories {
		fmt.Fprintf(tw, "LARGEST REPOSITORY\t%s (%d)\n", r.Repository, r.Count)
	}
	for _, l := range s.StrongestRepoCouplings {
		fmt.Fprintf(tw, "STRONGEST COUPLING\t%s -> %s (%d)\n", l.SourceRepository, l.TargetRepository, l.Count)
	}
}
