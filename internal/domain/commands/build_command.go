package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories"
)

// Build is the interface for the graph construction command.
type Build interface {
	Execute(ctx context.Context, settings *entities.Settings, opts BuildOptions) (*entities.DependencyGraph, error)
}

// BuildOptions holds runtime options for a build.
type BuildOptions struct {
	Dirs      []string // Repository checkouts to scan; empty means settings.Workspace
	Output    string   // Snapshot location; empty means settings.Graph
	DryRun    bool     // Build and report without writing the snapshot
	Ecosystem string   // If set, only run this scanner (CLI override)
}

// BuildCommand scans local repository checkouts and materializes the multi-repository
// dependency graph: discover checkouts -> resolve identities -> scan manifests -> save.
type BuildCommand struct {
	manifestRegistry   *infraRepos.ManifestRegistry
	identityRepository repositories.IdentityRepository
	graphRepository    repositories.GraphRepository
}

// NewBuildCommand creates a new BuildCommand.
func NewBuildCommand(
	manifestRegistry *infraRepos.ManifestRegistry,
	identityRepository repositories.IdentityRepository,
	graphRepository repositories.GraphRepository,
) *BuildCommand {
	return &BuildCommand{
		manifestRegistry:   manifestRegistry,
		identityRepository: identityRepository,
		graphRepository:    graphRepository,
	}
}

// Execute scans every checkout and writes the resulting snapshot.
func (it *BuildCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts BuildOptions,
) (*entities.DependencyGraph, error) {
	targets := buildTargets(settings, opts)
	if len(targets) == 0 {
		return nil, errors.New("no repositories to scan: pass directories or configure workspace.repositories")
	}

	builder := entities.NewGraphBuilder()
	totalManifests := 0
	totalErrors := 0

	for _, target := range targets {
		scanned, errs := it.scanRepository(ctx, settings, target, opts)
		totalErrors += errs
		if len(scanned.Manifests) == 0 {
			logger.Warnf("No supported manifest found in %s", target.Path)
			continue
		}
		totalManifests += len(scanned.Manifests)
		builder.Add(scanned)
	}

	graph, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}

	meta := graph.Metadata()
	logger.Infof(
		"Build complete: %d repositories, %d manifests, %d nodes, %d edges (%d cross-repo), %d errors",
		meta.TotalRepositories, totalManifests, meta.TotalNodes, meta.TotalEdges, meta.CrossRepoLinks, totalErrors,
	)

	if opts.DryRun {
		logger.Info("Dry run: graph snapshot not written")
		return graph, nil
	}

	output := opts.Output
	if output == "" {
		output = settings.Graph
	}
	if saveErr := it.graphRepository.Save(ctx, output, graph); saveErr != nil {
		return nil, saveErr
	}
	logger.Infof("Graph written to %s", output)
	return graph, nil
}

// scanRepository runs all applicable scanners on a single checkout.
func (it *BuildCommand) scanRepository(
	ctx context.Context,
	settings *entities.Settings,
	target entities.RepositoryConfig,
	opts BuildOptions,
) (entities.ScannedRepository, int) {
	errorCount := 0
	scanned := entities.ScannedRepository{Path: target.Path, Repository: target.Name}

	if scanned.Repository == "" {
		identity, err := it.identityRepository.Resolve(ctx, target.Path)
		if err != nil {
			logger.Errorf("Failed to resolve repository name for %s: %v", target.Path, err)
			return scanned, 1
		}
		scanned.Repository = identity
	}
	logger.Infof("Scanning %s (%s)", scanned.Repository, target.Path)

	for _, scanner := range it.manifestRegistry.All() {
		// Skip if CLI filter is set and doesn't match
		if opts.Ecosystem != "" && scanner.Name() != opts.Ecosystem {
			continue
		}
		if !settings.EcosystemEnabled(scanner.Name()) {
			continue
		}
		if !scanner.Detect(target.Path) {
			continue
		}

		manifest, err := scanner.Scan(ctx, target.Path)
		if err != nil {
			logger.Errorf("[%s] Failed to scan %s: %v", scanner.Name(), scanned.Repository, err)
			errorCount++
			continue
		}

		logger.Debugf(
			"[%s] %s declares %d dependencies", scanner.Name(), scanned.Repository, len(manifest.Dependencies),
		)
		scanned.Manifests = append(scanned.Manifests, manifest)
	}

	return scanned, errorCount
}

func buildTargets(settings *entities.Settings, opts BuildOptions) []entities.RepositoryConfig {
	if len(opts.Dirs) == 0 {
		return settings.Workspace.Repositories
	}

	// directories given on the command line keep their configured name override
	overrides := make(map[string]string)
	for _, repo := range settings.Workspace.Repositories {
		if abs, err := filepath.Abs(repo.Path); err == nil {
			overrides[abs] = repo.Name
		}
	}

	targets := make([]entities.RepositoryConfig, 0, len(opts.Dirs))
	for _, dir := range opts.Dirs {
		target := entities.RepositoryConfig{Path: dir}
		if abs, err := filepath.Abs(dir); err == nil {
			target.Name = overrides[abs]
		}
		targets = append(targets, target)
	}
	return targets
}
