//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/domain/commands"
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	infraRepos "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories"
	builders "github.com/rios0rios0/crossgraph/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/crossgraph/test/infrastructure/repositorydoubles"
)

type buildFixture struct {
	npm      *doubles.SpyManifestRepository
	maven    *doubles.SpyManifestRepository
	identity *doubles.StubIdentityRepository
	graphs   *doubles.StubGraphRepository
	command  *commands.BuildCommand
}

func newBuildFixture() *buildFixture {
	npm := &doubles.SpyManifestRepository{
		ManifestName: "npm",
		DetectResult: true,
		Manifests: map[string]entities.Manifest{
			"/work/web": {
				PackageManager: "npm",
				Name:           "@acme/web",
				Dependencies: []entities.Dependency{
					builders.NewDependencyBuilder().WithName("@acme/ui").WithVersion("^1.0.0").BuildDependency(),
					builders.NewDependencyBuilder().WithName("react").WithVersion("18.2.0").BuildDependency(),
				},
			},
			"/work/ui": {PackageManager: "npm", Name: "@acme/ui", Version: "1.4.0"},
		},
	}
	maven := &doubles.SpyManifestRepository{ManifestName: "maven"}
	identity := &doubles.StubIdentityRepository{
		Identities: map[string]string{"/work/web": "acme/web", "/work/ui": "acme/ui"},
	}
	graphs := &doubles.StubGraphRepository{}

	registry := infraRepos.NewManifestRegistry()
	registry.Register(npm)
	registry.Register(maven)

	return &buildFixture{
		npm:      npm,
		maven:    maven,
		identity: identity,
		graphs:   graphs,
		command:  commands.NewBuildCommand(registry, identity, graphs),
	}
}

func TestBuildCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should build a graph linking repositories and save it", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		settings := entities.NewDefaultSettings()

		// when
		graph, err := fixture.command.Execute(context.Background(), settings, commands.BuildOptions{
			Dirs: []string{"/work/web", "/work/ui"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"acme/ui:root", "acme/web:react:18.2.0"}, graph.Dependencies("acme/web:root"))
		assert.Equal(t, 1, graph.Metadata().CrossRepoLinks)
		assert.Equal(t, []string{entities.DefaultGraphPath}, fixture.graphs.SaveLocations)
		assert.Same(t, graph, fixture.graphs.SavedGraph)
		assert.Equal(t, []string{"/work/web", "/work/ui"}, fixture.identity.ResolvedDirs)
	})

	t.Run("should write to the output override", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()

		// when
		_, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs:   []string{"/work/ui"},
			Output: "/tmp/graph.json",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/tmp/graph.json"}, fixture.graphs.SaveLocations)
	})

	t.Run("should not save on a dry run", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()

		// when
		graph, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs:   []string{"/work/web"},
			DryRun: true,
		})

		// then
		require.NoError(t, err)
		assert.NotNil(t, graph)
		assert.Empty(t, fixture.graphs.SaveLocations)
	})

	t.Run("should use configured repositories and their name overrides", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		settings := entities.NewDefaultSettings()
		settings.Workspace.Repositories = []entities.RepositoryConfig{
			{Path: "/work/web", Name: "platform/web"},
			{Path: "/work/ui"},
		}

		// when
		graph, err := fixture.command.Execute(context.Background(), settings, commands.BuildOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, graph.HasNode("platform/web:root"))
		assert.Equal(t, []string{"/work/ui"}, fixture.identity.ResolvedDirs)
	})

	t.Run("should keep the configured name for a directory passed on the command line", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		settings := entities.NewDefaultSettings()
		settings.Workspace.Repositories = []entities.RepositoryConfig{{Path: "/work/web", Name: "platform/web"}}

		// when
		graph, err := fixture.command.Execute(context.Background(), settings, commands.BuildOptions{
			Dirs: []string{"/work/web"},
		})

		// then
		require.NoError(t, err)
		assert.True(t, graph.HasNode("platform/web:root"))
		assert.Empty(t, fixture.identity.ResolvedDirs)
	})

	t.Run("should run only the scanner selected by the ecosystem filter", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()

		// when
		_, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs:      []string{"/work/ui"},
			Ecosystem: "npm",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/ui"}, fixture.npm.DetectedDirs)
		assert.Empty(t, fixture.maven.DetectedDirs)
	})

	t.Run("should skip ecosystems disabled in settings", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		settings := entities.NewDefaultSettings()
		settings.Ecosystems = map[string]entities.EcosystemConfig{"maven": {Enabled: false}}

		// when
		_, err := fixture.command.Execute(context.Background(), settings, commands.BuildOptions{
			Dirs: []string{"/work/ui"},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, fixture.maven.DetectedDirs)
		assert.Equal(t, []string{"/work/ui"}, fixture.npm.ScannedDirs)
	})

	t.Run("should continue past scanner failures", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		fixture.npm.ScanErr = errors.New("malformed package.json")

		// when
		graph, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs: []string{"/work/web", "/work/ui"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, graph.Len())
		assert.Equal(t, []string{"/work/web", "/work/ui"}, fixture.npm.ScannedDirs)
	})

	t.Run("should skip a repository whose identity cannot be resolved", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		fixture.identity.ResolveErr = errors.New("permission denied")

		// when
		graph, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs: []string{"/work/web"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, graph.Len())
		assert.Empty(t, fixture.npm.ScannedDirs)
	})

	t.Run("should fail without anything to scan", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()

		// when
		graph, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{})

		// then
		require.Error(t, err)
		assert.Nil(t, graph)
	})

	t.Run("should return the save error", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newBuildFixture()
		fixture.graphs.SaveErr = errors.New("disk full")

		// when
		_, err := fixture.command.Execute(context.Background(), entities.NewDefaultSettings(), commands.BuildOptions{
			Dirs: []string{"/work/ui"},
		})

		// then
		require.ErrorContains(t, err, "disk full")
	})
}
