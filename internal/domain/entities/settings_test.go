//go:build unit

package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".crossgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSettings(t *testing.T) {
	t.Run("should parse a full config file", func(t *testing.T) {
		// given
		path := writeConfig(t, `
graph: out/graph.json
strict: true
workspace:
  repositories:
    - path: ../web
      name: acme/web
    - path: ../ui
ecosystems:
  maven:
    enabled: false
analysis:
  max_depth: 4
  top: 3
output:
  format: json
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "out/graph.json", settings.Graph)
		assert.True(t, settings.Strict)
		assert.Equal(t, []entities.RepositoryConfig{
			{Path: "../web", Name: "acme/web"},
			{Path: "../ui"},
		}, settings.Workspace.Repositories)
		assert.False(t, settings.EcosystemEnabled("maven"))
		assert.True(t, settings.EcosystemEnabled("npm"))
		assert.Equal(t, 4, settings.Analysis.MaxDepth)
		assert.Equal(t, 3, settings.Analysis.Top)
		assert.Equal(t, entities.FormatJSON, settings.Output.Format)
	})

	t.Run("should fill defaults for omitted values", func(t *testing.T) {
		// given
		path := writeConfig(t, "workspace:\n  repositories: []\n")

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultGraphPath, settings.Graph)
		assert.Equal(t, entities.DefaultMaxDepth, settings.Analysis.MaxDepth)
		assert.Equal(t, entities.DefaultTop, settings.Analysis.Top)
		assert.Equal(t, entities.FormatTable, settings.Output.Format)
	})

	t.Run("should expand environment variables in paths", func(t *testing.T) {
		// given
		t.Setenv("CROSSGRAPH_TEST_ROOT", "/srv/checkouts")
		path := writeConfig(t, `
graph: ${CROSSGRAPH_TEST_ROOT}/graph.yaml
workspace:
  repositories:
    - path: ${CROSSGRAPH_TEST_ROOT}/web
`)

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/checkouts/graph.yaml", settings.Graph)
		assert.Equal(t, "/srv/checkouts/web", settings.Workspace.Repositories[0].Path)
	})

	t.Run("should reject an unknown output format", func(t *testing.T) {
		// given
		path := writeConfig(t, "output:\n  format: xml\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output.format")
	})

	t.Run("should reject a repository without a path", func(t *testing.T) {
		// given
		path := writeConfig(t, "workspace:\n  repositories:\n    - name: acme/web\n")

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workspace.repositories[0].path")
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	t.Run("should accept the defaults", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, entities.NewDefaultSettings().Validate())
	})

	t.Run("should reject a non-positive max depth", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.NewDefaultSettings()
		settings.Analysis.MaxDepth = -1

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
	})
}
