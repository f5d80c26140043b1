//go:build unit

package python_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/python"
)

const pyprojectToml = `[project]
name = "Acme_Billing"
version = "0.3.1"
dependencies = [
  "requests>=2.31",
  "acme-core==1.2.0",
  "tomli; python_version < '3.11'",
]

[project.optional-dependencies]
test = ["pytest==8.0.0"]
s3 = ["boto3[crt]>=1.34"]
`

func TestParsePyproject(t *testing.T) {
	t.Parallel()

	t.Run("should read project metadata and dependency groups", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := python.ParsePyproject([]byte(pyprojectToml), "pyproject.toml")

		// then
		require.NoError(t, err)
		assert.Equal(t, "pip", manifest.PackageManager)
		assert.Equal(t, "acme-billing", manifest.Name)
		assert.Equal(t, "0.3.1", manifest.Version)

		type entry struct {
			Name    string
			Version string
			Type    entities.EdgeType
		}
		got := make([]entry, 0, len(manifest.Dependencies))
		for _, dep := range manifest.Dependencies {
			got = append(got, entry{dep.Name, dep.Version, dep.Type})
		}
		assert.Equal(t, []entry{
			{"requests", ">=2.31", entities.EdgeDirect},
			{"acme-core", "1.2.0", entities.EdgeDirect},
			{"tomli", "", entities.EdgeDirect},
			{"boto3", ">=1.34", entities.EdgeDirect},
			{"pytest", "8.0.0", entities.EdgeDev},
		}, got)
	})

	t.Run("should fail on invalid TOML", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := python.ParsePyproject([]byte("[project"), "pyproject.toml")

		// then
		require.Error(t, err)
	})
}

func TestParseRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []entities.Dependency
	}{
		{
			name: "should strip exact pins",
			line: "Django==4.2.7",
			expected: []entities.Dependency{
				{Name: "django", Version: "4.2.7", Type: entities.EdgeDirect, FilePath: "requirements.txt", Line: 1},
			},
		},
		{
			name: "should keep range specifiers and drop trailing comments",
			line: "urllib3>=2.0,<3  # pinned by security",
			expected: []entities.Dependency{
				{Name: "urllib3", Version: ">=2.0,<3", Type: entities.EdgeDirect, FilePath: "requirements.txt", Line: 1},
			},
		},
		{
			name:     "should skip options and includes",
			line:     "-r base.txt",
			expected: nil,
		},
		{
			name:     "should skip URL installs",
			line:     "git+https://github.com/acme/lib.git#egg=lib",
			expected: nil,
		},
		{
			name:     "should skip comments",
			line:     "# tooling",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			manifest := python.ParseRequirements(tt.line, "requirements.txt")

			// then
			assert.Equal(t, tt.expected, manifest.Dependencies)
		})
	}

	t.Run("should record line numbers", func(t *testing.T) {
		t.Parallel()

		// when
		manifest := python.ParseRequirements("# header\n\nflask==3.0.0\n", "requirements.txt")

		// then
		require.Len(t, manifest.Dependencies, 1)
		assert.Equal(t, 3, manifest.Dependencies[0].Line)
	})
}

func TestPipManifestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should prefer pyproject.toml over requirements.txt", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyprojectToml), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("flask==3.0.0\n"), 0o600))
		scanner := python.NewManifestRepository()

		// when
		manifest, err := scanner.Scan(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "pyproject.toml", manifest.FilePath)
	})

	t.Run("should fall back to requirements.txt without a project table", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		poetryOnly := "[tool.poetry]\nname = \"legacy\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(poetryOnly), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("flask==3.0.0\n"), 0o600))
		scanner := python.NewManifestRepository()

		// when
		manifest, err := scanner.Scan(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "requirements.txt", manifest.FilePath)
		assert.Len(t, manifest.Dependencies, 1)
	})

	t.Run("should report a directory without Python manifests", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		scanner := python.NewManifestRepository()

		// when
		_, err := scanner.Scan(context.Background(), dir)

		// then
		assert.False(t, scanner.Detect(dir))
		require.ErrorIs(t, err, repositories.ErrNoManifest)
	})
}
