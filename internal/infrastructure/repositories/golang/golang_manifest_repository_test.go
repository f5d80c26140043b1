//go:build unit

package golang_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/golang"
)

const goMod = `module github.com/acme/api

go 1.22

require (
	github.com/acme/shared v1.4.0
	github.com/sirupsen/logrus v1.9.3
	golang.org/x/sys v0.20.0 // indirect
)
`

func TestParseGoMod(t *testing.T) {
	t.Parallel()

	t.Run("should read the module path and every requirement", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := golang.ParseGoMod([]byte(goMod), "go.mod")

		// then
		require.NoError(t, err)
		assert.Equal(t, "go", manifest.PackageManager)
		assert.Equal(t, "github.com/acme/api", manifest.Name)
		require.Len(t, manifest.Dependencies, 3)
		assert.Equal(t, entities.Dependency{
			Name:     "github.com/acme/shared",
			Version:  "v1.4.0",
			Type:     entities.EdgeDirect,
			FilePath: "go.mod",
			Line:     6,
		}, manifest.Dependencies[0])
	})

	t.Run("should mark indirect requirements as transitive", func(t *testing.T) {
		t.Parallel()

		// when
		manifest, err := golang.ParseGoMod([]byte(goMod), "go.mod")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.EdgeTransitive, manifest.Dependencies[2].Type)
	})

	t.Run("should fail on malformed content", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := golang.ParseGoMod([]byte("module a\nrequire github.com/x\n"), "go.mod")

		// then
		require.Error(t, err)
	})
}

func TestGoManifestRepository(t *testing.T) {
	t.Parallel()

	t.Run("should detect and scan a module directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o600))
		scanner := golang.NewManifestRepository()

		// when
		detected := scanner.Detect(dir)
		manifest, err := scanner.Scan(context.Background(), dir)

		// then
		assert.True(t, detected)
		require.NoError(t, err)
		assert.Len(t, manifest.Dependencies, 3)
	})

	t.Run("should report a missing go.mod", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		scanner := golang.NewManifestRepository()

		// when
		_, err := scanner.Scan(context.Background(), dir)

		// then
		assert.False(t, scanner.Detect(dir))
		require.ErrorIs(t, err, repositories.ErrNoManifest)
	})
}
