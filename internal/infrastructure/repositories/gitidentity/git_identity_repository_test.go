//go:build unit

package gitidentity_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/gitidentity"
)

func TestParseRemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "should parse GitHub SSH", url: "git@github.com:acme/web.git", expected: "acme/web"},
		{name: "should parse GitHub HTTPS", url: "https://github.com/acme/web.git", expected: "acme/web"},
		{name: "should parse ssh:// URLs", url: "ssh://git@github.com/acme/web.git", expected: "acme/web"},
		{name: "should keep GitLab subgroups", url: "https://gitlab.com/acme/platform/web.git", expected: "acme/platform/web"},
		{name: "should parse Azure DevOps HTTPS", url: "https://dev.azure.com/acme/platform/_git/web", expected: "acme/web"},
		{name: "should parse Azure DevOps SSH", url: "git@ssh.dev.azure.com:v3/acme/platform/web", expected: "acme/web"},
		{name: "should parse legacy visualstudio.com URLs", url: "https://acme.visualstudio.com/platform/_git/web", expected: "acme/web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			identity, err := gitidentity.ParseRemoteURL(tt.url)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}

	t.Run("should reject URLs without owner and repository", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{"/srv/git/web", "git@github.com:web", "https://github.com/"} {
			_, err := gitidentity.ParseRemoteURL(url)
			assert.Error(t, err, url)
		}
	})
}

func TestGitIdentityRepositoryResolve(t *testing.T) {
	t.Parallel()

	t.Run("should derive owner/repo from the origin remote", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		_, err = repo.CreateRemote(&config.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:acme/web.git"},
		})
		require.NoError(t, err)

		// when
		identity, resolveErr := gitidentity.NewIdentityRepository().Resolve(context.Background(), dir)

		// then
		require.NoError(t, resolveErr)
		assert.Equal(t, "acme/web", identity)
	})

	t.Run("should fall back to the directory name without an origin remote", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "billing")
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)

		// when
		identity, resolveErr := gitidentity.NewIdentityRepository().Resolve(context.Background(), dir)

		// then
		require.NoError(t, resolveErr)
		assert.Equal(t, "local/billing", identity)
	})

	t.Run("should fall back to the directory name outside a git repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()

		// when
		identity, err := gitidentity.NewIdentityRepository().Resolve(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "local/"+filepath.Base(dir), identity)
	})
}
