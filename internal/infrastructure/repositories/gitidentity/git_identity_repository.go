package gitidentity

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

const (
	originRemote = "origin"
	localOwner   = "local"
)

// GitIdentityRepository derives owner/repo from the origin remote of a local clone.
type GitIdentityRepository struct{}

// NewIdentityRepository creates a go-git backed identity resolver.
func NewIdentityRepository() repositories.IdentityRepository {
	return &GitIdentityRepository{}
}

// Resolve returns "owner/repo" for the checkout at dir. Directories that are not git
// repositories, or have no parsable origin, resolve to "local/<dirname>".
func (r *GitIdentityRepository) Resolve(_ context.Context, dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	fallback := localOwner + "/" + filepath.Base(absDir)

	repo, err := git.PlainOpenWithOptions(absDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			logger.Debugf("%s is not a git repository, using %q", absDir, fallback)
			return fallback, nil
		}
		return "", fmt.Errorf("failed to open repository %q: %w", absDir, err)
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		logger.Debugf("%s has no %s remote, using %q", absDir, originRemote, fallback)
		return fallback, nil //nolint:nilerr // a missing remote is not fatal
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return fallback, nil
	}

	identity, err := ParseRemoteURL(urls[0])
	if err != nil {
		logger.Warnf("Cannot derive repository name from %q: %v (using %q)", urls[0], err, fallback)
		return fallback, nil
	}
	return identity, nil
}

// ParseRemoteURL extracts "owner/repo" from a GitHub, GitLab, Azure DevOps or generic
// git remote URL.
func ParseRemoteURL(rawURL string) (string, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(rawURL), ".git")

	if strings.Contains(cleaned, "dev.azure.com") || strings.Contains(cleaned, "visualstudio.com") {
		return parseAzureDevOpsURL(cleaned)
	}

	var pathPart string
	switch {
	case strings.HasPrefix(cleaned, "git@"):
		_, after, found := strings.Cut(cleaned, ":")
		if !found {
			return "", fmt.Errorf("invalid SSH URL: %s", rawURL)
		}
		pathPart = after
	case strings.Contains(cleaned, "://"):
		_, after, _ := strings.Cut(cleaned, "://")
		_, pathPart, _ = strings.Cut(after, "/")
	default:
		return "", fmt.Errorf("unsupported git remote URL: %s", rawURL)
	}

	segments := strings.Split(strings.Trim(pathPart, "/"), "/")
	if len(segments) < 2 || segments[0] == "" { //nolint:mnd // need owner + repo
		return "", fmt.Errorf("cannot extract owner/repo from URL: %s", rawURL)
	}
	// GitLab subgroups: keep the full namespace so sibling projects stay distinct
	return strings.Join(segments, "/"), nil
}

func parseAzureDevOpsURL(url string) (string, error) {
	if strings.HasPrefix(url, "git@") && strings.Contains(url, ":v3/") {
		_, after, _ := strings.Cut(url, ":v3/")
		parts := strings.Split(after, "/")
		if len(parts) >= 3 { //nolint:mnd // org/project/repo
			return parts[0] + "/" + parts[2], nil
		}
		return "", fmt.Errorf("invalid Azure DevOps SSH URL: %s", url)
	}

	parts := strings.Split(url, "/")
	for i, p := range parts {
		if p == "_git" && i+1 < len(parts) && i >= 2 {
			owner := strings.TrimSuffix(parts[i-2], ".visualstudio.com")
			return owner + "/" + parts[i+1], nil
		}
	}
	return "", fmt.Errorf("invalid Azure DevOps URL: %s", url)
}
