package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
)

// ErrNoManifest is returned by Scan when the directory holds no manifest of the ecosystem.
var ErrNoManifest = errors.New("no manifest found")

// ManifestRepository abstracts one dependency ecosystem (Go modules, npm, pip, etc.).
// Each implementation knows how to recognize and parse its own manifest files.
type ManifestRepository interface {
	// Name returns the package manager tag stamped on nodes (e.g. "npm", "go").
	Name() string

	// Detect returns true if the given directory uses this dependency ecosystem.
	Detect(dir string) bool

	// Scan parses the manifest found in dir into the declared package and its dependencies.
	Scan(ctx context.Context, dir string) (entities.Manifest, error)
}
