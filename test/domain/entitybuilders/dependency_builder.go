//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyBuilder helps create test dependencies with a fluent interface.
type DependencyBuilder struct {
	*testkit.BaseBuilder
	name     string
	version  string
	depType  entities.EdgeType
	filePath string
	line     int
}

// NewDependencyBuilder creates a new dependency builder with sensible defaults.
func NewDependencyBuilder() *DependencyBuilder {
	return &DependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-dependency",
		version:     "1.0.0",
		depType:     entities.EdgeDirect,
		filePath:    "go.mod",
		line:        1,
	}
}

// WithName sets the dependency name.
func (b *DependencyBuilder) WithName(name string) *DependencyBuilder {
	b.name = name
	return b
}

// WithVersion sets the declared version.
func (b *DependencyBuilder) WithVersion(version string) *DependencyBuilder {
	b.version = version
	return b
}

// WithType sets the edge type the dependency produces.
func (b *DependencyBuilder) WithType(depType entities.EdgeType) *DependencyBuilder {
	b.depType = depType
	return b
}

// WithFilePath sets the file path.
func (b *DependencyBuilder) WithFilePath(path string) *DependencyBuilder {
	b.filePath = path
	return b
}

// WithLine sets the line number.
func (b *DependencyBuilder) WithLine(line int) *DependencyBuilder {
	b.line = line
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *DependencyBuilder) Build() interface{} {
	return b.BuildDependency()
}

// BuildDependency creates the dependency with a concrete return type.
func (b *DependencyBuilder) BuildDependency() entities.Dependency {
	return entities.Dependency{
		Name:     b.name,
		Version:  b.version,
		Type:     b.depType,
		FilePath: b.filePath,
		Line:     b.line,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-dependency"
	b.version = "1.0.0"
	b.depType = entities.EdgeDirect
	b.filePath = "go.mod"
	b.line = 1
	return b
}

// Clone creates a deep copy of the DependencyBuilder.
func (b *DependencyBuilder) Clone() testkit.Builder {
	return &DependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		depType:     b.depType,
		filePath:    b.filePath,
		line:        b.line,
	}
}
