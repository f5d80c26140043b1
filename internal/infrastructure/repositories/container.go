package repositories

import (
	"go.uber.org/dig"

	cargoRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/cargo"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/gitidentity"
	goRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/golang"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/graphfile"
	jsRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/javascript"
	mavenRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/maven"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/output"
	pyRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/python"
	tfRepo "github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/terraform"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register manifest registry with all ecosystem scanners
	if err := container.Provide(func() *ManifestRegistry {
		reg := NewManifestRegistry()
		reg.Register(goRepo.NewManifestRepository())
		reg.Register(jsRepo.NewManifestRepository())
		reg.Register(pyRepo.NewManifestRepository())
		reg.Register(cargoRepo.NewManifestRepository())
		reg.Register(mavenRepo.NewManifestRepository())
		reg.Register(tfRepo.NewManifestRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(graphfile.NewGraphFileRepository); err != nil {
		return err
	}
	if err := container.Provide(gitidentity.NewIdentityRepository); err != nil {
		return err
	}
	if err := container.Provide(output.NewOutputRepository); err != nil {
		return err
	}

	return nil
}
