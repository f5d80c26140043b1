package internal

import "github.com/rios0rios0/crossgraph/internal/domain/entities"

// AppInternal holds every controller exposed as a CLI subcommand.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application root from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers in registration order.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
