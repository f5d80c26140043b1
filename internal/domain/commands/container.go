package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewBuildCommand,
		NewCyclesCommand,
		NewLinksCommand,
		NewMetricsCommand,
		NewImpactCommand,
		NewDuplicatesCommand,
		NewPathCommand,
		NewSummaryCommand,
		NewReportCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *BuildCommand) Build { return impl },
		func(impl *CyclesCommand) Cycles { return impl },
		func(impl *LinksCommand) Links { return impl },
		func(impl *MetricsCommand) Metrics { return impl },
		func(impl *ImpactCommand) Impact { return impl },
		func(impl *DuplicatesCommand) Duplicates { return impl },
		func(impl *PathCommand) Path { return impl },
		func(impl *SummaryCommand) Summary { return impl },
		func(impl *ReportCommand) Report { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
