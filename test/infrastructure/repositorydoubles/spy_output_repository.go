//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/crossgraph/internal/domain/repositories"
)

// SpyOutputRepository implements repositories.OutputRepository and records rendered values.
type SpyOutputRepository struct {
	WriteErr error
	Formats  []string
	Values   []any
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (s *SpyOutputRepository) Write(_ io.Writer, format string, value any) error {
	s.Formats = append(s.Formats, format)
	s.Values = append(s.Values, value)
	return s.WriteErr
}
