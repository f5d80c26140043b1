package repositories

import "io"

// OutputRepository renders analysis results in a chosen format.
type OutputRepository interface {
	Write(w io.Writer, format string, value any) error
}
