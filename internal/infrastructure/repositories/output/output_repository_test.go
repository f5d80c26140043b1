//go:build unit

package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/crossgraph/internal/domain/entities"
	"github.com/rios0rios0/crossgraph/internal/infrastructure/repositories/output"
)

var sampleCycles = []entities.DependencyCycle{{
	Nodes:        []string{"repoA:a", "repoB:b", "repoA:a"},
	Length:       2,
	Repositories: []string{"repoA", "repoB"},
	Severity:     entities.SeverityHigh,
}}

func TestOutputRepositoryWrite(t *testing.T) {
	t.Parallel()

	t.Run("should render JSON with camelCase fields", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatJSON, sampleCycles)

		// then
		require.NoError(t, err)
		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "high", decoded[0]["severity"])
		assert.Contains(t, decoded[0], "repositories")
	})

	t.Run("should render YAML", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatYAML, sampleCycles)

		// then
		require.NoError(t, err)
		var decoded []entities.DependencyCycle
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, sampleCycles, decoded)
	})

	t.Run("should render cycles as a table", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatTable, sampleCycles)

		// then
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "SEVERITY")
		assert.Contains(t, buf.String(), "repoA:a -> repoB:b -> repoA:a")
	})

	t.Run("should render duplicates sorted by package name", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		duplicates := map[string][]entities.DuplicateEntry{
			"zod":    {{Repository: "repoA", Version: "3.0.0"}, {Repository: "repoB", Version: "3.22.0"}},
			"lodash": {{Repository: "repoA", Version: "4.17.4"}, {Repository: "repoC", Version: "4.17.21"}},
		}

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatTable, duplicates)

		// then
		require.NoError(t, err)
		text := buf.String()
		assert.Less(t, bytes.Index([]byte(text), []byte("lodash")), bytes.Index([]byte(text), []byte("zod")))
		assert.Contains(t, text, "repoA@4.17.4, repoC@4.17.21")
	})

	t.Run("should render a summary as a table", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		summary := entities.GraphSummary{
			TotalNodes:       3,
			TotalCycles:      1,
			CyclesBySeverity: map[entities.Severity]int{entities.SeverityHigh: 1},
			MostDependedOn:   []entities.RankedNode{{ID: "repoA:a", Repository: "repoA", Count: 2}},
		}

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatTable, summary)

		// then
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "1 (high 1, medium 0, low 0)")
		assert.Contains(t, buf.String(), "repoA:a (2)")
	})

	t.Run("should fall back to YAML for types without a table layout", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		data := entities.VisualizationData{Nodes: []entities.VisualizationNode{{ID: "repoA:a"}}}

		// when
		err := output.NewOutputRepository().Write(&buf, entities.FormatTable, data)

		// then
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "id: repoA:a")
	})

	t.Run("should reject unknown formats", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewOutputRepository().Write(&buf, "xml", sampleCycles)

		// then
		require.Error(t, err)
	})
}
