package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"budget-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	list := RenderList(DefaultTitle, models.SampleEntries(), nil, HighlightExpenses)

	require.NoError(t, WriteText(&buf, list))

	out := buf.String()
	assert.Contains(t, out, "Budget Tracker")
	assert.Contains(t, out, "Entries")

	positions := make([]int, 0, len(list.Rows))
	for _, amount := range []string{"$3000.00", "$120.00", "$500.00", "$10.00"} {
		idx := strings.Index(out, amount)
		require.GreaterOrEqual(t, idx, 0, amount)
		positions = append(positions, idx)
	}
	assert.IsIncreasing(t, positions)
	assert.Equal(t, 1, strings.Count(out, "Income"))
	assert.Equal(t, 3, strings.Count(out, "Expense"))
}

func TestWriteText_Idempotent(t *testing.T) {
	list := RenderList(DefaultTitle, models.SampleEntries(), nil)

	var first, second bytes.Buffer
	require.NoError(t, WriteText(&first, list))
	require.NoError(t, WriteText(&second, list))

	assert.Equal(t, first.String(), second.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteText_PropagatesWriteError(t *testing.T) {
	err := WriteText(failingWriter{}, RenderList(DefaultTitle, nil, nil))
	assert.ErrorContains(t, err, "write title")
}
