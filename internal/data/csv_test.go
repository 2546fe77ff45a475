package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "label,f0,f1\n1,255,0\n0,127.5,255\n")

	inputs, labels, err := LoadCSV(path, 2, 255, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0}, labels)
	assert.Equal(t, []float64{1, 0, 0.5, 1}, inputs.Data())
}

func TestLoadCSVNoHeader(t *testing.T) {
	path := writeCSV(t, "2,1.5,-3\n")

	inputs, labels, err := LoadCSV(path, 2, 1, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, labels)
	assert.Equal(t, []float64{1.5, -3}, inputs.Data())
}

func TestLoadCSVMaxSamples(t *testing.T) {
	path := writeCSV(t, "0,1\n1,2\n0,3\n")

	inputs, labels, err := LoadCSV(path, 1, 1, 2)
	require.NoError(t, err)

	assert.Len(t, labels, 2)
	assert.Equal(t, []float64{1, 2}, inputs.Data())
}

func TestLoadCSVErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), 2, 1, 0)
		assert.Error(t, err)
	})

	t.Run("ragged row", func(t *testing.T) {
		path := writeCSV(t, "1,2,3\n1,2\n")
		_, _, err := LoadCSV(path, 2, 1, 0)
		assert.Error(t, err)
	})

	t.Run("bad label", func(t *testing.T) {
		path := writeCSV(t, "x,1,2\ny,1,2\n")
		_, _, err := LoadCSV(path, 2, 1, 0)
		assert.Error(t, err)
	})

	t.Run("negative label", func(t *testing.T) {
		path := writeCSV(t, "-1,1,2\n")
		_, _, err := LoadCSV(path, 2, 1, 0)
		assert.Error(t, err)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeCSV(t, "label,f0,f1\n")
		_, _, err := LoadCSV(path, 2, 1, 0)
		assert.Error(t, err)
	})
}
