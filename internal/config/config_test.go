package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
learning_rate: 0.003
epochs: 5
batch_size: 16
seed: 99
layer_sizes: [4, 3, 2]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.003, cfg.LearningRate)
	assert.Equal(t, 5, cfg.Epochs)
	assert.Equal(t, 16, cfg.BatchSize)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, []int{4, 3, 2}, cfg.LayerSizes)
	// Unset fields keep their defaults.
	assert.Equal(t, 1, cfg.LogEvery)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative lr", "learning_rate: -1"},
		{"zero epochs", "epochs: -3"},
		{"single layer", "layer_sizes: [4]"},
		{"zero layer size", "layer_sizes: [4, 0, 2]"},
		{"momentum one", "momentum: 1.0"},
		{"malformed", "learning_rate: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{
		LearningRate: 0.1,
		Epochs:       3,
		LayerSizes:   []int{2, 2},
		Seed:         7,
	})

	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, []int{2, 2}, cfg.LayerSizes)
	assert.Equal(t, int64(7), cfg.Seed)
	// Untouched fields keep loaded values.
	assert.Equal(t, 32, cfg.BatchSize)
}

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}
