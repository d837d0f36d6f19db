package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("RB_RUN_DIFFICULTY", "hard")
	t.Setenv("RB_RUN_EPISODES", "25")
	t.Setenv("RB_SOLVER_ALLOWED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "hard", cfg.Run.Difficulty)
	assert.Equal(t, 25, cfg.Run.Episodes)
	assert.False(t, cfg.Solver.SolverAllowed)
}

func TestValidateRejectsBadDifficulty(t *testing.T) {
	cfg := Default()
	cfg.Run.Difficulty = "extreme"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroEpisodes(t *testing.T) {
	cfg := Default()
	cfg.Run.Episodes = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFileMergesFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"run":{"difficulty":"hard","episodes":3}}`), 0o644))

	t.Setenv("RB_RUN_EPISODES", "7")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "hard", cfg.Run.Difficulty)
	assert.Equal(t, 7, cfg.Run.Episodes)
}

func TestToJSONRoundTrips(t *testing.T) {
	cfg := Default()
	data, err := cfg.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"difficulty": "medium"`)
}
