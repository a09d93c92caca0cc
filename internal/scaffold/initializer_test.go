package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needledrop/needledrop/internal/config"
	"github.com/needledrop/needledrop/pkg/dataset"
)

// chdir stands in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestInitialize_CreatesProjectStructure(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, Initialize(false))

	assert.FileExists(t, "needledrop.yml")
	assert.FileExists(t, filepath.Join("datasets", "grammy_awards.csv"))
	assert.FileExists(t, filepath.Join("datasets", "spotify_streaming_data.csv"))
	assert.FileExists(t, filepath.Join("datasets", "artist_lifetime_awards.csv"))
	assert.FileExists(t, filepath.Join("datasets", "producers.csv"))
	assert.DirExists(t, "visuals")
}

func TestInitialize_ScaffoldedConfigIsValid(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, Initialize(false))

	cfg, err := config.Load("needledrop.yml")
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "left", cfg.Analysis.JoinPolicy)
}

func TestInitialize_SampleDatasetsLoad(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, Initialize(false))

	awards, err := dataset.LoadAwards(filepath.Join("datasets", "grammy_awards.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, awards)

	streams, err := dataset.LoadStreaming(filepath.Join("datasets", "spotify_streaming_data.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, streams)

	lifetime, err := dataset.LoadLifetimeAwards(filepath.Join("datasets", "artist_lifetime_awards.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, lifetime)

	credits, err := dataset.LoadProducerCredits(filepath.Join("datasets", "producers.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, credits)
}

func TestCheckExisting(t *testing.T) {
	chdir(t, t.TempDir())

	// Clean directory: no error
	require.NoError(t, CheckExisting())

	require.NoError(t, os.WriteFile("needledrop.yml", []byte("version: \"1.0\"\n"), 0644))
	err := CheckExisting()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already initialized")
	assert.Contains(t, err.Error(), "needledrop.yml")
}

func TestInitialize_ForceOverwrites(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile("needledrop.yml", []byte("garbage"), 0644))
	require.NoError(t, Initialize(true))

	cfg, err := config.Load("needledrop.yml")
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
}
