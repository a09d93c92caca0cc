package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needledrop/needledrop/internal/config"
	"github.com/needledrop/needledrop/internal/scaffold"
)

// chdir stands in for testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRunAnalyze_InvalidOutputFormatFailsFast(t *testing.T) {
	// No datasets exist here: the format check must reject the flag
	// before any loading happens
	chdir(t, t.TempDir())
	analyzeOutput = "xml"
	t.Cleanup(func() { analyzeOutput = "table" })

	err := runAnalyze(analyzeCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunAnalyze_NoChartsStillWritesSummary(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, scaffold.Initialize(false))
	analyzeNoCharts = true
	t.Cleanup(func() { analyzeNoCharts = false })

	require.NoError(t, runAnalyze(analyzeCmd, nil))
	assert.FileExists(t, filepath.Join("visuals", "summary.json"))
}

func TestResolveConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	content := `version: "1.0"
datasets:
  awards: a.csv
  streaming: s.csv
  lifetime: l.csv
  producers: p.csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := resolveConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "a.csv", cfg.Datasets.Awards)
}

func TestResolveConfig_InvalidExplicitPath(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "missing.yml"), "")
	assert.Error(t, err)
}

func TestResolveConfig_FallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no needledrop.yml here

	cfg, err := resolveConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("datasets", "grammy_awards.csv"), cfg.Datasets.Awards)
}

func TestResolveConfig_DataDirOverride(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := resolveConfig("", "mydata")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("mydata", "grammy_awards.csv"), cfg.Datasets.Awards)
}

func TestResolveConfig_ConventionalFilePickedUp(t *testing.T) {
	chdir(t, t.TempDir())

	content := `version: "1.0"
datasets:
  awards: here/a.csv
  streaming: here/s.csv
  lifetime: here/l.csv
  producers: here/p.csv
analysis:
  top_n: 3
`
	require.NoError(t, os.WriteFile(config.DefaultFile, []byte(content), 0644))

	cfg, err := resolveConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, "here/a.csv", cfg.Datasets.Awards)
	assert.Equal(t, 3, cfg.Analysis.TopN)
}

func TestApplyDataDir(t *testing.T) {
	cfg := config.Default("orig")
	out := applyDataDir(cfg, "override")
	assert.Equal(t, filepath.Join("override", "grammy_awards.csv"), out.Datasets.Awards)

	cfg = config.Default("orig")
	out = applyDataDir(cfg, "")
	assert.Equal(t, filepath.Join("orig", "grammy_awards.csv"), out.Datasets.Awards)
}
