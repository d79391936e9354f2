package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func configPath() string {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}

	return pathToConfigFile + "cmd/config_rankcheck.json"
}

func TestConfigParser(t *testing.T) {
	config := ReadConfigurationFile(configPath())

	assert.Equal(t, []string{"naive-no-overlap", "naive-overlap", "critical-path"}, config.EstimatorNames)
	assert.Equal(t, "data/out/ranking_summary.csv", config.SummaryPath)
	assert.Equal(t, "data/out/ranking.png", config.PlotPath)
	assert.True(t, config.LogAccuracy)
	assert.Equal(t, "36.8Gf:1.45GBps:1.13GBps", config.Platforms["cori"])
}

func TestConfigurationOverride(t *testing.T) {
	cfg := NewConfiguration(configPath())

	cfg.Override("", "figs/ranking.svg")
	assert.Equal(t, "data/out/ranking_summary.csv", cfg.SummaryPath)
	assert.Equal(t, "figs/ranking.svg", cfg.PlotPath)

	empty := NewConfiguration("")
	assert.Empty(t, empty.EstimatorNames)
	assert.Empty(t, empty.Platforms)
}
