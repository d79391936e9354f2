package config

import (
	log "github.com/sirupsen/logrus"
)

// Configuration is what a command runs with: the optional configuration file
// with command line flags applied on top.
type Configuration struct {
	EvaluationConfiguration

	RealResultsPath  string
	ModelResultsPath string
}

// NewConfiguration reads the configuration file when a path is given and
// falls back to an empty configuration otherwise.
func NewConfiguration(path string) *Configuration {
	cfg := &Configuration{}

	if path != "" {
		cfg.EvaluationConfiguration = ReadConfigurationFile(path)
		log.Debugf("Configuration read from %s", path)
	}

	return cfg
}

// Override replaces the configured output paths with non-empty flag values.
func (c *Configuration) Override(summaryPath, plotPath string) {
	if summaryPath != "" {
		c.SummaryPath = summaryPath
	}
	if plotPath != "" {
		c.PlotPath = plotPath
	}
}
