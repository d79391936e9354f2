package config

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

type EvaluationConfiguration struct {
	// Display names of estimators A, B and C in exported summaries and plots.
	EstimatorNames []string `json:"EstimatorNames"`

	SummaryPath string `json:"SummaryPath"`
	PlotPath    string `json:"PlotPath"`

	LogAccuracy bool `json:"LogAccuracy"`

	// Named platforms for the makespan estimator, in
	// <per_core_flops>:<per_node_io_read_bw>:<per_node_io_write_bw> form.
	Platforms map[string]string `json:"Platforms"`
}

func ReadConfigurationFile(path string) EvaluationConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var config EvaluationConfiguration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		log.Fatal(err)
	}

	return config
}
