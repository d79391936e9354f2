package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/eth-easl/estimator-eval/pkg/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blastWorkflow = "../../pkg/workflow/testdata/blast.json"

func estimatorArgs(extra ...string) []string {
	args := []string{
		"estimator",
		"-workflow", blastWorkflow,
		"-flops_per_unit_of_cpu_work", "1Gf",
		"-platform_spec", "10Gf:1MBps:1MBps",
		"-num_nodes", "1",
		"-num_cores_per_node", "2",
	}
	return append(args, extra...)
}

func TestRunSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run(estimatorArgs(), &stdout, &stderr), stderr.String())

	summary := stderr.String()
	assert.Contains(t, summary, "PLATFORM:\n  - 1 2-core nodes\n")
	assert.Contains(t, summary, "\n\nWORKFLOW:\n")
	assert.Contains(t, summary, "\n\nNAIVE / NO CONCURRENCY: ")
	assert.Contains(t, summary, "\n\nNAIVE / CONCURRENCY   : ")
	assert.Contains(t, summary, "\n\nCRITICAL PATH         : ")
	assert.Empty(t, stdout.String())
}

func TestRunModelRow(t *testing.T) {
	var stdout, stderr bytes.Buffer

	args := estimatorArgs("-app", "blast", "-data_size", "100", "-type", "typeX", "-machine", "M1")
	require.Equal(t, 0, run(args, &stdout, &stderr), stderr.String())

	row := stdout.String()
	assert.True(t, strings.HasPrefix(row, "blast,4,100,typeX,"), row)
	assert.True(t, strings.HasSuffix(row, ",M1\n"), row)

	estimates, err := results.ParseModelResults(strings.NewReader(row), "stdout")
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.Equal(t, common.RecordKey{
		Application:  "blast",
		TaskCount:    4,
		DataSize:     100,
		WorkloadType: "typeX",
		Machine:      "M1",
	}, estimates[0].Key())
	for _, e := range common.EstimatorIDs {
		assert.Greater(t, estimates[0].Estimates()[e], 0.0)
	}
}

func TestRunInvalidArguments(t *testing.T) {
	tests := []struct {
		testName string
		args     []string
	}{
		{testName: "no_flags", args: []string{"estimator"}},
		{testName: "no_nodes", args: estimatorArgs("-num_nodes", "0")},
		{testName: "bad_platform", args: estimatorArgs("-platform_spec", "10Gf:1MBps")},
		{testName: "bad_flops", args: estimatorArgs("-flops_per_unit_of_cpu_work", "1Gx")},
		{testName: "missing_workflow", args: estimatorArgs("-workflow", "testdata/absent.json")},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			assert.Equal(t, 1, run(tt.args, &stdout, &stderr))
			assert.NotEmpty(t, stderr.String())
			assert.Empty(t, stdout.String())
		})
	}
}
