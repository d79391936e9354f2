package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWfCommonsFile(t *testing.T) {
	w, err := ReadWfCommonsFile("testdata/blast.json", 1e9)
	require.NoError(t, err)
	require.Len(t, w.Tasks, 4)

	assert.Equal(t, 360e9, w.TotalFlops())

	read, written := w.TotalData()
	assert.Equal(t, 8500.0, read)
	assert.Equal(t, 3600.0, written)

	split, ok := w.Task("split_fasta_00000001")
	require.True(t, ok)
	assert.Equal(t, int64(3), split.Priority)
	assert.Equal(t, 60.5, split.AverageCPU)
	assert.Equal(t, int64(4000), split.BytesRead)
	assert.Equal(t, int64(1000), split.BytesWritten)
	assert.Len(t, split.Children, 2)

	blast, _ := w.Task("blastall_00000003")
	require.Len(t, blast.Parents, 1, "unknown parents are ignored")
	assert.Equal(t, "split_fasta_00000001", blast.Parents[0].Name)

	// files are shared between tasks by name
	blast2, _ := w.Task("blastall_00000002")
	assert.Same(t, split.OutputFiles[0], blast2.InputFiles[0])

	order, err := w.TopologicalOrder()
	require.NoError(t, err)
	names := make([]string, len(order))
	for i, task := range order {
		names[i] = task.Name
	}
	assert.Equal(t, []string{"split_fasta_00000001", "blastall_00000002", "blastall_00000003", "cat_blast_00000004"}, names)
}

func TestParseWfCommonsErrors(t *testing.T) {
	tests := []struct {
		testName string
		input    string
	}{
		{
			testName: "not_json",
			input:    "workflow",
		},
		{
			testName: "missing_workflow",
			input:    `{"name": "empty"}`,
		},
		{
			testName: "unknown_task_type",
			input:    `{"workflow": {"tasks": [{"name": "t1", "type": "transfer", "command": {"arguments": ["t1", "x", "--cpu-work 1"]}}]}}`,
		},
		{
			testName: "missing_cpu_work",
			input:    `{"workflow": {"tasks": [{"name": "t1", "type": "compute", "command": {"arguments": ["t1"]}}]}}`,
		},
		{
			testName: "malformed_cpu_work",
			input:    `{"workflow": {"tasks": [{"name": "t1", "type": "compute", "command": {"arguments": ["t1", "x", "--cpu-work lots"]}}]}}`,
		},
		{
			testName: "duplicate_task",
			input: `{"workflow": {"tasks": [
				{"name": "t1", "type": "compute", "command": {"arguments": ["t1", "x", "--cpu-work 1"]}},
				{"name": "t1", "type": "compute", "command": {"arguments": ["t1", "x", "--cpu-work 1"]}}]}}`,
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			_, err := ParseWfCommons(strings.NewReader(test.input), 1)
			assert.Error(t, err)
		})
	}
}

func TestTopologicalOrderCycle(t *testing.T) {
	w := New()
	a, err := w.AddTask("a", 1)
	require.NoError(t, err)
	b, err := w.AddTask("b", 1)
	require.NoError(t, err)

	w.AddDependency(a, b)
	w.AddDependency(b, a)

	_, err = w.TopologicalOrder()
	assert.Error(t, err)
}
