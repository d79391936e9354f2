/*
 * MIT License
 *
 * Copyright (c) 2023 EASL and the vHive community
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(app string, tasks, size int, workload, machine string) common.RecordKey {
	return common.RecordKey{
		Application:  app,
		TaskCount:    tasks,
		DataSize:     size,
		WorkloadType: workload,
		Machine:      machine,
	}
}

func TestLoadRecordSet(t *testing.T) {
	rs, err := LoadRecordSet("testdata/real.csv", "testdata/model.csv")
	require.NoError(t, err)
	require.Equal(t, 3, rs.Len())

	r, err := rs.Find(key("appA", 4, 100, "typeX", "M1"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, r.RealDuration)
	assert.Equal(t, 2.0, r.Estimate(common.EstimatorA))
	assert.Equal(t, 3.0, r.Estimate(common.EstimatorB))
	assert.Equal(t, 1.5, r.Estimate(common.EstimatorC))

	r, err = rs.Find(key("appB", 4, 200, "typeY", "M1"))
	require.NoError(t, err)
	assert.Equal(t, [common.NumEstimators]float64{}, r.Estimates, "unmatched record keeps sentinel estimates")

	assert.Equal(t, common.DistinctValues{
		Machines:      []string{"M1", "M2"},
		Applications:  []string{"appA", "appB"},
		TaskCounts:    []int{4},
		DataSizes:     []int{100, 200},
		WorkloadTypes: []string{"typeX", "typeY"},
	}, rs.Distinct)
}

func TestLoadRecordSetSingleRow(t *testing.T) {
	dir := t.TempDir()
	realPath := writeFile(t, dir, "real.csv", "app,num_tasks,data_size,type,real,machine\nappA,4,100,typeX,2.5,M1\n")
	modelPath := writeFile(t, dir, "model.csv", "appA,4,100,typeX,2.0,3.0,1.5,M1\n")

	rs, err := LoadRecordSet(realPath, modelPath)
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	r := rs.Records[0]
	assert.Equal(t, 2.5, r.RealDuration)
	assert.Equal(t, [common.NumEstimators]float64{2.0, 3.0, 1.5}, r.Estimates)
}

func TestLoadRecordSetErrors(t *testing.T) {
	_, err := LoadRecordSet("testdata/missing.csv", "testdata/model.csv")
	assert.Error(t, err)

	_, err = LoadRecordSet("testdata/real.csv", "testdata/missing.csv")
	assert.Error(t, err)

	_, err = LoadRecordSet("testdata/real_malformed.csv", "testdata/model.csv")
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "task_count", parseErr.Column)
	assert.Equal(t, 2, parseErr.Line)
}

func TestJoinFirstMatchWins(t *testing.T) {
	first := &common.Record{RecordKey: key("appA", 4, 100, "typeX", "M1"), RealDuration: 1}
	duplicate := &common.Record{RecordKey: key("appA", 4, 100, "typeX", "M1"), RealDuration: 2}
	rs := NewRecordSet([]*common.Record{first, duplicate})

	matched := rs.Join([]common.ModelEstimate{
		{Application: "appA", TaskCount: 4, DataSize: 100, WorkloadType: "typeX", Machine: "M1",
			EstimateA: 1, EstimateB: 2, EstimateC: 3},
		{Application: "appA", TaskCount: 4, DataSize: 100, WorkloadType: "typeX", Machine: "M9",
			EstimateA: 7, EstimateB: 7, EstimateC: 7},
	})

	assert.Equal(t, 1, matched)
	assert.Equal(t, [common.NumEstimators]float64{1, 2, 3}, first.Estimates)
	assert.Equal(t, [common.NumEstimators]float64{}, duplicate.Estimates)
}

func TestFindNotFound(t *testing.T) {
	rs := NewRecordSet([]*common.Record{
		{RecordKey: key("appA", 4, 100, "typeX", "M1")},
	})

	_, err := rs.Find(key("appA", 4, 100, "typeX", "M2"))
	assert.True(t, errors.Is(err, ErrNotFound))

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))

	_, err = NewRecordSet(nil).Find(key("appA", 4, 100, "typeX", "M1"))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}
