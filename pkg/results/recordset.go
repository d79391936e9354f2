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

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

// RecordSet is the in-memory table of real measurements with the model
// estimates joined onto them. It is built once and handed to whoever needs it.
type RecordSet struct {
	Records  []*common.Record
	Distinct common.DistinctValues
}

func NewRecordSet(records []*common.Record) *RecordSet {
	rs := &RecordSet{Records: records}
	rs.Distinct = projectDistinct(records)

	return rs
}

func projectDistinct(records []*common.Record) common.DistinctValues {
	machines := make([]string, 0, len(records))
	applications := make([]string, 0, len(records))
	taskCounts := make([]int, 0, len(records))
	dataSizes := make([]int, 0, len(records))
	workloadTypes := make([]string, 0, len(records))

	for _, r := range records {
		machines = append(machines, r.Machine)
		applications = append(applications, r.Application)
		taskCounts = append(taskCounts, r.TaskCount)
		dataSizes = append(dataSizes, r.DataSize)
		workloadTypes = append(workloadTypes, r.WorkloadType)
	}

	return common.DistinctValues{
		Machines:      common.Unique(machines),
		Applications:  common.Unique(applications),
		TaskCounts:    common.Unique(taskCounts),
		DataSizes:     common.Unique(dataSizes),
		WorkloadTypes: common.Unique(workloadTypes),
	}
}

// Join copies every model estimate onto the first record with the same key.
// Estimates without a matching record are dropped. Returns the number of
// estimates that found a record.
func (rs *RecordSet) Join(estimates []common.ModelEstimate) int {
	matched := 0

	for i := range estimates {
		estimate := &estimates[i]

		record, err := rs.Find(estimate.Key())
		if err != nil {
			log.Tracef("No real measurement for model estimate %+v", estimate.Key())
			continue
		}

		record.Estimates = estimate.Estimates()
		matched++
	}

	return matched
}

// Find returns the first record whose key equals the given one, or
// ErrNotFound.
func (rs *RecordSet) Find(key common.RecordKey) (*common.Record, error) {
	for _, r := range rs.Records {
		if r.Matches(key) {
			return r, nil
		}
	}

	return nil, ErrNotFound
}

func (rs *RecordSet) Len() int {
	return len(rs.Records)
}

// LoadRecordSet reads the real results and the model results files and joins
// them. Any open or parse failure is returned as is and should be fatal.
func LoadRecordSet(realPath, modelPath string) (*RecordSet, error) {
	realFile, err := os.Open(realPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open real results file")
	}
	defer realFile.Close()

	records, err := ParseRealResults(realFile, realPath)
	if err != nil {
		return nil, err
	}

	modelFile, err := os.Open(modelPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open model results file")
	}
	defer modelFile.Close()

	estimates, err := ParseModelResults(modelFile, modelPath)
	if err != nil {
		return nil, err
	}

	rs := NewRecordSet(records)
	matched := rs.Join(estimates)

	log.Infof("Loaded %d records from %s, joined %d of %d model estimates from %s",
		rs.Len(), realPath, matched, len(estimates), modelPath)

	return rs, nil
}
