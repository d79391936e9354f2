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

package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type EstimatorID int

const (
	EstimatorA EstimatorID = iota
	EstimatorB
	EstimatorC
)

// NumEstimators is the number of prediction models carried by every record.
const NumEstimators = 3

// EstimatorIDs lists the estimators in report order.
var EstimatorIDs = [NumEstimators]EstimatorID{EstimatorA, EstimatorB, EstimatorC}

// Number is the 1-based index used in the textual report.
func (e EstimatorID) Number() int {
	return int(e) + 1
}

type RecordKey struct {
	Application  string
	TaskCount    int
	DataSize     int
	WorkloadType string
	Machine      string
}

// Record joins one real measurement with the predictions of all estimators
// for the same key. An estimate of 0.0 means no prediction was available.
type Record struct {
	RecordKey

	RealDuration float64
	Estimates    [NumEstimators]float64
}

func (r *Record) Estimate(e EstimatorID) float64 {
	return r.Estimates[e]
}

func (r *Record) Matches(key RecordKey) bool {
	return r.RecordKey == key
}

// ParseCount reads a base-10 integer. Surrounding whitespace is ignored,
// empty text is an error.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}

	return strconv.Atoi(s)
}

// ParseDuration reads a float. Surrounding whitespace is ignored, empty text
// is an error.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}

	return strconv.ParseFloat(s, 64)
}

// Count is an integer CSV column parsed with ParseCount.
type Count int

func (c *Count) UnmarshalCSV(s string) error {
	v, err := ParseCount(s)
	if err != nil {
		return err
	}
	*c = Count(v)

	return nil
}

func (c Count) MarshalCSV() (string, error) {
	return strconv.Itoa(int(c)), nil
}

// Duration is a float CSV column parsed with ParseDuration.
type Duration float64

func (d *Duration) UnmarshalCSV(s string) error {
	v, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)

	return nil
}

func (d Duration) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(d), 'f', -1, 64), nil
}

// ModelEstimate is one row of the model results file. The field order is
// the column order of the headerless file.
type ModelEstimate struct {
	Application  string   `csv:"application"`
	TaskCount    Count    `csv:"task_count"`
	DataSize     Count    `csv:"data_size"`
	WorkloadType string   `csv:"workload_type"`
	EstimateA    Duration `csv:"estimate_a"`
	EstimateB    Duration `csv:"estimate_b"`
	EstimateC    Duration `csv:"estimate_c"`
	Machine      string   `csv:"machine"`
}

func (m *ModelEstimate) Key() RecordKey {
	return RecordKey{
		Application:  m.Application,
		TaskCount:    int(m.TaskCount),
		DataSize:     int(m.DataSize),
		WorkloadType: m.WorkloadType,
		Machine:      m.Machine,
	}
}

func (m *ModelEstimate) Estimates() [NumEstimators]float64 {
	return [NumEstimators]float64{float64(m.EstimateA), float64(m.EstimateB), float64(m.EstimateC)}
}

// EstimatorLabel returns the configured display name of an estimator, or its
// report name when none is configured.
func EstimatorLabel(names []string, e EstimatorID) string {
	if int(e) < len(names) && names[e] != "" {
		return names[e]
	}

	return fmt.Sprintf("ESTIMATE%d", e.Number())
}
