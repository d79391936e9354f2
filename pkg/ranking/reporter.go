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

package ranking

import (
	"fmt"
	"io"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/eth-easl/estimator-eval/pkg/results"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

type Tally struct {
	Right int
	Wrong int
}

func (t Tally) Total() int {
	return t.Right + t.Wrong
}

type Summary struct {
	Tallies [common.NumEstimators]Tally

	// Combinations counted in the tallies.
	Evaluated int
	// Combinations without a record for one of the machines.
	Missing int
	// Combinations where one of the machines has no estimate A.
	NoPrediction int
}

// Reporter writes the ranking comparison of a record set as a nested text
// report and tallies how often each estimator ranks two machines correctly.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) printf(depth int, format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%*s"+format+"\n", append([]interface{}{depth, ""}, args...)...)
}

func (r *Reporter) Report(rs *results.RecordSet) (*Summary, error) {
	summary := &Summary{}
	distinct := rs.Distinct

	for _, pair := range common.Combinations(distinct.Machines) {
		r.printf(0, "* COMPARISON %s vs. %s", pair.First, pair.Second)

		lastApp, lastTasks, lastSize := -1, -1, -1
		nextProduct := common.NextCProduct([]int{
			len(distinct.Applications) - 1,
			len(distinct.TaskCounts) - 1,
			len(distinct.DataSizes) - 1,
			len(distinct.WorkloadTypes) - 1,
		})

		for {
			product := nextProduct()
			if len(product) == 0 {
				break
			}

			if product[0] != lastApp {
				r.printf(2, "* APP: %s", distinct.Applications[product[0]])
				lastTasks, lastSize = -1, -1
			}
			if product[1] != lastTasks {
				r.printf(4, "* NUM_TASKS: %d", distinct.TaskCounts[product[1]])
				lastSize = -1
			}
			if product[2] != lastSize {
				r.printf(6, "* DATA_SIZE: %d", distinct.DataSizes[product[2]])
			}
			lastApp, lastTasks, lastSize = product[0], product[1], product[2]

			workloadType := distinct.WorkloadTypes[product[3]]
			r.printf(8, "* TYPE: %s", workloadType)

			key := common.RecordKey{
				Application:  distinct.Applications[product[0]],
				TaskCount:    distinct.TaskCounts[product[1]],
				DataSize:     distinct.DataSizes[product[2]],
				WorkloadType: workloadType,
			}

			if err := r.compare(rs, key, pair, summary); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range common.EstimatorIDs {
		tally := summary.Tallies[e]
		r.printf(0, "ESTIMATE %d: WRONG %d  RIGHT %d", e.Number(), tally.Wrong, tally.Right)
	}

	return summary, nil
}

func (r *Reporter) compare(rs *results.RecordSet, key common.RecordKey, machines common.Pair[string], summary *Summary) error {
	first, second := key, key
	first.Machine = machines.First
	second.Machine = machines.Second

	record1, err1 := rs.Find(first)
	record2, err2 := rs.Find(second)
	for _, err := range []error{err1, err2} {
		if err != nil && !errors.Is(err, results.ErrNotFound) {
			return errors.Wrapf(err, "lookup of %+v failed", key)
		}
	}

	if err1 != nil || err2 != nil {
		log.Debugf("No results for %+v on %s and %s", key, machines.First, machines.Second)
		r.printf(11, "NO RESULTS")
		summary.Missing++
		return nil
	}

	if record1.Estimate(common.EstimatorA) <= 0 || record2.Estimate(common.EstimatorA) <= 0 {
		log.Debugf("No model prediction for %+v on %s and %s", key, machines.First, machines.Second)
		summary.NoPrediction++
		return nil
	}

	correct := RankingCorrectness(record1, record2)
	for _, e := range common.EstimatorIDs {
		r.printf(10, "* ESTIMATE%d CORRECT: %t", e.Number(), correct[e])

		if correct[e] {
			summary.Tallies[e].Right++
		} else {
			summary.Tallies[e].Wrong++
		}
	}
	summary.Evaluated++

	return nil
}

// RankingCorrectness reports, per estimator, whether it agrees with the real
// measurements on which of the two records is faster. Ties are not faster.
func RankingCorrectness(first, second *common.Record) [common.NumEstimators]bool {
	var correct [common.NumEstimators]bool

	realFaster := first.RealDuration < second.RealDuration
	for _, e := range common.EstimatorIDs {
		estimateFaster := first.Estimate(e) < second.Estimate(e)
		correct[e] = estimateFaster == realFaster
	}

	return correct
}
