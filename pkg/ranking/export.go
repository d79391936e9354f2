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
	"os"
	"path/filepath"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

type EstimatorSummaryRecord struct {
	Estimator string  `csv:"estimator"`
	Wrong     int     `csv:"wrong"`
	Right     int     `csv:"right"`
	Evaluated int     `csv:"evaluated"`
	Accuracy  float64 `csv:"ranking_accuracy"`
}

func SummaryRecords(summary *Summary, names []string) []EstimatorSummaryRecord {
	records := make([]EstimatorSummaryRecord, 0, common.NumEstimators)

	for _, e := range common.EstimatorIDs {
		tally := summary.Tallies[e]

		accuracy := 0.0
		if tally.Total() > 0 {
			accuracy = float64(tally.Right) / float64(tally.Total())
		}

		records = append(records, EstimatorSummaryRecord{
			Estimator: common.EstimatorLabel(names, e),
			Wrong:     tally.Wrong,
			Right:     tally.Right,
			Evaluated: tally.Total(),
			Accuracy:  accuracy,
		})
	}

	return records
}

// ExportSummary writes one CSV row per estimator with its ranking tallies.
func ExportSummary(summary *Summary, names []string, path string) error {
	if err := ensureDirectory(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create summary file")
	}
	defer f.Close()

	records := SummaryRecords(summary, names)
	if err := gocsv.MarshalFile(&records, f); err != nil {
		return errors.Wrap(err, "failed to write summary file")
	}

	log.Infof("Ranking summary written to %s", path)

	return nil
}

func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		log.Infof("Creating the output directory %s", dir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	return nil
}
