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
	"math"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/eth-easl/estimator-eval/pkg/results"
	"gonum.org/v1/gonum/stat"
)

// Accuracy describes how close an estimator gets to the measured durations,
// over the records it has a prediction for.
type Accuracy struct {
	Estimator         common.EstimatorID
	Samples           int
	MeanRelativeError float64
	Correlation       float64
}

func EstimatorAccuracy(rs *results.RecordSet) []Accuracy {
	result := make([]Accuracy, 0, common.NumEstimators)

	for _, e := range common.EstimatorIDs {
		var measured, estimated, relativeErrors []float64

		for _, r := range rs.Records {
			estimate := r.Estimate(e)
			if estimate <= 0 || r.RealDuration <= 0 {
				continue
			}

			measured = append(measured, r.RealDuration)
			estimated = append(estimated, estimate)
			relativeErrors = append(relativeErrors, math.Abs(estimate-r.RealDuration)/r.RealDuration)
		}

		accuracy := Accuracy{
			Estimator:         e,
			Samples:           len(measured),
			MeanRelativeError: math.NaN(),
			Correlation:       math.NaN(),
		}
		if len(measured) > 0 {
			accuracy.MeanRelativeError = stat.Mean(relativeErrors, nil)
		}
		if len(measured) > 1 {
			accuracy.Correlation = stat.Correlation(measured, estimated, nil)
		}

		result = append(result, accuracy)
	}

	return result
}
