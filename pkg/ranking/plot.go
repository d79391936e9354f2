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
	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	log "github.com/sirupsen/logrus"
)

const barWidth = vg.Length(20)

// PlotSummary renders right and wrong ranking counts per estimator as a
// grouped bar chart. The image format follows the file extension.
func PlotSummary(summary *Summary, names []string, path string) error {
	if err := ensureDirectory(path); err != nil {
		return err
	}

	right := make(plotter.Values, common.NumEstimators)
	wrong := make(plotter.Values, common.NumEstimators)
	labels := make([]string, common.NumEstimators)
	for _, e := range common.EstimatorIDs {
		right[e] = float64(summary.Tallies[e].Right)
		wrong[e] = float64(summary.Tallies[e].Wrong)
		labels[e] = common.EstimatorLabel(names, e)
	}

	p := plot.New()
	p.Title.Text = "Machine ranking per estimator"
	p.Y.Label.Text = "Comparisons"
	p.Y.Min = 0

	rightBars, err := plotter.NewBarChart(right, barWidth)
	if err != nil {
		return errors.Wrap(err, "failed to build bar chart")
	}
	rightBars.LineStyle.Width = vg.Length(0)
	rightBars.Color = plotutil.Color(2)
	rightBars.Offset = -barWidth / 2

	wrongBars, err := plotter.NewBarChart(wrong, barWidth)
	if err != nil {
		return errors.Wrap(err, "failed to build bar chart")
	}
	wrongBars.LineStyle.Width = vg.Length(0)
	wrongBars.Color = plotutil.Color(0)
	wrongBars.Offset = barWidth / 2

	p.Add(rightBars, wrongBars)
	p.Legend.Add("right", rightBars)
	p.Legend.Add("wrong", wrongBars)
	p.Legend.Top = true
	p.NominalX(labels...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save plot")
	}

	log.Infof("Ranking plot written to %s", path)

	return nil
}
