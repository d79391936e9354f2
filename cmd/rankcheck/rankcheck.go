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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/eth-easl/estimator-eval/pkg/config"
	"github.com/eth-easl/estimator-eval/pkg/ranking"
	"github.com/eth-easl/estimator-eval/pkg/results"

	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func setupLogging(verbosity string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	// stdout carries the report
	log.SetOutput(out)

	switch verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// run executes the command and returns its exit status.
func run(args []string, stdout, stderr io.Writer) int {
	program := filepath.Base(args[0])

	flags := flag.NewFlagSet(program, flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath  = flags.String("config", "", "Path to an optional configuration file")
		verbosity   = flags.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
		summaryPath = flags.String("summary", "", "Write per-estimator tallies as CSV to this path")
		plotPath    = flags.String("plot", "", "Write a ranking bar chart to this path (.png, .svg, .pdf)")
	)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <real.csv> <model.csv>\n", program)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return 1
	}

	setupLogging(*verbosity, stderr)

	cfg := config.NewConfiguration(*configPath)
	cfg.RealResultsPath, cfg.ModelResultsPath = flags.Arg(0), flags.Arg(1)
	cfg.Override(*summaryPath, *plotPath)

	rs, err := results.LoadRecordSet(cfg.RealResultsPath, cfg.ModelResultsPath)
	if err != nil {
		log.Error(err)
		return 1
	}

	summary, err := ranking.NewReporter(stdout).Report(rs)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Debugf("Evaluated %d combinations, %d without results, %d without model prediction",
		summary.Evaluated, summary.Missing, summary.NoPrediction)

	if cfg.LogAccuracy {
		for _, a := range ranking.EstimatorAccuracy(rs) {
			log.Infof("%s: %d predictions, mean relative error %.3f, correlation %.3f",
				common.EstimatorLabel(cfg.EstimatorNames, a.Estimator), a.Samples, a.MeanRelativeError, a.Correlation)
		}
	}

	if cfg.SummaryPath != "" {
		if err := ranking.ExportSummary(summary, cfg.EstimatorNames, cfg.SummaryPath); err != nil {
			log.Error(err)
			return 1
		}
	}
	if cfg.PlotPath != "" {
		if err := ranking.PlotSummary(summary, cfg.EstimatorNames, cfg.PlotPath); err != nil {
			log.Error(err)
			return 1
		}
	}

	return 0
}
