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
	"github.com/eth-easl/estimator-eval/pkg/makespan"
	"github.com/eth-easl/estimator-eval/pkg/workflow"
	"github.com/gocarina/gocsv"

	log "github.com/sirupsen/logrus"
)

// rowFields identify the model results row written to stdout.
type rowFields struct {
	application  string
	dataSize     int
	workloadType string
	machine      string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func setupLogging(verbosity string, out io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
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

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(filepath.Base(args[0]), flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		workflowPath    = flags.String("workflow", "", "Path to JSON workflow description file")
		flopsPerUnit    = flags.String("flops_per_unit_of_cpu_work", "", "Number of flops per unit of CPU work passed to the workflow task benchmark (e.g., \"100Gf\")")
		platformSpec    = flags.String("platform_spec", "", "<per_core_flops:per_node_io_read_bw:per_node_io_write_bw | name>, e.g. 200Gf:100MBps:80kbps or summit")
		numNodes        = flags.Int("num_nodes", 0, "The number of compute nodes used for running the workflow")
		numCoresPerNode = flags.Int("num_cores_per_node", 0, "The number of cores per compute node")

		configPath = flags.String("config", "", "Path to an optional configuration file with named platforms")
		verbosity  = flags.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")

		row rowFields
	)
	flags.StringVar(&row.application, "app", "", "Application name for the model results row")
	flags.IntVar(&row.dataSize, "data_size", 0, "Data size for the model results row")
	flags.StringVar(&row.workloadType, "type", "", "Workload type for the model results row")
	flags.StringVar(&row.machine, "machine", "", "Machine name; when set a model results row is written to stdout")

	if err := flags.Parse(args[1:]); err != nil {
		return 1
	}
	if *workflowPath == "" || *flopsPerUnit == "" || *platformSpec == "" || *numNodes < 1 || *numCoresPerNode < 1 {
		fmt.Fprintf(stderr, "Error: missing or invalid arguments\n")
		flags.Usage()
		return 1
	}

	setupLogging(*verbosity, stderr)

	cfg := config.NewConfiguration(*configPath)

	flops, err := makespan.ParseComputeSpeed(*flopsPerUnit)
	if err != nil {
		log.Error(err)
		return 1
	}
	platform, err := makespan.ParsePlatform(*platformSpec, cfg.Platforms)
	if err != nil {
		log.Error(err)
		return 1
	}
	resources := makespan.Resources{Nodes: *numNodes, CoresPerNode: *numCoresPerNode}

	w, err := workflow.ReadWfCommonsFile(*workflowPath, flops)
	if err != nil {
		log.Error(err)
		return 1
	}

	estimates, err := makespan.Estimate(w, platform, resources)
	if err != nil {
		log.Error(err)
		return 1
	}

	printSummary(stderr, w, platform, resources, estimates)

	if row.machine != "" {
		if err := writeModelRow(stdout, row, len(w.Tasks), estimates); err != nil {
			log.Error(err)
			return 1
		}
	}

	return 0
}

func printSummary(out io.Writer, w *workflow.Workflow, p makespan.Platform, r makespan.Resources, estimates [common.NumEstimators]float64) {
	read, written := w.TotalData()

	fmt.Fprintf(out, "PLATFORM:\n")
	fmt.Fprintf(out, "  - %d %d-core nodes\n", r.Nodes, r.CoresPerNode)
	fmt.Fprintf(out, "  - core flop rate: %.2f Gflop/sec\n", p.ComputeSpeedPerCore/makespan.GFLOP)
	fmt.Fprintf(out, "  - per-node I/O read rate: %.2f GB/sec\n", p.IOReadSpeedPerNode/makespan.GBYTE)
	fmt.Fprintf(out, "  - per-node I/O write rate: %.2f GB/sec\n", p.IOWriteSpeedPerNode/makespan.GBYTE)
	fmt.Fprintf(out, "\nWORKFLOW:\n")
	fmt.Fprintf(out, "  - TOTAL WORK:         %.2f Tflop\n", w.TotalFlops()/makespan.TFLOP)
	fmt.Fprintf(out, "  - TOTAL DATA READ:    %.2f GB\n", read/makespan.GBYTE)
	fmt.Fprintf(out, "  - TOTAL DATA WRITTEN: %.2f GB\n", written/makespan.GBYTE)
	fmt.Fprintf(out, "\nNAIVE / NO CONCURRENCY: %.2f hours\n", estimates[common.EstimatorA]/3600)
	fmt.Fprintf(out, "\nNAIVE / CONCURRENCY   : %.2f hours\n", estimates[common.EstimatorB]/3600)
	fmt.Fprintf(out, "\nCRITICAL PATH         : %.2f hours\n", estimates[common.EstimatorC]/3600)
}

func writeModelRow(out io.Writer, row rowFields, taskCount int, estimates [common.NumEstimators]float64) error {
	rows := []common.ModelEstimate{{
		Application:  row.application,
		TaskCount:    common.Count(taskCount),
		DataSize:     common.Count(row.dataSize),
		WorkloadType: row.workloadType,
		EstimateA:    common.Duration(estimates[common.EstimatorA]),
		EstimateB:    common.Duration(estimates[common.EstimatorB]),
		EstimateC:    common.Duration(estimates[common.EstimatorC]),
		Machine:      row.machine,
	}}

	return gocsv.MarshalWithoutHeaders(&rows, out)
}
