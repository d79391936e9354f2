package workflow

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
)

const (
	computeTaskType = "compute"

	// Position of the "--cpu-work <units>" argument in a WfCommons benchmark command.
	cpuWorkArgument = 2

	inputLink  = "input"
	outputLink = "output"
)

type wfDocument struct {
	Workflow *wfWorkflow `json:"workflow"`
}

type wfWorkflow struct {
	Tasks []wfTask `json:"tasks"`
}

type wfTask struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Command struct {
		Arguments []string `json:"arguments"`
	} `json:"command"`

	Priority     *int64   `json:"priority"`
	AvgCPU       *float64 `json:"avgCPU"`
	BytesRead    *int64   `json:"bytesRead"`
	BytesWritten *int64   `json:"bytesWritten"`

	Files   []wfFile `json:"files"`
	Parents []string `json:"parents"`
}

type wfFile struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
	Link string  `json:"link"`
}

func ReadWfCommonsFile(path string, flopsPerUnitOfCPUWork float64) (*Workflow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workflow file")
	}
	defer f.Close()

	w, err := ParseWfCommons(f, flopsPerUnitOfCPUWork)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid workflow file %s", path)
	}

	return w, nil
}

// ParseWfCommons builds a workflow from a WfCommons JSON description. Task
// flops are the CPU work units of the benchmark command times
// flopsPerUnitOfCPUWork.
func ParseWfCommons(r io.Reader, flopsPerUnitOfCPUWork float64) (*Workflow, error) {
	var document wfDocument
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return nil, errors.Wrap(err, "failed to decode JSON")
	}
	if document.Workflow == nil {
		return nil, errors.New("could not find a workflow entry")
	}

	w := New()
	for _, job := range document.Workflow.Tasks {
		if err := addTask(w, job, flopsPerUnitOfCPUWork); err != nil {
			return nil, err
		}
	}

	// tasks are not necessarily declared after their parents
	for _, job := range document.Workflow.Tasks {
		task, _ := w.Task(job.Name)
		for _, parentName := range job.Parents {
			parent, ok := w.Task(parentName)
			if !ok {
				log.Debugf("Ignoring unknown parent %s of task %s", parentName, job.Name)
				continue
			}
			w.AddDependency(parent, task)
		}
	}

	log.Debugf("Parsed workflow with %d tasks", len(w.Tasks))

	return w, nil
}

func addTask(w *Workflow, job wfTask, flopsPerUnitOfCPUWork float64) error {
	if job.Type != computeTaskType {
		return errors.Errorf("task %s has unknown type %s", job.Name, job.Type)
	}

	cpuWork, err := parseCPUWork(job.Command.Arguments)
	if err != nil {
		return errors.Wrapf(err, "task %s", job.Name)
	}

	task, err := w.AddTask(job.Name, cpuWork*flopsPerUnitOfCPUWork)
	if err != nil {
		return err
	}

	if job.Priority != nil {
		task.Priority = *job.Priority
	}
	if job.AvgCPU != nil {
		task.AverageCPU = *job.AvgCPU
	}
	if job.BytesRead != nil {
		task.BytesRead = *job.BytesRead
	}
	if job.BytesWritten != nil {
		task.BytesWritten = *job.BytesWritten
	}

	for _, f := range job.Files {
		file := w.File(f.Name, f.Size)
		switch f.Link {
		case inputLink:
			task.InputFiles = append(task.InputFiles, file)
		case outputLink:
			task.OutputFiles = append(task.OutputFiles, file)
		}
	}

	return nil
}

func parseCPUWork(arguments []string) (float64, error) {
	if len(arguments) <= cpuWorkArgument {
		return 0, errors.New("missing CPU work argument")
	}

	tokens := strings.Fields(arguments[cpuWorkArgument])
	if len(tokens) < 2 {
		return 0, errors.Errorf("malformed CPU work argument %q", arguments[cpuWorkArgument])
	}

	cpuWork, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed CPU work argument %q", arguments[cpuWorkArgument])
	}

	return cpuWork, nil
}
