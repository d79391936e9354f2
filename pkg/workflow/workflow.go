package workflow

import (
	"github.com/pkg/errors"
)

type File struct {
	Name string
	Size float64
}

type Task struct {
	Name  string
	Flops float64

	Priority     int64
	AverageCPU   float64
	BytesRead    int64
	BytesWritten int64

	InputFiles  []*File
	OutputFiles []*File

	Parents  []*Task
	Children []*Task
}

func (t *Task) InputSize() float64 {
	return sumSizes(t.InputFiles)
}

func (t *Task) OutputSize() float64 {
	return sumSizes(t.OutputFiles)
}

func sumSizes(files []*File) float64 {
	total := 0.0
	for _, f := range files {
		total += f.Size
	}

	return total
}

// Workflow is a DAG of compute tasks. Tasks keep their declaration order.
type Workflow struct {
	Tasks []*Task

	tasksByName map[string]*Task
	filesByName map[string]*File
}

func New() *Workflow {
	return &Workflow{
		tasksByName: make(map[string]*Task),
		filesByName: make(map[string]*File),
	}
}

func (w *Workflow) AddTask(name string, flops float64) (*Task, error) {
	if _, ok := w.tasksByName[name]; ok {
		return nil, errors.Errorf("task %s already exists", name)
	}

	task := &Task{Name: name, Flops: flops}
	w.Tasks = append(w.Tasks, task)
	w.tasksByName[name] = task

	return task, nil
}

func (w *Workflow) Task(name string) (*Task, bool) {
	task, ok := w.tasksByName[name]
	return task, ok
}

// File returns the file with the given name, creating it with the given size
// if it is not known yet.
func (w *Workflow) File(name string, size float64) *File {
	if f, ok := w.filesByName[name]; ok {
		return f
	}

	f := &File{Name: name, Size: size}
	w.filesByName[name] = f

	return f
}

func (w *Workflow) AddDependency(parent, child *Task) {
	for _, c := range parent.Children {
		if c == child {
			return
		}
	}

	parent.Children = append(parent.Children, child)
	child.Parents = append(child.Parents, parent)
}

func (w *Workflow) TotalFlops() float64 {
	total := 0.0
	for _, t := range w.Tasks {
		total += t.Flops
	}

	return total
}

// TotalData sums the input and output file sizes of every task. A file read
// by several tasks is counted once per task.
func (w *Workflow) TotalData() (read float64, written float64) {
	for _, t := range w.Tasks {
		read += t.InputSize()
		written += t.OutputSize()
	}

	return read, written
}

// TopologicalOrder returns the tasks so that every parent precedes its
// children, or an error if the dependencies contain a cycle.
func (w *Workflow) TopologicalOrder() ([]*Task, error) {
	pending := make(map[*Task]int, len(w.Tasks))
	var queue []*Task

	for _, t := range w.Tasks {
		pending[t] = len(t.Parents)
		if len(t.Parents) == 0 {
			queue = append(queue, t)
		}
	}

	order := make([]*Task, 0, len(w.Tasks))
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		order = append(order, t)

		for _, child := range t.Children {
			pending[child]--
			if pending[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if len(order) != len(w.Tasks) {
		return nil, errors.New("workflow dependencies contain a cycle")
	}

	return order, nil
}
