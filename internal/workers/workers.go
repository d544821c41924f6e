package workers

// Workers aggregates background workers and starts them as a group.
type Workers struct {
	workers []Worker
}

// NewWorkers constructs a [Workers] aggregate from the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
