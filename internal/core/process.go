package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure so callers can
// distinguish bad input from internal errors with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Job is one (pid, arrival, burst) row of simulation input. Pids are not
// required to be unique; duplicate pids get independent records and metrics.
type Job struct {
	Pid     int
	Arrival int
	Burst   int
}

// ProcessRecord holds the static input of one process plus its mutable
// simulation state. Completion is meaningful only once Completed is true,
// and is stamped exactly once, when Remaining reaches zero.
type ProcessRecord struct {
	Pid        int
	Arrival    int
	Burst      int
	Remaining  int
	Completion int
	Completed  bool
	Enqueued   bool // set once the record has entered a ready queue
}

// Table is the indexed set of process records for one simulation run.
// Only the driver and the active policy mutate it.
type Table struct {
	records []ProcessRecord
}

// Load validates the input jobs and builds a fresh table in input order.
func Load(jobs []Job) (*Table, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: process list is empty", ErrInvalidInput)
	}
	records := make([]ProcessRecord, 0, len(jobs))
	for i, job := range jobs {
		if job.Arrival < 0 {
			return nil, fmt.Errorf("%w: process %d (pid %d): arrival must be >= 0, got %d",
				ErrInvalidInput, i+1, job.Pid, job.Arrival)
		}
		if job.Burst <= 0 {
			return nil, fmt.Errorf("%w: process %d (pid %d): burst must be > 0, got %d",
				ErrInvalidInput, i+1, job.Pid, job.Burst)
		}
		records = append(records, ProcessRecord{
			Pid:       job.Pid,
			Arrival:   job.Arrival,
			Burst:     job.Burst,
			Remaining: job.Burst,
		})
	}
	return &Table{records: records}, nil
}

func (t *Table) Len() int {
	return len(t.records)
}

// At returns the record at input index i. The pointer stays valid for the
// life of the table.
func (t *Table) At(i int) *ProcessRecord {
	return &t.records[i]
}

func (t *Table) AllDone() bool {
	for i := range t.records {
		if !t.records[i].Completed {
			return false
		}
	}
	return true
}

// Run executes the record at index i for the given number of units starting
// at clock, stamping the completion time if the record finishes.
func (t *Table) Run(i, units, clock int) {
	r := &t.records[i]
	r.Remaining -= units
	if r.Remaining == 0 {
		r.Completion = clock + units
		r.Completed = true
	}
}
