package core

import (
	"errors"
	"testing"
)

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		jobs []Job
	}{
		{name: "empty process list", jobs: nil},
		{name: "negative arrival", jobs: []Job{{Pid: 1, Arrival: -1, Burst: 3}}},
		{name: "zero burst", jobs: []Job{{Pid: 1, Arrival: 0, Burst: 0}}},
		{name: "negative burst", jobs: []Job{{Pid: 1, Arrival: 0, Burst: -4}}},
		{name: "bad record after good ones", jobs: []Job{
			{Pid: 1, Arrival: 0, Burst: 2},
			{Pid: 2, Arrival: 1, Burst: -1},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.jobs); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Load(%v) error = %v, want ErrInvalidInput", tc.jobs, err)
			}
		})
	}
}

func TestLoadInitializesRecords(t *testing.T) {
	table, err := Load([]Job{
		{Pid: 7, Arrival: 2, Burst: 5},
		{Pid: 3, Arrival: 0, Burst: 1},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	r := table.At(0)
	if r.Pid != 7 || r.Arrival != 2 || r.Burst != 5 {
		t.Errorf("record 0 = %+v, input fields mangled", r)
	}
	if r.Remaining != r.Burst {
		t.Errorf("Remaining = %d, want burst %d", r.Remaining, r.Burst)
	}
	if r.Completed || r.Enqueued {
		t.Errorf("fresh record has Completed=%v Enqueued=%v, want false", r.Completed, r.Enqueued)
	}
}

// Duplicate pids are accepted as-is: each row keeps its own state.
func TestLoadAllowsDuplicatePids(t *testing.T) {
	table, err := Load([]Job{
		{Pid: 1, Arrival: 0, Burst: 2},
		{Pid: 1, Arrival: 1, Burst: 3},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.At(0).Burst == table.At(1).Burst {
		t.Fatal("records were merged, want independent records")
	}
}

func TestRunStampsCompletionOnce(t *testing.T) {
	table, err := Load([]Job{{Pid: 1, Arrival: 0, Burst: 3}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	table.Run(0, 2, 0)
	if table.At(0).Completed {
		t.Fatal("record completed with remaining time left")
	}
	table.Run(0, 1, 2)
	r := table.At(0)
	if !r.Completed || r.Completion != 3 {
		t.Fatalf("Completed=%v Completion=%d, want true/3", r.Completed, r.Completion)
	}
	if !table.AllDone() {
		t.Fatal("AllDone() = false after last record finished")
	}
}
