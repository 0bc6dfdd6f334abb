package schedulers

import (
	"errors"
	"reflect"
	"testing"

	"cpu-sim/internal/core"
)

func TestNewRoundRobinRejectsBadQuantum(t *testing.T) {
	for _, q := range []int{0, -1} {
		if _, err := NewRoundRobin(q); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("NewRoundRobin(%d) error = %v, want ErrInvalidInput", q, err)
		}
	}
}

// Three processes, quantum 2. P3 arrives at t=3, inside P2's slice, so it
// must be queued ahead of P2 when P2's slice expires.
func TestRoundRobinTrace(t *testing.T) {
	jobs := []core.Job{
		{Pid: 1, Arrival: 0, Burst: 4},
		{Pid: 2, Arrival: 1, Burst: 3},
		{Pid: 3, Arrival: 3, Burst: 2},
	}
	rr, err := NewRoundRobin(2)
	if err != nil {
		t.Fatal(err)
	}
	table := newTable(t, jobs)
	timeline := Run(table, rr)
	checkTrace(t, table, timeline)

	want := []core.Segment{
		{Pid: 1, Start: 0, End: 2},
		{Pid: 2, Start: 2, End: 4},
		{Pid: 1, Start: 4, End: 6},
		{Pid: 3, Start: 6, End: 8},
		{Pid: 2, Start: 8, End: 9},
	}
	if got := timeline.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}

	response := GenerateResponse(table, timeline)
	wantWaits := []int{2, 5, 3}
	for i, d := range response.Details {
		if d.WaitingTime != wantWaits[i] {
			t.Errorf("pid %d waiting = %d, want %d", d.ProcessId, d.WaitingTime, wantWaits[i])
		}
		if d.TurnAroundTime != d.WaitingTime+d.BurstTime {
			t.Errorf("pid %d turnaround = %d, want waiting+burst = %d",
				d.ProcessId, d.TurnAroundTime, d.WaitingTime+d.BurstTime)
		}
	}
	if response.AverageWaitingTime != 10.0/3.0 {
		t.Errorf("average waiting = %v, want %v", response.AverageWaitingTime, 10.0/3.0)
	}
	if response.AverageTurnAroundTime != 19.0/3.0 {
		t.Errorf("average turnaround = %v, want %v", response.AverageTurnAroundTime, 19.0/3.0)
	}
}

func TestRoundRobinIdleGap(t *testing.T) {
	jobs := []core.Job{
		{Pid: 1, Arrival: 0, Burst: 2},
		{Pid: 2, Arrival: 5, Burst: 1},
	}
	rr, err := NewRoundRobin(4)
	if err != nil {
		t.Fatal(err)
	}
	table := newTable(t, jobs)
	timeline := Run(table, rr)
	checkTrace(t, table, timeline)

	want := []core.Segment{
		{Pid: 1, Start: 0, End: 2},
		{Idle: true, Start: 2, End: 5},
		{Pid: 2, Start: 5, End: 6},
	}
	if got := timeline.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
}

// A quantum larger than every burst degenerates to FCFS order.
func TestRoundRobinLargeQuantum(t *testing.T) {
	jobs := []core.Job{
		{Pid: 1, Arrival: 0, Burst: 3},
		{Pid: 2, Arrival: 1, Burst: 2},
	}
	rr, err := NewRoundRobin(100)
	if err != nil {
		t.Fatal(err)
	}
	table := newTable(t, jobs)
	timeline := Run(table, rr)
	checkTrace(t, table, timeline)

	want := []core.Segment{
		{Pid: 1, Start: 0, End: 3},
		{Pid: 2, Start: 3, End: 5},
	}
	if got := timeline.Segments(); !reflect.DeepEqual(got, want) {
		t.Fatalf("segments = %v, want %v", got, want)
	}
}
