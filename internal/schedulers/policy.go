package schedulers

import "cpu-sim/internal/core"

// Decision is one scheduling verdict: either run the record at Index for
// Duration units starting at the current clock, or keep the CPU idle until
// the clock reaches Until.
type Decision struct {
	Idle     bool
	Until    int
	Index    int
	Duration int
}

// Policy picks what the CPU does next. Implementations may keep per-run
// state (ready queues, slice budgets) and are good for exactly one run.
type Policy interface {
	Name() string
	NextDecision(clock int, table *core.Table) Decision
}

// Run drives a simulation to completion: ask the policy for a decision,
// apply it to the table, record the segment, advance the clock. Termination
// follows from every burst being positive and policies only selecting
// unfinished records.
func Run(table *core.Table, policy Policy) *core.Timeline {
	timeline := &core.Timeline{}
	clock := 0
	for !table.AllDone() {
		d := policy.NextDecision(clock, table)
		if d.Idle {
			timeline.Append(core.Segment{Idle: true, Start: clock, End: d.Until})
			clock = d.Until
			continue
		}
		timeline.Append(core.Segment{
			Pid:   table.At(d.Index).Pid,
			Start: clock,
			End:   clock + d.Duration,
		})
		table.Run(d.Index, d.Duration, clock)
		clock += d.Duration
	}
	return timeline
}

// earliestPendingArrival finds the next arrival strictly after clock among
// unfinished records. ok is false only if no such record exists, which
// cannot happen while the driver still sees unfinished records and the
// policy found nothing ready.
func earliestPendingArrival(clock int, table *core.Table) (next int, ok bool) {
	for i := 0; i < table.Len(); i++ {
		r := table.At(i)
		if r.Completed || r.Arrival <= clock {
			continue
		}
		if !ok || r.Arrival < next {
			next = r.Arrival
			ok = true
		}
	}
	return next, ok
}

// idleUntilNextArrival builds the idle decision for a policy that found no
// ready record at clock.
func idleUntilNextArrival(clock int, table *core.Table) Decision {
	next, ok := earliestPendingArrival(clock, table)
	if !ok {
		next = clock + 1
	}
	return Decision{Idle: true, Until: next}
}
