package core

// Segment is one interval of the execution trace. Start is inclusive, End
// exclusive. Pid is meaningful only when Idle is false.
type Segment struct {
	Pid   int
	Idle  bool
	Start int
	End   int
}

// Timeline accumulates the trace in clock order, merging touching segments
// with the same owner on append so the output is already minimal.
type Timeline struct {
	segments []Segment
}

// Append records a segment. Zero-length segments are dropped; a segment that
// continues the previous one for the same owner extends it in place.
func (tl *Timeline) Append(seg Segment) {
	if seg.Start == seg.End {
		return
	}
	if n := len(tl.segments); n > 0 {
		last := &tl.segments[n-1]
		if last.Idle == seg.Idle && last.Pid == seg.Pid && last.End == seg.Start {
			last.End = seg.End
			return
		}
	}
	tl.segments = append(tl.segments, seg)
}

// Segments returns the trace in append order, which is also start order.
func (tl *Timeline) Segments() []Segment {
	return tl.segments
}
