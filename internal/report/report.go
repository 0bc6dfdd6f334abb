package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"cpu-sim/internal/responses"
)

// Write prints the execution trace and the results table in the plain
// fixed-width format. Given the same response it always produces the same
// bytes.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	fmt.Fprintf(w, "\n=== %s Execution Order ===\n", title)
	for _, seg := range response.Timeline {
		if seg.Idle {
			fmt.Fprintf(w, "[%d - %d] IDLE\n", seg.Start, seg.End)
		} else {
			fmt.Fprintf(w, "[%d - %d] P%d\n", seg.Start, seg.End, seg.ProcessId)
		}
	}

	fmt.Fprintf(w, "\n=== Results ===\n")
	fmt.Fprintf(w, "%-6s %-8s %-6s %-8s %-11s\n", "PID", "ARRIVE", "BURST", "WAIT", "TURNAROUND")
	for _, d := range response.Details {
		fmt.Fprintf(w, "%-6d %-8d %-6d %-8d %-11d\n",
			d.ProcessId, d.ArrivalTime, d.BurstTime, d.WaitingTime, d.TurnAroundTime)
	}

	fmt.Fprintf(w, "\nAverage waiting time: %.2f\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Average turnaround time: %.2f\n", response.AverageTurnAroundTime)
}

// WriteTable renders the same results as a bordered table.
func WriteTable(w io.Writer, title string, response responses.ScheduleResponse) {
	fmt.Fprintf(w, "\n=== %s Execution Order ===\n", title)
	for _, seg := range response.Timeline {
		if seg.Idle {
			fmt.Fprintf(w, "[%d - %d] IDLE\n", seg.Start, seg.End)
		} else {
			fmt.Fprintf(w, "[%d - %d] P%d\n", seg.Start, seg.End, seg.ProcessId)
		}
	}
	fmt.Fprintln(w)

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrive", "Burst", "Exit", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime)})
	table.Render()
}
