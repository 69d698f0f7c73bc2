package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/josefdc/Algoritmos-Despacho/internal/responses"
	"github.com/josefdc/Algoritmos-Despacho/internal/store"
)

func printSchedules(w io.Writer, runID string, schedules ...responses.ScheduleResponse) {
	if runID != "" {
		_, _ = fmt.Fprintf(w, "Run %s\n", runID)
	}
	for _, schedule := range schedules {
		_, _ = fmt.Fprintf(w, "\n%s\n", schedule.Algorithm)
		printTimeline(w, schedule)
		printMetrics(w, schedule)
		_, _ = fmt.Fprintf(w, "Total time: %d  Idle time: %d  CPU utilization: %.2f%%  Throughput: %.2f\n",
			schedule.TotalTime, schedule.IdleTime, schedule.CpuUtilization*100, schedule.CpuThroughput)
	}
}

func printTimeline(w io.Writer, schedule responses.ScheduleResponse) {
	rows := make([][]string, 0, len(schedule.Timeline))
	for _, entry := range schedule.Timeline {
		rows = append(rows, []string{entry.ProcessID, strconv.Itoa(entry.Start), strconv.Itoa(entry.End)})
	}
	printTable(w, []string{"PROCESS", "START", "END"}, rows, nil)
}

// printMetrics prints the metric set with a totals row and an averages row.
func printMetrics(w io.Writer, schedule responses.ScheduleResponse) {
	rows := make([][]string, 0, len(schedule.Metrics))
	for _, record := range schedule.Metrics {
		rows = append(rows, []string{record.ProcessID, strconv.Itoa(record.WaitingTime), strconv.Itoa(record.TurnaroundTime)})
	}
	footer := [][]string{
		{"Sum", strconv.Itoa(schedule.TotalWaitingTime), strconv.Itoa(schedule.TotalTurnAroundTime)},
		{"Average", fmt.Sprintf("%.2f", schedule.AverageWaitingTime), fmt.Sprintf("%.2f", schedule.AverageTurnAroundTime)},
	}
	printTable(w, []string{"PROCESS", "WAITING", "TURNAROUND"}, rows, footer)
}

func printRuns(w io.Writer, runs []*store.Run) {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		algorithms := make([]string, 0, len(run.Schedules))
		for _, schedule := range run.Schedules {
			algorithms = append(algorithms, schedule.Algorithm)
		}
		rows = append(rows, []string{
			run.ID,
			run.CreatedAt.Format(time.RFC3339),
			strings.Join(algorithms, ","),
			strconv.Itoa(len(run.Processes)),
		})
	}
	printTable(w, []string{"ID", "CREATED", "ALGORITHMS", "PROCESSES"}, rows, nil)
}

func printTable(w io.Writer, header []string, rows, footer [][]string) {
	widths := make([]int, len(header))
	for i, title := range header {
		widths[i] = len(title)
	}
	for _, row := range append(append([][]string{}, rows...), footer...) {
		for i, cell := range row {
			widths[i] = maxInt(widths[i], len(cell))
		}
	}

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	sep := "+-" + strings.Join(dashes, "-+-") + "-+\n"
	line := func(cells []string) {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = pad(cell, widths[i])
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	}

	_, _ = fmt.Fprint(w, sep)
	line(header)
	_, _ = fmt.Fprint(w, sep)
	for _, row := range rows {
		line(row)
	}
	if len(footer) > 0 {
		_, _ = fmt.Fprint(w, sep)
		for _, row := range footer {
			line(row)
		}
	}
	_, _ = fmt.Fprint(w, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
