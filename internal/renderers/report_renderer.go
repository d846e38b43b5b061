package renderers

import (
	"bufio"
	"fmt"
	"io"

	"timegrid/internal/models"
)

const summaryTopAgents = 5

// ReportRenderer writes the banner, the grid and, when enabled, the summary
// block of a report.
type ReportRenderer interface {
	Render(w io.Writer, report *models.Report) error
}

type reportRenderer struct {
	grid    GridRenderer
	summary bool
}

func NewReportRenderer(grid GridRenderer, summary bool) ReportRenderer {
	return &reportRenderer{grid: grid, summary: summary}
}

func (r *reportRenderer) Render(w io.Writer, report *models.Report) error {
	if _, err := fmt.Fprintf(w, "Requests handled on %s:\n", report.Selection.Label()); err != nil {
		return errWriteFailed(err)
	}
	if err := r.grid.Render(w, report.Buckets); err != nil {
		return err
	}
	if !r.summary {
		return nil
	}
	return writeSummary(w, report)
}

func writeSummary(w io.Writer, report *models.Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nSummary:\n")
	fmt.Fprintf(bw, "  %-16s%d\n", "total requests:", report.TotalRequests)
	fmt.Fprintf(bw, "  %-16s%d\n", "active minutes:", report.ActiveMinutes)
	if key, count, ok := report.Buckets.Busiest(); ok {
		fmt.Fprintf(bw, "  %-16s%s (%d requests)\n", "busiest minute:", key, count)
	} else {
		fmt.Fprintf(bw, "  %-16s-\n", "busiest minute:")
	}

	agents := report.TopAgents
	if len(agents) > summaryTopAgents {
		agents = agents[:summaryTopAgents]
	}
	if len(agents) > 0 {
		fmt.Fprintf(bw, "  top agents:\n")
		for _, agent := range agents {
			fmt.Fprintf(bw, "    %-24s %d\n", agent.Name, agent.Count)
		}
	}

	if err := bw.Flush(); err != nil {
		return errWriteFailed(err)
	}
	return nil
}
