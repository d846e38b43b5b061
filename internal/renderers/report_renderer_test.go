package renderers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"timegrid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dec18 = models.SingleDate(models.Date{Year: 2009, Month: time.December, Day: 18})

func renderReport(t *testing.T, summary bool, report *models.Report) string {
	t.Helper()
	grid, err := NewGridRenderer(models.RenderRuler)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReportRenderer(grid, summary).Render(&buf, report))
	return buf.String()
}

func TestReportRenderer_Banner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		selection models.DateSelection
		want      string
	}{
		{name: "single date", selection: dec18, want: "Requests handled on 2009-12-18:"},
		{name: "all days", selection: models.AllDates(), want: "Requests handled on all days:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := renderReport(t, false, models.NewReport("run", tt.selection, nil, nil, nil))
			lines := strings.Split(out, "\n")
			assert.Equal(t, tt.want, lines[0])
			assert.Equal(t, rulerHeader, lines[1])
			assert.Len(t, lines, 1+25+1, "banner, grid, trailing newline")
		})
	}
}

func TestReportRenderer_Summary(t *testing.T) {
	t.Parallel()

	buckets := models.BucketMap{
		{Hour: 16, Minute: 17}: 2,
		{Hour: 9, Minute: 5}:   2,
		{Hour: 20, Minute: 0}:  1,
	}
	agents := []models.AgentCount{
		{Name: "curl", Count: 3},
		{Name: "Chrome", Count: 1},
		{Name: "Firefox", Count: 1},
	}
	out := renderReport(t, true, models.NewReport("run", dec18, nil, buckets, agents))

	summary := out[strings.Index(out, "\nSummary:\n"):]
	assert.Equal(t, "\nSummary:\n"+
		"  total requests: 5\n"+
		"  active minutes: 3\n"+
		"  busiest minute: 09:05 (2 requests)\n"+
		"  top agents:\n"+
		"    curl                     3\n"+
		"    Chrome                   1\n"+
		"    Firefox                  1\n", summary)
}

func TestReportRenderer_SummaryOfEmptyReport(t *testing.T) {
	t.Parallel()

	out := renderReport(t, true, models.NewReport("run", dec18, nil, nil, nil))

	assert.Contains(t, out, "  busiest minute: -\n")
	assert.NotContains(t, out, "top agents")
}

func TestReportRenderer_SummaryCapsAgents(t *testing.T) {
	t.Parallel()

	agents := []models.AgentCount{
		{Name: "a", Count: 7}, {Name: "b", Count: 6}, {Name: "c", Count: 5},
		{Name: "d", Count: 4}, {Name: "e", Count: 3}, {Name: "f", Count: 2},
	}
	out := renderReport(t, true, models.NewReport("run", dec18, nil, nil, agents))

	assert.Contains(t, out, "    e ")
	assert.NotContains(t, out, "    f ")
}
