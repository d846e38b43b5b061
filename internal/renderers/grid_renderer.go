package renderers

import (
	"bufio"
	"fmt"
	"io"

	"timegrid/internal/models"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	hitCell    = "#"
	emptyCell  = " "
	tenMinMark = ":"

	// width of "HH:00 " so the ruler lines up with the hour rows
	rulerIndent = "      "
)

// GridRenderer draws a BucketMap as 24 hour rows of 60 minute cells.
//
// In ruler mode a header line numbers every ten minutes and empty cells at
// minutes 10, 20, 30, 40 and 50 show ':'. Plain mode has no header and leaves
// every empty cell blank. Rendering never consults the clock.
type GridRenderer interface {
	Render(w io.Writer, buckets models.BucketMap) error
}

type GridOption func(*gridRenderer)

// WithColor styles hit cells with ANSI colors.
func WithColor(enabled bool) GridOption {
	return func(r *gridRenderer) {
		r.color = enabled
	}
}

type gridRenderer struct {
	mode  models.RenderMode
	color bool
}

func NewGridRenderer(mode models.RenderMode, opts ...GridOption) (GridRenderer, error) {
	if !mode.Valid() {
		return nil, errUnsupportedMode(mode)
	}
	r := &gridRenderer{mode: mode}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *gridRenderer) Render(w io.Writer, buckets models.BucketMap) error {
	bw := bufio.NewWriter(w)
	hit := r.hitCell(w)

	if r.mode.HasRuler() {
		bw.WriteString(rulerIndent + "[")
		for m := 0; m < models.MinutesPerHour; m++ {
			switch m % 10 {
			case 0:
				fmt.Fprintf(bw, "%d", m/10)
			case 1:
				bw.WriteString("0")
			default:
				bw.WriteString(emptyCell)
			}
		}
		bw.WriteString("]\n")
	}

	for h := 0; h < models.HoursPerDay; h++ {
		fmt.Fprintf(bw, "%02d:00 [", h)
		for m := 0; m < models.MinutesPerHour; m++ {
			switch {
			case buckets.Count(h, m) > 0:
				bw.WriteString(hit)
			case r.mode.HasRuler() && m%10 == 0 && m > 0:
				bw.WriteString(tenMinMark)
			default:
				bw.WriteString(emptyCell)
			}
		}
		bw.WriteString("]\n")
	}

	if err := bw.Flush(); err != nil {
		return errWriteFailed(err)
	}
	return nil
}

func (r *gridRenderer) hitCell(w io.Writer) string {
	if !r.color {
		return hitCell
	}
	// Color was asked for explicitly, so it is kept even when w is not a terminal.
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42")).
		Render(hitCell)
}
