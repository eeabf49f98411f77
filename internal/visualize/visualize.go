// Package visualize renders a human-readable summary of a recording
// database. It stands in for the full visualization subsystem: a session
// bound to the target database comes in, a report goes out.
package visualize

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/onyedikachi-david/OpenAdapt/internal/db"
)

// Summary writes recording summaries to an output stream.
type Summary struct {
	w io.Writer
}

func NewSummary(w io.Writer) *Summary {
	return &Summary{w: w}
}

// Visualize prints every recording in the session's database along with its
// event breakdown.
func (s *Summary) Visualize(ctx context.Context, session *db.DB) error {
	recs, err := session.ListRecordings(ctx)
	if err != nil {
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(s.w, "no recordings found")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(s.w, "recording %d — %s\n", rec.ID, rec.StartedAt().Format(time.RFC1123))
		if rec.TaskDescription != "" {
			fmt.Fprintf(s.w, "  task: %s\n", rec.TaskDescription)
		}
		if rec.MonitorWidth > 0 && rec.MonitorHeight > 0 {
			fmt.Fprintf(s.w, "  monitor: %dx%d (%s)\n", rec.MonitorWidth, rec.MonitorHeight, rec.Platform)
		}

		events, err := session.EventsForRecording(ctx, rec.ID)
		if err != nil {
			return err
		}

		counts := map[string]int{}
		var order []string
		for _, ev := range events {
			if counts[ev.Name] == 0 {
				order = append(order, ev.Name)
			}
			counts[ev.Name]++
		}

		fmt.Fprintf(s.w, "  events: %d\n", len(events))
		for _, name := range order {
			fmt.Fprintf(s.w, "    %-12s %d\n", name, counts[name])
		}
	}

	return nil
}
