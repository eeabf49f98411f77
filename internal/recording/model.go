package recording

import "time"

// Recording represents a captured recording stored in the database.
type Recording struct {
	ID                  int64
	Timestamp           int64 // unix seconds, assigned at capture time
	MonitorWidth        int64
	MonitorHeight       int64
	DoubleClickInterval float64
	Platform            string
	TaskDescription     string
}

// StartedAt returns the recording's capture time.
func (r *Recording) StartedAt() time.Time {
	return time.Unix(r.Timestamp, 0)
}

// Event is a single captured input event belonging to a recording.
type Event struct {
	ID          int64
	RecordingID int64
	Timestamp   float64
	Name        string
	Details     string // JSON payload as captured
}
