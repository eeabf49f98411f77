package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
)

// ExportRecording copies a single recording and its events into a fresh
// standalone database file in destDir, named recording_<id>_<timestamp>.db
// where the timestamp is the recording's own capture timestamp. Returns the
// path of the created file.
func (d *DB) ExportRecording(ctx context.Context, id int64, destDir string) (string, error) {
	rec, err := d.GetRecording(ctx, id)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	destPath := filepath.Join(destDir, recording.EncodeFilename(rec.ID, rec.Timestamp))

	// Start from a clean file so a re-export does not append to stale data.
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("removing stale export: %w", err)
	}

	dest, err := Open(destPath)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if err := dest.Migrate(ctx); err != nil {
		return "", err
	}

	if _, err := dest.db.ExecContext(ctx, `
		INSERT INTO recordings (id, timestamp, monitor_width, monitor_height,
			double_click_interval_seconds, platform, task_description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Timestamp, rec.MonitorWidth, rec.MonitorHeight,
		rec.DoubleClickInterval, rec.Platform, rec.TaskDescription,
	); err != nil {
		return "", fmt.Errorf("copying recording row: %w", err)
	}

	events, err := d.EventsForRecording(ctx, id)
	if err != nil {
		return "", err
	}
	if err := dest.InsertEvents(ctx, events); err != nil {
		return "", err
	}

	return destPath, nil
}
