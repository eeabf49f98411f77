package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
)

// ErrNotFound is returned when a recording does not exist.
var ErrNotFound = errors.New("recording not found")

// InsertRecording stores a recording and returns its assigned id.
func (d *DB) InsertRecording(ctx context.Context, rec *recording.Recording) (int64, error) {
	res, err := d.db.ExecContext(ctx, `
		INSERT INTO recordings (timestamp, monitor_width, monitor_height,
			double_click_interval_seconds, platform, task_description)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Timestamp, rec.MonitorWidth, rec.MonitorHeight,
		rec.DoubleClickInterval, rec.Platform, rec.TaskDescription,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting recording: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading recording id: %w", err)
	}
	rec.ID = id
	return id, nil
}

// GetRecording loads a recording by id. Returns ErrNotFound if absent.
func (d *DB) GetRecording(ctx context.Context, id int64) (*recording.Recording, error) {
	rec := &recording.Recording{}
	err := d.db.QueryRowContext(ctx, `
		SELECT id, timestamp, monitor_width, monitor_height,
			double_click_interval_seconds, platform, task_description
		FROM recordings WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Timestamp, &rec.MonitorWidth, &rec.MonitorHeight,
		&rec.DoubleClickInterval, &rec.Platform, &rec.TaskDescription)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recording %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading recording %d: %w", id, err)
	}
	return rec, nil
}

// ListRecordings returns all recordings, newest first.
func (d *DB) ListRecordings(ctx context.Context) ([]*recording.Recording, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, timestamp, monitor_width, monitor_height,
			double_click_interval_seconds, platform, task_description
		FROM recordings ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing recordings: %w", err)
	}
	defer rows.Close()

	var recs []*recording.Recording
	for rows.Next() {
		rec := &recording.Recording{}
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.MonitorWidth,
			&rec.MonitorHeight, &rec.DoubleClickInterval, &rec.Platform,
			&rec.TaskDescription); err != nil {
			return nil, fmt.Errorf("scanning recording: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// InsertEvents stores captured events for a recording in one transaction.
func (d *DB) InsertEvents(ctx context.Context, events []*recording.Event) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	for _, ev := range events {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO events (recording_id, timestamp, name, details)
			VALUES (?, ?, ?, ?)`,
			ev.RecordingID, ev.Timestamp, ev.Name, ev.Details); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting event: %w", err)
		}
	}
	return tx.Commit()
}

// EventsForRecording returns a recording's events in capture order.
func (d *DB) EventsForRecording(ctx context.Context, recordingID int64) ([]*recording.Event, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, recording_id, timestamp, name, details
		FROM events WHERE recording_id = ? ORDER BY timestamp`, recordingID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var events []*recording.Event
	for rows.Next() {
		ev := &recording.Event{}
		if err := rows.Scan(&ev.ID, &ev.RecordingID, &ev.Timestamp, &ev.Name, &ev.Details); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
