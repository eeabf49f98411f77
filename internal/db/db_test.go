package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, d.Migrate(context.Background()))
	return d
}

func TestMigrateIsIdempotent(t *testing.T) {
	d := newTestDB(t)
	require.NoError(t, d.Migrate(context.Background()))
	require.NoError(t, d.Migrate(context.Background()))
}

func TestInsertAndGetRecording(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	rec := &recording.Recording{
		Timestamp:       1700000000,
		MonitorWidth:    2560,
		MonitorHeight:   1440,
		Platform:        "linux",
		TaskDescription: "fill out expense report",
	}
	id, err := d.InsertRecording(ctx, rec)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := d.GetRecording(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec.Timestamp, got.Timestamp)
	assert.Equal(t, rec.TaskDescription, got.TaskDescription)
	assert.Equal(t, rec.MonitorWidth, got.MonitorWidth)
}

func TestGetRecordingNotFound(t *testing.T) {
	d := newTestDB(t)
	_, err := d.GetRecording(context.Background(), 12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListRecordingsNewestFirst(t *testing.T) {
	d := newTestDB(t)
	ctx := context.Background()

	_, err := d.InsertRecording(ctx, &recording.Recording{Timestamp: 100})
	require.NoError(t, err)
	_, err = d.InsertRecording(ctx, &recording.Recording{Timestamp: 300})
	require.NoError(t, err)
	_, err = d.InsertRecording(ctx, &recording.Recording{Timestamp: 200})
	require.NoError(t, err)

	recs, err := d.ListRecordings(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, int64(300), recs[0].Timestamp)
	assert.Equal(t, int64(100), recs[2].Timestamp)
}

func TestExportRecording(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	src, err := Open(filepath.Join(dir, "openadapt.db"))
	require.NoError(t, err)
	defer src.Close()
	require.NoError(t, src.Migrate(ctx))

	rec := &recording.Recording{Timestamp: 1700000000, TaskDescription: "demo"}
	id, err := src.InsertRecording(ctx, rec)
	require.NoError(t, err)

	events := []*recording.Event{
		{RecordingID: id, Timestamp: 1700000000.5, Name: "click", Details: `{"x":1,"y":2}`},
		{RecordingID: id, Timestamp: 1700000001.0, Name: "press", Details: `{"key":"a"}`},
	}
	require.NoError(t, src.InsertEvents(ctx, events))

	exportDir := filepath.Join(dir, "recordings")
	path, err := src.ExportRecording(ctx, id, exportDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exportDir, recording.EncodeFilename(id, 1700000000)), path)

	_, err = os.Stat(path)
	require.NoError(t, err)

	exported, err := Open(path)
	require.NoError(t, err)
	defer exported.Close()

	got, err := exported.GetRecording(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "demo", got.TaskDescription)

	gotEvents, err := exported.EventsForRecording(ctx, id)
	require.NoError(t, err)
	require.Len(t, gotEvents, 2)
	assert.Equal(t, "click", gotEvents[0].Name)
}

func TestExportRecordingMissing(t *testing.T) {
	d := newTestDB(t)
	_, err := d.ExportRecording(context.Background(), 99, t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
}
