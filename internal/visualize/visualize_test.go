package visualize

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onyedikachi-david/OpenAdapt/internal/db"
	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
)

func TestVisualizeSummarizesRecordings(t *testing.T) {
	d, err := db.OpenInMemory()
	require.NoError(t, err)
	defer d.Close()

	ctx := context.Background()
	require.NoError(t, d.Migrate(ctx))

	id, err := d.InsertRecording(ctx, &recording.Recording{
		Timestamp:       1700000000,
		TaskDescription: "open settings",
	})
	require.NoError(t, err)
	require.NoError(t, d.InsertEvents(ctx, []*recording.Event{
		{RecordingID: id, Timestamp: 1, Name: "click", Details: "{}"},
		{RecordingID: id, Timestamp: 2, Name: "click", Details: "{}"},
		{RecordingID: id, Timestamp: 3, Name: "press", Details: "{}"},
	}))

	var buf bytes.Buffer
	require.NoError(t, NewSummary(&buf).Visualize(ctx, d))

	out := buf.String()
	assert.Contains(t, out, "recording 1")
	assert.Contains(t, out, "task: open settings")
	assert.Contains(t, out, "events: 3")
	assert.Contains(t, out, "click")
	assert.Contains(t, out, "2")
}

func TestVisualizeEmptyDatabase(t *testing.T) {
	d, err := db.OpenInMemory()
	require.NoError(t, err)
	defer d.Close()
	require.NoError(t, d.Migrate(context.Background()))

	var buf bytes.Buffer
	require.NoError(t, NewSummary(&buf).Visualize(context.Background(), d))
	assert.Contains(t, buf.String(), "no recordings found")
}
