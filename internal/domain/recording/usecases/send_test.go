package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
	"github.com/onyedikachi-david/OpenAdapt/internal/wormhole"
)

// fileExporter drops a fake exported database file, optionally with a
// filename that breaks the naming scheme.
type fileExporter struct {
	filename string
	err      error
}

func (e *fileExporter) ExportRecording(_ context.Context, id int64, destDir string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(destDir, e.filename)
	return path, os.WriteFile(path, []byte("exported recording data"), 0o644)
}

// fakeTransfer records calls and optionally fails.
type fakeTransfer struct {
	sentPaths     []string
	receivedCodes []string
	sendErr       error
	receiveErr    error

	// onReceive writes the archive the real tool would have produced.
	onReceive func(outputPath string) error
}

func (t *fakeTransfer) Send(_ context.Context, path string) error {
	t.sentPaths = append(t.sentPaths, path)
	return t.sendErr
}

func (t *fakeTransfer) Receive(_ context.Context, code, outputPath string) error {
	t.receivedCodes = append(t.receivedCodes, code)
	if t.receiveErr != nil {
		return t.receiveErr
	}
	if t.onReceive != nil {
		return t.onReceive(outputPath)
	}
	return nil
}

func TestSendRecordingHappyPath(t *testing.T) {
	dir := t.TempDir()
	transfer := &fakeTransfer{}
	s := &SendRecording{
		Exporter:      &fileExporter{filename: "recording_1_1700000000.db"},
		Transfer:      transfer,
		RecordingsDir: dir,
	}

	result, err := s.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, result.Sent)
	assert.NoError(t, result.TransferErr)
	assert.Equal(t, "recording_1_1700000000.zip", result.ArchiveName)

	// The transfer saw the archive path
	require.Len(t, transfer.sentPaths, 1)
	assert.Equal(t, filepath.Join(dir, "recording_1_1700000000.zip"), transfer.sentPaths[0])

	// Neither the exported database nor the archive survives
	assertNoFile(t, filepath.Join(dir, "recording_1_1700000000.db"))
	assertNoFile(t, filepath.Join(dir, "recording_1_1700000000.zip"))
}

func TestSendRecordingTransferFailureStillCleansUp(t *testing.T) {
	dir := t.TempDir()
	transferErr := &wormhole.TransferError{Op: "send", Err: errors.New("exit status 1")}
	transfer := &fakeTransfer{sendErr: transferErr}
	s := &SendRecording{
		Exporter:      &fileExporter{filename: "recording_1_1700000000.db"},
		Transfer:      transfer,
		RecordingsDir: dir,
	}

	result, err := s.Execute(context.Background(), 1)
	require.NoError(t, err) // transfer failure is reported, not returned
	assert.False(t, result.Sent)
	assert.ErrorIs(t, result.TransferErr, transferErr)

	assertNoFile(t, filepath.Join(dir, "recording_1_1700000000.db"))
	assertNoFile(t, filepath.Join(dir, "recording_1_1700000000.zip"))
}

func TestSendRecordingExportFailurePropagates(t *testing.T) {
	wantErr := errors.New("recording not found")
	s := &SendRecording{
		Exporter:      &fileExporter{err: wantErr},
		Transfer:      &fakeTransfer{},
		RecordingsDir: t.TempDir(),
	}

	_, err := s.Execute(context.Background(), 1)
	require.ErrorIs(t, err, wantErr)
}

func TestSendRecordingBadExportFilename(t *testing.T) {
	dir := t.TempDir()
	s := &SendRecording{
		Exporter:      &fileExporter{filename: "recording_oops.db"},
		Transfer:      &fakeTransfer{},
		RecordingsDir: dir,
	}

	_, err := s.Execute(context.Background(), 1)
	require.Error(t, err)

	var fe *recording.FormatError
	assert.True(t, errors.As(err, &fe))

	// The exported file stays behind when the flow breaks before archiving.
	_, statErr := os.Stat(filepath.Join(dir, "recording_oops.db"))
	assert.NoError(t, statErr)
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "expected %s to be gone", path)
}
