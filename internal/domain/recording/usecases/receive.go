package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/onyedikachi-david/OpenAdapt/internal/archive"
	"github.com/onyedikachi-david/OpenAdapt/internal/wormhole"
)

// receivedArchiveName is the fixed name the incoming archive is written to
// before extraction.
const receivedArchiveName = "recording.zip"

// ReceiveRecording fetches a recording archive by wormhole code and unpacks
// it into the recordings directory.
type ReceiveRecording struct {
	Transfer      wormhole.Transfer
	RecordingsDir string
}

// ReceiveResult reports the outcome of a receive attempt.
type ReceiveResult struct {
	Received bool
	Err      error
}

// Execute receives the archive identified by code into the recordings
// directory and extracts it in place. The intermediate archive is deleted
// before returning on every path. Transfer and extraction failures are
// logged and reported in the result rather than returned as errors.
func (r *ReceiveRecording) Execute(ctx context.Context, code string) (*ReceiveResult, error) {
	if err := os.MkdirAll(r.RecordingsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating recordings directory: %w", err)
	}

	archivePath := filepath.Join(r.RecordingsDir, receivedArchiveName)

	defer func() {
		if _, err := os.Stat(archivePath); err == nil {
			if err := os.Remove(archivePath); err != nil {
				slog.Error("deleting received archive", "path", archivePath, "error", err)
				return
			}
			slog.Info("deleted received archive", "path", archivePath)
		}
	}()

	if err := r.Transfer.Receive(ctx, code, archivePath); err != nil {
		slog.Error("receiving archive", "code", code, "error", err)
		return &ReceiveResult{Err: err}, nil
	}

	if err := archive.Extract(archivePath, r.RecordingsDir); err != nil {
		slog.Error("extracting received archive", "path", archivePath, "error", err)
		return &ReceiveResult{Err: err}, nil
	}

	return &ReceiveResult{Received: true}, nil
}
