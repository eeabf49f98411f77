package usecases

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/onyedikachi-david/OpenAdapt/internal/archive"
	"github.com/onyedikachi-david/OpenAdapt/internal/recording"
	"github.com/onyedikachi-david/OpenAdapt/internal/wormhole"
)

// Exporter exports a recording into a standalone database file and returns
// its path. Satisfied by *db.DB.
type Exporter interface {
	ExportRecording(ctx context.Context, id int64, destDir string) (string, error)
}

// SendRecording exports a recording, archives it, and sends the archive
// through the transfer tool.
type SendRecording struct {
	Exporter      Exporter
	Transfer      wormhole.Transfer
	RecordingsDir string
}

// SendResult reports the outcome of a send attempt. A failed transfer is not
// an error of the operation itself: the archive was built and cleanup ran,
// so the caller decides whether the failure is fatal.
type SendResult struct {
	ArchiveName string
	Sent        bool
	TransferErr error
}

// Execute exports recording id, zips it, and sends the zip. The exported
// database file is deleted once archived; the archive is deleted before
// returning whether or not the transfer succeeded. Export, filename and
// archiving failures propagate as errors.
func (s *SendRecording) Execute(ctx context.Context, id int64) (*SendResult, error) {
	dbPath, err := s.Exporter.ExportRecording(ctx, id, s.RecordingsDir)
	if err != nil {
		return nil, err
	}

	// An archiving failure below leaves the exported file behind; callers
	// can re-run send, which overwrites it.
	timestamp, err := recording.DecodeFilename(filepath.Base(dbPath))
	if err != nil {
		return nil, err
	}

	entryName := recording.EncodeFilename(id, timestamp)
	archivePath := filepath.Join(s.RecordingsDir, recording.ArchiveName(id, timestamp))
	if err := archive.Create(dbPath, archivePath, entryName); err != nil {
		return nil, err
	}
	slog.Info("created archive", "path", archivePath)

	if err := os.Remove(dbPath); err != nil {
		return nil, err
	}
	slog.Info("deleted exported database", "path", dbPath)

	defer func() {
		if _, err := os.Stat(archivePath); err == nil {
			if err := os.Remove(archivePath); err != nil {
				slog.Error("deleting archive", "path", archivePath, "error", err)
				return
			}
			slog.Info("deleted archive", "path", archivePath)
		}
	}()

	result := &SendResult{ArchiveName: filepath.Base(archivePath)}
	if err := s.Transfer.Send(ctx, archivePath); err != nil {
		slog.Error("sending archive", "path", archivePath, "error", err)
		result.TransferErr = err
		return result, nil
	}

	result.Sent = true
	return result, nil
}
