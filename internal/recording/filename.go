package recording

import (
	"fmt"
	"regexp"
	"strconv"
)

// Exported recording files are named recording_<id>_<timestamp>.db and the
// archives that wrap them recording_<id>_<timestamp>.zip. Decoding is strict:
// anything that is not exactly the .db pattern is rejected.
var filenamePattern = regexp.MustCompile(`^recording_(\d+)_(\d+)\.db$`)

// FormatError indicates a filename that does not match the exported
// recording naming scheme.
type FormatError struct {
	Filename string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid recording filename format: %q", e.Filename)
}

// EncodeFilename returns the database filename for an exported recording.
func EncodeFilename(id, timestamp int64) string {
	return fmt.Sprintf("recording_%d_%d.db", id, timestamp)
}

// ArchiveName returns the archive filename for an exported recording.
func ArchiveName(id, timestamp int64) string {
	return fmt.Sprintf("recording_%d_%d.zip", id, timestamp)
}

// DecodeFilename extracts the timestamp from an exported recording filename.
// Returns a *FormatError if the name does not match the scheme exactly.
func DecodeFilename(filename string) (int64, error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return 0, &FormatError{Filename: filename}
	}
	timestamp, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, &FormatError{Filename: filename}
	}
	return timestamp, nil
}
