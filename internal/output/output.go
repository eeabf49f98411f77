package output

import (
	"fmt"
	"io"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Exporting(id int64) {
	fmt.Fprintf(f.w, "📦 Exporting recording %d...\n", id)
}

func (f *Formatter) Sending(archiveName string) {
	fmt.Fprintf(f.w, "🚀 Sending %s (the wormhole code appears below)...\n", archiveName)
}

func (f *Formatter) SendDone(archiveName string) {
	fmt.Fprintf(f.w, "✅ Sent %s\n", archiveName)
}

func (f *Formatter) SendFailed(err error) {
	fmt.Fprintf(f.w, "⚠️  Transfer failed: %v (temporary files were cleaned up)\n", err)
}

func (f *Formatter) Receiving(code string) {
	fmt.Fprintf(f.w, "📥 Receiving recording with code %s...\n", code)
}

func (f *Formatter) ReceiveDone(dir string) {
	fmt.Fprintf(f.w, "✅ Recording stored in %s\n", dir)
}

func (f *Formatter) ReceiveFailed(err error) {
	fmt.Fprintf(f.w, "⚠️  Receive failed: %v (temporary files were cleaned up)\n", err)
}

func (f *Formatter) Visualizing(dbName string) {
	fmt.Fprintf(f.w, "📊 Visualizing %s...\n", dbName)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) RecordingListHeader() {
	fmt.Fprintf(f.w, "📼 Recordings:\n\n")
}

func (f *Formatter) RecordingListItem(id int64, startedAt time.Time, task string) {
	if task == "" {
		task = "(no description)"
	}
	fmt.Fprintf(f.w, "  %4d  %s  %s\n", id, startedAt.Format("2006-01-02 15:04:05"), task)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}
