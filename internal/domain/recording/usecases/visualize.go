package usecases

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/onyedikachi-david/OpenAdapt/config"
	"github.com/onyedikachi-david/OpenAdapt/internal/db"
)

// Visualizer consumes a session bound to the target database.
type Visualizer interface {
	Visualize(ctx context.Context, session *db.DB) error
}

// VisualizeRecording opens a named recording database, migrates it to the
// current schema, and hands a session to the visualizer.
type VisualizeRecording struct {
	Config     *config.Config
	Visualizer Visualizer
}

// Execute visualizes the named database. DB_FNAME (the active-database
// setting, both the process env var and the persisted env file) is pointed
// at dbName for the duration of the call and restored afterwards, including
// when migration or the visualizer fails. Those failures are logged, not
// returned: the caller observes a completed call.
func (v *VisualizeRecording) Execute(ctx context.Context, dbName string) error {
	var dbPath string
	if dbName == config.DefaultDBFilename {
		dbPath = filepath.Join(v.Config.RootDir, dbName)
	} else {
		dbPath = filepath.Join(v.Config.RecordingsDir, dbName)
	}

	oldVal, hadOld := os.LookupEnv("DB_FNAME")
	if err := os.Setenv("DB_FNAME", dbName); err != nil {
		return err
	}
	if err := v.Config.PersistEnv("DB_FNAME", dbName); err != nil {
		return err
	}

	defer func() {
		if hadOld {
			_ = os.Setenv("DB_FNAME", oldVal)
		} else {
			_ = os.Unsetenv("DB_FNAME")
		}
		if err := v.Config.PersistEnv("DB_FNAME", oldVal); err != nil {
			slog.Error("restoring persisted DB_FNAME", "error", err)
		}
	}()

	session, err := db.Open(dbPath)
	if err != nil {
		slog.Error("opening recording database", "path", dbPath, "error", err)
		return nil
	}
	defer session.Close()

	if err := session.Migrate(ctx); err != nil {
		slog.Error("migrating recording database", "path", dbPath, "error", err)
		return nil
	}

	if err := v.Visualizer.Visualize(ctx, session); err != nil {
		slog.Error("visualizing recording", "path", dbPath, "error", err)
	}
	return nil
}
