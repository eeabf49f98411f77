package app

import (
	"context"
	"fmt"
	"os"

	"github.com/onyedikachi-david/OpenAdapt/config"
	"github.com/onyedikachi-david/OpenAdapt/internal/db"
	"github.com/onyedikachi-david/OpenAdapt/internal/domain/recording/usecases"
	"github.com/onyedikachi-david/OpenAdapt/internal/llm"
	"github.com/onyedikachi-david/OpenAdapt/internal/visualize"
	"github.com/onyedikachi-david/OpenAdapt/internal/wormhole"
)

type App struct {
	Send      *usecases.SendRecording
	Receive   *usecases.ReceiveRecording
	Visualize *usecases.VisualizeRecording
	Wormhole  *wormhole.Client
	Registry  *llm.APIRegistry
	DB        *db.DB
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(context.Background()); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	transfer := &wormhole.Client{Executable: cfg.WormholePath}

	send := &usecases.SendRecording{
		Exporter:      database,
		Transfer:      transfer,
		RecordingsDir: cfg.RecordingsDir,
	}

	receive := &usecases.ReceiveRecording{
		Transfer:      transfer,
		RecordingsDir: cfg.RecordingsDir,
	}

	viz := &usecases.VisualizeRecording{
		Config:     cfg,
		Visualizer: visualize.NewSummary(os.Stdout),
	}

	registry := &llm.APIRegistry{
		BaseURL: cfg.CompletionURL,
		APIKey:  cfg.CompletionKey,
	}

	return &App{
		Send:      send,
		Receive:   receive,
		Visualize: viz,
		Wormhole:  transfer,
		Registry:  registry,
		DB:        database,
	}, nil
}

// Close releases the root database connection.
func (a *App) Close() error {
	return a.DB.Close()
}
