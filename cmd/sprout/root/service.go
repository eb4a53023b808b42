package root

import (
	"context"
	"log/slog"

	"sprout/internal/config"
	"sprout/internal/engine"
	"sprout/internal/logging"
	"sprout/internal/storage"
)

// openService loads config, sets up logging, and wires the engine with its
// snapshot store and journal. The returned cleanup closes the journal DB.
func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	logging.Setup(cfg.LogLevel)

	store := storage.NewSnapshotStore(cfg.SnapshotPath(), engine.DefaultPlantID)

	db, err := storage.OpenJournal(ctx, cfg.JournalPath())
	if err != nil {
		// The journal is side history; the companion still works without it.
		slog.Warn("journal unavailable, history disabled", "error", err)
		db = nil
	}

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
	}
	return engine.NewService(store, db), cfg, cleanup, nil
}
