package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kravtmk/whoami-app/internal/config"
)

// NewStore opens the backend selected by STORAGE_BACKEND.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		slog.Default().Info("using file storage", "roles", cfg.RolesPath(), "days", cfg.DaysPath())
		return NewJSONStore(cfg.RolesPath(), cfg.DaysPath())
	case config.BackendPostgres:
		db, err := ConnectToBase(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Default().Info("using postgres storage")
		return NewPgStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
