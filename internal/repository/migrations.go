package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/Kravtmk/whoami-app/internal/apperror"
)

//go:embed migrations/schema.sql
var schemaSQL string

func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: error executing schema.sql: %w", apperror.ErrCannotCreateT, err)
	}
	return nil
}
