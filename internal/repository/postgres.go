package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kravtmk/whoami-app/internal/apperror"
	"github.com/Kravtmk/whoami-app/internal/model"
)

type pgStore struct {
	db *sql.DB
}

func NewPgStore(db *sql.DB) Store {
	return &pgStore{db: db}
}

func (r *pgStore) LoadRoles(ctx context.Context) ([]model.Role, bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM registry_meta WHERE name = 'roles')").Scan(&found); err != nil {
		return nil, false, fmt.Errorf("%w: %w", apperror.ErrCannotReadStore, err)
	}
	if !found {
		return nil, false, nil
	}
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, percent FROM roles ORDER BY position")
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", apperror.ErrCannotReadStore, err)
	}
	defer rows.Close()
	roles := []model.Role{}
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Percent); err != nil {
			return nil, false, fmt.Errorf("scan failed: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", apperror.ErrDuringRowsIteration, err)
	}
	return roles, true, nil
}

func (r *pgStore) SaveRoles(ctx context.Context, roles []model.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrFailedBTransaction, err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, "DELETE FROM roles"); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
	}
	stmtAdd, err := tx.PrepareContext(ctx, "INSERT INTO roles (position, id, name, percent) VALUES ($1, $2, $3, $4)")
	if err != nil {
		return fmt.Errorf("failed to prepare add statement: %w", err)
	}
	defer stmtAdd.Close()
	for i, role := range roles {
		if _, err := stmtAdd.ExecContext(ctx, i, role.ID, role.Name, role.Percent); err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
		}
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO registry_meta (name) VALUES ('roles') ON CONFLICT (name) DO NOTHING"); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrFailedCTransaction, err)
	}
	return nil
}

func (r *pgStore) GetDayLog(ctx context.Context, userID, day string) (*model.DayLog, bool, error) {
	log := &model.DayLog{UserID: userID, Day: day, Segments: []model.Segment{}}
	err := r.db.QueryRowContext(ctx,
		"SELECT sleep_minutes, buffer_minutes FROM day_logs WHERE user_id = $1 AND day = $2",
		userID, day,
	).Scan(&log.SleepMinutes, &log.BufferMinutes)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", apperror.ErrCannotReadStore, err)
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT role_id, minutes, note
        FROM segments
        WHERE user_id = $1 AND day = $2
        ORDER BY position
    `, userID, day)
	if err != nil {
		return nil, false, fmt.Errorf("db query failed: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var seg model.Segment
		var note sql.NullString
		if err := rows.Scan(&seg.RoleID, &seg.Minutes, &note); err != nil {
			return nil, false, fmt.Errorf("scan failed: %w", err)
		}
		if note.Valid {
			seg.Note = &note.String
		}
		log.Segments = append(log.Segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("%w: %w", apperror.ErrDuringRowsIteration, err)
	}
	return log, true, nil
}

func (r *pgStore) SaveDayLog(ctx context.Context, log *model.DayLog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrFailedBTransaction, err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `
        INSERT INTO day_logs (user_id, day, sleep_minutes, buffer_minutes)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, day)
        DO UPDATE SET sleep_minutes = EXCLUDED.sleep_minutes, buffer_minutes = EXCLUDED.buffer_minutes;
    `, log.UserID, log.Day, log.SleepMinutes, log.BufferMinutes); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM segments WHERE user_id = $1 AND day = $2", log.UserID, log.Day); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
	}
	stmtAdd, err := tx.PrepareContext(ctx, `
        INSERT INTO segments (user_id, day, position, role_id, minutes, note)
        VALUES ($1, $2, $3, $4, $5, $6)
    `)
	if err != nil {
		return fmt.Errorf("failed to prepare add statement: %w", err)
	}
	defer stmtAdd.Close()
	for i, seg := range log.Segments {
		if _, err := stmtAdd.ExecContext(ctx, log.UserID, log.Day, i, seg.RoleID, seg.Minutes, seg.Note); err != nil {
			return fmt.Errorf("%w: %w", apperror.ErrCannotWriteStore, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrFailedCTransaction, err)
	}
	return nil
}

func (r *pgStore) Close() error {
	return r.db.Close()
}

var _ Store = (*pgStore)(nil)
