package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sqlx.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
// foreign_keys=ON is what makes the profile→registration cascade work.
func applyPragmas(ctx context.Context, db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// GetProfile returns the profile for userID, or (nil, nil) when no row exists.
func (r *SQLiteRepo) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, `
		SELECT user_id, user_name, birth_date, chat_id
		FROM users
		WHERE user_id = ?`,
		userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain()
}

// UpsertProfile inserts or overwrites the profile keyed by user_id.
// chat_id merges with COALESCE so the date-collection step, which has
// no chat yet, cannot erase a notification target stored earlier.
func (r *SQLiteRepo) UpsertProfile(ctx context.Context, p *domain.Profile) error {
	if p == nil {
		return errors.New("nil profile")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, user_name, birth_date, chat_id, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			user_name  = excluded.user_name,
			birth_date = excluded.birth_date,
			chat_id    = COALESCE(excluded.chat_id, users.chat_id),
			updated_at = excluded.updated_at`,
		p.UserID, p.Name, p.BirthDate.Format(dateLayout),
		toNullInt64(p.ChatID), time.Now().UTC().Unix(),
	)
	return err
}

// DeleteProfile removes the profile; the live-message registration
// goes with it via ON DELETE CASCADE.
func (r *SQLiteRepo) DeleteProfile(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID)
	return err
}

// UpsertLiveMessage registers (or re-points) the live countdown message
// for a user.
func (r *SQLiteRepo) UpsertLiveMessage(ctx context.Context, m *domain.LiveMessage) error {
	if m == nil {
		return errors.New("nil live message")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO realtime_messages (user_id, chat_id, message_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			chat_id    = excluded.chat_id,
			message_id = excluded.message_id,
			created_at = excluded.created_at`,
		m.UserID, m.ChatID, m.MessageID, time.Now().UTC().Unix(),
	)
	return err
}

// DeleteLiveMessage drops the registration for userID, if any.
func (r *SQLiteRepo) DeleteLiveMessage(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM realtime_messages WHERE user_id = ?`, userID)
	return err
}

// ListLiveMessages returns every registration joined with the owning
// profile's birth date. The inner join silently drops registrations
// whose profile is gone.
func (r *SQLiteRepo) ListLiveMessages(ctx context.Context) ([]domain.LiveMessage, error) {
	var rows []liveRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT r.user_id, r.chat_id, r.message_id, u.birth_date
		FROM realtime_messages r
		JOIN users u ON u.user_id = r.user_id`,
	)
	if err != nil {
		return nil, err
	}

	res := make([]domain.LiveMessage, 0, len(rows))
	for _, row := range rows {
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, nil
}

// ListNotifiable returns all profiles that have a notification chat.
func (r *SQLiteRepo) ListNotifiable(ctx context.Context) ([]domain.Profile, error) {
	var rows []profileRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT user_id, user_name, birth_date, chat_id
		FROM users
		WHERE chat_id IS NOT NULL`,
	)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}
	return res, nil
}
