package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// Birth dates are stored as ISO text; SQLite has no date type.
const dateLayout = "2006-01-02"

type profileRow struct {
	UserID    int64         `db:"user_id"`
	UserName  string        `db:"user_name"`
	BirthDate string        `db:"birth_date"`
	ChatID    sql.NullInt64 `db:"chat_id"`
}

func (r profileRow) toDomain() (*domain.Profile, error) {
	bd, err := time.ParseInLocation(dateLayout, r.BirthDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("birth_date for user %d: %w", r.UserID, err)
	}
	return &domain.Profile{
		UserID:    r.UserID,
		Name:      r.UserName,
		BirthDate: bd,
		ChatID:    fromNullInt64(r.ChatID),
	}, nil
}

type liveRow struct {
	UserID    int64  `db:"user_id"`
	ChatID    int64  `db:"chat_id"`
	MessageID int    `db:"message_id"`
	BirthDate string `db:"birth_date"`
}

func (r liveRow) toDomain() (domain.LiveMessage, error) {
	bd, err := time.ParseInLocation(dateLayout, r.BirthDate, time.UTC)
	if err != nil {
		return domain.LiveMessage{}, fmt.Errorf("birth_date for user %d: %w", r.UserID, err)
	}
	return domain.LiveMessage{
		UserID:    r.UserID,
		ChatID:    r.ChatID,
		MessageID: r.MessageID,
		BirthDate: bd,
	}, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func fromNullInt64(ns sql.NullInt64) *int64 {
	if !ns.Valid {
		return nil
	}
	v := ns.Int64
	return &v
}
