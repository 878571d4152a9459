package store

import (
	"context"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// Repo defines storage operations for profiles and live countdown messages.
type Repo interface {
	// GetProfile returns the stored profile or (nil, nil) when absent.
	GetProfile(ctx context.Context, userID int64) (*domain.Profile, error)
	// UpsertProfile inserts or overwrites a profile keyed by user id.
	// A nil ChatID preserves any previously stored notification chat.
	UpsertProfile(ctx context.Context, p *domain.Profile) error
	DeleteProfile(ctx context.Context, userID int64) error

	// UpsertLiveMessage registers the one live countdown message for a
	// user, replacing any previous registration.
	UpsertLiveMessage(ctx context.Context, m *domain.LiveMessage) error
	DeleteLiveMessage(ctx context.Context, userID int64) error
	// ListLiveMessages returns all registrations joined with the owning
	// profile's birth date; registrations without a profile are skipped.
	ListLiveMessages(ctx context.Context) ([]domain.LiveMessage, error)

	// ListNotifiable returns all profiles with a notification chat set.
	ListNotifiable(ctx context.Context) ([]domain.Profile, error)

	Close() error
}
