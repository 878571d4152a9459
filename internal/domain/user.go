package domain

import "time"

// ProfileState classifies how far a user has progressed through onboarding.
// It is derived from stored fields at read time, never persisted.
type ProfileState int

const (
	// StateEmpty means nothing is stored for this user.
	StateEmpty ProfileState = iota
	// StateDateOnly means the birth date is stored but the name is not.
	StateDateOnly
	// StateComplete means birth date, name and notification chat are all set.
	StateComplete
)

// Profile is everything the bot knows about a user.
type Profile struct {
	UserID    int64
	Name      string
	BirthDate time.Time // calendar date at UTC midnight
	ChatID    *int64    // notification target, nil until the naming step
}

// State derives the onboarding state. Safe to call on a nil profile.
func (p *Profile) State() ProfileState {
	switch {
	case p == nil || p.BirthDate.IsZero():
		return StateEmpty
	case p.Name == "":
		return StateDateOnly
	default:
		return StateComplete
	}
}

// LiveMessage points at the single message per user that is kept
// numerically fresh via in-place edits instead of resending.
type LiveMessage struct {
	UserID    int64
	ChatID    int64
	MessageID int
	BirthDate time.Time // joined in from the profile for refresh scans
}
