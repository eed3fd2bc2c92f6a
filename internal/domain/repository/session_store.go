package repository

import (
	"context"

	"feria/internal/domain/entity"
)

// SessionStore persists the authenticated profile and the last-chosen
// category across restarts. It is injected into the state machine so tests
// can substitute an in-memory bucket for the durable one.
type SessionStore interface {
	// Load reads the persisted profile. It returns (nil, nil) when no profile
	// is stored or the stored payload is malformed: persistence failure fails
	// closed to "no user", never to a broken session.
	Load(ctx context.Context) (*entity.UserProfile, error)

	// Save writes the profile. Saving nil clears the persisted entry.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// LoadCategory reads the last-chosen category, or the catch-all category
	// when none is stored.
	LoadCategory(ctx context.Context) (string, error)

	// SaveCategory writes the last-chosen category, independent of user state.
	SaveCategory(ctx context.Context, category string) error
}
