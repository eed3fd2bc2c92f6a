// Package blob persists the session over a gocloud.dev bucket: a file-backed
// bucket in production, an in-memory one in tests. The layout is two entries,
// the serialized profile and the last-chosen category, matching what the
// mobile client kept in local storage.
package blob

import (
	"context"
	"encoding/json"
	"strings"

	"feria/config"
	"feria/internal/domain/entity"
	"feria/internal/domain/repository"
	"feria/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// scheme
	"gocloud.dev/gcerrors"
)

const (
	keyUser         = "feria_digital_user"
	keyLastCategory = "feria_digital_last_cat"
)

type sessionStore struct {
	bucket *blob.Bucket
}

// NewSessionStore opens the configured bucket URL and returns the store.
func NewSessionStore(ctx context.Context, cfg *config.Config) (repository.SessionStore, error) {
	if cfg.Session == nil || cfg.Session.BucketURL == "" {
		return nil, errors.New("session bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Session.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session bucket")
	}

	return &sessionStore{bucket: bucket}, nil
}

// NewSessionStoreWithBucket wraps an already-open bucket. Tests inject a
// memblob bucket here.
func NewSessionStoreWithBucket(bucket *blob.Bucket) repository.SessionStore {
	return &sessionStore{bucket: bucket}
}

// storedProfile is the wire shape of the persisted profile, kept compatible
// with the payload the mobile client wrote.
type storedProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Role           string   `json:"role"`
	DNI            string   `json:"dni"`
	Phone          string   `json:"phone"`
	VendorID       string   `json:"vendorId,omitempty"`
	SavedVendorIDs []string `json:"savedVendorIds"`
}

// Load reads the persisted profile. Absent or malformed payloads fail closed
// to "no user".
func (s *sessionStore) Load(ctx context.Context) (*entity.UserProfile, error) {
	data, err := s.bucket.ReadAll(ctx, keyUser)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read persisted profile")
	}

	var stored storedProfile
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, nil
	}

	role := entity.Role(stored.Role)
	if stored.ID == "" || !role.IsValid() {
		return nil, nil
	}

	saved := stored.SavedVendorIDs
	if saved == nil {
		saved = []string{}
	}

	return &entity.UserProfile{
		ID:             stored.ID,
		Name:           stored.Name,
		LastName:       stored.LastName,
		Email:          stored.Email,
		Role:           role,
		DNI:            stored.DNI,
		Phone:          stored.Phone,
		VendorID:       stored.VendorID,
		SavedVendorIDs: saved,
	}, nil
}

// Save writes the profile. Saving nil clears the persisted entry.
func (s *sessionStore) Save(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		if err := s.bucket.Delete(ctx, keyUser); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrap(err, "failed to clear persisted profile")
		}

		return nil
	}

	stored := storedProfile{
		ID:             profile.ID,
		Name:           profile.Name,
		LastName:       profile.LastName,
		Email:          profile.Email,
		Role:           profile.Role.String(),
		DNI:            profile.DNI,
		Phone:          profile.Phone,
		VendorID:       profile.VendorID,
		SavedVendorIDs: profile.SavedVendorIDs,
	}
	if stored.SavedVendorIDs == nil {
		stored.SavedVendorIDs = []string{}
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "failed to marshal profile")
	}

	if err := s.bucket.WriteAll(ctx, keyUser, data, nil); err != nil {
		return errors.Wrap(err, "failed to write persisted profile")
	}

	return nil
}

// LoadCategory reads the last-chosen category, defaulting to the catch-all.
func (s *sessionStore) LoadCategory(ctx context.Context) (string, error) {
	data, err := s.bucket.ReadAll(ctx, keyLastCategory)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return entity.CategoryAll, nil
		}

		return "", errors.Wrap(err, "failed to read persisted category")
	}

	category := strings.TrimSpace(string(data))
	if category == "" {
		return entity.CategoryAll, nil
	}

	return category, nil
}

// SaveCategory writes the last-chosen category as plain text.
func (s *sessionStore) SaveCategory(ctx context.Context, category string) error {
	if err := s.bucket.WriteAll(ctx, keyLastCategory, []byte(category), nil); err != nil {
		return errors.Wrap(err, "failed to write persisted category")
	}

	return nil
}
