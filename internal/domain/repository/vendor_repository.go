// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"feria/internal/domain/entity"
	"feria/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrVendorNotFound is returned when a stall id resolves to nothing.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrDuplicateVendor is returned when inserting a stall whose id already exists.
	ErrDuplicateVendor = errors.New("vendor already exists")
)

// VendorRepository is the catalog arena: stalls stored flat, keyed by id,
// insertion order preserved. Reads return detached copies; all mutation goes
// through repository methods so concurrent writers never share a stall struct.
type VendorRepository interface {
	// List retrieves every stall in insertion order.
	List(ctx context.Context) ([]*entity.Vendor, error)

	// FindByID retrieves a single stall by its unique id.
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)

	// Insert persists a new stall at the end of the catalog order.
	Insert(ctx context.Context, vendor *entity.Vendor) error

	// PrependProduct adds a product at the head of the stall's sequence,
	// keeping the most-recent-first display order.
	PrependProduct(ctx context.Context, vendorID string, product entity.Product) error
}

// AnnouncementRepository serves the feria-wide notices shown above the directory.
type AnnouncementRepository interface {
	// List retrieves every announcement in seed order.
	List(ctx context.Context) ([]*entity.Announcement, error)
}
