// Package memory implements the catalog repositories over in-process maps.
// Stalls live in a flat arena keyed by id with a separate order index, so
// every caller works against detached copies and the repository is the only
// writer of shared state.
package memory

import (
	"context"
	"sync"

	"feria/internal/domain/entity"
	"feria/internal/domain/repository"

	"github.com/pkg/errors"
)

type vendorRepository struct {
	mu    sync.RWMutex
	arena map[string]*entity.Vendor
	order []string
}

// NewVendorRepository creates a catalog pre-populated with the given stalls,
// preserving their order.
func NewVendorRepository(seed []*entity.Vendor) repository.VendorRepository {
	repo := &vendorRepository{
		arena: make(map[string]*entity.Vendor, len(seed)),
		order: make([]string, 0, len(seed)),
	}
	for _, vendor := range seed {
		repo.arena[vendor.ID] = cloneVendor(vendor)
		repo.order = append(repo.order, vendor.ID)
	}

	return repo
}

// List retrieves every stall in insertion order.
func (r *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]*entity.Vendor, 0, len(r.order))
	for _, id := range r.order {
		vendors = append(vendors, cloneVendor(r.arena[id]))
	}

	return vendors, nil
}

// FindByID retrieves a single stall by its unique id.
func (r *vendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.arena[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	return cloneVendor(vendor), nil
}

// Insert persists a new stall at the end of the catalog order.
func (r *vendorRepository) Insert(ctx context.Context, vendor *entity.Vendor) error {
	if vendor == nil || vendor.ID == "" {
		return errors.New("vendor must have an id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.arena[vendor.ID]; exists {
		return repository.ErrDuplicateVendor
	}

	r.arena[vendor.ID] = cloneVendor(vendor)
	r.order = append(r.order, vendor.ID)

	return nil
}

// PrependProduct adds a product at the head of the stall's sequence. Writes
// are serialized per catalog, which keeps the most-recent-first order stable
// under concurrent publishers.
func (r *vendorRepository) PrependProduct(ctx context.Context, vendorID string, product entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vendor, ok := r.arena[vendorID]
	if !ok {
		return repository.ErrVendorNotFound
	}

	vendor.Products = append([]entity.Product{product}, vendor.Products...)

	return nil
}

func cloneVendor(v *entity.Vendor) *entity.Vendor {
	clone := *v
	clone.Products = append([]entity.Product(nil), v.Products...)
	clone.Reviews = append([]entity.Review(nil), v.Reviews...)
	clone.Messages = append([]entity.InAppMessage(nil), v.Messages...)

	return &clone
}

type announcementRepository struct {
	announcements []*entity.Announcement
}

// NewAnnouncementRepository creates the read-only announcement feed.
func NewAnnouncementRepository(seed []*entity.Announcement) repository.AnnouncementRepository {
	return &announcementRepository{announcements: seed}
}

// List retrieves every announcement in seed order.
func (r *announcementRepository) List(ctx context.Context) ([]*entity.Announcement, error) {
	out := make([]*entity.Announcement, len(r.announcements))
	for i, a := range r.announcements {
		clone := *a
		out[i] = &clone
	}

	return out, nil
}
