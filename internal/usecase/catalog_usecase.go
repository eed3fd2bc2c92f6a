// Package usecase declares the application's business-logic interfaces and
// their input/output DTOs.
package usecase

import (
	"context"

	"feria/internal/domain/entity"
)

// ProductDraftInput is the new-product form as submitted by a feriante.
// Price arrives as entered text and is validated on publication.
type ProductDraftInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// VendorStats is the dashboard summary for a stall.
type VendorStats struct {
	SalesCount     int     `json:"sales_count"`
	ViewCount      int     `json:"view_count"`
	FavoritedCount int     `json:"favorited_count"`
	AverageRating  float64 `json:"average_rating"`
}

// CatalogUsecase defines the directory and stall-management operations over
// the vendor catalog.
type CatalogUsecase interface {
	// ActiveCategories derives the category chips: the catch-all first, then
	// the category of every stall active today with at least one product, in
	// first-seen catalog order.
	ActiveCategories(ctx context.Context) ([]string, error)

	// VisibleVendors lists stalls active today, optionally narrowed to one category.
	VisibleVendors(ctx context.Context, category string) ([]*entity.Vendor, error)

	// SavedVendors lists the user's favorited stalls in catalog order.
	// Saved ids that no longer resolve are filtered out, not surfaced as errors.
	SavedVendors(ctx context.Context, user *entity.UserProfile) ([]*entity.Vendor, error)

	// GetVendor retrieves a single stall.
	GetVendor(ctx context.Context, vendorID string) (*entity.Vendor, error)

	// Announcements lists the feria-wide notices.
	Announcements(ctx context.Context) ([]*entity.Announcement, error)

	// AddProduct validates the draft and prepends a new product to the stall.
	AddProduct(ctx context.Context, vendorID string, draft ProductDraftInput) (*entity.Product, error)

	// Stats summarizes a stall's counters and rating for the dashboard.
	Stats(ctx context.Context, vendorID string) (*VendorStats, error)

	// StallQR renders the stall's identity code as PNG bytes.
	StallQR(ctx context.Context, vendorID string) ([]byte, error)
}
