package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"feria/internal/domain/entity"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/domain/repository"
	"feria/internal/domain/service"
	"feria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultProductImage fills in for products submitted without a photo.
const defaultProductImage = "https://images.unsplash.com/photo-1542831371-29b0f74f9713?w=400"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	vendorRepo       repository.VendorRepository
	announcementRepo repository.AnnouncementRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	VendorRepo       repository.VendorRepository
	AnnouncementRepo repository.AnnouncementRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		vendorRepo:       params.VendorRepo,
		announcementRepo: params.AnnouncementRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
	}
}

// ActiveCategories derives the directory's category chips from the stalls
// active today that have something to sell, in first-seen catalog order.
// The catch-all comes first regardless.
func (srv *catalogService) ActiveCategories(ctx context.Context) ([]string, error) {
	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	categories := []string{entity.CategoryAll}
	seen := map[string]struct{}{entity.CategoryAll: {}}

	for _, vendor := range vendors {
		if !vendor.IsActiveToday || !vendor.HasProducts() {
			continue
		}
		if _, ok := seen[vendor.Category]; ok {
			continue
		}
		seen[vendor.Category] = struct{}{}
		categories = append(categories, vendor.Category)
	}

	return categories, nil
}

// VisibleVendors lists the stalls active today, narrowed to one category
// unless the catch-all is selected.
func (srv *catalogService) VisibleVendors(ctx context.Context, category string) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	visible := make([]*entity.Vendor, 0, len(vendors))
	for _, vendor := range vendors {
		if !vendor.IsActiveToday {
			continue
		}
		if category != entity.CategoryAll && category != "" && vendor.Category != category {
			continue
		}
		visible = append(visible, vendor)
	}

	return visible, nil
}

// SavedVendors lists the user's favorited stalls in catalog order. Saved ids
// that no longer resolve are silently skipped.
func (srv *catalogService) SavedVendors(ctx context.Context, user *entity.UserProfile) ([]*entity.Vendor, error) {
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrNoActiveUser, "no user for saved stalls")
	}

	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	saved := make([]*entity.Vendor, 0, len(user.SavedVendorIDs))
	for _, vendor := range vendors {
		if user.HasSaved(vendor.ID) {
			saved = append(saved, vendor)
		}
	}

	return saved, nil
}

// GetVendor retrieves a single stall.
func (srv *catalogService) GetVendor(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, vendorID)
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return vendor, nil
}

// Announcements lists the feria-wide notices.
func (srv *catalogService) Announcements(ctx context.Context) ([]*entity.Announcement, error) {
	announcements, err := srv.announcementRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list announcements")
	}

	return announcements, nil
}

// AddProduct validates the draft and prepends the new product to the stall.
// Price arrives as form text and must parse to a non-negative amount.
func (srv *catalogService) AddProduct(ctx context.Context, vendorID string, draft usecase.ProductDraftInput) (*entity.Product, error) {
	name := strings.TrimSpace(draft.Name)
	rawPrice := strings.TrimSpace(draft.Price)
	if name == "" || rawPrice == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name and price are required")
	}

	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || price < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPrice, rawPrice)
	}

	image := draft.Image
	if image == "" {
		image = defaultProductImage
	}

	product := entity.Product{
		ID:          "p-" + uuid.NewString(),
		Name:        name,
		Description: draft.Description,
		Price:       price,
		Image:       image,
	}

	if err := srv.vendorRepo.PrependProduct(ctx, vendorID, product); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, vendorID)
		}

		return nil, errors.Wrap(err, "failed to add product")
	}

	srv.logger.Info("published product", "vendorID", vendorID, "productID", product.ID)

	return &product, nil
}

// Stats summarizes a stall's counters and rating for the dashboard.
func (srv *catalogService) Stats(ctx context.Context, vendorID string) (*usecase.VendorStats, error) {
	vendor, err := srv.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	return &usecase.VendorStats{
		SalesCount:     vendor.SalesCount,
		ViewCount:      vendor.ViewCount,
		FavoritedCount: vendor.FavoritedCount,
		AverageRating:  vendor.AverageRating(),
	}, nil
}

// StallQR renders the stall's identity code as PNG bytes.
func (srv *catalogService) StallQR(ctx context.Context, vendorID string) ([]byte, error) {
	if _, err := srv.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateStallQR(vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render stall QR")
	}

	return png, nil
}
