// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"feria/internal/domain/entity"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/domain/repository"
	"feria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Starter values for a stall created at registration. The feriante fills in
// the real data later from the dashboard.
const (
	newStallNumber      = "P-00"
	newStallCategory    = "Otros"
	newStallDescription = "Nuevo puesto"
	newStallSchedule    = "Sábados"
	newStallImage       = "https://images.unsplash.com/photo-1542831371-29b0f74f9713?w=400"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Logger     *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		vendorRepo: params.VendorRepo,
		logger:     params.Logger,
	}
}

// Register validates the form and builds the new profile. A vendedor
// registration also inserts a starter stall and links it to the profile.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	role := entity.Role(strings.TrimSpace(input.Role))
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	name := strings.TrimSpace(input.Name)
	dni := strings.TrimSpace(input.DNI)
	if name == "" || dni == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name and dni are required")
	}

	user := &entity.UserProfile{
		ID:             "u-" + uuid.NewString(),
		Name:           name,
		Role:           role,
		DNI:            dni,
		Phone:          strings.TrimSpace(input.Phone),
		SavedVendorIDs: []string{},
	}

	if role == entity.RoleVendedor {
		vendor := &entity.Vendor{
			ID:              "v-" + uuid.NewString(),
			Name:            name,
			PuestoNumber:    newStallNumber,
			Sector:          strings.TrimSpace(input.Sector),
			Category:        newStallCategory,
			Description:     newStallDescription,
			Image:           newStallImage,
			Schedule:        newStallSchedule,
			Phone:           user.Phone,
			WhatsApp:        user.Phone,
			IsActiveToday:   true,
			AcceptsCash:     true,
			AcceptsTransfer: true,
			Products:        []entity.Product{},
			Reviews:         []entity.Review{},
			Messages:        []entity.InAppMessage{},
		}
		if err := srv.vendorRepo.Insert(ctx, vendor); err != nil {
			return nil, errors.Wrap(err, "failed to insert starter stall")
		}
		user.VendorID = vendor.ID
	}

	srv.logger.Info("registered new user", "userID", user.ID, "role", role.String())

	return user, nil
}
