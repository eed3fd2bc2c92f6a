package usecase

import (
	"context"

	"feria/internal/domain/entity"
)

// RegisterInput is the registration form.
// Sector is only meaningful when the role is vendedor.
type RegisterInput struct {
	Role   string `json:"role" validate:"required,oneof=cliente vendedor"`
	Name   string `json:"name" validate:"required"`
	DNI    string `json:"dni" validate:"required"`
	Phone  string `json:"phone"`
	Sector string `json:"sector"`
}

// RegistrationUsecase creates user profiles, and for feriantes the stall
// that goes with them.
type RegistrationUsecase interface {
	// Register validates the form and builds the new profile. A vendedor
	// registration also inserts a starter stall into the catalog and links
	// it through the profile's vendor id.
	Register(ctx context.Context, input *RegisterInput) (*entity.UserProfile, error)
}
