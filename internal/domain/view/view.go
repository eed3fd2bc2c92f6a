// Package view models the application's navigation states as tagged
// variants. Each state carries only the data that view needs, so states
// like "claims with no selected vendor" are unrepresentable.
package view

import (
	"feria/internal/domain/entity"
	"feria/internal/domain/service"
)

// Name identifies a view for serialization and routing.
type Name string

const (
	Login     Name = "login"
	Register  Name = "register"
	Directory Name = "directory"
	Vendor    Name = "vendor"
	Scanner   Name = "scanner"
	Dashboard Name = "vendor-dashboard"
	Claims    Name = "claims"
)

// State is the closed set of navigation states. Only the variants in this
// package implement it.
type State interface {
	Name() Name
}

// LoginState is the unauthenticated landing view.
type LoginState struct{}

func (LoginState) Name() Name { return Login }

// RegisterState carries the role chosen on the login view.
type RegisterState struct {
	RoleDraft entity.Role
}

func (RegisterState) Name() Name { return Register }

// DirectoryState is the customer home view. The active category filter lives
// on the session, not here, because it persists across views.
type DirectoryState struct{}

func (DirectoryState) Name() Name { return Directory }

// VendorState shows a single stall, referenced by id against the catalog and
// never by embedded copy.
type VendorState struct {
	VendorID string
}

func (VendorState) Name() Name { return Vendor }

// ScannerState owns the camera capture stream for exactly as long as the
// state is mounted. Every exit path must close Stream before the transition
// completes.
type ScannerState struct {
	Stream service.CaptureStream
}

func (ScannerState) Name() Name { return Scanner }

// ProductDraft is the transient new-product form on the dashboard. Price is
// kept as entered text until publication validates it.
type ProductDraft struct {
	Name        string
	Description string
	Price       string
	Image       string
}

// DashboardState is the feriante home view.
type DashboardState struct {
	ProductDraft ProductDraft
	Busy         bool // A description generation is in flight; re-submission is rejected.
}

func (DashboardState) Name() Name { return Dashboard }

// ClaimsState is the AI-mediation view for the stall it was opened from.
type ClaimsState struct {
	VendorID string
	Draft    string
	Response string // Empty until the mediator has answered.
	Category string
	Busy     bool // A mediation call is in flight; re-submission is rejected.
}

func (ClaimsState) Name() Name { return Claims }
