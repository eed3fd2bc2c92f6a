package usecase

import (
	"context"

	"feria/internal/domain/entity"
)

// Snapshot is a point-in-time copy of the app state: the current view, the
// authenticated user and whatever the view carries. Consumers get detached
// copies and cannot mutate the live state through it.
type Snapshot struct {
	View           string              `json:"view"`
	User           *entity.UserProfile `json:"user,omitempty"`
	ActiveCategory string              `json:"active_category"`
	RoleDraft      string              `json:"role_draft,omitempty"`
	VendorID       string              `json:"vendor_id,omitempty"`
	StreamID       string              `json:"stream_id,omitempty"`
	ProductDraft   *ProductDraftInput  `json:"product_draft,omitempty"`
	ClaimDraft     string              `json:"claim_draft,omitempty"`
	ClaimResponse  string              `json:"claim_response,omitempty"`
	ClaimCategory  string              `json:"claim_category,omitempty"`
	Busy           bool                `json:"busy"`
}

// RegisterOutput is the result of a completed registration: the new profile
// plus the bearer token that authenticates it.
type RegisterOutput struct {
	User  *entity.UserProfile `json:"user"`
	Token string              `json:"token"`
}

// ClaimOutput is the mediated answer to a submitted claim or suggestion.
type ClaimOutput struct {
	Response string `json:"response"`
	Category string `json:"category"`
}

// NavigationUsecase is the session's state machine. Every operation either
// performs its transition or returns a conflict error and leaves the state
// untouched.
type NavigationUsecase interface {
	// Hydrate restores the persisted profile and category and decides the
	// initial view. Called once at startup.
	Hydrate(ctx context.Context) error

	// Current returns a snapshot of the live state.
	Current() Snapshot

	// ChooseRole moves from the welcome screen into registration with the
	// picked role.
	ChooseRole(role entity.Role) error

	// Register completes registration, signs the session token and lands on
	// the role's home view.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// SelectCategory changes the directory filter and persists the choice.
	SelectCategory(ctx context.Context, category string) error

	// OpenVendor opens a stall's detail from the directory.
	OpenVendor(ctx context.Context, vendorID string) error

	// CloseVendor returns from a stall detail to the directory.
	CloseVendor(ctx context.Context) error

	// OpenScanner enters the scanner, acquiring a fresh camera stream.
	OpenScanner(ctx context.Context) error

	// Scan resolves a scanned stall code. A hit favorites the stall,
	// releases the camera and opens the stall detail. A miss changes
	// nothing and reports the unknown stall.
	Scan(ctx context.Context, vendorID string) (*entity.Vendor, error)

	// RequestMediation moves from a stall detail into the claim screen.
	RequestMediation(ctx context.Context) error

	// SubmitClaim sends the drafted claim for mediation and stores the
	// answer on the claim screen, unless it was left meanwhile.
	SubmitClaim(ctx context.Context, text string) (*ClaimOutput, error)

	// UpdateProductDraft replaces the dashboard's new-product draft.
	UpdateProductDraft(ctx context.Context, draft ProductDraftInput) error

	// GenerateDraftDescription asks the assistant to fill the draft's
	// description and suggested price from its name.
	GenerateDraftDescription(ctx context.Context) (*ProductDraftInput, error)

	// PublishProduct validates the dashboard draft, adds it to the stall and
	// clears the draft.
	PublishProduct(ctx context.Context) (*entity.Product, error)

	// Back leaves the claim screen for the stall detail it came from.
	Back(ctx context.Context) error

	// GoHome returns to the role's home view from anywhere authenticated.
	GoHome(ctx context.Context) error

	// Logout ends the session from the dashboard, clearing the persisted
	// profile but keeping the category preference.
	Logout(ctx context.Context) error
}
