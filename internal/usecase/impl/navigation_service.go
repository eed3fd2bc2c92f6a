package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"feria/internal/domain/entity"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/domain/repository"
	"feria/internal/domain/service"
	"feria/internal/domain/view"
	"feria/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// navigationService implements the NavigationUsecase interface. It owns the
// live session: current view, authenticated user and category filter, all
// guarded by one mutex. Assistant calls run outside the lock; their results
// are applied only if the view they started from is still mounted.
type navigationService struct {
	mu             sync.Mutex
	state          view.State
	user           *entity.UserProfile
	activeCategory string
	generation     uint64 // Bumped on every view replacement; stale assistant results check it.

	sessionStore repository.SessionStore
	vendorRepo   repository.VendorRepository
	registration usecase.RegistrationUsecase
	catalog      usecase.CatalogUsecase
	camera       service.CameraService
	assistant    service.AssistantService
	tokenService service.TokenService
	logger       *slog.Logger
}

// NavigationServiceParams holds dependencies for NavigationService, injected by Fx.
type NavigationServiceParams struct {
	fx.In

	SessionStore repository.SessionStore
	VendorRepo   repository.VendorRepository
	Registration usecase.RegistrationUsecase
	Catalog      usecase.CatalogUsecase
	Camera       service.CameraService
	Assistant    service.AssistantService
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewNavigationService is the constructor for navigationService.
func NewNavigationService(params NavigationServiceParams) usecase.NavigationUsecase {
	return &navigationService{
		state:          view.LoginState{},
		activeCategory: entity.CategoryAll,
		sessionStore:   params.SessionStore,
		vendorRepo:     params.VendorRepo,
		registration:   params.Registration,
		catalog:        params.Catalog,
		camera:         params.Camera,
		assistant:      params.Assistant,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// setView replaces the mounted view. Leaving the scanner releases its camera
// stream here, so no exit path can leak the device. Callers must hold mu.
func (srv *navigationService) setView(next view.State) {
	if scanner, ok := srv.state.(view.ScannerState); ok && scanner.Stream != nil {
		if err := scanner.Stream.Close(); err != nil {
			srv.logger.Warn("failed to release camera stream", "streamID", scanner.Stream.ID(), "error", err)
		}
	}
	srv.state = next
	srv.generation++
}

// homeView is the landing view for the authenticated role.
func (srv *navigationService) homeView() view.State {
	if srv.user != nil && srv.user.Role == entity.RoleVendedor {
		return view.DashboardState{}
	}

	return view.DirectoryState{}
}

// persistUser writes the profile through the session store. Persistence
// trouble is logged and swallowed; the in-memory session stays authoritative.
func (srv *navigationService) persistUser(ctx context.Context) {
	if err := srv.sessionStore.Save(ctx, srv.user); err != nil {
		srv.logger.Warn("failed to persist session profile", "error", err)
	}
}

func (srv *navigationService) persistCategory(ctx context.Context) {
	if err := srv.sessionStore.SaveCategory(ctx, srv.activeCategory); err != nil {
		srv.logger.Warn("failed to persist category", "error", err)
	}
}

// Hydrate restores the persisted profile and category and decides the
// initial view: the role's home when a profile survives, the welcome screen
// otherwise.
func (srv *navigationService) Hydrate(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	user, err := srv.sessionStore.Load(ctx)
	if err != nil {
		srv.logger.Warn("failed to load persisted session", "error", err)
		user = nil
	}

	category, err := srv.sessionStore.LoadCategory(ctx)
	if err != nil {
		srv.logger.Warn("failed to load persisted category", "error", err)
		category = entity.CategoryAll
	}

	srv.user = user
	srv.activeCategory = category
	if user == nil {
		srv.setView(view.LoginState{})
	} else {
		srv.setView(srv.homeView())
	}

	srv.logger.Info("session hydrated", "view", string(srv.state.Name()), "authenticated", user != nil)

	return nil
}

// Current returns a detached snapshot of the live state.
func (srv *navigationService) Current() usecase.Snapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	snapshot := usecase.Snapshot{
		View:           string(srv.state.Name()),
		User:           cloneProfile(srv.user),
		ActiveCategory: srv.activeCategory,
	}

	switch state := srv.state.(type) {
	case view.RegisterState:
		snapshot.RoleDraft = state.RoleDraft.String()
	case view.VendorState:
		snapshot.VendorID = state.VendorID
	case view.ScannerState:
		if state.Stream != nil {
			snapshot.StreamID = state.Stream.ID()
		}
	case view.DashboardState:
		snapshot.Busy = state.Busy
		snapshot.ProductDraft = &usecase.ProductDraftInput{
			Name:        state.ProductDraft.Name,
			Description: state.ProductDraft.Description,
			Price:       state.ProductDraft.Price,
			Image:       state.ProductDraft.Image,
		}
	case view.ClaimsState:
		snapshot.VendorID = state.VendorID
		snapshot.ClaimDraft = state.Draft
		snapshot.ClaimResponse = state.Response
		snapshot.ClaimCategory = state.Category
		snapshot.Busy = state.Busy
	}

	return snapshot
}

// ChooseRole moves from the welcome screen into registration.
func (srv *navigationService) ChooseRole(role entity.Role) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.state.(view.LoginState); !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot choose role from %s", srv.state.Name())
	}
	if !role.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	srv.setView(view.RegisterState{RoleDraft: role})

	return nil
}

// Register completes registration with the role picked on the welcome
// screen, signs the session token and lands on the role's home view.
func (srv *navigationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.user != nil {
		return nil, errors.Wrap(domainerrors.ErrAlreadyRegistered, srv.user.ID)
	}

	register, ok := srv.state.(view.RegisterState)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot register from %s", srv.state.Name())
	}

	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "empty registration form")
	}

	form := *input
	form.Role = register.RoleDraft.String()

	user, err := srv.registration.Register(ctx, &form)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.user = user
	srv.persistUser(ctx)
	srv.setView(srv.homeView())

	return &usecase.RegisterOutput{User: cloneProfile(user), Token: token}, nil
}

// SelectCategory changes the directory filter and persists the choice. The
// category must be one of the currently derivable chips.
func (srv *navigationService) SelectCategory(ctx context.Context, category string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	categories, err := srv.catalog.ActiveCategories(ctx)
	if err != nil {
		return err
	}
	if !slices.Contains(categories, category) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", category)
	}

	srv.activeCategory = category
	srv.persistCategory(ctx)

	return nil
}

// OpenVendor opens a stall's detail from the directory.
func (srv *navigationService) OpenVendor(ctx context.Context, vendorID string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.user == nil {
		return errors.Wrap(domainerrors.ErrNoActiveUser, "open vendor")
	}
	if _, ok := srv.state.(view.DirectoryState); !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot open vendor from %s", srv.state.Name())
	}
	if _, err := srv.vendorRepo.FindByID(ctx, vendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return errors.Wrap(domainerrors.ErrVendorNotFound, vendorID)
		}

		return errors.Wrap(err, "failed to find vendor")
	}

	srv.setView(view.VendorState{VendorID: vendorID})

	return nil
}

// CloseVendor returns from a stall detail to the directory.
func (srv *navigationService) CloseVendor(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.state.(view.VendorState); !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot close vendor from %s", srv.state.Name())
	}

	srv.setView(view.DirectoryState{})

	return nil
}

// OpenScanner enters the scanner with a freshly acquired camera stream.
// Re-entering from the scanner itself swaps the stream for a new one.
func (srv *navigationService) OpenScanner(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.user == nil {
		return errors.Wrap(domainerrors.ErrNoActiveUser, "open scanner")
	}

	stream, err := srv.camera.Acquire(ctx)
	if err != nil {
		return errors.Wrap(domainerrors.ErrCameraUnavailable, err.Error())
	}

	srv.setView(view.ScannerState{Stream: stream})

	return nil
}

// Scan resolves a scanned stall code. A hit favorites the stall, persists
// the profile, releases the camera and opens the stall detail. A miss leaves
// the scanner mounted and its stream open.
func (srv *navigationService) Scan(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.state.(view.ScannerState); !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot scan from %s", srv.state.Name())
	}
	if srv.user == nil {
		return nil, errors.Wrap(domainerrors.ErrNoActiveUser, "scan")
	}

	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVendorNotFound, vendorID)
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	if srv.user.SaveVendor(vendorID) {
		srv.persistUser(ctx)
	}
	srv.setView(view.VendorState{VendorID: vendorID})

	return vendor, nil
}

// RequestMediation moves from a stall detail into the claim screen.
func (srv *navigationService) RequestMediation(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	vendor, ok := srv.state.(view.VendorState)
	if !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot open claims from %s", srv.state.Name())
	}

	srv.setView(view.ClaimsState{VendorID: vendor.VendorID})

	return nil
}

// SubmitClaim sends the drafted claim for mediation. The lock is released
// during the provider call; the answer lands on the claim screen only if the
// same mount is still current, otherwise it is discarded.
func (srv *navigationService) SubmitClaim(ctx context.Context, text string) (*usecase.ClaimOutput, error) {
	srv.mu.Lock()

	claims, ok := srv.state.(view.ClaimsState)
	if !ok {
		srv.mu.Unlock()
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot submit claim from %s", srv.state.Name())
	}
	if claims.Busy {
		srv.mu.Unlock()
		return nil, errors.Wrap(domainerrors.ErrOperationInFlight, "mediation in flight")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		srv.mu.Unlock()
		return nil, errors.Wrap(domainerrors.ErrEmptyClaim, "submit claim")
	}

	vendorName := claims.VendorID
	if vendor, err := srv.vendorRepo.FindByID(ctx, claims.VendorID); err == nil {
		vendorName = vendor.Name
	}

	claims.Draft = text
	claims.Busy = true
	srv.state = claims
	generation := srv.generation
	srv.mu.Unlock()

	mediation, err := srv.assistant.MediateClaim(ctx, text, vendorName)
	if err != nil {
		// The provider client degrades to canned answers instead of failing,
		// so this path only reports programming errors.
		return nil, errors.Wrap(err, "failed to mediate claim")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.generation == generation {
		current := srv.state.(view.ClaimsState)
		current.Busy = false
		current.Response = mediation.Response
		current.Category = mediation.Category
		srv.state = current
	} else {
		srv.logger.Info("discarding mediation for unmounted claim view", "vendorID", claims.VendorID)
	}

	return &usecase.ClaimOutput{Response: mediation.Response, Category: mediation.Category}, nil
}

// UpdateProductDraft replaces the dashboard's new-product draft.
func (srv *navigationService) UpdateProductDraft(_ context.Context, draft usecase.ProductDraftInput) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	dashboard, ok := srv.state.(view.DashboardState)
	if !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot edit product draft from %s", srv.state.Name())
	}
	if dashboard.Busy {
		return errors.Wrap(domainerrors.ErrOperationInFlight, "description generation in flight")
	}

	dashboard.ProductDraft = view.ProductDraft{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Image:       draft.Image,
	}
	srv.state = dashboard

	return nil
}

// GenerateDraftDescription asks the assistant for sales copy and a suggested
// price from the draft's name. Same suspension rule as claim mediation: the
// result is dropped if the dashboard was left while the call ran.
func (srv *navigationService) GenerateDraftDescription(ctx context.Context) (*usecase.ProductDraftInput, error) {
	srv.mu.Lock()

	dashboard, ok := srv.state.(view.DashboardState)
	if !ok {
		srv.mu.Unlock()
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot generate description from %s", srv.state.Name())
	}
	if dashboard.Busy {
		srv.mu.Unlock()
		return nil, errors.Wrap(domainerrors.ErrOperationInFlight, "description generation in flight")
	}

	name := strings.TrimSpace(dashboard.ProductDraft.Name)
	if name == "" {
		srv.mu.Unlock()
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "product name is required first")
	}

	dashboard.Busy = true
	srv.state = dashboard
	generation := srv.generation
	srv.mu.Unlock()

	copyText, err := srv.assistant.GenerateDescription(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate description")
	}

	price := strconv.FormatFloat(copyText.SuggestedPrice, 'f', -1, 64)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	draft := dashboard.ProductDraft
	draft.Description = copyText.Description
	draft.Price = price

	if srv.generation == generation {
		current := srv.state.(view.DashboardState)
		current.Busy = false
		current.ProductDraft.Description = copyText.Description
		current.ProductDraft.Price = price
		srv.state = current
		draft = current.ProductDraft
	} else {
		srv.logger.Info("discarding description for unmounted dashboard view")
	}

	return &usecase.ProductDraftInput{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Image:       draft.Image,
	}, nil
}

// PublishProduct validates the dashboard draft, adds it to the feriante's
// stall and clears the draft.
func (srv *navigationService) PublishProduct(ctx context.Context) (*entity.Product, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	dashboard, ok := srv.state.(view.DashboardState)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot publish product from %s", srv.state.Name())
	}
	if dashboard.Busy {
		return nil, errors.Wrap(domainerrors.ErrOperationInFlight, "description generation in flight")
	}
	if srv.user == nil || !srv.user.IsVendor() {
		return nil, errors.Wrap(domainerrors.ErrNotAVendor, "publish product")
	}

	product, err := srv.catalog.AddProduct(ctx, srv.user.VendorID, usecase.ProductDraftInput{
		Name:        dashboard.ProductDraft.Name,
		Description: dashboard.ProductDraft.Description,
		Price:       dashboard.ProductDraft.Price,
		Image:       dashboard.ProductDraft.Image,
	})
	if err != nil {
		return nil, err
	}

	dashboard.ProductDraft = view.ProductDraft{}
	srv.state = dashboard

	return product, nil
}

// Back leaves the claim screen for the stall detail it came from. Leaving
// while a mediation runs abandons its eventual answer.
func (srv *navigationService) Back(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	claims, ok := srv.state.(view.ClaimsState)
	if !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot go back from %s", srv.state.Name())
	}

	srv.setView(view.VendorState{VendorID: claims.VendorID})

	return nil
}

// GoHome returns to the role's home view from anywhere authenticated.
func (srv *navigationService) GoHome(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.user == nil {
		return errors.Wrap(domainerrors.ErrNoActiveUser, "go home")
	}

	srv.setView(srv.homeView())

	return nil
}

// Logout ends the session from the dashboard. The persisted profile is
// cleared; the category preference survives for the next session.
func (srv *navigationService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, ok := srv.state.(view.DashboardState); !ok {
		return errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot log out from %s", srv.state.Name())
	}

	srv.user = nil
	srv.persistUser(ctx)
	srv.setView(view.LoginState{})

	srv.logger.Info("session ended")

	return nil
}

// cloneProfile detaches a profile so callers cannot mutate the live session
// through a snapshot.
func cloneProfile(user *entity.UserProfile) *entity.UserProfile {
	if user == nil {
		return nil
	}

	clone := *user
	clone.SavedVendorIDs = slices.Clone(user.SavedVendorIDs)

	return &clone
}
