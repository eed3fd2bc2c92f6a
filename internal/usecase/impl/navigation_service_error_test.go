package impl

import (
	"context"
	"testing"

	"feria/internal/domain/entity"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationService_ChooseRole_RejectedOutsideLogin(t *testing.T) {
	fx := createTestNavigation(t)

	registerCliente(t, fx)

	err := fx.service.ChooseRole(entity.RoleVendedor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestNavigationService_Register_RejectedWhileAuthenticated(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "Otra", DNI: "31000111"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyRegistered))
	assert.Equal(t, "directory", fx.service.Current().View)
}

func TestNavigationService_Register_RejectsNilForm(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	require.NoError(t, fx.service.ChooseRole(entity.RoleCliente))

	_, err := fx.service.Register(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, "register", fx.service.Current().View)
}

func TestNavigationService_Register_RequiresNameAndDNI(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	require.NoError(t, fx.service.ChooseRole(entity.RoleCliente))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "  ", DNI: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	// Failed registration is not a transition.
	assert.Equal(t, "register", fx.service.Current().View)
}

func TestNavigationService_ScanOutsideScanner_Rejected(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)

	_, err := fx.service.Scan(ctx, "v1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.Equal(t, "directory", fx.service.Current().View)
}

func TestNavigationService_ScanMiss_ReportsUnknownStall(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)
	require.NoError(t, fx.service.OpenScanner(ctx))

	_, err := fx.service.Scan(ctx, "v-fantasma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestNavigationService_OpenScanner_Unauthenticated(t *testing.T) {
	fx := createTestNavigation(t)

	err := fx.service.OpenScanner(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveUser))
	assert.Empty(t, fx.camera.streams)
}

func TestNavigationService_OpenScanner_CameraUnavailable(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)
	fx.camera.acquireErr = errors.New("device busy")

	err := fx.service.OpenScanner(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCameraUnavailable))
	assert.Equal(t, "directory", fx.service.Current().View)
}

func TestNavigationService_OpenVendor_UnknownStall(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)

	err := fx.service.OpenVendor(ctx, "v-fantasma")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
	assert.Equal(t, "directory", fx.service.Current().View)
}

func TestNavigationService_SelectCategory_UnknownChip(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	err := fx.service.SelectCategory(ctx, "Electrónica")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, entity.CategoryAll, fx.service.Current().ActiveCategory)
}

func TestNavigationService_SubmitClaim_EmptyText(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)
	require.NoError(t, fx.service.OpenVendor(ctx, "v1"))
	require.NoError(t, fx.service.RequestMediation(ctx))

	_, err := fx.service.SubmitClaim(ctx, "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyClaim))
	assert.False(t, fx.service.Current().Busy)
}

func TestNavigationService_GenerateDescription_RequiresName(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerVendedor(t, fx)

	_, err := fx.service.GenerateDraftDescription(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNavigationService_PublishProduct_RequiresPrice(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerVendedor(t, fx)
	require.NoError(t, fx.service.UpdateProductDraft(ctx, usecase.ProductDraftInput{Name: "Tarta"}))

	_, err := fx.service.PublishProduct(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestNavigationService_Logout_OnlyFromDashboard(t *testing.T) {
	fx := createTestNavigation(t)
	ctx := context.Background()

	registerCliente(t, fx)

	err := fx.service.Logout(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
	assert.NotNil(t, fx.service.Current().User)
}

func TestNavigationService_GoHome_Unauthenticated(t *testing.T) {
	fx := createTestNavigation(t)

	err := fx.service.GoHome(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoActiveUser))
	assert.Equal(t, "login", fx.service.Current().View)
}
