package impl

import (
	"context"
	"strings"
	"testing"

	"feria/internal/domain/entity"
	domainerrors "feria/internal/domain/errors"
	"feria/internal/infra/persistence/memory"
	"feria/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationService_Register_Cliente(t *testing.T) {
	vendorRepo := memory.NewVendorRepository(memory.SeedVendors())
	service := NewRegistrationService(RegistrationServiceParams{VendorRepo: vendorRepo, Logger: newTestLogger()})

	user, err := service.Register(context.Background(), &usecase.RegisterInput{
		Role:  "cliente",
		Name:  "  Vecina López ",
		DNI:   " 30111222 ",
		Phone: "+54 11 5555-0000",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(user.ID, "u-"))
	assert.Equal(t, "Vecina López", user.Name)
	assert.Equal(t, "30111222", user.DNI)
	assert.Equal(t, entity.RoleCliente, user.Role)
	assert.Empty(t, user.VendorID)
	assert.NotNil(t, user.SavedVendorIDs)
	assert.Empty(t, user.SavedVendorIDs)

	// A cliente registration adds nothing to the catalog.
	vendors, err := vendorRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
}

func TestRegistrationService_Register_VendedorGetsStarterStall(t *testing.T) {
	vendorRepo := memory.NewVendorRepository(memory.SeedVendors())
	service := NewRegistrationService(RegistrationServiceParams{VendorRepo: vendorRepo, Logger: newTestLogger()})
	ctx := context.Background()

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Role:   "vendedor",
		Name:   "Marta Paredes",
		DNI:    "27888999",
		Phone:  "+54 11 5555-1111",
		Sector: "Pasillo Sur",
	})
	require.NoError(t, err)
	require.True(t, user.IsVendor())
	assert.True(t, strings.HasPrefix(user.VendorID, "v-"))

	stall, err := vendorRepo.FindByID(ctx, user.VendorID)
	require.NoError(t, err)
	assert.Equal(t, "Marta Paredes", stall.Name)
	assert.Equal(t, "P-00", stall.PuestoNumber)
	assert.Equal(t, "Pasillo Sur", stall.Sector)
	assert.Equal(t, "Otros", stall.Category)
	assert.Equal(t, "Nuevo puesto", stall.Description)
	assert.Equal(t, "Sábados", stall.Schedule)
	assert.Equal(t, user.Phone, stall.WhatsApp)
	assert.True(t, stall.IsActiveToday)
	assert.True(t, stall.AcceptsCash)
	assert.True(t, stall.AcceptsTransfer)
	assert.Zero(t, stall.SalesCount)
	assert.Empty(t, stall.Products)
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	service := NewRegistrationService(RegistrationServiceParams{VendorRepo: memory.NewVendorRepository(nil), Logger: newTestLogger()})
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{Role: "admin", Name: "A", DNI: "1"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = service.Register(ctx, &usecase.RegisterInput{Role: "cliente", Name: "", DNI: "1"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = service.Register(ctx, &usecase.RegisterInput{Role: "cliente", Name: "A", DNI: "   "})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
