package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"feria/config"
	"feria/internal/delivery/http/middleware"
	"feria/internal/delivery/http/router/handler"
	"feria/internal/delivery/http/validator"
	"feria/internal/domain/service"
	"feria/internal/infra/assistant"
	"feria/internal/infra/auth"
	blobstore "feria/internal/infra/persistence/blob"
	"feria/internal/infra/persistence/memory"
	"feria/internal/infra/qrcode"
	"feria/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type testStream struct {
	id     string
	closed bool
}

func (s *testStream) ID() string   { return s.id }
func (s *testStream) Active() bool { return !s.closed }
func (s *testStream) Close() error { s.closed = true; return nil }

type testCamera struct{ n int }

func (c *testCamera) Acquire(context.Context) (service.CaptureStream, error) {
	c.n++

	return &testStream{id: fmt.Sprintf("cam-%d", c.n)}, nil
}

// newTestServer wires the full HTTP stack against in-memory infrastructure.
// The assistant client is left unconfigured, so its endpoints answer with the
// canned fallbacks.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "clave-de-prueba"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := blobstore.NewSessionStoreWithBucket(bucket)

	vendorRepo := memory.NewVendorRepository(memory.SeedVendors())
	announcementRepo := memory.NewAnnouncementRepository(memory.SeedAnnouncements())
	qrSvc := qrcode.NewQRCodeService(256, "M")
	assistantSvc := assistant.NewGeminiService(cfg, logger)
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	catalog := impl.NewCatalogService(impl.CatalogServiceParams{
		VendorRepo:       vendorRepo,
		AnnouncementRepo: announcementRepo,
		QRCodeService:    qrSvc,
		Logger:           logger,
	})
	registration := impl.NewRegistrationService(impl.RegistrationServiceParams{VendorRepo: vendorRepo, Logger: logger})
	assistantUC := impl.NewAssistantService(impl.AssistantServiceParams{
		VendorRepo: vendorRepo,
		Assistant:  assistantSvc,
		Logger:     logger,
	})
	nav := impl.NewNavigationService(impl.NavigationServiceParams{
		SessionStore: store,
		VendorRepo:   vendorRepo,
		Registration: registration,
		Catalog:      catalog,
		Camera:       &testCamera{},
		Assistant:    assistantSvc,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	require.NoError(t, nav.Hydrate(context.Background()))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		SessionHandler:   handler.NewSessionHandler(nav, logger),
		DirectoryHandler: handler.NewDirectoryHandler(nav, catalog, assistantUC),
		VendorHandler:    handler.NewVendorHandler(nav, catalog, assistantUC),
		ScannerHandler:   handler.NewScannerHandler(nav, qrSvc),
		ClaimsHandler:    handler.NewClaimsHandler(nav),
		DashboardHandler: handler.NewDashboardHandler(nav, catalog, assistantUC),
		AuthMiddleware:   middleware.NewAuthMiddleware(tokenSvc, nav),
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// registerOverHTTP runs the welcome flow and returns the issued bearer token.
func registerOverHTTP(t *testing.T, e *echo.Echo, role string) string {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/session/role", "", map[string]string{"role": role})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/session/register", "", map[string]string{
		"role":   role,
		"name":   "Vecina López",
		"dni":    "30111222",
		"phone":  "+54 11 5555-0000",
		"sector": "Pasillo Sur",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	return envelope.Data.Token
}

func TestRouter_HealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRouter_WelcomeFlowIssuesWorkingToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/session", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"view":"login"`)

	// Directory is locked before registration.
	rec = doJSON(e, http.MethodGet, "/directory/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := registerOverHTTP(t, e, "cliente")

	rec = doJSON(e, http.MethodGet, "/directory/categories", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Todas")
	assert.Contains(t, rec.Body.String(), "Comida")
}

func TestRouter_RegisterRejectsEmptyForm(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/session/role", "", map[string]string{"role": "cliente"})
	require.Equal(t, http.StatusOK, rec.Code)

	// A submit with no body must come back as a validation error.
	rec = doJSON(e, http.MethodPost, "/session/register", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")

	// The form stays mounted for another attempt.
	rec = doJSON(e, http.MethodGet, "/session", "", nil)
	assert.Contains(t, rec.Body.String(), `"view":"register"`)
}

func TestRouter_ScanFlow(t *testing.T) {
	e := newTestServer(t)
	token := registerOverHTTP(t, e, "cliente")

	rec := doJSON(e, http.MethodPost, "/scanner/open", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/scanner/scan", token, map[string]string{"vendor_id": "v1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lo de Doña Rosa")

	rec = doJSON(e, http.MethodGet, "/session", "", nil)
	assert.Contains(t, rec.Body.String(), `"view":"vendor"`)

	// Scanning from the vendor view is an illegal transition.
	rec = doJSON(e, http.MethodPost, "/scanner/scan", token, map[string]string{"vendor_id": "v1"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")
}

func TestRouter_DashboardNeedsVendedorRole(t *testing.T) {
	e := newTestServer(t)
	token := registerOverHTTP(t, e, "cliente")

	rec := doJSON(e, http.MethodGet, "/dashboard/stats", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_VendedorDashboard(t *testing.T) {
	e := newTestServer(t)
	token := registerOverHTTP(t, e, "vendedor")

	rec := doJSON(e, http.MethodGet, "/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_count":0`)

	rec = doJSON(e, http.MethodGet, "/dashboard/qr", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	// Unconfigured assistant answers with the canned tip.
	rec = doJSON(e, http.MethodGet, "/dashboard/tip", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "¡A vender con todo!")
}

func TestRouter_LogoutInvalidatesToken(t *testing.T) {
	e := newTestServer(t)
	token := registerOverHTTP(t, e, "vendedor")

	rec := doJSON(e, http.MethodPost, "/session/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token outlived its session and is refused.
	rec = doJSON(e, http.MethodGet, "/directory/categories", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_ENDED")
}
