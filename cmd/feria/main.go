package main

import (
	"context"
	"log/slog"
	"os"

	"feria/config"
	"feria/internal/delivery"
	"feria/internal/delivery/http"
	"feria/internal/delivery/http/middleware"
	"feria/internal/delivery/http/router/handler"
	"feria/internal/domain/repository"
	"feria/internal/domain/service"
	"feria/internal/infra/assistant"
	"feria/internal/infra/auth"
	"feria/internal/infra/camera"
	logs "feria/internal/infra/log"
	"feria/internal/infra/persistence/blob"
	"feria/internal/infra/persistence/memory"
	"feria/internal/infra/qrcode"
	"feria/internal/usecase"
	"feria/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			hydrateSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newVendorRepository,
			newAnnouncementRepository,
			blob.NewSessionStore,
		),
	)
}

// newVendorRepository builds the in-memory catalog pre-loaded with the
// feria's starting stalls.
func newVendorRepository() repository.VendorRepository {
	return memory.NewVendorRepository(memory.SeedVendors())
}

func newAnnouncementRepository() repository.AnnouncementRepository {
	return memory.NewAnnouncementRepository(memory.SeedAnnouncements())
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			camera.NewCameraService,
			assistant.NewGeminiService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewCatalogService,
			impl.NewAssistantService,
			impl.NewNavigationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewDirectoryHandler,
			handler.NewVendorHandler,
			handler.NewScannerHandler,
			handler.NewClaimsHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// hydrateSession restores the persisted session before the server takes
// requests.
func hydrateSession(ctx context.Context, nav usecase.NavigationUsecase) error {
	return nav.Hydrate(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
