package impl

import (
	"context"
	"log/slog"

	domainerrors "feria/internal/domain/errors"
	"feria/internal/domain/repository"
	"feria/internal/domain/service"
	"feria/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// assistantService implements the AssistantUsecase interface. It resolves
// catalog context for the prompts; the degraded-answer policy lives in the
// underlying provider client.
type assistantService struct {
	vendorRepo repository.VendorRepository
	assistant  service.AssistantService
	logger     *slog.Logger
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	Assistant  service.AssistantService
	Logger     *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		vendorRepo: params.VendorRepo,
		assistant:  params.Assistant,
		logger:     params.Logger,
	}
}

// VendorInsight writes a one-line pitch for a stall.
func (srv *assistantService) VendorInsight(ctx context.Context, vendorID string) (string, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return "", errors.Wrap(domainerrors.ErrVendorNotFound, vendorID)
		}

		return "", errors.Wrap(err, "failed to find vendor")
	}

	insight, err := srv.assistant.VendorInsight(ctx, vendor)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate insight")
	}

	return insight, nil
}

// SmartSearch matches a shopper query against the whole catalog.
func (srv *assistantService) SmartSearch(ctx context.Context, query string) (*usecase.SearchOutput, error) {
	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	result, err := srv.assistant.SmartSearch(ctx, query, vendors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to run smart search")
	}

	return &usecase.SearchOutput{
		Recommendation: result.Recommendation,
		VendorIDs:      result.MatchingVendorIDs,
	}, nil
}

// DailySellerTip writes a short motivational tip for a stall's category.
func (srv *assistantService) DailySellerTip(ctx context.Context, category string) (string, error) {
	tip, err := srv.assistant.DailySellerTip(ctx, category)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate seller tip")
	}

	return tip, nil
}
