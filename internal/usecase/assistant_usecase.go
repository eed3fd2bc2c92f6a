package usecase

import "context"

// SearchOutput is the concierge answer for a free-text market query.
type SearchOutput struct {
	Recommendation string   `json:"recommendation"`
	VendorIDs      []string `json:"vendor_ids"`
}

// AssistantUsecase exposes the stateless assistant features. These are
// best-effort: on provider trouble the implementations answer with canned
// text instead of failing.
type AssistantUsecase interface {
	// VendorInsight writes a one-line pitch for a stall.
	VendorInsight(ctx context.Context, vendorID string) (string, error)

	// SmartSearch matches a shopper query against the stalls active today.
	SmartSearch(ctx context.Context, query string) (*SearchOutput, error)

	// DailySellerTip writes a short motivational tip for a stall's category.
	DailySellerTip(ctx context.Context, category string) (string, error)
}
