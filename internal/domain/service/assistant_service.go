package service

import (
	"context"

	"feria/internal/domain/entity"
)

// Mediation is the structured answer to a customer claim.
type Mediation struct {
	Response string // Conciliatory reply addressed to the customer.
	Category string // One-word claim category, e.g. "Calidad", or "General" on fallback.
}

// SearchResult is the outcome of a reasoning search over the directory.
type SearchResult struct {
	Recommendation    string
	MatchingVendorIDs []string // Catalog ids in the model's preference order.
}

// ProductCopy is generated marketing text for a new product.
type ProductCopy struct {
	Description    string
	SuggestedPrice float64
}

// AssistantService is the boundary to the generative-language-model provider.
//
// Every operation degrades instead of failing: on provider unavailability or
// unparsable output it returns a fixed fallback value and a nil error, so the
// core never hard-fails because of this collaborator.
type AssistantService interface {
	// MediateClaim answers a customer claim about the named stall.
	MediateClaim(ctx context.Context, claimText, vendorName string) (Mediation, error)

	// VendorInsight generates a one-line recommendation for a stall.
	VendorInsight(ctx context.Context, vendor *entity.Vendor) (string, error)

	// SmartSearch matches a free-form query against the given stalls.
	SmartSearch(ctx context.Context, query string, vendors []*entity.Vendor) (SearchResult, error)

	// GenerateDescription writes sales copy and a suggested price for a product name.
	GenerateDescription(ctx context.Context, productName string) (ProductCopy, error)

	// DailySellerTip fetches a one-sentence selling tip for a stall category.
	DailySellerTip(ctx context.Context, category string) (string, error)
}
