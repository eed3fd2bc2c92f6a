package entity

// Product is a catalog entry owned by exactly one Vendor. New products are
// prepended to the vendor's sequence so the freshest offer displays first.
type Product struct {
	ID          string // Unique identifier, "p-" prefixed.
	Name        string
	Description string
	Price       float64 // Non-negative.
	Image       string
	QRCodeURL   string // Optional per-product code reference from seed data.
}
