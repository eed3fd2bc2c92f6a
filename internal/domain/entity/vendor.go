package entity

import "math"

// Vendor is a market stall: identity, location inside the feria, payment
// flags, running counters and the owned product/review/message sequences.
// Products are kept most-recent-first; reviews and messages in seed order.
type Vendor struct {
	ID              string // Unique identifier. Seeded stalls use short ids ("v1"), registered ones "v-" prefixed.
	Name            string
	PuestoNumber    string // Stall number as painted on the puesto, e.g. "12-A".
	Sector          string // Free-form location text, e.g. "Pasillo Norte - Sector A".
	Category        string
	Description     string
	Image           string
	Schedule        string
	Phone           string
	WhatsApp        string
	IsActiveToday   bool
	AcceptsCash     bool
	AcceptsTransfer bool
	SalesCount      int
	ViewCount       int
	FavoritedCount  int
	Products        []Product
	Reviews         []Review
	Messages        []InAppMessage
}

// AverageRating is the arithmetic mean of review ratings rounded to one
// decimal. A vendor with no reviews rates 0; that is not an error state.
func (v *Vendor) AverageRating() float64 {
	if len(v.Reviews) == 0 {
		return 0
	}

	var total int
	for _, review := range v.Reviews {
		total += review.Rating
	}

	mean := float64(total) / float64(len(v.Reviews))

	return math.Round(mean*10) / 10
}

// HasProducts reports whether the stall currently lists anything.
func (v *Vendor) HasProducts() bool {
	return len(v.Products) > 0
}
