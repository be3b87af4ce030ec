package market

import (
	"math"    // Discount rounding
	"sort"    // Stable sorting
	"strings" // Case-insensitive search

	"schoolhub/internal/api"
)

// SortMode selects how the product list is ordered. Exactly one mode is
// active at a time; SortNone keeps the server order.
type SortMode int

// Sort modes
const (
	SortNone       SortMode = iota // Server order
	SortPriceAsc                   // Cheapest first (effective price)
	SortPriceDesc                  // Most expensive first (effective price)
	SortRatingDesc                 // Best rated first
)

// EffectivePrice is the price a product actually sells for: the discount
// price when present and positive, the regular price otherwise.
func EffectivePrice(p api.MarketProduct) float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasDiscount reports whether the discount badge should render.
func HasDiscount(p api.MarketProduct) bool {
	return p.DiscountPrice != nil && *p.DiscountPrice > 0
}

// DiscountPercent is the badge percentage. Only meaningful when HasDiscount.
func DiscountPercent(p api.MarketProduct) int {
	if !HasDiscount(p) {
		return 0
	}
	return int(math.Round((p.Price - *p.DiscountPrice) / p.Price * 100))
}

// Project applies the text filter and sort mode to a raw product list. It is
// a pure function: the input slice is never mutated, equal inputs yield the
// same ordered output, and Project(items, "", SortNone) returns the items
// unchanged. Ties keep the server's relative order.
func Project(items []api.MarketProduct, query string, mode SortMode) []api.MarketProduct {
	out := make([]api.MarketProduct, 0, len(items))
	q := strings.ToLower(query)
	for _, p := range items {
		if q == "" || strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return EffectivePrice(out[i]) < EffectivePrice(out[j])
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return EffectivePrice(out[i]) > EffectivePrice(out[j])
		})
	case SortRatingDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	}
	return out
}
