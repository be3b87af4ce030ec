package shell

import (
	"fmt"
	"io"

	"schoolhub/internal/api"
	"schoolhub/internal/flows"
	"schoolhub/internal/market"
	"schoolhub/internal/session"
)

// renderProducts prints product tiles. Discount badges render only when a
// positive discount is present; edit/delete hints only for admins.
func renderProducts(w io.Writer, products []api.MarketProduct, sess session.Session) {
	if len(products) == 0 {
		fmt.Fprintln(w, "  (no products)")
		return
	}
	for _, p := range products {
		line := fmt.Sprintf("  [%d] %s — %.0f", p.ID, p.Title, market.EffectivePrice(p))
		if market.HasDiscount(p) {
			line += fmt.Sprintf(" (was %.0f, -%d%%)", p.Price, market.DiscountPercent(p))
		}
		line += fmt.Sprintf("  rating %d", p.Rating)
		fmt.Fprintln(w, line)
	}
	if sess.CanEditProduct() || sess.CanDeleteProduct() {
		fmt.Fprintln(w, "  admin: delete <id> removes a product")
	}
}

// renderMarketCategories prints the category grid.
func renderMarketCategories(w io.Writer, categories []api.MarketCategory) {
	if len(categories) == 0 {
		fmt.Fprintln(w, "  (no categories)")
		return
	}
	for _, c := range categories {
		fmt.Fprintf(w, "  [%d] %s\n", c.ID, c.Name)
	}
}

// renderProductDetail prints one product card.
func renderProductDetail(w io.Writer, p *api.MarketProduct) {
	if p == nil {
		fmt.Fprintln(w, "  (product unavailable)")
		return
	}
	fmt.Fprintf(w, "  %s\n", p.Title)
	if market.HasDiscount(*p) {
		fmt.Fprintf(w, "  price: %.0f (was %.0f, -%d%%)\n",
			market.EffectivePrice(*p), p.Price, market.DiscountPercent(*p))
	} else {
		fmt.Fprintf(w, "  price: %.0f\n", p.Price)
	}
	fmt.Fprintf(w, "  rating: %d\n", p.Rating)
	if p.Description != "" {
		fmt.Fprintf(w, "  %s\n", p.Description)
	}
	if p.User != nil {
		fmt.Fprintf(w, "  seller: %s\n", p.User.Name)
	}
}

// renderEntries prints generic list entries using a per-item line function,
// marking provisional records as pending.
func renderEntries[T any](w io.Writer, entries []flows.Entry[T], line func(T) string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	for _, e := range entries {
		suffix := ""
		if e.Provisional {
			suffix = "  [pending]"
		}
		fmt.Fprintf(w, "  %s%s\n", line(e.Item), suffix)
	}
}
