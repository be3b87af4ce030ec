package market

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus" // Log-only failure path

	"schoolhub/internal/api"
	"schoolhub/internal/session"
)

// Backend is the slice of the API client the market screens use.
type Backend interface {
	MarketCategories(ctx context.Context) (api.Envelope[[]api.MarketCategory], error)
	MarketProducts(ctx context.Context, categoryID *int) (api.Envelope[[]api.MarketProduct], error)
	MarketProductDetail(ctx context.Context, productID int) (api.Envelope[api.MarketProduct], error)
	DeleteProduct(ctx context.Context, productID int) (api.Envelope[api.MarketProduct], error)
	CreateProduct(ctx context.Context, p api.NewProduct) (api.Envelope[string], error)
}

// ErrNotAllowed is returned when a mutation is attempted without the
// matching capability.
var ErrNotAllowed = errors.New("market: not allowed for this role")

// Categories is the market landing screen state: a category grid.
type Categories struct {
	backend Backend
	log     logrus.FieldLogger
	items   []api.MarketCategory
	closed  bool
}

// NewCategories builds the category list view-model.
func NewCategories(backend Backend, log logrus.FieldLogger) *Categories {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Categories{backend: backend, log: log}
}

// Load fetches the categories. On success the list is replaced; on any
// failure it is left as it was (an empty grid stays empty, log only).
func (c *Categories) Load(ctx context.Context) {
	env, err := c.backend.MarketCategories(ctx)
	if c.closed {
		return // Screen is gone, drop the result
	}
	if err != nil {
		c.log.WithField("error", err.Error()).Warn("Failed to load market categories")
		return
	}
	if !env.OK() || env.Data == nil {
		c.log.WithField("status", env.Status).Warn("Market categories unavailable")
		return
	}
	c.items = *env.Data
}

// Items returns the current categories.
func (c *Categories) Items() []api.MarketCategory {
	return c.items
}

// Close detaches the view-model; late completions become no-ops.
func (c *Categories) Close() {
	c.closed = true
}

// ProductList is the per-category product screen state: the raw fetched
// list plus the search query and sort mode projected over it.
type ProductList struct {
	backend    Backend
	log        logrus.FieldLogger
	sess       session.Session
	categoryID int
	raw        []api.MarketProduct
	Query      string   // Case-insensitive substring match on title
	Sort       SortMode // Active sort mode
	closed     bool
}

// NewProductList builds the product list view-model for one category.
func NewProductList(backend Backend, sess session.Session, categoryID int, log logrus.FieldLogger) *ProductList {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProductList{backend: backend, sess: sess, categoryID: categoryID, log: log}
}

// CategoryID returns the category this list is scoped to.
func (l *ProductList) CategoryID() int {
	return l.categoryID
}

// Load fetches the products scoped server-side to the category. Failures
// leave the previous list untouched.
func (l *ProductList) Load(ctx context.Context) {
	id := l.categoryID
	env, err := l.backend.MarketProducts(ctx, &id)
	if l.closed {
		return // Screen is gone, drop the result
	}
	if err != nil {
		l.log.WithFields(logrus.Fields{
			"category_id": l.categoryID,
			"error":       err.Error(),
		}).Warn("Failed to load products")
		return
	}
	if !env.OK() || env.Data == nil {
		l.log.WithFields(logrus.Fields{
			"category_id": l.categoryID,
			"status":      env.Status,
		}).Warn("Empty product list")
		return
	}
	l.raw = *env.Data
}

// Visible projects the raw list through the query and sort mode. Pure and
// synchronous; the raw list is never reordered.
func (l *ProductList) Visible() []api.MarketProduct {
	return Project(l.raw, l.Query, l.Sort)
}

// ClearFilter resets the query and sort mode to the server view.
func (l *ProductList) ClearFilter() {
	l.Query = ""
	l.Sort = SortNone
}

// Delete removes a product. Requires the delete capability; on a success
// response exactly the matching id is dropped from the local list, keeping
// the others in order. Any failure leaves the list unchanged.
func (l *ProductList) Delete(ctx context.Context, productID int) error {
	if !l.sess.CanDeleteProduct() {
		return ErrNotAllowed
	}
	env, err := l.backend.DeleteProduct(ctx, productID)
	if l.closed {
		return nil // Screen is gone, drop the result
	}
	if err != nil {
		l.log.WithFields(logrus.Fields{
			"product_id": productID,
			"error":      err.Error(),
		}).Warn("Delete failed")
		return err
	}
	if !env.OK() {
		return nil // Backend refused; list stays as is
	}
	kept := l.raw[:0:0]
	for _, p := range l.raw {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	l.raw = kept
	return nil
}

// Close detaches the view-model; late completions become no-ops.
func (l *ProductList) Close() {
	l.closed = true
}
