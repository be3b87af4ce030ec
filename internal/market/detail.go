package market

import (
	"context"

	"github.com/sirupsen/logrus"

	"schoolhub/internal/api"
)

// Detail is the product detail screen state.
type Detail struct {
	backend Backend
	log     logrus.FieldLogger
	product *api.MarketProduct
	closed  bool
}

// NewDetail builds the product detail view-model.
func NewDetail(backend Backend, log logrus.FieldLogger) *Detail {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Detail{backend: backend, log: log}
}

// Load fetches one product; failures keep the screen empty.
func (d *Detail) Load(ctx context.Context, productID int) {
	env, err := d.backend.MarketProductDetail(ctx, productID)
	if d.closed {
		return
	}
	if err != nil {
		d.log.WithFields(logrus.Fields{
			"product_id": productID,
			"error":      err.Error(),
		}).Warn("Failed to load product detail")
		return
	}
	if !env.OK() || env.Data == nil {
		return
	}
	d.product = env.Data
}

// Product returns the loaded product, or nil while empty.
func (d *Detail) Product() *api.MarketProduct {
	return d.product
}

// Close detaches the view-model; late completions become no-ops.
func (d *Detail) Close() {
	d.closed = true
}
