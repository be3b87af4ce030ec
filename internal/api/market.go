package api

import (
	"context"
	"io"
	"net/url"
	"strconv"
)

// NewProduct is a create-product submission. Price and DiscountPrice carry
// the raw text the user typed; the backend parses them. An empty
// DiscountPrice means the part is omitted from the request entirely.
type NewProduct struct {
	Title         string
	Description   string
	Price         string
	DiscountPrice string
	CategoryID    int
	ImageName     string
	Image         io.Reader
	UserID        int
}

// ProductUpdate is an update-product submission. Image is optional; a nil
// Image leaves the stored picture untouched.
type ProductUpdate struct {
	ProductID     int
	Title         string
	Description   string
	Price         string
	Rating        string
	DiscountPrice string
	CategoryID    int
	ImageName     string
	Image         io.Reader
}

// MarketCategories fetches the market category tiles.
func (c *Client) MarketCategories(ctx context.Context) (Envelope[[]MarketCategory], error) {
	var out Envelope[[]MarketCategory]
	if err := c.get(ctx, "push/market/getCategories.php", nil, &out); err != nil {
		return Envelope[[]MarketCategory]{}, err
	}
	return out, nil
}

// MarketProducts fetches products, scoped server-side to a category when
// categoryID is non-nil. The client never re-filters by category.
func (c *Client) MarketProducts(ctx context.Context, categoryID *int) (Envelope[[]MarketProduct], error) {
	var out Envelope[[]MarketProduct]
	q := url.Values{}
	if categoryID != nil {
		q.Set("categoryId", strconv.Itoa(*categoryID))
	}
	if err := c.get(ctx, "push/market/getProducts.php", q, &out); err != nil {
		return Envelope[[]MarketProduct]{}, err
	}
	return out, nil
}

// MarketProductDetail fetches one product by id.
func (c *Client) MarketProductDetail(ctx context.Context, productID int) (Envelope[MarketProduct], error) {
	var out Envelope[MarketProduct]
	q := url.Values{"productId": {strconv.Itoa(productID)}}
	if err := c.get(ctx, "push/market/getProductDetail.php", q, &out); err != nil {
		return Envelope[MarketProduct]{}, err
	}
	return out, nil
}

// DeleteProduct removes one product by id. The backend authorizes the
// caller; the client only hides the affordance from non-admins.
func (c *Client) DeleteProduct(ctx context.Context, productID int) (Envelope[MarketProduct], error) {
	var out Envelope[MarketProduct]
	q := url.Values{"productId": {strconv.Itoa(productID)}}
	if err := c.get(ctx, "push/market/deleteProduct.php", q, &out); err != nil {
		return Envelope[MarketProduct]{}, err
	}
	return out, nil
}

// CreateProduct uploads a new product with its image as multipart form data.
func (c *Client) CreateProduct(ctx context.Context, p NewProduct) (Envelope[string], error) {
	fields := []formField{
		{"title", p.Title},
		{"description", p.Description},
		{"price", p.Price},
	}
	if p.DiscountPrice != "" {
		fields = append(fields, formField{"discountPrice", p.DiscountPrice})
	}
	fields = append(fields,
		formField{"categoryId", strconv.Itoa(p.CategoryID)},
		formField{"userId", strconv.Itoa(p.UserID)},
	)
	files := []filePart{{field: "image", filename: p.ImageName, body: p.Image}}
	var out Envelope[string]
	if err := c.postMultipart(ctx, "push/market/createProduct.php", fields, files, &out); err != nil {
		return Envelope[string]{}, err
	}
	return out, nil
}

// UpdateProduct rewrites an existing product; the image part is sent only
// when a replacement was chosen.
func (c *Client) UpdateProduct(ctx context.Context, p ProductUpdate) (Envelope[string], error) {
	fields := []formField{
		{"productId", strconv.Itoa(p.ProductID)},
		{"title", p.Title},
		{"description", p.Description},
		{"price", p.Price},
		{"rating", p.Rating},
	}
	if p.DiscountPrice != "" {
		fields = append(fields, formField{"discountPrice", p.DiscountPrice})
	}
	fields = append(fields, formField{"categoryId", strconv.Itoa(p.CategoryID)})
	var files []filePart
	if p.Image != nil {
		files = append(files, filePart{field: "image", filename: p.ImageName, body: p.Image})
	}
	var out Envelope[string]
	if err := c.postMultipart(ctx, "push/market/updateProduct.php", fields, files, &out); err != nil {
		return Envelope[string]{}, err
	}
	return out, nil
}
