package api

import "context"

// ShopProducts fetches the legacy shop list. The response uses a bespoke
// "products" field.
func (c *Client) ShopProducts(ctx context.Context) (ShopResult, error) {
	var out ShopResult
	if err := c.get(ctx, "push/shop.php", nil, &out); err != nil {
		return ShopResult{}, err
	}
	return out, nil
}
