package api

import (
	"context"
	"net/url"
	"strconv"
)

// WishlistCategories fetches the wishlist category list.
func (c *Client) WishlistCategories(ctx context.Context) (Envelope[[]WishlistCategory], error) {
	var out Envelope[[]WishlistCategory]
	if err := c.get(ctx, "push/getWishlistCategories.php", nil, &out); err != nil {
		return Envelope[[]WishlistCategory]{}, err
	}
	return out, nil
}

// Wishlist fetches the wishes in a category.
func (c *Client) Wishlist(ctx context.Context, categoryID int) (Envelope[[]WishlistItem], error) {
	var out Envelope[[]WishlistItem]
	q := url.Values{"categoryId": {strconv.Itoa(categoryID)}}
	if err := c.get(ctx, "push/getWishlist.php", q, &out); err != nil {
		return Envelope[[]WishlistItem]{}, err
	}
	return out, nil
}

// WishlistItemDetails fetches one wish by id.
func (c *Client) WishlistItemDetails(ctx context.Context, wishID int) (Envelope[WishlistItem], error) {
	var out Envelope[WishlistItem]
	q := url.Values{"wishId": {strconv.Itoa(wishID)}}
	if err := c.get(ctx, "push/getWishlistItem.php", q, &out); err != nil {
		return Envelope[WishlistItem]{}, err
	}
	return out, nil
}

// SendWishlistItem appends a wish to a category.
func (c *Client) SendWishlistItem(ctx context.Context, categoryID int, content string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{
		"categoryId": {strconv.Itoa(categoryID)},
		"content":    {content},
	}
	if err := c.postForm(ctx, "push/sendWishlistItem.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}
