package api

import "context"

// News fetches the news feed. The response uses a bespoke "news" field.
func (c *Client) News(ctx context.Context) (NewsResult, error) {
	var out NewsResult
	if err := c.get(ctx, "push/news.php", nil, &out); err != nil {
		return NewsResult{}, err
	}
	return out, nil
}
