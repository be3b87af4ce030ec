package api

import (
	"context"
	"net/url"
	"strconv"
)

// ForumCategories fetches the forum topic list.
func (c *Client) ForumCategories(ctx context.Context) (Envelope[[]ForumCategory], error) {
	var out Envelope[[]ForumCategory]
	if err := c.get(ctx, "push/forumCategories.php", nil, &out); err != nil {
		return Envelope[[]ForumCategory]{}, err
	}
	return out, nil
}

// ForumPosts fetches every post in a category.
func (c *Client) ForumPosts(ctx context.Context, categoryID int) (Envelope[[]ForumPost], error) {
	var out Envelope[[]ForumPost]
	q := url.Values{"categoryId": {strconv.Itoa(categoryID)}}
	if err := c.get(ctx, "push/forumPosts.php", q, &out); err != nil {
		return Envelope[[]ForumPost]{}, err
	}
	return out, nil
}

// CreateForumCategory opens a new topic.
func (c *Client) CreateForumCategory(ctx context.Context, title string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{"title": {title}}
	if err := c.postForm(ctx, "push/createForumCategory.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}

// SendForumReply appends a post to a category.
func (c *Client) SendForumReply(ctx context.Context, categoryID int, message string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{
		"categoryId": {strconv.Itoa(categoryID)},
		"message":    {message},
	}
	if err := c.postForm(ctx, "push/sendForumReply.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}
