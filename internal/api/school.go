package api

import (
	"context"
	"net/url"
)

// SchoolForm fetches the school-form HTML document. The script name keeps
// the backend's historical spelling.
func (c *Client) SchoolForm(ctx context.Context) (SchoolFormResult, error) {
	var out SchoolFormResult
	if err := c.get(ctx, "push/scoolForm.php", nil, &out); err != nil {
		return SchoolFormResult{}, err
	}
	return out, nil
}

// SendSuggestion submits the suggestion form.
func (c *Client) SendSuggestion(ctx context.Context, fullName, className, message string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{
		"fullName":  {fullName},
		"className": {className},
		"message":   {message},
	}
	if err := c.postForm(ctx, "push/sendSuggestion.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}
