package api

import (
	"context"
	"net/url"
)

// VerifyCode exchanges a one-shot access code for the user record. The
// caller persists the returned fields; there is no token or second step.
func (c *Client) VerifyCode(ctx context.Context, code string) (AuthResult, error) {
	var out AuthResult
	q := url.Values{"code": {code}}
	if err := c.get(ctx, "push/index.php", q, &out); err != nil {
		return AuthResult{}, err
	}
	return out, nil
}
