package api

import (
	"context"
	"net/url"
	"strconv"
)

// Rewards fetches the reward list.
func (c *Client) Rewards(ctx context.Context) (Envelope[[]RewardItem], error) {
	var out Envelope[[]RewardItem]
	if err := c.get(ctx, "push/getRewards.php", nil, &out); err != nil {
		return Envelope[[]RewardItem]{}, err
	}
	return out, nil
}

// RewardDetails fetches one reward by id.
func (c *Client) RewardDetails(ctx context.Context, rewardID int) (Envelope[RewardItem], error) {
	var out Envelope[RewardItem]
	q := url.Values{"rewardId": {strconv.Itoa(rewardID)}}
	if err := c.get(ctx, "push/getRewardDetails.php", q, &out); err != nil {
		return Envelope[RewardItem]{}, err
	}
	return out, nil
}
