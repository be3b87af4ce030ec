package api

import (
	"context"
	"net/url"
	"strconv"
)

// Complaints fetches the complaint list.
func (c *Client) Complaints(ctx context.Context) (Envelope[[]ComplaintItem], error) {
	var out Envelope[[]ComplaintItem]
	if err := c.get(ctx, "push/getComplaints.php", nil, &out); err != nil {
		return Envelope[[]ComplaintItem]{}, err
	}
	return out, nil
}

// ComplaintDetails fetches one complaint by id.
func (c *Client) ComplaintDetails(ctx context.Context, complaintID int) (Envelope[ComplaintItem], error) {
	var out Envelope[ComplaintItem]
	q := url.Values{"complaintId": {strconv.Itoa(complaintID)}}
	if err := c.get(ctx, "push/getComplaintDetails.php", q, &out); err != nil {
		return Envelope[ComplaintItem]{}, err
	}
	return out, nil
}

// SendComplaintReply submits an administrator's reply to a complaint.
func (c *Client) SendComplaintReply(ctx context.Context, complaintID int, reply string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{
		"complaintId": {strconv.Itoa(complaintID)},
		"reply":       {reply},
	}
	if err := c.postForm(ctx, "push/sendComplaintReply.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}

// SendComplaint submits a new complaint.
func (c *Client) SendComplaint(ctx context.Context, userName, complaintText string) (ResponseStatus, error) {
	var out ResponseStatus
	form := url.Values{
		"userName":      {userName},
		"complaintText": {complaintText},
	}
	if err := c.postForm(ctx, "push/sendComplaint.php", form, &out); err != nil {
		return ResponseStatus{}, err
	}
	return out, nil
}
