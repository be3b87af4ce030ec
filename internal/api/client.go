package api

import (
	"bytes"          // Multipart bodies
	"context"        // Request scoping
	"encoding/json"  // Envelope decoding
	"fmt"            // Error wrapping
	"io"             // Multipart image part
	"mime/multipart" // Image-bearing submissions
	"net/http"       // Transport
	"net/url"        // Base URL handling and form encoding
	"strings"        // Form bodies
	"time"           // Transport timeout

	"github.com/sirupsen/logrus" // Structured diagnostics
)

// Client talks to the backend's PHP scripts. One attempt per call: no retry,
// no backoff, no caching; failures surface as errors to the caller.
type Client struct {
	base *url.URL            // Backend origin
	http *http.Client        // Underlying transport
	log  logrus.FieldLogger  // Diagnostics only, never required for correctness
}

// New builds a Client for the given backend origin. The base URL is treated
// as a directory: without a trailing slash ResolveReference would drop its
// last path segment, so one is appended when missing.
func New(baseURL string, timeout time.Duration, log logrus.FieldLogger) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}, nil
}

// endpoint resolves a script path against the base origin.
func (c *Client) endpoint(path string) *url.URL {
	ref := &url.URL{Path: path}
	return c.base.ResolveReference(ref)
}

// do sends the request once and decodes the JSON body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
			"error":  err.Error(),
		}).Warn("Request failed")
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s: unexpected status %s", req.Method, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", req.URL.Path, err)
	}
	return nil
}

// get issues a query-string GET and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.endpoint(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// postForm issues a form-url-encoded POST and decodes the response into out.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	u := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// filePart is a named binary part of a multipart submission.
type filePart struct {
	field    string    // Form field name
	filename string    // Original file name
	body     io.Reader // File contents
}

// postMultipart issues a multipart/form-data POST. Optional text fields must
// be left out of fields entirely, not sent empty.
func (c *Client) postMultipart(ctx context.Context, path string, fields []formField, files []filePart, out any) error {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			return fmt.Errorf("create part %s: %w", f.field, err)
		}
		if _, err := io.Copy(part, f.body); err != nil {
			return fmt.Errorf("copy part %s: %w", f.field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}
	u := c.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, out)
}

// formField is one text part of a multipart submission, ordered as sent.
type formField struct {
	name  string
	value string
}
