// Package backend is the typed HTTP client for the exhibition platform REST
// API. The gateway owns no data; every collection and mutation goes through
// this client, and non-2xx responses surface the backend's own message.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"onexhib-admin/internal/monitoring"
)

// Config carries the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin JSON/multipart client over one backend base URL.
type Client struct {
	baseURL string
	hc      *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: unexpected status %d", e.Status)
}

// GetJSON fetches path and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

// PostJSON sends body as JSON and decodes the response into out (out may be
// nil when the caller only cares about success).
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encode body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(buf), out)
}

// PutJSON sends body as JSON via PUT.
func (c *Client) PutJSON(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encode body: %w", err)
	}
	return c.do(ctx, http.MethodPut, path, "application/json", bytes.NewReader(buf), out)
}

// Delete issues a DELETE to path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// File is one multipart file part.
type File struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// PostMultipart sends fields and files as multipart/form-data, the shape the
// backend's create endpoints expect whenever uploads ride along.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]string, files []File, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("backend: write field %s: %w", key, err)
		}
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		h.Set("Content-Type", f.ContentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return fmt.Errorf("backend: create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("backend: write part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("backend: close multipart: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, out)
}

// Stream fetches path and hands back the raw body for passthrough (brochure
// downloads). The caller must close the body.
func (c *Client) Stream(ctx context.Context, path string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("backend: new request: %w", err)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("backend: %s: %w", path, err)
	}
	monitoring.TrackBackendCall(http.MethodGet, resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, "", readError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend: new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	monitoring.TrackBackendCall(method, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return nil
}

func readError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
