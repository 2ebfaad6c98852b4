// Package api talks to the glossary backend: GET /terms and POST /report_error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/atomicstack/term-glossary/internal/glossary"
)

const (
	termsPath  = "/terms"
	reportPath = "/report_error"
)

// Client is a thin HTTP client for the glossary backend. No timeout is set on
// requests; callers cancel through the context.
type Client struct {
	baseURL string
	http    *http.Client
}

// New validates baseURL and returns a client for it.
func New(baseURL string) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("server url required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("server url must be http or https (got %q)", trimmed)
	}
	return &Client{baseURL: trimmed, http: &http.Client{}}, nil
}

// BaseURL returns the normalised server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchTerms retrieves the full term list. Any non-2xx response is returned as
// a *StatusError.
func (c *Client) FetchTerms(ctx context.Context) ([]glossary.Term, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+termsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build terms request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch terms: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var terms []glossary.Term
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		return nil, fmt.Errorf("decode terms: %w", err)
	}
	return terms, nil
}

// SubmitReport posts the report fields as a JSON object. A non-2xx response is
// returned as a *StatusError carrying the response body verbatim.
func (c *Client) SubmitReport(ctx context.Context, fields map[string]string) error {
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reportPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build report request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit report: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &StatusError{Code: resp.StatusCode, Body: "", readErr: err}
	}
	return &StatusError{Code: resp.StatusCode, Body: string(body)}
}
