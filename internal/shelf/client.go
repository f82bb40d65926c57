// Package shelf talks to the hosted asset database (a shelf.nu instance
// exposed through a PostgREST endpoint). The application only reads the
// Asset table and writes the Booking table; asset management itself happens
// in the shelf.nu interface.
package shelf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/avquote/backend/internal/store"
)

// Row is one record in remote vocabulary, untyped because table schemas
// differ between shelf.nu deployments.
type Row map[string]any

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New returns a client for the given REST endpoint. Both values come from
// configuration; an unset pair means the remote backend is not in use and
// callers get store.ErrNotConfigured instead of a half-working client.
func New(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("shelf client: %w: base URL and API key required", store.ErrNotConfigured)
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (c *Client) endpoint(table string) string {
	return c.baseURL + "/rest/v1/" + url.PathEscape(table)
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

type remoteError struct {
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func decodeError(table string, status int, body []byte) error {
	var re remoteError
	if err := json.Unmarshal(body, &re); err == nil && re.Message != "" {
		return fmt.Errorf("%s: %s (status %d)", table, re.Message, status)
	}
	return fmt.Errorf("%s: unexpected status %d", table, status)
}

// Select fetches rows from a table. columns is the projection ("*" or a
// comma list); filters become col=eq.value pairs; limit 0 means no limit.
func (c *Client) Select(ctx context.Context, table, columns string, filters map[string]string, limit int) ([]Row, error) {
	q := url.Values{}
	if columns == "" {
		columns = "*"
	}
	q.Set("select", columns)
	// Deterministic order keeps requests reproducible in tests and logs.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, "eq."+filters[k])
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(table)+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("select: %w", decodeError(table, resp.StatusCode, body))
	}
	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("select %s: decode: %w", table, err)
	}
	return rows, nil
}

// Insert writes rows into a table and returns the created records.
func (c *Client) Insert(ctx context.Context, table string, rows []Row) ([]Row, error) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("insert %s: encode: %w", table, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(table), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table, err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insert: %w", decodeError(table, resp.StatusCode, body))
	}
	var created []Row
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("insert %s: decode: %w", table, err)
	}
	return created, nil
}
