// Package api implements the HTTP client for the dashboard backend,
// mirroring the calls the web frontend makes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// Client talks to one backend instance. The API is session-less: every
// preference call carries the username in the body, exactly like the
// frontend does with its sessionStorage copy.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// statusToError maps the API's status codes onto the shared sentinels.
func statusToError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return common.ErrorAlreadyExists
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	resp, err := c.postJSON(ctx, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return statusToError(resp)
	}
	return nil
}

// Login verifies credentials.
func (c *Client) Login(ctx context.Context, username, password string) error {
	resp, err := c.postJSON(ctx, "/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusToError(resp)
	}
	return nil
}

// SavePreferences replaces the stored record for username.
func (c *Client) SavePreferences(ctx context.Context, username string, record *models.PreferenceRecord) error {
	resp, err := c.postJSON(ctx, "/savePreferences", map[string]any{
		"username": username,
		"filters":  record.Filters,
		"session":  record.Session,
		"columns":  record.Columns,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusToError(resp)
	}
	return nil
}

// GetPreferences fetches the stored record for username.
func (c *Client) GetPreferences(ctx context.Context, username string) (*models.PreferenceRecord, error) {
	resp, err := c.postJSON(ctx, "/getPreferences", map[string]string{"username": username})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusToError(resp)
	}

	record := &models.PreferenceRecord{}
	if err := json.NewDecoder(resp.Body).Decode(record); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return record, nil
}

// GetTable fetches the raw static dataset.
func (c *Client) GetTable(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/getTable", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusToError(resp)
	}

	return io.ReadAll(resp.Body)
}
