package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// DefaultBaseURL is the Notion API host.
	DefaultBaseURL = "https://api.notion.com"

	// APIVersion is the fixed Notion-Version header value.
	APIVersion = "2022-06-28"
)

// APIError is a non-success response from the Notion API. The raw response
// body is kept so it can be surfaced verbatim to the operator.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error %d: %s", e.StatusCode, e.Body)
}

// Client is the HTTP wrapper for the Notion REST API. The bearer token is
// passed per call; the client only fixes the host and API version.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Notion HTTP client.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// CreateDatabase creates a new database via POST /v1/databases.
func (c *Client) CreateDatabase(ctx context.Context, token string, req CreateDatabaseRequest) (*Database, error) {
	var db Database
	if err := c.post(ctx, token, "/v1/databases", req, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// CreatePage inserts a record via POST /v1/pages.
func (c *Client) CreatePage(ctx context.Context, token string, req CreatePageRequest) error {
	return c.post(ctx, token, "/v1/pages", req, nil)
}

func (c *Client) post(ctx context.Context, token, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal notion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build notion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	httpReq.Header.Set("Notion-Version", APIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call notion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode notion response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// Parent locates where a database or page is created.
type Parent struct {
	Type       string `json:"type,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
}

// TextContent is the inner text payload of a rich text object.
type TextContent struct {
	Content string `json:"content"`
}

// RichText is a Notion rich text object.
type RichText struct {
	Type string      `json:"type,omitempty"`
	Text TextContent `json:"text"`
}

// EmptyObject marshals as {} for property schema declarations.
type EmptyObject struct{}

// PropertySchema declares one typed column of a database.
type PropertySchema struct {
	Title    *EmptyObject `json:"title,omitempty"`
	RichText *EmptyObject `json:"rich_text,omitempty"`
}

// PropertyValue is one cell of an inserted record.
type PropertyValue struct {
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
}

// CreateDatabaseRequest is the body for POST /v1/databases.
type CreateDatabaseRequest struct {
	Parent     Parent                    `json:"parent"`
	Title      []RichText                `json:"title"`
	Properties map[string]PropertySchema `json:"properties"`
}

// CreatePageRequest is the body for POST /v1/pages.
type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

// Database is the Notion API database object (only the id is consumed).
type Database struct {
	ID string `json:"id"`
}
