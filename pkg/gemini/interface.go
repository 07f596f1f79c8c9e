package gemini

import (
	"context"
	"errors"
	"net/http"
)

// IGemini defines the interface for Gemini API client.
// Implementations are safe for concurrent use.
//
// The API key is passed per call rather than bound at construction: the
// operator can change the key at runtime through the settings store, and
// every request must use the current value.
type IGemini interface {
	// UploadFile uploads a local media file and returns its remote handle
	UploadFile(ctx context.Context, apiKey, path, mimeType string) (*File, error)

	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, apiKey string, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used
	Model() string
}

// Config holds the Gemini client configuration.
type Config struct {
	APIURL     string
	UploadURL  string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults and checks required fields.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.UploadURL == "" {
		c.UploadURL = DefaultUploadURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.APIURL == "" || c.Model == "" {
		return errors.New("gemini: api url and model are required")
	}
	return nil
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
