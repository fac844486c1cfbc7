// Package gyazo is a client for the Gyazo image upload API.
package gyazo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"time"
)

// DefaultUploadURL is the Gyazo upload endpoint.
const DefaultUploadURL = "https://upload.gyazo.com/api/upload"

// DefaultTimeout is applied when the caller supplies neither an HTTP client
// nor an explicit timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBody bounds the response snippet kept on a failed upload.
const maxErrorBody = 4 << 10

// Config holds client construction parameters. AccessToken is required;
// everything else has a usable default.
type Config struct {
	// AccessToken authenticates every upload. The client does not
	// validate or refresh it.
	AccessToken string

	// UploadURL overrides the upload endpoint. Defaults to
	// DefaultUploadURL.
	UploadURL string

	// HTTPClient is an optional pre-configured client. TLS, proxies and
	// connection pooling belong to it, not to this package. When nil, a
	// client with the configured Timeout is used.
	HTTPClient *http.Client

	// Timeout is the per-request timeout applied when HTTPClient is nil.
	// Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Client uploads images to Gyazo. It holds no mutable state and is safe for
// concurrent use; every call is an independent request.
type Client struct {
	httpClient *http.Client
	token      string
	uploadURL  string
}

// NewClient creates a Client from config.
func NewClient(config *Config) (*Client, error) {
	if config == nil || config.AccessToken == "" {
		return nil, fmt.Errorf("gyazo: access token is required")
	}

	uploadURL := config.UploadURL
	if uploadURL == "" {
		uploadURL = DefaultUploadURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		token:      config.AccessToken,
		uploadURL:  uploadURL,
	}, nil
}

// UploadResult is the upload endpoint's response descriptor. All fields are
// required; a response missing any of them fails decoding.
type UploadResult struct {
	CreatedAt    string `json:"created_at"`
	ImageID      string `json:"image_id"`
	PermalinkURL string `json:"permalink_url"`
	ThumbURL     string `json:"thumb_url"`
	Type         string `json:"type"`
	URL          string `json:"url"`
}

// Upload reads the image at path and posts it to Gyazo as a multipart form
// together with the access token and any populated options.
//
// Failures are returned as *FileError, *TransportError, *StatusError or
// *DecodeError; on error no result is returned and nothing is retried.
func (c *Client) Upload(ctx context.Context, path string, options *UploadOptions) (*UploadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("access_token", c.token); err != nil {
		return nil, fmt.Errorf("gyazo: write access token field: %w", err)
	}
	part, err := form.CreateFormFile("imagedata", path)
	if err != nil {
		return nil, fmt.Errorf("gyazo: create image part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("gyazo: write image part: %w", err)
	}
	for _, field := range options.formFields() {
		if err := form.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("gyazo: write %s field: %w", field.name, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("gyazo: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("gyazo: build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       snippet,
		}
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if err := result.validate(); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &result, nil
}

// validate checks that every required response field is present.
// encoding/json leaves absent fields at their zero value, so presence is
// checked after decoding.
func (r *UploadResult) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"created_at", r.CreatedAt},
		{"image_id", r.ImageID},
		{"permalink_url", r.PermalinkURL},
		{"thumb_url", r.ThumbURL},
		{"type", r.Type},
		{"url", r.URL},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("missing required field %q", field.name)
		}
	}
	return nil
}
