package character

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"charform/internal/form"
)

// HTTPCreator posts characters to a remote API.
type HTTPCreator struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCreator creates a creator for the API rooted at baseURL. A nil
// client uses http.DefaultClient.
func NewHTTPCreator(baseURL string, client *http.Client) *HTTPCreator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPCreator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Create sends the record as JSON to <baseURL>/character
func (c *HTTPCreator) Create(ctx context.Context, rec form.Record) error {
	body, err := json.Marshal(FromRecord(rec))
	if err != nil {
		return fmt.Errorf("failed to encode character: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/character", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("create character: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(resp.Body),
	}
}

// Close is a no-op; HTTPCreator holds no resources of its own.
func (c *HTTPCreator) Close() error {
	return nil
}

// errorMessage extracts {"error": "..."} from a response body, falling back to
// the trimmed body text.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
