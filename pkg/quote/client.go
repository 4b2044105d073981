package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SubmittedQuotation is the persisted record echoed back by the API.
type SubmittedQuotation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// SubmitError is a recoverable submission failure: the POST reached the
// server but came back non-2xx. Callers surface it as a warning and keep
// going; document generation never waits on it.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("quotation submission failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("quotation submission failed (%d)", e.StatusCode)
}

// Client POSTs completed drafts to the backend API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit POSTs the payload. Non-2xx responses return a *SubmitError;
// transport failures return the underlying error. No retry, no
// idempotency: every call that reaches the server creates a record.
func (c *Client) Submit(ctx context.Context, p Payload) (*SubmittedQuotation, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/quotations", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.Unmarshal(raw, &apiErr)
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	var out struct {
		Data SubmittedQuotation `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out.Data, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
