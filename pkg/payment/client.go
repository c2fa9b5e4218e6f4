package payment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the external checkout provider. The provider hosts the
// actual payment page; this service only creates sessions and asks for
// their status later.
type Client struct {
	BaseURL    string
	SecretKey  string
	HTTPClient *http.Client
}

type CheckoutSession struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Status    string  `json:"status"` // open, complete, expired
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

type createSessionRequest struct {
	Reference  string  `json:"reference"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	SuccessURL string  `json:"success_url"`
	CancelURL  string  `json:"cancel_url"`
}

func NewClient(baseURL, secretKey string) *Client {
	return &Client{
		BaseURL:   baseURL,
		SecretKey: secretKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// CreateCheckoutSession opens a hosted checkout session for the given
// order reference and returns the redirect URL.
func (c *Client) CreateCheckoutSession(reference string, amount float64, successURL, cancelURL string) (*CheckoutSession, error) {
	requestData := createSessionRequest{
		Reference:  reference,
		Amount:     amount,
		Currency:   "AED",
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	}

	jsonData, err := json.Marshal(requestData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}

	url := fmt.Sprintf("%s/v1/checkout/sessions", c.BaseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	return c.do(req)
}

// GetCheckoutSession fetches a session so its payment outcome can be
// verified server-side instead of trusting the redirect.
func (c *Client) GetCheckoutSession(sessionID string) (*CheckoutSession, error) {
	url := fmt.Sprintf("%s/v1/checkout/sessions/%s", c.BaseURL, sessionID)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*CheckoutSession, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("payment provider returned status %d: %s", resp.StatusCode, body)
	}

	var session CheckoutSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &session, nil
}
