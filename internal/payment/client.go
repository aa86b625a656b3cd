// Package payment proxies rent charges to the external payment simulator.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/dwellist/dwellist-backend/internal/errors"
)

// Card carries the payment form fields. It is never persisted and the
// number is never logged.
type Card struct {
	Number     string `json:"card_number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

// ChargeResult is the provider's acknowledgment of a successful charge
type ChargeResult struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
}

// Transaction is one row of the provider's payment history
type Transaction struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// Client talks to the payment simulator over HTTP
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a payment Client with a bounded request timeout
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type chargeRequest struct {
	Card     Card    `json:"card"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Customer string  `json:"customer"`
}

type providerError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

// Charge submits a rent payment. A transport failure means the provider is
// unavailable; a non-2xx response means the charge was declined. There is
// no retry in either case.
func (c *Client) Charge(ctx context.Context, customer string, card Card, amount float64, currency string) (*ChargeResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrInvalidInput)
	}

	body, err := json.Marshal(chargeRequest{
		Card:     card,
		Amount:   amount,
		Currency: currency,
		Customer: customer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build charge request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("payment provider unreachable", slog.Any("error", err))
		}
		return nil, apperrors.NewPaymentUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var perr providerError
		reason := ""
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 4096)); readErr == nil {
			if json.Unmarshal(data, &perr) == nil {
				reason = perr.Reason
				if reason == "" {
					reason = perr.Error
				}
			}
		}
		if c.logger != nil {
			c.logger.Warn("payment declined",
				slog.String("customer", customer),
				slog.Int("status", resp.StatusCode))
		}
		return nil, apperrors.NewPaymentDeclinedError("", reason)
	}

	var result ChargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode charge response: %w", err)
	}
	return &result, nil
}

// FetchHistory returns the customer's past transactions. Any failure yields
// an empty list so the dashboard still renders.
func (c *Client) FetchHistory(ctx context.Context, customer string) []Transaction {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transactions?customer="+url.QueryEscape(customer), nil)
	if err != nil {
		return nil
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("payment history unavailable", slog.Any("error", err))
		}
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var history []Transaction
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil
	}
	return history
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
