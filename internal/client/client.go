// Package client provides the merchant-side HTTP client for the vault API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	apperrors "github.com/allisson/panvault/internal/errors"
	"github.com/allisson/panvault/internal/tokenization/http/dto"
)

const defaultTimeout = 15 * time.Second

// Config configures a Client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// APIError is returned for every non-2xx response. It wraps the error kind matching
// the status code, so callers can use errors.Is with the internal/errors sentinels.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vault api: %d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("vault api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// Client calls the vault API with the merchant bearer token.
type Client struct {
	http *resty.Client
}

// New creates a Client for cfg.BaseURL.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}

	return &Client{http: httpClient}
}

// Tokenize exchanges a PAN for a token.
func (c *Client) Tokenize(ctx context.Context, pan string) (string, error) {
	var out dto.TokenizeResponse
	if err := c.post(ctx, "/tokenize", dto.TokenizeRequest{PAN: &pan}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Detokenize returns the PAN stored under token.
func (c *Client) Detokenize(ctx context.Context, token string) (string, error) {
	var out dto.DetokenizeResponse
	if err := c.post(ctx, "/detokenize", dto.DetokenizeRequest{Token: &token}, &out); err != nil {
		return "", err
	}
	return out.PAN, nil
}

// Charge records a purchase of amount against token.
func (c *Client) Charge(ctx context.Context, token, amount string) (*dto.ChargeResponse, error) {
	var out dto.ChargeResponse
	body := dto.ChargeRequest{Token: &token, Amount: &amount}
	if err := c.post(ctx, "/charge", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPurchases returns a page of the purchase ledger, optionally filtered by token.
func (c *Client) ListPurchases(ctx context.Context, token string, offset, limit int) ([]dto.PurchaseResponse, error) {
	var out dto.ListPurchasesResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&errorBody{}).
		SetQueryParam("offset", strconv.Itoa(offset)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if token != "" {
		req.SetQueryParam("token", token)
	}

	resp, err := req.Get("/purchases")
	if err != nil {
		return nil, fmt.Errorf("list purchases request: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&errorBody{}).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", strings.TrimPrefix(path, "/"), err)
	}
	return mapHTTPError(resp)
}

// errorBody is the JSON error envelope written by the API.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// mapHTTPError converts a non-2xx response into an *APIError.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Code = body.Error
		apiErr.Message = body.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = strings.ToLower(strings.ReplaceAll(http.StatusText(resp.StatusCode()), " ", "_"))
	}
	apiErr.kind = kindFor(apiErr.StatusCode, apiErr.Code)
	return apiErr
}

func kindFor(status int, code string) error {
	if code == "integrity_error" {
		return apperrors.ErrIntegrity
	}
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.ErrInvalidInput
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusForbidden:
		return apperrors.ErrForbidden
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusConflict:
		return apperrors.ErrConflict
	case http.StatusServiceUnavailable:
		return apperrors.ErrStorage
	default:
		return nil
	}
}
