package qkartapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prashant-tajane/qkart-frontend/internal/domain"
	"github.com/prashant-tajane/qkart-frontend/internal/metrics"
	"github.com/prashant-tajane/qkart-frontend/internal/requestid"
)

// Client talks to the QKart REST API. Every method issues exactly one HTTP
// call: no caching, no retry. Calls are not cancellable once in flight beyond
// the per-call timeout.
type Client struct {
	http    *http.Client
	base    string
	timeout time.Duration
	logger  *slog.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{}, // no global timeout, each call sets its own
		base:    strings.TrimRight(endpoint, "/"),
		timeout: timeout,
		logger:  logger.With("component", "api_client"),
	}
}

// apiFailure is the {success:false, message} body the backend sends on 4xx.
type apiFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SearchProducts returns the catalog, server-filtered when query is non-empty.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	path := "/products"
	op := "search_products"
	if query != "" {
		path = "/products/search?value=" + url.QueryEscape(query)
	}

	var products []domain.Product
	if err := c.do(ctx, op, http.MethodGet, path, "", nil, &products); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

// FetchCart returns the current user's cart entries.
func (c *Client) FetchCart(ctx context.Context, token string) ([]domain.CartEntry, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	var entries []domain.CartEntry
	if err := c.do(ctx, "fetch_cart", http.MethodGet, "/cart", token, nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch cart: %w", err)
	}
	return entries, nil
}

// UpdateCart posts one productId/qty pair and returns the full updated cart.
// Used both for adding a new item (qty=1) and adjusting an existing one.
func (c *Client) UpdateCart(ctx context.Context, token, productID string, qty int) ([]domain.CartEntry, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	body := domain.CartEntry{ProductID: productID, Qty: qty}
	var entries []domain.CartEntry
	if err := c.do(ctx, "update_cart", http.MethodPost, "/cart", token, body, &entries); err != nil {
		return nil, fmt.Errorf("update cart: %w", err)
	}
	return entries, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account. The backend answers 201 on success and
// 400 with a message (e.g. username taken) on failure.
func (c *Client) Register(ctx context.Context, username, password string) error {
	body := credentials{Username: username, Password: password}
	if err := c.do(ctx, "register", http.MethodPost, "/auth/register", "", body, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an auth token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := credentials{Username: username, Password: password}
	var resp loginResponse
	if err := c.do(ctx, "login", http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return resp.Token, nil
}

// Ping verifies backend reachability for the health checker.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.do(ctx, "ping", http.MethodGet, "/products", "", nil, nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// do performs a single HTTP exchange against the backend. A 2xx response is
// decoded into out (when non-nil), a 4xx becomes a *domain.APIError carrying
// the server message, a transport error becomes ErrBackendUnreachable, and
// anything else is a generic failure.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	id := requestid.New()
	ctx = requestid.WithRequestID(ctx, id)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Request-ID", id)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.observe(op, "unreachable", duration)
		c.logger.WarnContext(ctx, "backend unreachable", "operation", op, "error", err)
		return domain.ErrBackendUnreachable
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(op, "unreachable", duration)
		return domain.ErrBackendUnreachable
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.observe(op, "success", duration)
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		c.observe(op, "client_error", duration)
		var failure apiFailure
		_ = json.Unmarshal(data, &failure)
		if failure.Message == "" {
			failure.Message = http.StatusText(resp.StatusCode)
		}
		c.logger.DebugContext(ctx, "backend rejected request",
			"operation", op, "status", resp.StatusCode, "message", failure.Message)
		return &domain.APIError{StatusCode: resp.StatusCode, Message: failure.Message}

	default:
		c.observe(op, "server_error", duration)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

func (c *Client) observe(op, outcome string, duration time.Duration) {
	metrics.APIRequestDuration.WithLabelValues(op, outcome).Observe(duration.Seconds())
	metrics.APIRequestsTotal.WithLabelValues(op, outcome).Inc()
}
