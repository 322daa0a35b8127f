// Package kite is a minimal Kite Connect v3 REST client covering the
// endpoints the trading tools need: session exchange, profile, portfolio,
// orders, quotes and margins.
package kite

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"kitebot/internal/config"
)

const (
	loginURLFormat = "https://kite.zerodha.com/connect/login?v=3&api_key=%s"
	kiteVersion    = "3"
)

// Client talks to the Kite Connect HTTP API. The access token is the only
// mutable state; it is set once after the session exchange and read by
// every authenticated call.
type Client struct {
	apiKey    string
	apiSecret string
	client    *resty.Client

	mu          sync.RWMutex
	accessToken string
}

// NewClient creates a Kite Connect client from the application config.
func NewClient(cfg *config.Config) *Client {
	client := resty.New()
	client.SetBaseURL(cfg.KiteBaseURL)
	client.SetTimeout(30 * time.Second)
	client.SetHeader("X-Kite-Version", kiteVersion)

	c := &Client{
		apiKey:    cfg.KiteAPIKey,
		apiSecret: cfg.KiteAPISecret,
		client:    client,
	}
	if cfg.KiteAccessToken != "" {
		c.SetAccessToken(cfg.KiteAccessToken)
	}
	return c
}

// LoginURL returns the Kite login page URL for the configured API key.
func (c *Client) LoginURL() string {
	return fmt.Sprintf(loginURLFormat, c.apiKey)
}

// SetAccessToken sets the session token used for authenticated calls.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// AccessToken returns the current session token, empty if not logged in.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) authHeader() string {
	return "token " + c.apiKey + ":" + c.AccessToken()
}

// GenerateSession exchanges a request token from the login redirect for a
// user session and stores its access token on the client.
func (c *Client) GenerateSession(ctx context.Context, requestToken string) (*UserSession, error) {
	checksum := sha256.Sum256([]byte(c.apiKey + requestToken + c.apiSecret))

	var session UserSession
	err := c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetFormData(map[string]string{
			"api_key":       c.apiKey,
			"request_token": requestToken,
			"checksum":      hex.EncodeToString(checksum[:]),
		}).Post("/session/token")
	}, &session)
	if err != nil {
		return nil, fmt.Errorf("generate session: %w", err)
	}

	c.SetAccessToken(session.AccessToken)
	return &session, nil
}

// Profile returns the user profile and account information.
func (c *Client) Profile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.get(ctx, "/user/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Margins returns the available funds across segments.
func (c *Client) Margins(ctx context.Context) (*Margins, error) {
	var margins Margins
	if err := c.get(ctx, "/user/margins", nil, &margins); err != nil {
		return nil, fmt.Errorf("get margins: %w", err)
	}
	return &margins, nil
}

// Holdings returns all demat holdings.
func (c *Client) Holdings(ctx context.Context) ([]Holding, error) {
	var holdings []Holding
	if err := c.get(ctx, "/portfolio/holdings", nil, &holdings); err != nil {
		return nil, fmt.Errorf("get holdings: %w", err)
	}
	return holdings, nil
}

// Positions returns the day's net and daily positions.
func (c *Client) Positions(ctx context.Context) (*Positions, error) {
	var positions Positions
	if err := c.get(ctx, "/portfolio/positions", nil, &positions); err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return &positions, nil
}

// Orders returns all orders placed today.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.get(ctx, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

// OrderHistory returns the state trail of a single order.
func (c *Client) OrderHistory(ctx context.Context, orderID string) ([]Order, error) {
	var history []Order
	if err := c.get(ctx, "/orders/"+url.PathEscape(orderID), nil, &history); err != nil {
		return nil, fmt.Errorf("get order history: %w", err)
	}
	return history, nil
}

// Quote returns full quotes for the given instruments ("EXCHANGE:SYMBOL").
func (c *Client) Quote(ctx context.Context, instruments []string) (map[string]Quote, error) {
	quotes := map[string]Quote{}
	if err := c.getInstruments(ctx, "/quote", instruments, &quotes); err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return quotes, nil
}

// LTP returns last traded prices for the given instruments.
func (c *Client) LTP(ctx context.Context, instruments []string) (map[string]LTPQuote, error) {
	quotes := map[string]LTPQuote{}
	if err := c.getInstruments(ctx, "/quote/ltp", instruments, &quotes); err != nil {
		return nil, fmt.Errorf("get ltp: %w", err)
	}
	return quotes, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	return c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		if params != nil {
			req.SetQueryParams(params)
		}
		return req.Get(path)
	}, out)
}

func (c *Client) getInstruments(ctx context.Context, path string, instruments []string, out any) error {
	return c.do(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.SetQueryParamsFromValues(url.Values{"i": instruments}).Get(path)
	}, out)
}

// do runs a request against the API and decodes the response envelope.
// Failures are mapped to *Error; nothing is retried.
func (c *Client) do(ctx context.Context, send func(*resty.Request) (*resty.Response, error), out any) error {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", c.authHeader())

	resp, err := send(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	var env struct {
		envelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("parse response (HTTP %d): %w", resp.StatusCode(), err)
	}

	if resp.StatusCode() != 200 || env.Status == "error" {
		return &Error{
			Code:      resp.StatusCode(),
			ErrorType: env.ErrorType,
			Message:   env.Message,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("parse response data: %w", err)
		}
	}
	return nil
}
