package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/vipclub/vipclub-cli/internal/client/models"
	"github.com/vipclub/vipclub-cli/internal/common"
)

// HTTPClient talks JSON to the VIP Club backend over HTTP. The bearer token
// is process-wide state shared by every request; token and installationID
// are guarded because command handlers may issue requests while a session
// operation is resolving.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu             sync.RWMutex
	token          string
	installationID string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the backend at baseURL. The URL must not
// end with a trailing slash; paths are appended verbatim.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) SetInstallationID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.installationID = id
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// errorResponse is the backend's error envelope (FastAPI-style detail).
type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (e *errorResponse) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}

// do issues one JSON request. A non-nil body is marshalled; a non-nil out is
// decoded from a 2xx response. Errors are mapped to the package sentinels.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.installationID != "" {
		req.Header.Set(common.InstallationIDHeaderName, c.installationID)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("invalid response from backend: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) mapStatusError(resp *http.Response) error {
	var er errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&er)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg := er.message(); msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	default:
		if msg := er.message(); msg != "" {
			return fmt.Errorf("backend error (%d): %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
}

func (c *HTTPClient) Me(ctx context.Context) (*models.Identity, error) {
	var id models.Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

type exchangeRequest struct {
	SessionID string `json:"session_id"`
}

type exchangeResponse struct {
	Success      bool            `json:"success"`
	User         models.Identity `json:"user"`
	SessionToken string          `json:"session_token"`
}

func (c *HTTPClient) ExchangeSession(ctx context.Context, sessionID string) (*ExchangeResult, error) {
	var resp exchangeResponse
	err := c.do(ctx, http.MethodPost, "/auth/session", exchangeRequest{SessionID: sessionID}, &resp)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}
	if !resp.Success || resp.SessionToken == "" {
		return nil, ErrExchangeFailed
	}
	return &ExchangeResult{Identity: resp.User, Token: resp.SessionToken}, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	// Body is ignored per the contract; only the status matters.
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *HTTPClient) Wallet(ctx context.Context) (*models.Wallet, error) {
	var w models.Wallet
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *HTTPClient) Transactions(ctx context.Context, q TransactionQuery) (*models.TransactionPage, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		params.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.Type != "" {
		params.Set("transaction_type", q.Type)
	}
	path := "/wallet/transactions"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var page models.TransactionPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type withdrawRequest struct {
	Amount      float64 `json:"amount"`
	ReferenceID string  `json:"reference_id,omitempty"`
}

type walletMutationResponse struct {
	Success       bool           `json:"success"`
	Wallet        *models.Wallet `json:"wallet"`
	TransactionID string         `json:"transaction_id"`
}

// validate rejects 2xx bodies that do not carry a usable wallet snapshot, so
// callers never have to nil-check the returned wallet.
func (r *walletMutationResponse) validate() error {
	if !r.Success || r.Wallet == nil {
		return errors.New("invalid response from backend: missing wallet")
	}
	return nil
}

func (c *HTTPClient) Deposit(ctx context.Context, amount float64) (*models.Wallet, string, error) {
	var resp walletMutationResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/deposit", amountRequest{Amount: amount}, &resp); err != nil {
		return nil, "", err
	}
	if err := resp.validate(); err != nil {
		return nil, "", err
	}
	return resp.Wallet, resp.TransactionID, nil
}

func (c *HTTPClient) Withdraw(ctx context.Context, amount float64, referenceID string) (*models.Wallet, string, error) {
	req := withdrawRequest{Amount: amount, ReferenceID: referenceID}
	var resp walletMutationResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/withdraw", req, &resp); err != nil {
		return nil, "", err
	}
	if err := resp.validate(); err != nil {
		return nil, "", err
	}
	return resp.Wallet, resp.TransactionID, nil
}

type transferRequest struct {
	Amount      float64 `json:"amount"`
	FromBalance string  `json:"from_balance"`
	ToBalance   string  `json:"to_balance"`
}

func (c *HTTPClient) Transfer(ctx context.Context, amount float64, from, to string) (*models.Wallet, error) {
	req := transferRequest{Amount: amount, FromBalance: from, ToBalance: to}
	var resp walletMutationResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/transfer", req, &resp); err != nil {
		return nil, err
	}
	if err := resp.validate(); err != nil {
		return nil, err
	}
	return resp.Wallet, nil
}

func (c *HTTPClient) Notifications(ctx context.Context, limit int, unreadOnly bool) (*models.NotificationPage, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if unreadOnly {
		params.Set("unread_only", "true")
	}
	path := "/notifications"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var page models.NotificationPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(notificationID)+"/read", nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil)
}
