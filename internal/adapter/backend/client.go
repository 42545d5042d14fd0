// Package backend talks to the remote hub API on behalf of console sessions.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/domain"
)

// Config configures the remote API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client implements usecase.Backend over the remote REST API.
type Client struct {
	http    *resty.Client
	retrier *Retrier
}

// New creates a Client for the given base URL.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "hubadmin"
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{http: httpClient, retrier: NewRetrier()}
}

// StatusError is a non-2xx reply from the remote API.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("backend %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap maps the status onto a domain error.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	default:
		return domain.ErrBackendError
	}
}

// TransportError is a failure to reach the remote API at all.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{domain.ErrBackendError, e.Err}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type call struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
}

// do executes a call and returns the raw reply body. Reads are retried on
// transport failures and 5xx replies.
func (c *Client) do(ctx context.Context, cl call) ([]byte, error) {
	var out []byte
	op := func() error {
		req := c.http.R().SetContext(ctx)
		if cl.token != "" {
			req.SetAuthToken(cl.token)
		}
		if len(cl.query) > 0 {
			req.SetQueryParamsFromValues(cl.query)
		}
		if cl.body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(cl.body)
		}

		resp, err := req.Execute(cl.method, cl.path)
		if err != nil {
			return &TransportError{Method: cl.method, Path: cl.path, Err: err}
		}
		if resp.IsError() {
			return statusError(cl, resp)
		}
		out = resp.Body()
		return nil
	}

	if cl.method != http.MethodGet {
		return out, op()
	}
	err := c.retrier.Retry(ctx, op)
	return out, err
}

func statusError(cl call, resp *resty.Response) error {
	e := &StatusError{Method: cl.method, Path: cl.path, Status: resp.StatusCode()}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		e.Message = body.Error
		if e.Message == "" {
			e.Message = body.Message
		}
	}
	if e.Message == "" && resp.StatusCode() >= 500 {
		e.Message = strings.TrimSpace(resp.String())
	}
	return e
}

// getJSON issues a GET and decodes the reply into out.
func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, out any) error {
	body, err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, query: query})
	if err != nil {
		return err
	}
	return decode(body, out)
}

// sendJSON issues a write and decodes the reply into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, token, path string, payload, out any) error {
	body, err := c.do(ctx, call{method: method, path: path, token: token, body: payload})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

func decode(body []byte, out any) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode reply: %v", domain.ErrBackendError, err)
	}
	return nil
}

// listOf fetches a collection and decodes its rows.
func listOf[T any](ctx context.Context, c *Client, token, path string, query url.Values) ([]*T, error) {
	body, err := c.do(ctx, call{method: http.MethodGet, path: path, token: token, query: query})
	if err != nil {
		return nil, err
	}
	return decodeRows[T](body)
}

// findByID scans a collection for one record. The remote API exposes no
// single-record reads.
func findByID[T any](items []*T, id string, idOf func(*T) string) (*T, error) {
	for _, item := range items {
		if idOf(item) == id {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

func escape(id string) string {
	return url.PathEscape(id)
}

func logRetry(ctx context.Context, err error, attempt int) {
	zerolog.Ctx(ctx).Warn().Err(err).Int("retry", attempt).Msg("backend call failed, retrying")
}

func isRetryable(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return !errors.Is(te.Err, context.Canceled) && !errors.Is(te.Err, context.DeadlineExceeded)
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status >= 500
	}
	return false
}
