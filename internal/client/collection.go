package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	appErr "github.com/HakimZ78/devhakim-api/pkg/errors"
)

// Collection is the HTTP client for one resource path. It is the single seam
// where the store's response-shape inconsistency is absorbed: some endpoints
// return the {success, data|error} envelope, others a bare JSON array, and
// both are normalized here so no caller ever checks shapes.
//
// The client performs no caching, no retries and no optimistic application;
// callers apply results after each call resolves. Every transport or
// application failure is converted to an *errors.AppError — nothing else
// crosses this boundary.
type Collection[T any] struct {
	baseURL  string
	resource string
	http     *http.Client
	token    string
}

// Option configures a Collection.
type Option func(*options)

type options struct {
	httpClient *http.Client
	token      string
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithToken attaches a bearer token to every request. Required for
// mutations; reads are public.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// New creates a client for one resource, e.g.
// New[models.Certification]("http://localhost:8080", "journey/certifications").
func New[T any](baseURL, resource string, opts ...Option) *Collection[T] {
	o := options{httpClient: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		baseURL:  strings.TrimRight(baseURL, "/"),
		resource: resource,
		http:     o.httpClient,
		token:    o.token,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// normalize converts a response body into an envelope, accepting both the
// {success, data} wrapper and a bare array.
func normalize(body []byte) (envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return envelope{Success: true, Data: json.RawMessage(trimmed)}, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}, err
	}
	return env, nil
}

func (c *Collection[T]) url(query url.Values) string {
	u := c.baseURL + "/api/v1/" + c.resource
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Collection[T]) do(ctx context.Context, method, rawURL string, body any, verb string) (envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return envelope{}, appErr.Wrap(err, appErr.CodeInvalid, fmt.Sprintf("failed to %s %s", verb, c.resource))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return envelope{}, appErr.Wrap(err, appErr.CodeInvalid, fmt.Sprintf("failed to %s %s", verb, c.resource))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure: generic message, never a stack trace.
		return envelope{}, appErr.Wrap(err, appErr.CodeUnavailable, fmt.Sprintf("failed to %s %s", verb, c.resource))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, appErr.Wrap(err, appErr.CodeUnavailable, fmt.Sprintf("failed to %s %s", verb, c.resource))
	}

	env, err := normalize(raw)
	if err != nil {
		return envelope{}, appErr.Newf(appErr.CodeInternal, "failed to %s %s", verb, c.resource)
	}
	if !env.Success {
		// Application failure: the store's message verbatim when present.
		if env.Error != nil && env.Error.Message != "" {
			return envelope{}, appErr.New(appErr.Code(env.Error.Code), env.Error.Message)
		}
		return envelope{}, appErr.Newf(appErr.CodeUnknown, "failed to %s %s", verb, c.resource)
	}
	return env, nil
}

// List fetches the whole collection. On failure it returns an empty slice
// alongside the error so callers can render an empty list with a banner.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	env, err := c.do(ctx, http.MethodGet, c.url(nil), nil, "list")
	if err != nil {
		return []T{}, err
	}
	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return []T{}, appErr.Newf(appErr.CodeInternal, "failed to list %s", c.resource)
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create stores a new entity. The store assigns id and timestamps and
// echoes the full entity back.
func (c *Collection[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	env, err := c.do(ctx, http.MethodPost, c.url(nil), entity, "create")
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, appErr.Newf(appErr.CodeInternal, "failed to create %s", c.resource)
	}
	return out, nil
}

// Update rewrites an existing entity, keyed by its identity field.
func (c *Collection[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T
	env, err := c.do(ctx, http.MethodPut, c.url(nil), entity, "update")
	if err != nil {
		return zero, err
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, appErr.Newf(appErr.CodeInternal, "failed to update %s", c.resource)
	}
	return out, nil
}

// Remove deletes by id. The store returns a success flag, not the entity.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", id)
	_, err := c.do(ctx, http.MethodDelete, c.url(q), nil, "delete")
	return err
}

// SwapOrder exchanges two entities' order_index values in one server-side
// transaction.
func (c *Collection[T]) SwapOrder(ctx context.Context, a, b string) error {
	body := map[string]string{"a": a, "b": b}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/api/v1/"+c.resource+"/reorder", body, "reorder")
	return err
}
