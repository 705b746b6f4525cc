/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package storeapi

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// ErrUnexpectedStatus is returned by the Fetch helpers on a non-200 reply.
var ErrUnexpectedStatus = errors.New("unexpected status code")

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	log       logr.Logger
}

// NewAPIClient creates a client for the configured base URL. Every call is
// summarised on log.
func NewAPIClient(config *TestConfig, log logr.Logger) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(config),
		log:       log.WithName("client"),
	}
}

// generateTraceID creates a new W3C trace ID.
// A fresh ID per request lets a failure be matched to server side logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// fieldNames lists payload keys only, values may hold secrets.
func fieldNames(payload map[string]any) []string {
	return slices.Sorted(maps.Keys(payload))
}

// call identifies a request for logging.
type call struct {
	method   string
	resource string
	id       *string
	path     string
}

func (c *APIClient) doRequest(ctx context.Context, req call, payload map[string]any) (*Response, error) {
	keysAndValues := []any{"method", req.method, "resource", req.resource}

	if req.id != nil {
		keysAndValues = append(keysAndValues, "id", *req.id)
	}

	var body io.Reader

	if payload != nil {
		keysAndValues = append(keysAndValues, "fields", fieldNames(payload))

		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s payload: %w", req.resource, err)
		}

		body = bytes.NewReader(data)
	}

	c.log.Info("request", keysAndValues...)

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	httpReq.Header.Set("Traceparent", traceParent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		c.log.Error(err, "http request failed", "method", req.method, "path", req.path, "duration", duration, "traceID", extractTraceID(traceParent))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(err, "reading response body", "method", req.method, "path", req.path, "status", resp.StatusCode, "traceID", extractTraceID(traceParent))
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.log.V(1).Info("response", "method", req.method, "path", req.path, "status", resp.StatusCode, "duration", duration, "traceID", extractTraceID(traceParent))

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

func (c *APIClient) list(ctx context.Context, r Resource) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodGet, resource: string(r), path: c.endpoints.Collection(r)}, nil)
}

func (c *APIClient) get(ctx context.Context, r Resource, id string) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodGet, resource: string(r), id: &id, path: c.endpoints.Item(r, id)}, nil)
}

func (c *APIClient) create(ctx context.Context, r Resource, payload map[string]any) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodPost, resource: string(r), path: c.endpoints.Collection(r)}, nonNil(payload))
}

func (c *APIClient) update(ctx context.Context, r Resource, id string, payload map[string]any) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodPut, resource: string(r), id: &id, path: c.endpoints.Item(r, id)}, nonNil(payload))
}

func (c *APIClient) remove(ctx context.Context, r Resource, id string) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodDelete, resource: string(r), id: &id, path: c.endpoints.Item(r, id)}, nil)
}

// nonNil makes sure writes always send a JSON object, even an empty one.
func nonNil(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}

	return payload
}

// ListProducts lists all products.
func (c *APIClient) ListProducts(ctx context.Context) (*Response, error) {
	return c.list(ctx, Products)
}

// GetProduct retrieves a single product.
func (c *APIClient) GetProduct(ctx context.Context, id string) (*Response, error) {
	return c.get(ctx, Products, id)
}

// CreateProduct posts a new product.
func (c *APIClient) CreateProduct(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.create(ctx, Products, payload)
}

// UpdateProduct replaces a single product.
func (c *APIClient) UpdateProduct(ctx context.Context, id string, payload map[string]any) (*Response, error) {
	return c.update(ctx, Products, id, payload)
}

// DeleteProduct deletes a single product.
func (c *APIClient) DeleteProduct(ctx context.Context, id string) (*Response, error) {
	return c.remove(ctx, Products, id)
}

// ListCarts lists all carts.
func (c *APIClient) ListCarts(ctx context.Context) (*Response, error) {
	return c.list(ctx, Carts)
}

// GetCart retrieves a single cart.
func (c *APIClient) GetCart(ctx context.Context, id string) (*Response, error) {
	return c.get(ctx, Carts, id)
}

// CreateCart posts a new cart.
func (c *APIClient) CreateCart(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.create(ctx, Carts, payload)
}

// UpdateCart replaces a single cart.
func (c *APIClient) UpdateCart(ctx context.Context, id string, payload map[string]any) (*Response, error) {
	return c.update(ctx, Carts, id, payload)
}

// DeleteCart deletes a single cart.
func (c *APIClient) DeleteCart(ctx context.Context, id string) (*Response, error) {
	return c.remove(ctx, Carts, id)
}

// ListUsers lists all users.
func (c *APIClient) ListUsers(ctx context.Context) (*Response, error) {
	return c.list(ctx, Users)
}

// GetUser retrieves a single user.
func (c *APIClient) GetUser(ctx context.Context, id string) (*Response, error) {
	return c.get(ctx, Users, id)
}

// CreateUser posts a new user.
func (c *APIClient) CreateUser(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.create(ctx, Users, payload)
}

// UpdateUser replaces a single user.
func (c *APIClient) UpdateUser(ctx context.Context, id string, payload map[string]any) (*Response, error) {
	return c.update(ctx, Users, id, payload)
}

// DeleteUser deletes a single user.
func (c *APIClient) DeleteUser(ctx context.Context, id string) (*Response, error) {
	return c.remove(ctx, Users, id)
}

// Authenticate posts credentials to the auth endpoint.
func (c *APIClient) Authenticate(ctx context.Context, payload map[string]any) (*Response, error) {
	return c.doRequest(ctx, call{method: http.MethodPost, resource: "auth", path: c.endpoints.Auth()}, nonNil(payload))
}

// FetchAll lists a resource and decodes the collection, failing on anything
// but 200 OK.
func (c *APIClient) FetchAll(ctx context.Context, r Resource) ([]map[string]any, error) {
	resp, err := c.list(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing %s: %w: expected %d, got %d", r, ErrUnexpectedStatus, http.StatusOK, resp.StatusCode)
	}

	items, err := resp.List()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r, err)
	}

	return items, nil
}

// FetchOne retrieves and decodes a single entity, failing on anything but
// 200 OK. The id is usually straight from a decoded collection.
func (c *APIClient) FetchOne(ctx context.Context, r Resource, id any) (map[string]any, error) {
	resp, err := c.get(ctx, r, FormatID(id))
	if err != nil {
		return nil, fmt.Errorf("getting %s %v: %w", r, id, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getting %s %v: %w: expected %d, got %d", r, id, ErrUnexpectedStatus, http.StatusOK, resp.StatusCode)
	}

	item, err := resp.Object()
	if err != nil {
		return nil, fmt.Errorf("getting %s %v: %w", r, id, err)
	}

	return item, nil
}

// FormatID renders an identifier for use in a path. Integral JSON numbers
// are printed without a fraction or exponent.
func FormatID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}

	return fmt.Sprint(id)
}
