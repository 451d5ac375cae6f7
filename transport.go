package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// envelope is the standard single-object response wrapper.
type envelope[T any] struct {
	Data T `json:"data"`
}

// page is the standard list response wrapper.
type page[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// do performs one authenticated request. A non-2xx status becomes an
// *APIError carrying the status, the game error code and the server message;
// transport and decode failures are wrapped and propagated as-is. No retry.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	requestID := uuid.New().String()
	endpoint := strings.TrimLeft(path, "/")
	url := strings.TrimRight(c.baseURL, "/") + "/" + endpoint

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("endpoint", endpoint),
	)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp.StatusCode, endpoint, respBody)
		c.logger.Debug("request rejected",
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.Int("code", apiErr.Code),
		)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// get is a convenience for unwrapped GET calls decoding into the data
// envelope.
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var env envelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// getPage fetches one page of a list endpoint.
func getPage[T any](ctx context.Context, c *Client, path string) (*Page[T], error) {
	var res page[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &Page[T]{
		Data:  res.Data,
		Total: res.Total,
		Page:  res.Page,
		Size:  res.Size,
		Pages: res.Pages,
	}, nil
}

// Page holds one page of a paginated listing, mirroring the wire format.
type Page[T any] struct {
	Data  []T
	Total int
	Page  int
	Size  int
	Pages int
}
