// Package client talks JSON over HTTP to the conference, user and video APIs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"hearing-hub/errors"
	"hearing-hub/observability"
)

// apiClient is the shared plumbing of the three upstream clients.
// A 404 maps to notFound, any other non 2xx to ErrUpstream.
type apiClient struct {
	log      *slog.Logger
	http     *http.Client
	baseURL  string
	service  string
	notFound error
}

func newAPIClient(log *slog.Logger, baseURL, service string, timeout time.Duration, notFound error) apiClient {
	return apiClient{
		log:      log,
		http:     &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		service:  service,
		notFound: notFound,
	}
}

func (c apiClient) do(ctx context.Context, operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := c.http.Do(request)
	observability.UpstreamLatency.WithLabelValues(c.service, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %w", errors.ErrUpstream, c.service, operation, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusNotFound && c.notFound != nil:
		return fmt.Errorf("%w: %s %s", c.notFound, c.service, path)
	case response.StatusCode < 200 || response.StatusCode > 299:
		c.log.Warn("Upstream call failed", "service", c.service, "operation", operation, "status", response.StatusCode)
		return fmt.Errorf("%w: %s %s returned %d", errors.ErrUpstream, c.service, operation, response.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s decode: %w", errors.ErrUpstream, c.service, operation, err)
	}
	return nil
}
