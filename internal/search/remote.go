package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"amphi/internal/domain"
)

// DefaultTimeout bounds a single remote query
const DefaultTimeout = 2 * time.Second

// Response is the JSON envelope served by /api/search
type Response struct {
	Data      []domain.SearchResult `json:"data"`
	Success   bool                  `json:"success"`
	Message   string                `json:"message,omitempty"`
	Error     string                `json:"error,omitempty"`
	Timestamp string                `json:"timestamp,omitempty"`
}

// RemoteBackend queries a running amphi web server
type RemoteBackend struct {
	client *resty.Client
}

// NewRemoteBackend creates a backend that calls baseURL/api/search
func NewRemoteBackend(baseURL string, timeout time.Duration) *RemoteBackend {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &RemoteBackend{client: client}
}

// Query implements Backend
func (b *RemoteBackend) Query(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	var body Response
	resp, err := b.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&body).
		SetError(&body).
		Get("/api/search")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, classify(query, ctxErr)
		}
		return nil, classify(query, err)
	}

	if resp.IsError() {
		msg := body.Error
		if msg == "" {
			msg = resp.Status()
		}
		return nil, &QueryError{Kind: KindBackend, Query: query, Err: fmt.Errorf("status %d: %s", resp.StatusCode(), msg)}
	}
	if !body.Success {
		msg := body.Error
		if msg == "" {
			msg = "unsuccessful response"
		}
		return nil, &QueryError{Kind: KindBackend, Query: query, Err: errors.New(msg)}
	}
	return body.Data, nil
}
