package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// SystemClient implements docker.SystemClient.
type SystemClient struct {
	httpClient *http.Client
}

// NewSystemClient creates a new system client.
func NewSystemClient(httpClient *http.Client) *SystemClient {
	return &SystemClient{
		httpClient: httpClient,
	}
}

// Version implements docker.SystemClient.Version.
func (c *SystemClient) Version(ctx context.Context) (*docker.SystemVersion, error) {
	version, err := get[docker.SystemVersion](ctx, c.httpClient, "version", nil)
	if err != nil {
		return nil, fmt.Errorf("getting daemon version: %w", err)
	}

	return version, nil
}
