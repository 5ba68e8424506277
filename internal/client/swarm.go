package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// SwarmClient implements docker.SwarmClient.
type SwarmClient struct {
	httpClient *http.Client
}

// NewSwarmClient creates a new swarm client.
func NewSwarmClient(httpClient *http.Client) *SwarmClient {
	return &SwarmClient{
		httpClient: httpClient,
	}
}

// Inspect implements docker.SwarmClient.Inspect.
func (c *SwarmClient) Inspect(ctx context.Context) (*docker.Swarm, error) {
	swarm, err := get[docker.Swarm](ctx, c.httpClient, "swarm", nil)
	if err != nil {
		return nil, fmt.Errorf("inspecting swarm: %w", err)
	}

	return swarm, nil
}
