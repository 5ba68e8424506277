package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// NetworksClient implements docker.NetworksClient.
type NetworksClient struct {
	httpClient *http.Client
}

// NewNetworksClient creates a new networks client.
func NewNetworksClient(httpClient *http.Client) *NetworksClient {
	return &NetworksClient{
		httpClient: httpClient,
	}
}

// List implements docker.NetworksClient.List.
func (c *NetworksClient) List(ctx context.Context) ([]docker.Network, error) {
	networks, err := getList[docker.Network](ctx, c.httpClient, "networks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	return networks, nil
}
