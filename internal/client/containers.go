package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// ContainersClient implements docker.ContainersClient.
type ContainersClient struct {
	httpClient *http.Client
}

// NewContainersClient creates a new containers client.
func NewContainersClient(httpClient *http.Client) *ContainersClient {
	return &ContainersClient{
		httpClient: httpClient,
	}
}

// List implements docker.ContainersClient.List. The daemon only reports
// running containers for this path.
func (c *ContainersClient) List(ctx context.Context) ([]docker.Container, error) {
	containers, err := getList[docker.Container](ctx, c.httpClient, "containers/json", nil)
	if err != nil {
		return nil, fmt.Errorf("listing containers: %w", err)
	}

	return containers, nil
}
