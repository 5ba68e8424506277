package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// VolumesClient implements docker.VolumesClient.
type VolumesClient struct {
	httpClient *http.Client
}

// NewVolumesClient creates a new volumes client.
func NewVolumesClient(httpClient *http.Client) *VolumesClient {
	return &VolumesClient{
		httpClient: httpClient,
	}
}

// List implements docker.VolumesClient.List.
func (c *VolumesClient) List(ctx context.Context) (*docker.VolumeList, error) {
	volumes, err := get[docker.VolumeList](ctx, c.httpClient, "volumes", nil)
	if err != nil {
		return nil, fmt.Errorf("listing volumes: %w", err)
	}

	return volumes, nil
}
