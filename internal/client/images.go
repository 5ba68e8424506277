package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// ImagesClient implements docker.ImagesClient.
type ImagesClient struct {
	httpClient *http.Client
}

// NewImagesClient creates a new images client.
func NewImagesClient(httpClient *http.Client) *ImagesClient {
	return &ImagesClient{
		httpClient: httpClient,
	}
}

// List implements docker.ImagesClient.List.
func (c *ImagesClient) List(ctx context.Context) ([]docker.Image, error) {
	images, err := getList[docker.Image](ctx, c.httpClient, "images/json", nil)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	return images, nil
}
