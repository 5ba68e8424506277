package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// SecretsClient implements docker.SecretsClient.
type SecretsClient struct {
	httpClient *http.Client
}

// NewSecretsClient creates a new secrets client.
func NewSecretsClient(httpClient *http.Client) *SecretsClient {
	return &SecretsClient{
		httpClient: httpClient,
	}
}

// List implements docker.SecretsClient.List.
func (c *SecretsClient) List(ctx context.Context) ([]docker.Secret, error) {
	secrets, err := getList[docker.Secret](ctx, c.httpClient, "secrets", nil)
	if err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	return secrets, nil
}

// Inspect implements docker.SecretsClient.Inspect.
func (c *SecretsClient) Inspect(ctx context.Context, id string) (*docker.Secret, error) {
	path, err := secretPath(id)
	if err != nil {
		return nil, err
	}

	secret, err := get[docker.Secret](ctx, c.httpClient, path, nil)
	if err != nil {
		return nil, fmt.Errorf("inspecting secret %s: %w", id, err)
	}

	return secret, nil
}

// Create implements docker.SecretsClient.Create.
func (c *SecretsClient) Create(ctx context.Context, spec *docker.SecretSpec) (*docker.IDResponse, error) {
	created, err := create[docker.SecretSpec, docker.IDResponse](ctx, c.httpClient, "secrets/create", spec, constants.StatusCreated)
	if err != nil {
		return nil, fmt.Errorf("creating secret: %w", err)
	}

	return created, nil
}

// Update implements docker.SecretsClient.Update.
func (c *SecretsClient) Update(ctx context.Context, id string, version uint64, spec *docker.SecretSpec) error {
	path, err := secretPath(id)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("version", strconv.FormatUint(version, 10))

	err = update(ctx, c.httpClient, path+"/update", query, spec, constants.StatusUpdated)
	if err != nil {
		return fmt.Errorf("updating secret %s: %w", id, err)
	}

	return nil
}

// Delete implements docker.SecretsClient.Delete.
func (c *SecretsClient) Delete(ctx context.Context, id string) error {
	path, err := secretPath(id)
	if err != nil {
		return err
	}

	err = remove(ctx, c.httpClient, path)
	if err != nil {
		return fmt.Errorf("deleting secret %s: %w", id, err)
	}

	return nil
}

func secretPath(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("secret: %w", docker.ErrEmptyID)
	}

	return "secrets/" + url.PathEscape(id), nil
}
