package client

import (
	"errors"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// Static errors for err113 compliance.
var (
	ErrHostRequired = errors.New("daemon host is required")
)

// Client implements the docker.Client interface. It owns the transport
// handle; every resource client borrows it.
type Client struct {
	httpClient *http.Client

	// Resource clients
	images     docker.ImagesClient
	containers docker.ContainersClient
	networks   docker.NetworksClient
	volumes    docker.VolumesClient
	tasks      docker.TasksClient
	swarm      docker.SwarmClient
	secrets    docker.SecretsClient
	system     docker.SystemClient
}

// createHTTPClientOptions builds transport options from config.
func createHTTPClientOptions(config *docker.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithAPIVersion(config.APIVersion),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	timeout := constants.DefaultHTTPTimeout
	if config.Timeout > 0 {
		timeout = config.Timeout
	}

	httpOpts = append(httpOpts, http.WithTimeout(timeout))

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a client from an already validated config.
func New(config *docker.Config) (*Client, error) {
	if config == nil {
		return nil, docker.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, ErrHostRequired
	}

	httpClient, err := http.NewClient(config.Host, createHTTPClientOptions(config)...)
	if err != nil {
		return nil, fmt.Errorf("creating transport: %w", err)
	}

	return newClient(httpClient), nil
}

func newClient(httpClient *http.Client) *Client {
	client := &Client{
		httpClient: httpClient,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.images = NewImagesClient(c.httpClient)
	c.containers = NewContainersClient(c.httpClient)
	c.networks = NewNetworksClient(c.httpClient)
	c.volumes = NewVolumesClient(c.httpClient)
	c.tasks = NewTasksClient(c.httpClient)
	c.swarm = NewSwarmClient(c.httpClient)
	c.secrets = NewSecretsClient(c.httpClient)
	c.system = NewSystemClient(c.httpClient)
}

// Host implements docker.Client.Host.
func (c *Client) Host() string {
	return c.httpClient.Host()
}

// APIVersion implements docker.Client.APIVersion.
func (c *Client) APIVersion() string {
	return c.httpClient.APIVersion()
}

// Resource client accessors

// Images implements docker.Client.Images.
func (c *Client) Images() docker.ImagesClient {
	return c.images
}

// Containers implements docker.Client.Containers.
func (c *Client) Containers() docker.ContainersClient {
	return c.containers
}

// Networks implements docker.Client.Networks.
func (c *Client) Networks() docker.NetworksClient {
	return c.networks
}

// Volumes implements docker.Client.Volumes.
func (c *Client) Volumes() docker.VolumesClient {
	return c.volumes
}

// Tasks implements docker.Client.Tasks.
func (c *Client) Tasks() docker.TasksClient {
	return c.tasks
}

// Swarm implements docker.Client.Swarm.
func (c *Client) Swarm() docker.SwarmClient {
	return c.swarm
}

// Secrets implements docker.Client.Secrets.
func (c *Client) Secrets() docker.SecretsClient {
	return c.secrets
}

// System implements docker.Client.System.
func (c *Client) System() docker.SystemClient {
	return c.system
}
