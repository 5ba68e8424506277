package docker

import (
	"context"
	"time"
)

// ImagesClient lists images known to the daemon.
type ImagesClient interface {
	List(ctx context.Context) ([]Image, error)
}

// ContainersClient lists containers.
type ContainersClient interface {
	List(ctx context.Context) ([]Container, error)
}

// NetworksClient lists networks.
type NetworksClient interface {
	List(ctx context.Context) ([]Network, error)
}

// VolumesClient lists volumes. The daemon wraps the volumes in an object
// carrying warnings, so List returns that object rather than a slice.
type VolumesClient interface {
	List(ctx context.Context) (*VolumeList, error)
}

// TasksClient lists swarm tasks.
type TasksClient interface {
	List(ctx context.Context) ([]Task, error)
}

// SwarmClient inspects the swarm the daemon belongs to.
type SwarmClient interface {
	Inspect(ctx context.Context) (*Swarm, error)
}

// SecretsClient manages swarm secrets.
type SecretsClient interface {
	List(ctx context.Context) ([]Secret, error)
	Inspect(ctx context.Context, id string) (*Secret, error)
	Create(ctx context.Context, spec *SecretSpec) (*IDResponse, error)
	// Update replaces the spec of a secret. version is the secret's current
	// Version.Index, as required by the daemon for optimistic locking.
	Update(ctx context.Context, id string, version uint64, spec *SecretSpec) error
	Delete(ctx context.Context, id string) error
}

// SystemClient exposes daemon-level information.
type SystemClient interface {
	Version(ctx context.Context) (*SystemVersion, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Images() ImagesClient
	Containers() ContainersClient
	Networks() NetworksClient
	Volumes() VolumesClient
	Tasks() TasksClient
	Swarm() SwarmClient
	Secrets() SecretsClient
	System() SystemClient
}

// Client is the top-level engine API client. It owns the connection to the
// daemon; the sub-clients it returns share that connection and must not be
// used after the Client is discarded.
type Client interface {
	ResourceClients

	// Host returns the normalized daemon address the client talks to.
	Host() string
	// APIVersion returns the API version requests are pinned to.
	APIVersion() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a docker.Client.
//
// # Host
//
// Host is a URI naming the daemon endpoint:
//   - unix:///var/run/docker.sock (default) dials the unix socket at that path.
//   - tcp://host:2375 and http://host:2375 speak plain HTTP over TCP.
//
// # Concurrency
//
// A client holds a single connection handle and serializes requests on it:
// at most one request is in flight per client. Callers needing parallel
// requests should build one client per goroutine.
//
// # Timeouts
//
// Timeout bounds each exchange with the daemon. Callers can additionally
// bound a call through the context passed to each method.
type Config struct {
	// Host is the daemon address. Defaults to constants.DefaultHost.
	Host string `validate:"omitempty,uri"`
	// APIVersion pins requests to /v<APIVersion>/. Defaults to
	// constants.DefaultAPIVersion. Must be a version inside APIVersionRange.
	APIVersion string
	// Timeout bounds a single request. Zero means constants.DefaultHTTPTimeout;
	// negative values are rejected.
	Timeout time.Duration `validate:"gte=0"`
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger `validate:"-"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `validate:"omitempty,printascii"`
	// Interceptors run around every request sent by the client.
	Interceptors *InterceptorChain `validate:"-"`
}
