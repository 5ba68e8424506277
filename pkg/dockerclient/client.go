package dockerclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/docker-client/internal/client"
	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

var validate = validator.New()

// New creates a client from config. Empty fields take their defaults; the
// caller's config is not modified.
func New(config *docker.Config) (docker.Client, error) {
	if config == nil {
		return nil, docker.ErrConfigRequired
	}

	normalized, err := normalizeConfig(config)
	if err != nil {
		return nil, err
	}

	// Use the internal client implementation
	c, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewDefault creates a client for the local daemon socket.
func NewDefault() (docker.Client, error) {
	return New(&docker.Config{})
}

// NewWithHost creates a client for host with every other setting at its default.
func NewWithHost(host string) (docker.Client, error) {
	return New(&docker.Config{
		Host: host,
	})
}

func normalizeConfig(config *docker.Config) (*docker.Config, error) {
	normalized := *config

	normalized.Host = normalizeHost(normalized.Host)

	if normalized.APIVersion == "" {
		normalized.APIVersion = constants.DefaultAPIVersion
	}

	err := validateConfig(&normalized)
	if err != nil {
		return nil, err
	}

	version, err := docker.ParseAPIVersion(normalized.APIVersion)
	if err != nil {
		return nil, err
	}

	if !docker.IsCompatible(version) {
		return nil, fmt.Errorf("%w: %s (want %s)", docker.ErrAPIVersionTooOld, version, docker.APIVersionRange)
	}

	normalized.APIVersion = version

	return &normalized, nil
}

// normalizeHost fills in the default socket and accepts a bare socket path.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)

	switch {
	case host == "":
		return constants.DefaultHost
	case strings.HasPrefix(host, "/"):
		return constants.SchemeUnix + "://" + host
	case strings.HasPrefix(host, constants.SchemeUnix+"://"):
		return host
	default:
		return strings.TrimSuffix(host, "/")
	}
}

func validateConfig(config *docker.Config) error {
	err := validate.Struct(config)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	for _, ve := range valErrs {
		switch ve.Field() {
		case "Timeout":
			return fmt.Errorf("%w: %v", docker.ErrInvalidTimeout, config.Timeout)
		case "Host":
			return fmt.Errorf("%w %q: failed %s validation", docker.ErrInvalidHost, config.Host, ve.Tag())
		}
	}

	return fmt.Errorf("validating config: %w", err)
}
