package constants

import "time"

// Daemon connection defaults.
const (
	// DefaultHost is the engine socket used when no host is configured.
	DefaultHost = "unix:///var/run/docker.sock"

	// DefaultAPIVersion is the engine API version requests are pinned to.
	DefaultAPIVersion = "1.26"

	// MinimumAPIVersion is the oldest engine API version the schemas are known to decode.
	MinimumAPIVersion = "1.24"

	// PlaceholderHost is the host part of request URLs sent over a unix socket.
	// The daemon ignores it, net/http only needs a syntactically valid one.
	PlaceholderHost = "d"

	// DefaultUserAgent is sent on every request unless overridden.
	DefaultUserAgent = "docker-client-go"
)

// Host URI schemes accepted by the transport.
const (
	SchemeUnix  = "unix"
	SchemeTCP   = "tcp"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single exchange with the daemon.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used by the CLI for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Expected success codes by operation kind.
const (
	// StatusRead is the success code for GET operations.
	StatusRead = 200

	// StatusCreated is the success code for POST create operations.
	StatusCreated = 201

	// StatusUpdated is the success code for POST update operations.
	StatusUpdated = 200

	// StatusDeleted is the success code for DELETE operations.
	StatusDeleted = 204
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// CLI configuration.
const (
	// ConfigDirName is the directory under $HOME holding the CLI config file.
	ConfigDirName = ".dockerctl"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// EnvPrefix prefixes environment variables read by the CLI.
	EnvPrefix = "DOCKERCTL"

	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for the configuration file.
	ConfigFilePerm = 0600

	// JSONIndentSize is the indent used for json and yaml output.
	JSONIndentSize = 2

	// ShortIDLength is the number of characters of an identifier shown in tables.
	ShortIDLength = 12
)
