// Package dockerclient provides the primary entry point for constructing an
// engine API client that implements the docker.Client interface.
//
// It fills in defaults, validates the configuration and builds the transport
// on top of the resource interfaces and types defined in the docker package.
// Most applications import dockerclient to build a client, then use the
// returned docker.Client to reach resource-specific clients such as Images(),
// Secrets() or Swarm().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/docker-client/pkg/docker"
//	  "github.com/fivetwenty-io/docker-client/pkg/dockerclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The local daemon at unix:///var/run/docker.sock, API version 1.26.
//	  cli, err := dockerclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a remote daemon pinned to a newer API version:
//	  cli, err = dockerclient.New(&docker.Config{
//	    Host:       "tcp://10.0.0.5:2375",
//	    APIVersion: "1.41",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  images, err := cli.Images().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = images
//	}
//
// # Hosts
//
// Host accepts unix://, tcp://, http:// and https:// URIs. A bare absolute
// path is treated as a unix socket path.
//
// # API versions
//
// Requests are sent to /v<APIVersion>/. Versions are accepted in "1.41" or
// "v1.41" form and must satisfy docker.APIVersionRange.
package dockerclient
