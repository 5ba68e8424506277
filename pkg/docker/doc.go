// Package docker provides types, interfaces, and helpers for working with the
// Docker Engine API.
//
// # Overview
//
// The docker package defines the resource records (Image, Container, Network,
// Volume, Task, Secret, Swarm) and the interfaces of the resource-oriented
// clients (ImagesClient, SecretsClient, ...). A concrete implementation is
// provided by the dockerclient package, which wires configuration and the
// unix-socket transport. Most consumers import dockerclient to construct a
// client and then interact with the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := dockerclient.New(&docker.Config{Host: "unix:///var/run/docker.sock"})
//	  if err != nil { log.Fatal(err) }
//
//	  images, err := cli.Images().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = images
//	}
//
// # Records
//
// Every field of every record is optional: the daemon omits fields depending
// on its version and on query flags. Fields are pointers, slices or maps and
// are nil when absent. Unknown fields in responses are ignored. Ptr and Deref
// help building and reading them.
//
// # Errors
//
// Every call either succeeds or returns exactly one of three error kinds:
//
//   - *TransportError: the exchange with the daemon could not be completed.
//   - *ServerError: the daemon answered with a status code other than the
//     one the operation expects; Message carries the daemon's explanation.
//   - *DecodeError: the response body did not have the expected shape.
//
// IsTransportError, IsServerError and IsDecodeError branch on them. No call
// is retried.
//
// # Interceptors
//
// An InterceptorChain set on Config runs request interceptors before each
// request is sent and response interceptors after each response is read.
// The package ships logging, header and metrics interceptors.
package docker
