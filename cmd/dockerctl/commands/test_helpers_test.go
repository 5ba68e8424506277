package commands_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/docker-client/cmd/dockerctl/commands"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Headers  http.Header
	Body     string
}

type route struct {
	status int
	body   string
}

// daemon is a fake engine that answers by "METHOD path" and records every call.
type daemon struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []recordedRequest
}

func newDaemon(t *testing.T, routes map[string]route) *daemon {
	t.Helper()

	d := &daemon{routes: routes}
	d.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		d.mu.Lock()
		d.requests = append(d.requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Headers:  r.Header.Clone(),
			Body:     string(body),
		})
		rt, ok := d.routes[r.Method+" "+r.URL.Path]
		d.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"page not found"}`))

			return
		}

		w.WriteHeader(rt.status)
		_, _ = w.Write([]byte(rt.body))
	}))
	t.Cleanup(d.Close)

	return d
}

func (d *daemon) recorded() []recordedRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]recordedRequest(nil), d.requests...)
}

// execute runs dockerctl with args against a clean viper state and returns
// what the command wrote to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer

	root := commands.NewRootCommand("1.0.0", "abc123", "2026-01-01")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yml")}, args...))

	err := root.Execute()

	return stdout.String(), err
}
