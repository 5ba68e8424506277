package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/docker-client/internal/http"
)

const testAPIVersion = "1.26"

// NewTestClient creates a client talking to serverURL with the default API version.
func NewTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	httpClient, err := internalhttp.NewClient(serverURL, internalhttp.WithAPIVersion(testAPIVersion))
	require.NoError(t, err)

	return newClient(httpClient)
}

// recordedRequest is what a test server saw.
type recordedRequest struct {
	Method      string
	Path        string
	EscapedPath string
	RawQuery    string
	Body        []byte
}

// cannedServer answers every request with status and body and records what it saw.
type cannedServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
}

func newCannedServer(t *testing.T, status int, body string) *cannedServer {
	t.Helper()

	canned := &cannedServer{}
	canned.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		data, err := io.ReadAll(request.Body)
		assert.NoError(t, err)

		canned.mu.Lock()
		canned.requests = append(canned.requests, recordedRequest{
			Method:      request.Method,
			Path:        request.URL.Path,
			EscapedPath: request.URL.EscapedPath(),
			RawQuery:    request.URL.RawQuery,
			Body:        data,
		})
		canned.mu.Unlock()

		if body != "" {
			writer.Header().Set("Content-Type", "application/json")
		}

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))

	t.Cleanup(canned.Close)

	return canned
}

func (s *cannedServer) lastRequest(t *testing.T) recordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests, "server received no request")

	return s.requests[len(s.requests)-1]
}

func (s *cannedServer) requestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// fakeTransport returns a fixed result without touching the network.
type fakeTransport struct {
	status   int
	body     string
	err      error
	requests []*internalhttp.Request
}

func (f *fakeTransport) Do(ctx context.Context, req *internalhttp.Request) (*internalhttp.Response, error) {
	f.requests = append(f.requests, req)

	if f.err != nil {
		return nil, f.err
	}

	return &internalhttp.Response{
		StatusCode: f.status,
		Body:       []byte(f.body),
	}, nil
}
