package commands

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

func TestShortID(t *testing.T) {
	assert.Equal(t, NotAvailable, shortID(nil))
	assert.Equal(t, "abc", shortID(docker.Ptr("abc")))
	assert.Equal(t, "0123456789ab", shortID(docker.Ptr("sha256:0123456789abcdef")))
}

func TestFormatPorts(t *testing.T) {
	ports := []docker.Port{
		{PrivatePort: docker.Ptr(80), PublicPort: docker.Ptr(8080), Type: docker.Ptr("tcp"), IP: docker.Ptr("127.0.0.1")},
		{PrivatePort: docker.Ptr(53), Type: docker.Ptr("udp")},
		{PrivatePort: docker.Ptr(443), PublicPort: docker.Ptr(443)},
	}

	assert.Equal(t, "127.0.0.1:8080->80/tcp, 53/udp, 0.0.0.0:443->443/tcp", formatPorts(ports))
	assert.Empty(t, formatPorts(nil))
}

func TestFormatLabels(t *testing.T) {
	assert.Empty(t, formatLabels(nil))
	assert.Equal(t, "a=1,b=2,c=", formatLabels(map[string]string{"c": "", "b": "2", "a": "1"}))
}

func TestParseLabels(t *testing.T) {
	labels, err := parseLabels([]string{"env=prod", "team = core", "url=http://x?a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "team": " core", "url": "http://x?a=b"}, labels)

	labels, err = parseLabels(nil)
	require.NoError(t, err)
	assert.Nil(t, labels)

	for _, bad := range []string{"novalue", "=value", " =x"} {
		_, err = parseLabels([]string{bad})
		assert.ErrorIs(t, err, constants.ErrInvalidLabel, bad)
	}
}

func TestMergeLabels(t *testing.T) {
	current := map[string]string{"a": "1", "b": "2"}

	merged := mergeLabels(current, map[string]string{"b": "3", "c": "4"}, []string{"a"})
	assert.Equal(t, map[string]string{"b": "3", "c": "4"}, merged)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, current, "input must not be modified")

	assert.Nil(t, mergeLabels(current, nil, []string{"a", "b"}))
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{constants.FormatTable, constants.FormatJSON, constants.FormatYAML} {
		assert.NoError(t, validateOutputFormat(format))
	}

	assert.ErrorIs(t, validateOutputFormat("xml"), constants.ErrUnknownOutputFormat)
}

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) record(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.record(msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.record(msg, fields) }

func runChain(t *testing.T, chain *docker.InterceptorChain, status int) *docker.Request {
	t.Helper()

	req := &docker.Request{Method: http.MethodGet, Path: "images/json", Headers: make(http.Header)}

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), req))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), req, &docker.Response{StatusCode: status}))

	return req
}

func TestNewInterceptorChain(t *testing.T) {
	t.Run("quiet", func(t *testing.T) {
		logger := &recordingLogger{}

		req := runChain(t, newInterceptorChain(Settings{}, logger), http.StatusOK)

		assert.Empty(t, logger.messages)
		assert.Empty(t, req.Headers)
	})

	t.Run("extra headers", func(t *testing.T) {
		logger := &recordingLogger{}

		req := runChain(t, newInterceptorChain(Settings{Headers: map[string]string{"x-registry-team": "core"}}, logger), http.StatusOK)

		assert.Equal(t, "core", req.Headers.Get("X-Registry-Team"))
		assert.Empty(t, logger.messages)
	})

	t.Run("verbose logs calls and metrics", func(t *testing.T) {
		logger := &recordingLogger{}
		chain := newInterceptorChain(Settings{Verbose: true}, logger)

		runChain(t, chain, http.StatusOK)
		runChain(t, chain, http.StatusNotFound)

		assert.Equal(t, []string{
			"API Request", "API Response", "API Metrics",
			"API Request", "API Response", "API Metrics",
		}, logger.messages)

		last := logger.fields[len(logger.fields)-1]
		assert.Equal(t, "GET images/json", last["endpoint"])
		assert.Equal(t, int64(2), last["requests"])
		assert.Equal(t, int64(1), last["errors"])
	})
}
