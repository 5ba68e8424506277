package docker_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "debug:"+msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "info:"+msg)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "warn:"+msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, "error:"+msg)
}

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := docker.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *docker.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *docker.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &docker.Request{
		Method: "GET",
		Path:   "images/json",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := docker.NewInterceptorChain()
	errBoom := errors.New("boom")

	var secondCalled bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *docker.Request) error {
		return errBoom
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *docker.Request) error {
		secondCalled = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &docker.Request{})
	require.ErrorIs(t, err, docker.ErrInterceptorFailure)
	require.ErrorIs(t, err, errBoom)
	assert.False(t, secondCalled)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	t.Parallel()

	chain := docker.NewInterceptorChain()

	var executionOrder []string

	chain.AddResponseInterceptor(func(ctx context.Context, req *docker.Request, resp *docker.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(ctx context.Context, req *docker.Request, resp *docker.Response) error {
		executionOrder = append(executionOrder, "second")

		return errors.New("rejected")
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &docker.Request{}, &docker.Response{StatusCode: http.StatusOK})
	require.ErrorIs(t, err, docker.ErrInterceptorFailure)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := docker.HeaderInterceptor(map[string]string{
		"X-Registry-Auth": "e30=",
		"X-Request-ID":    "req-1",
	})

	req := &docker.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "e30=", req.Headers.Get("X-Registry-Auth"))
	assert.Equal(t, "req-1", req.Headers.Get("X-Request-ID"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	req := &docker.Request{Method: "GET", Path: "swarm"}

	require.NoError(t, docker.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, docker.LoggingResponseInterceptor(logger)(context.Background(), req, &docker.Response{StatusCode: 200}))
	require.NoError(t, docker.LoggingResponseInterceptor(logger)(context.Background(), req, &docker.Response{Error: errors.New("refused")}))

	assert.Equal(t, []string{"debug:API Request", "debug:API Response", "error:API Response Error"}, logger.entries)
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := docker.NewMetricsCollector()
	requestInterceptor := docker.MetricsRequestInterceptor(collector)
	responseInterceptor := docker.MetricsResponseInterceptor(collector)
	ctx := context.Background()

	var changes int

	collector.SetOnChange(func(endpoint string, metrics docker.Metrics) {
		changes++

		assert.Equal(t, "DELETE secrets/abc", endpoint)
	})

	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		req := &docker.Request{Method: "DELETE", Path: "secrets/abc"}

		require.NoError(t, requestInterceptor(ctx, req))
		time.Sleep(time.Millisecond)
		require.NoError(t, responseInterceptor(ctx, req, &docker.Response{StatusCode: status}))
	}

	metrics, ok := collector.GetMetrics("DELETE secrets/abc")
	require.True(t, ok)
	assert.Equal(t, int64(2), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.Positive(t, metrics.TotalLatency)
	assert.Equal(t, metrics.TotalLatency/2, metrics.AverageLatency)
	assert.Equal(t, 2, changes)

	_, ok = collector.GetMetrics("GET images/json")
	assert.False(t, ok)
}
