package commands

import (
	"fmt"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
	"github.com/fivetwenty-io/docker-client/pkg/dockerclient"
)

// createClient builds a library client from the effective settings.
func createClient() (docker.Client, error) {
	settings := loadSettings()
	logger := newLogger(settings.Verbose)

	client, err := dockerclient.New(&docker.Config{
		Host:         settings.Host,
		APIVersion:   settings.APIVersion,
		Timeout:      settings.Timeout,
		Logger:       logger,
		UserAgent:    "dockerctl/" + docker.Version,
		Interceptors: newInterceptorChain(settings, logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// newInterceptorChain adds the configured extra headers to every request and,
// in verbose mode, logs each call with per-endpoint latency.
func newInterceptorChain(settings Settings, logger docker.Logger) *docker.InterceptorChain {
	chain := docker.NewInterceptorChain()

	if len(settings.Headers) > 0 {
		chain.AddRequestInterceptor(docker.HeaderInterceptor(settings.Headers))
	}

	if !settings.Verbose {
		return chain
	}

	collector := docker.NewMetricsCollector()
	collector.SetOnChange(func(endpoint string, metrics docker.Metrics) {
		logger.Debug("API Metrics", map[string]interface{}{
			"endpoint":        endpoint,
			"requests":        metrics.TotalRequests,
			"errors":          metrics.TotalErrors,
			"average_latency": metrics.AverageLatency.String(),
		})
	})

	chain.AddRequestInterceptor(docker.LoggingInterceptor(logger))
	chain.AddRequestInterceptor(docker.MetricsRequestInterceptor(collector))
	chain.AddResponseInterceptor(docker.LoggingResponseInterceptor(logger))
	chain.AddResponseInterceptor(docker.MetricsResponseInterceptor(collector))

	return chain
}
