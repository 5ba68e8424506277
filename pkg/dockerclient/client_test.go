package dockerclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
	"github.com/fivetwenty-io/docker-client/pkg/dockerclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := dockerclient.New(&docker.Config{
			Host:       "tcp://127.0.0.1:2375",
			APIVersion: "1.41",
		})
		require.NoError(t, err)
		assert.Equal(t, "tcp://127.0.0.1:2375", client.Host())
		assert.Equal(t, "1.41", client.APIVersion())
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := dockerclient.New(nil)
		require.ErrorIs(t, err, docker.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("does not modify the caller's config", func(t *testing.T) {
		t.Parallel()

		config := &docker.Config{}

		_, err := dockerclient.New(config)
		require.NoError(t, err)
		assert.Empty(t, config.Host)
		assert.Empty(t, config.APIVersion)
	})
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	client, err := dockerclient.NewDefault()
	require.NoError(t, err)
	assert.Equal(t, "unix:///var/run/docker.sock", client.Host())
	assert.Equal(t, docker.APIVersion, client.APIVersion())
}

func TestNew_Host(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		host     string
		expected string
		wantErr  error
	}{
		{name: "unix socket", host: "unix:///run/user/1000/docker.sock", expected: "unix:///run/user/1000/docker.sock"},
		{name: "bare socket path", host: "/run/docker.sock", expected: "unix:///run/docker.sock"},
		{name: "trailing slash", host: "tcp://10.0.0.5:2375/", expected: "tcp://10.0.0.5:2375"},
		{name: "surrounding spaces", host: "  http://localhost:2375 ", expected: "http://localhost:2375"},
		{name: "unsupported scheme", host: "ssh://user@host", wantErr: docker.ErrUnsupportedScheme},
		{name: "not a uri", host: "not a host", wantErr: docker.ErrInvalidHost},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := dockerclient.NewWithHost(tt.host)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, client.Host())
		})
	}
}

func TestNew_APIVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		expected string
		wantErr  error
	}{
		{name: "default", version: "", expected: "1.26"},
		{name: "plain", version: "1.41", expected: "1.41"},
		{name: "v prefix", version: "v1.43", expected: "1.43"},
		{name: "oldest supported", version: "1.24", expected: "1.24"},
		{name: "too old", version: "1.12", wantErr: docker.ErrAPIVersionTooOld},
		{name: "patch component", version: "1.41.2", wantErr: docker.ErrInvalidAPIVersion},
		{name: "garbage", version: "latest", wantErr: docker.ErrInvalidAPIVersion},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := dockerclient.New(&docker.Config{APIVersion: tt.version})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, client.APIVersion())
		})
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	t.Run("negative timeout", func(t *testing.T) {
		t.Parallel()

		client, err := dockerclient.New(&docker.Config{Timeout: -time.Second})
		require.ErrorIs(t, err, docker.ErrInvalidTimeout)
		assert.Nil(t, client)
	})

	t.Run("non-printable user agent", func(t *testing.T) {
		t.Parallel()

		client, err := dockerclient.New(&docker.Config{UserAgent: "bad\x00agent"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating config")
		assert.Nil(t, client)
	})
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v1.26/images/json":
			_, _ = writer.Write([]byte(`[{"Id":"sha256:aaa","RepoTags":["alpine:3.19"]}]`))
		case "/v1.26/secrets/create":
			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"ID":"s1"}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"page not found"}`))
		}
	}))
	defer server.Close()

	client, err := dockerclient.NewWithHost(server.URL)
	require.NoError(t, err)

	ctx := context.Background()

	images, err := client.Images().List(ctx)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "sha256:aaa", docker.Deref(images[0].ID))

	created, err := client.Secrets().Create(ctx, &docker.SecretSpec{Name: docker.Ptr("api-key")})
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)

	_, err = client.Swarm().Inspect(ctx)
	require.Error(t, err)

	message, ok := docker.ServerMessage(err)
	require.True(t, ok)
	assert.Equal(t, "page not found", message)
}
