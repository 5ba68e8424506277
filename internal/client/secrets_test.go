package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

func TestSecretsClient_List(t *testing.T) {
	t.Parallel()

	server := newCannedServer(t, http.StatusOK, `[
		{"ID":"blt1owaxmitz71s9v5zh81zun","Version":{"Index":85},"Spec":{"Name":"mysql-passwd","Labels":{"env":"prod"}}},
		{"ID":"ktnbjxoalbkvbvedmg1urrz8h","Version":{"Index":11},"Spec":{"Name":"app-key"}}
	]`)
	client := NewTestClient(t, server.URL)

	secrets, err := client.Secrets().List(context.Background())
	require.NoError(t, err)
	require.Len(t, secrets, 2)
	assert.Equal(t, "blt1owaxmitz71s9v5zh81zun", docker.Deref(secrets[0].ID))
	assert.Equal(t, "mysql-passwd", docker.Deref(secrets[0].Spec.Name))
	assert.Equal(t, map[string]string{"env": "prod"}, secrets[0].Spec.Labels)
	assert.Equal(t, uint64(11), docker.Deref(secrets[1].Version.Index))
	assert.Equal(t, "/v1.26/secrets", server.lastRequest(t).Path)
}

func TestSecretsClient_Inspect(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, `{
			"ID":"ktnbjxoalbkvbvedmg1urrz8h",
			"Version":{"Index":11},
			"CreatedAt":"2016-11-05T01:20:17.327670065Z",
			"UpdatedAt":"2016-11-05T01:20:17.327670065Z",
			"Spec":{"Name":"app-dev.crt","Labels":{"foo":"bar"},"Driver":{"Name":"secret-bucket","Options":{"OptionA":"value for driver option A"}}}
		}`)
		client := NewTestClient(t, server.URL)

		secret, err := client.Secrets().Inspect(context.Background(), "ktnbjxoalbkvbvedmg1urrz8h")
		require.NoError(t, err)
		assert.Equal(t, "ktnbjxoalbkvbvedmg1urrz8h", docker.Deref(secret.ID))
		assert.Equal(t, "2016-11-05T01:20:17.327670065Z", docker.Deref(secret.CreatedAt))
		require.NotNil(t, secret.Spec.Driver)
		assert.Equal(t, "secret-bucket", docker.Deref(secret.Spec.Driver.Name))
		assert.Nil(t, secret.Spec.Data)

		request := server.lastRequest(t)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "/v1.26/secrets/ktnbjxoalbkvbvedmg1urrz8h", request.Path)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusNotFound, `{"message":"secret unknown-id not found"}`)
		client := NewTestClient(t, server.URL)

		secret, err := client.Secrets().Inspect(context.Background(), "unknown-id")
		require.Error(t, err)
		assert.Nil(t, secret)
		assert.True(t, docker.IsServerError(err))
		assert.Contains(t, err.Error(), "inspecting secret unknown-id")
	})

	t.Run("identifier is escaped", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusNotFound, `{"message":"not found"}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Secrets().Inspect(context.Background(), "a/../b")
		require.Error(t, err)
		assert.Equal(t, "/v1.26/secrets/a%2F..%2Fb", server.lastRequest(t).EscapedPath)
	})

	t.Run("empty identifier", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, `[]`)
		client := NewTestClient(t, server.URL)

		_, err := client.Secrets().Inspect(context.Background(), "")
		require.ErrorIs(t, err, docker.ErrEmptyID)
		assert.Zero(t, server.requestCount())
	})
}

func TestSecretsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusCreated, `{"ID":"ktnbjxoalbkvbvedmg1urrz8h"}`)
		client := NewTestClient(t, server.URL)

		created, err := client.Secrets().Create(context.Background(), &docker.SecretSpec{
			Name:   docker.Ptr("app-key.crt"),
			Labels: map[string]string{"foo": "bar"},
			Data:   docker.Ptr("VEhJUyBJUyBOT1QgQSBSRUFMIENFUlRJRklDQVRFCg=="),
		})
		require.NoError(t, err)
		assert.Equal(t, "ktnbjxoalbkvbvedmg1urrz8h", created.ID)

		request := server.lastRequest(t)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1.26/secrets/create", request.Path)
		assert.JSONEq(t, `{
			"Name":"app-key.crt",
			"Labels":{"foo":"bar"},
			"Data":"VEhJUyBJUyBOT1QgQSBSRUFMIENFUlRJRklDQVRFCg=="
		}`, string(request.Body))
	})

	t.Run("invalid data", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusBadRequest, `{"message":"invalid data"}`)
		client := NewTestClient(t, server.URL)

		created, err := client.Secrets().Create(context.Background(), &docker.SecretSpec{Name: docker.Ptr("x")})
		require.Error(t, err)
		assert.Nil(t, created)

		message, ok := docker.ServerMessage(err)
		require.True(t, ok)
		assert.Equal(t, "invalid data", message)
	})

	t.Run("name conflict", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusConflict, `{"message":"rpc error: code = AlreadyExists desc = secret app-key.crt already exists"}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Secrets().Create(context.Background(), &docker.SecretSpec{Name: docker.Ptr("app-key.crt")})

		var serverErr *docker.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, http.StatusConflict, serverErr.StatusCode)
	})

	t.Run("nil spec", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusCreated, `{"ID":"x"}`)
		client := NewTestClient(t, server.URL)

		_, err := client.Secrets().Create(context.Background(), nil)
		require.ErrorIs(t, err, docker.ErrNilPayload)
		assert.Zero(t, server.requestCount())
	})
}

func TestSecretsClient_Update(t *testing.T) {
	t.Parallel()

	t.Run("updated", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, "")
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Update(context.Background(), "ktnbjxoalbkvbvedmg1urrz8h", 11, &docker.SecretSpec{
			Name:   docker.Ptr("app-key.crt"),
			Labels: map[string]string{"rotated": "true"},
		})
		require.NoError(t, err)

		request := server.lastRequest(t)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/v1.26/secrets/ktnbjxoalbkvbvedmg1urrz8h/update", request.Path)
		assert.Equal(t, "version=11", request.RawQuery)
		assert.JSONEq(t, `{"Name":"app-key.crt","Labels":{"rotated":"true"}}`, string(request.Body))
	})

	t.Run("success body is ignored", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, "this is not json")
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Update(context.Background(), "abc", 1, &docker.SecretSpec{Name: docker.Ptr("x")})
		require.NoError(t, err)
	})

	t.Run("stale version", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusInternalServerError, `{"message":"update out of sequence"}`)
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Update(context.Background(), "abc", 1, &docker.SecretSpec{Name: docker.Ptr("x")})
		require.Error(t, err)

		message, ok := docker.ServerMessage(err)
		require.True(t, ok)
		assert.Equal(t, "update out of sequence", message)
	})

	t.Run("empty identifier", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, "")
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Update(context.Background(), "", 1, &docker.SecretSpec{})
		require.ErrorIs(t, err, docker.ErrEmptyID)
		assert.Zero(t, server.requestCount())
	})
}

func TestSecretsClient_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusNoContent, "")
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Delete(context.Background(), "ktnbjxoalbkvbvedmg1urrz8h")
		require.NoError(t, err)

		request := server.lastRequest(t)
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/v1.26/secrets/ktnbjxoalbkvbvedmg1urrz8h", request.Path)
	})

	t.Run("unknown secret", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusNotFound, `{"message":"secret not found"}`)
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Delete(context.Background(), "unknown-id")
		require.Error(t, err)

		var serverErr *docker.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, "secret not found", serverErr.Message)
	})

	t.Run("ok is not success", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusOK, `{"message":"ok"}`)
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Delete(context.Background(), "abc")
		require.Error(t, err)
	})

	t.Run("empty identifier", func(t *testing.T) {
		t.Parallel()

		server := newCannedServer(t, http.StatusNoContent, "")
		client := NewTestClient(t, server.URL)

		err := client.Secrets().Delete(context.Background(), "")
		require.ErrorIs(t, err, docker.ErrEmptyID)
		assert.Zero(t, server.requestCount())
	})
}
