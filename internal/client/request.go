package client

import (
	"bytes"
	"context"
	"errors"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errMissingMessage = errors.New(`error body has no "message" field`)
	errEmptyBody      = errors.New("empty response body")
)

// transport performs one exchange and returns the raw result.
// *http.Client satisfies it.
type transport interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// errorBody mirrors docker.ErrorResponse but tells a missing message apart
// from an empty one.
type errorBody struct {
	Message *string `json:"message"`
}

// get fetches a single record from path.
func get[T any](ctx context.Context, c transport, path string, query url.Values) (*T, error) {
	resp, err := c.Do(ctx, &http.Request{
		Method: "GET",
		Path:   path,
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != constants.StatusRead {
		return nil, classify(resp)
	}

	var result T

	err = unmarshal(resp.Body, &result)
	if err != nil {
		return nil, decodeError(resp, err)
	}

	return &result, nil
}

// getList fetches a JSON array from path, keeping the order the daemon sent.
// An empty array or a null body yields an empty, non-nil slice.
func getList[T any](ctx context.Context, c transport, path string, query url.Values) ([]T, error) {
	resp, err := c.Do(ctx, &http.Request{
		Method: "GET",
		Path:   path,
		Query:  query,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != constants.StatusRead {
		return nil, classify(resp)
	}

	var items []T

	err = unmarshal(resp.Body, &items)
	if err != nil {
		return nil, decodeError(resp, err)
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}

// create posts payload to path and decodes the reply when the daemon
// answers with expected.
func create[P, R any](ctx context.Context, c transport, path string, payload *P, expected int) (*R, error) {
	if payload == nil {
		return nil, docker.ErrNilPayload
	}

	resp, err := c.Do(ctx, &http.Request{
		Method: "POST",
		Path:   path,
		Body:   payload,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != expected {
		return nil, classify(resp)
	}

	var result R

	err = unmarshal(resp.Body, &result)
	if err != nil {
		return nil, decodeError(resp, err)
	}

	return &result, nil
}

// update posts payload to path. Success is the status code alone: the reply
// body is never decoded.
func update[P any](ctx context.Context, c transport, path string, query url.Values, payload *P, expected int) error {
	if payload == nil {
		return docker.ErrNilPayload
	}

	resp, err := c.Do(ctx, &http.Request{
		Method: "POST",
		Path:   path,
		Query:  query,
		Body:   payload,
	})
	if err != nil {
		return err
	}

	if resp.StatusCode != expected {
		return classify(resp)
	}

	return nil
}

// remove deletes path. Only 204 counts as success.
func remove(ctx context.Context, c transport, path string) error {
	resp, err := c.Do(ctx, &http.Request{
		Method: "DELETE",
		Path:   path,
	})
	if err != nil {
		return err
	}

	if resp.StatusCode != constants.StatusDeleted {
		return classify(resp)
	}

	return nil
}

// classify turns a response whose status code did not match into an error.
func classify(resp *http.Response) error {
	var body errorBody

	err := unmarshal(resp.Body, &body)
	if err != nil {
		return decodeError(resp, err)
	}

	if body.Message == nil {
		return decodeError(resp, errMissingMessage)
	}

	return &docker.ServerError{
		StatusCode: resp.StatusCode,
		Message:    *body.Message,
	}
}

func unmarshal(data []byte, v interface{}) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}

	return json.Unmarshal(data, v)
}

func decodeError(resp *http.Response, err error) *docker.DecodeError {
	return &docker.DecodeError{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Err:        err,
	}
}
