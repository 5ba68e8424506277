package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/docker-client/internal/http"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// TasksClient implements docker.TasksClient.
type TasksClient struct {
	httpClient *http.Client
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client) *TasksClient {
	return &TasksClient{
		httpClient: httpClient,
	}
}

// List implements docker.TasksClient.List.
func (c *TasksClient) List(ctx context.Context) ([]docker.Task, error) {
	tasks, err := getList[docker.Task](ctx, c.httpClient, "tasks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	return tasks, nil
}
