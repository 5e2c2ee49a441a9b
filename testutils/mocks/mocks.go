// Package mocks provides mock implementations for testing
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ziyixi/todoview/client"
)

// MockTaskService is a mock implementation of client.TaskService
type MockTaskService struct {
	mock.Mock
}

var _ client.TaskService = (*MockTaskService)(nil)

// ListTasks returns the mocked task list for filter
func (m *MockTaskService) ListTasks(ctx context.Context, filter client.Filter) ([]client.Task, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.Task), args.Error(1)
}

// CreateTask creates a task using the mock service
func (m *MockTaskService) CreateTask(ctx context.Context, title, description string) (*client.Task, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Task), args.Error(1)
}

// SetTaskStatus updates the completed flag using the mock service
func (m *MockTaskService) SetTaskStatus(ctx context.Context, id string, completed bool) (*client.Task, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Task), args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
