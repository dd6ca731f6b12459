package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studyhub/internal/repository"
)

// MockEntityRepo is a testify mock of repository.EntityRepo for any
// entity type.
type MockEntityRepo[T any] struct {
	mock.Mock
}

func (m *MockEntityRepo[T]) GetAll(ctx context.Context) []T {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]T)
}

func (m *MockEntityRepo[T]) GetByParent(ctx context.Context, field, parentID string) []T {
	args := m.Called(ctx, field, parentID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]T)
}

func (m *MockEntityRepo[T]) Get(ctx context.Context, id string) *T {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*T)
}

func (m *MockEntityRepo[T]) Add(ctx context.Context, entity T) *T {
	args := m.Called(ctx, entity)
	if args.Get(0) == nil {
		return nil
	}
	if f, ok := args.Get(0).(func(T) *T); ok {
		return f(entity)
	}
	return args.Get(0).(*T)
}

func (m *MockEntityRepo[T]) Update(ctx context.Context, id string, patch map[string]any) repository.Status {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(repository.Status)
}

func (m *MockEntityRepo[T]) Delete(ctx context.Context, id string) repository.Status {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Status)
}
