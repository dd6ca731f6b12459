package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"studyhub/internal/record"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, collection string) ([]record.Record, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockStore) ListBy(ctx context.Context, collection, field, value string) ([]record.Record, error) {
	args := m.Called(ctx, collection, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Record), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (record.Record, bool, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(record.Record), args.Bool(1), args.Error(2)
}

func (m *MockStore) Create(ctx context.Context, collection string, fields record.Record) (record.Record, error) {
	args := m.Called(ctx, collection, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	if f, ok := args.Get(0).(func(record.Record) record.Record); ok {
		return f(fields), args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *MockStore) Merge(ctx context.Context, collection, id string, patch record.Record) (bool, error) {
	args := m.Called(ctx, collection, id, patch)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	args := m.Called(ctx, collection, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
