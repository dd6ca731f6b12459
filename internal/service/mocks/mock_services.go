package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"studyhub/internal/model"
	"studyhub/internal/service"
)

type MockSemesterService struct {
	mock.Mock
}

func (m *MockSemesterService) List(ctx context.Context) []model.Semester {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Semester)
}

func (m *MockSemesterService) Create(ctx context.Context, name string) (*model.Semester, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Semester), args.Error(1)
}

func (m *MockSemesterService) Rename(ctx context.Context, id, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockSemesterService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSubjectService struct {
	mock.Mock
}

func (m *MockSubjectService) List(ctx context.Context, semesterID string) []model.Subject {
	args := m.Called(ctx, semesterID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Subject)
}

func (m *MockSubjectService) Create(ctx context.Context, name, semesterID string) (*model.Subject, error) {
	args := m.Called(ctx, name, semesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *MockSubjectService) Update(ctx context.Context, id, name, semesterID string) error {
	args := m.Called(ctx, id, name, semesterID)
	return args.Error(0)
}

func (m *MockSubjectService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) List(ctx context.Context, semesterID, subjectID string) []model.Resource {
	args := m.Called(ctx, semesterID, subjectID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Resource)
}

func (m *MockResourceService) Upload(ctx context.Context, r io.Reader, in service.UploadInput) (*model.Resource, error) {
	args := m.Called(ctx, r, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Resource), args.Error(1)
}

func (m *MockResourceService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Resource), args.Error(2)
}

func (m *MockResourceService) PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, id, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockResourceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
