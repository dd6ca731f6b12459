package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"studyhub/internal/model"
	"studyhub/internal/repository"
	repoMocks "studyhub/internal/repository/mocks"
)

func TestSemesterService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		semName    string
		setupMocks func(mRepo *repoMocks.MockEntityRepo[model.Semester])
		wantOrder  int
		wantErr    error
	}{
		{
			name:    "appends after highest order",
			semName: "Semester 9",
			setupMocks: func(mRepo *repoMocks.MockEntityRepo[model.Semester]) {
				mRepo.On("GetAll", ctx).Return([]model.Semester{
					{ID: "a", Name: "Semester 1", Order: 1},
					{ID: "b", Name: "Semester 8", Order: 8},
				})
				mRepo.On("Add", ctx, model.Semester{Name: "Semester 9", Order: 9}).
					Return(&model.Semester{ID: "c", Name: "Semester 9", Order: 9})
			},
			wantOrder: 9,
		},
		{
			name:    "first semester gets order 1",
			semName: "Semester 1",
			setupMocks: func(mRepo *repoMocks.MockEntityRepo[model.Semester]) {
				mRepo.On("GetAll", ctx).Return([]model.Semester{})
				mRepo.On("Add", ctx, model.Semester{Name: "Semester 1", Order: 1}).
					Return(&model.Semester{ID: "a", Name: "Semester 1", Order: 1})
			},
			wantOrder: 1,
		},
		{
			name:       "empty name",
			semName:    "",
			setupMocks: func(mRepo *repoMocks.MockEntityRepo[model.Semester]) {},
			wantErr:    ErrNameRequired,
		},
		{
			name:    "store fault",
			semName: "Semester 9",
			setupMocks: func(mRepo *repoMocks.MockEntityRepo[model.Semester]) {
				mRepo.On("GetAll", ctx).Return([]model.Semester{})
				mRepo.On("Add", ctx, mock.Anything).Return(nil)
			},
			wantErr: ErrStoreFault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEntityRepo[model.Semester])
			tt.setupMocks(mRepo)
			svc := NewSemesterService(mRepo)

			created, err := svc.Create(ctx, tt.semName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOrder, created.Order)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestSemesterService_Rename(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		newName string
		status  repository.Status
		wantErr error
	}{
		{"happy path", "s1", "Sem IX", repository.StatusOK, nil},
		{"not found", "missing", "Sem IX", repository.StatusNotFound, ErrNotFound},
		{"store fault", "s1", "Sem IX", repository.StatusError, ErrStoreFault},
		{"empty id", "", "Sem IX", repository.StatusOK, ErrIDRequired},
		{"empty name", "s1", "", repository.StatusOK, ErrNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockEntityRepo[model.Semester])
			if tt.wantErr == nil || tt.wantErr == ErrNotFound || tt.wantErr == ErrStoreFault {
				mRepo.On("Update", ctx, tt.id, map[string]any{"name": tt.newName}).Return(tt.status)
			}
			svc := NewSemesterService(mRepo)

			err := svc.Rename(ctx, tt.id, tt.newName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestSemesterService_Delete(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockEntityRepo[model.Semester])
	mRepo.On("Delete", ctx, "s1").Return(repository.StatusOK)
	svc := NewSemesterService(mRepo)

	assert.NoError(t, svc.Delete(ctx, "s1"))
	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrIDRequired)
	mRepo.AssertExpectations(t)
}

func TestSemesterService_List(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockEntityRepo[model.Semester])
	mRepo.On("GetAll", ctx).Return([]model.Semester{{ID: "a", Order: 1}})
	svc := NewSemesterService(mRepo)

	assert.Len(t, svc.List(ctx), 1)
	mRepo.AssertExpectations(t)
}
