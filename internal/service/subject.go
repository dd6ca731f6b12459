package service

import (
	"context"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// SubjectService defines the use cases around subjects.
type SubjectService interface {
	// List returns subjects by name, restricted to one semester when
	// semesterID is non-empty. The reference is not validated; an
	// unknown semester simply lists nothing.
	List(ctx context.Context, semesterID string) []model.Subject

	// Create adds a subject under a semester. The semester is not
	// checked to exist, matching the unenforced reference model.
	Create(ctx context.Context, name, semesterID string) (*model.Subject, error)

	// Update applies the non-empty fields; empty ones keep their values.
	Update(ctx context.Context, id, name, semesterID string) error

	Delete(ctx context.Context, id string) error
}

type subjectService struct {
	repo repository.EntityRepo[model.Subject]
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(repo repository.EntityRepo[model.Subject]) SubjectService {
	return &subjectService{repo: repo}
}

func (s *subjectService) List(ctx context.Context, semesterID string) []model.Subject {
	if semesterID != "" {
		return s.repo.GetByParent(ctx, "semesterId", semesterID)
	}
	return s.repo.GetAll(ctx)
}

func (s *subjectService) Create(ctx context.Context, name, semesterID string) (*model.Subject, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	created := s.repo.Add(ctx, model.Subject{Name: name, SemesterID: semesterID})
	if created == nil {
		return nil, ErrStoreFault
	}
	return created, nil
}

func (s *subjectService) Update(ctx context.Context, id, name, semesterID string) error {
	if id == "" {
		return ErrIDRequired
	}
	patch := map[string]any{}
	if name != "" {
		patch["name"] = name
	}
	if semesterID != "" {
		patch["semesterId"] = semesterID
	}
	if len(patch) == 0 {
		return nil // nothing to change
	}
	return statusErr(s.repo.Update(ctx, id, patch))
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return statusErr(s.repo.Delete(ctx, id))
}
