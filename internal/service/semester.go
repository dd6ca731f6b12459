package service

import (
	"context"
	"errors"
	"sync"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("not found")
	ErrStoreFault   = errors.New("store operation failed")
)

// SemesterService defines the use cases around semesters.
type SemesterService interface {
	// List returns all semesters in order. Store faults surface as an
	// empty list, per the repository's fail-soft policy.
	List(ctx context.Context) []model.Semester

	// Create appends a semester after the current highest order.
	Create(ctx context.Context, name string) (*model.Semester, error)

	// Rename changes a semester's name, leaving its order untouched.
	Rename(ctx context.Context, id, name string) error

	// Delete removes a semester. Its subjects and resources stay behind
	// as orphans; there is no cascade.
	Delete(ctx context.Context, id string) error
}

type semesterService struct {
	repo repository.EntityRepo[model.Semester]

	// Serializes the read-highest-order-then-insert sequence so two
	// concurrent creates cannot claim the same order.
	mu sync.Mutex
}

// NewSemesterService constructs a SemesterService.
func NewSemesterService(repo repository.EntityRepo[model.Semester]) SemesterService {
	return &semesterService{repo: repo}
}

func (s *semesterService) List(ctx context.Context) []model.Semester {
	return s.repo.GetAll(ctx)
}

func (s *semesterService) Create(ctx context.Context, name string) (*model.Semester, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, sem := range s.repo.GetAll(ctx) {
		if sem.Order >= next {
			next = sem.Order + 1
		}
	}

	created := s.repo.Add(ctx, model.Semester{Name: name, Order: next})
	if created == nil {
		return nil, ErrStoreFault
	}
	return created, nil
}

func (s *semesterService) Rename(ctx context.Context, id, name string) error {
	if id == "" {
		return ErrIDRequired
	}
	if name == "" {
		return ErrNameRequired
	}
	return statusErr(s.repo.Update(ctx, id, map[string]any{"name": name}))
}

func (s *semesterService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return statusErr(s.repo.Delete(ctx, id))
}

// statusErr translates a repository Status into the service error
// vocabulary.
func statusErr(st repository.Status) error {
	switch st {
	case repository.StatusOK:
		return nil
	case repository.StatusNotFound:
		return ErrNotFound
	default:
		return ErrStoreFault
	}
}
