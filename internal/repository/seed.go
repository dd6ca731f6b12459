package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"studyhub/internal/model"
)

// DefaultSemesterCount is how many semesters the portal guarantees exist.
const DefaultSemesterCount = 8

// SemesterSeeder guarantees the baseline "Semester 1".."Semester 8"
// entities exist. It runs as an explicit startup step rather than as a
// side effect of reads, and concurrent invocations collapse into a single
// in-flight seed, so an empty collection cannot be double-seeded.
type SemesterSeeder struct {
	repo  *Repo[model.Semester]
	group singleflight.Group
	log   zerolog.Logger
}

func NewSemesterSeeder(repo *Repo[model.Semester], log zerolog.Logger) *SemesterSeeder {
	return &SemesterSeeder{repo: repo, log: log}
}

// EnsureDefaults creates the default semesters when the collection is
// observed empty, then returns the full collection. A read fault is an
// error, not emptiness: nothing is seeded in that case. A failed create
// inside the loop is logged and skipped; the remaining defaults are still
// attempted.
func (s *SemesterSeeder) EnsureDefaults(ctx context.Context) ([]model.Semester, error) {
	v, err, _ := s.group.Do("semesters", func() (any, error) {
		existing, err := s.repo.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed check: %w", err)
		}
		if len(existing) > 0 {
			return existing, nil
		}

		s.log.Info().Int("count", DefaultSemesterCount).Msg("seeding default semesters")
		for i := 1; i <= DefaultSemesterCount; i++ {
			sem := model.Semester{Name: fmt.Sprintf("Semester %d", i), Order: i}
			if s.repo.Add(ctx, sem) == nil {
				s.log.Warn().Int("order", i).Msg("default semester not created, continuing")
			}
		}

		seeded, err := s.repo.load(ctx)
		if err != nil {
			return nil, fmt.Errorf("re-read after seed: %w", err)
		}
		return seeded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Semester), nil
}
