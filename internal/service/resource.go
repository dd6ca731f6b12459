package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/storage"
)

var (
	ErrReaderNil = errors.New("reader is nil")
	ErrNotPDF    = errors.New("only PDF uploads are accepted")
)

// UploadInput carries the metadata of a PDF upload.
type UploadInput struct {
	Title       string
	FileName    string // original client-side file name
	ContentType string
	Size        int64
	SemesterID  string
	SubjectID   string
}

// ResourceService defines the use cases around PDF resources. The stored
// fileUrl field is the object storage key; download and presign resolve
// it against the bucket.
type ResourceService interface {
	// List returns resources newest first, optionally restricted to a
	// semester or (taking precedence) a subject.
	List(ctx context.Context, semesterID, subjectID string) []model.Resource

	// Upload streams the PDF into object storage, then records its
	// metadata. The object is removed again if the record write fails.
	Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Resource, error)

	// Download streams a resource's PDF content.
	Download(ctx context.Context, id string) (io.ReadCloser, *model.Resource, error)

	// PresignURL returns a time-limited direct download URL.
	PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error)

	// Delete removes the PDF object first, then the record.
	Delete(ctx context.Context, id string) error
}

type resourceService struct {
	store storage.Storage
	repo  repository.EntityRepo[model.Resource]
}

// NewResourceService constructs a ResourceService.
func NewResourceService(store storage.Storage, repo repository.EntityRepo[model.Resource]) ResourceService {
	return &resourceService{store: store, repo: repo}
}

func (s *resourceService) List(ctx context.Context, semesterID, subjectID string) []model.Resource {
	switch {
	case subjectID != "":
		return s.repo.GetByParent(ctx, "subjectId", subjectID)
	case semesterID != "":
		return s.repo.GetByParent(ctx, "semesterId", semesterID)
	default:
		return s.repo.GetAll(ctx)
	}
}

func (s *resourceService) Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Resource, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !isPDF(in) {
		return nil, ErrNotPDF
	}

	title := in.Title
	if title == "" {
		title = strings.TrimSuffix(in.FileName, filepath.Ext(in.FileName))
	}
	if title == "" {
		return nil, ErrNameRequired
	}

	key := "pdfs/" + uuid.NewString() + ".pdf"
	if _, err := s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        in.Size,
		ContentType: "application/pdf",
		Metadata:    map[string]string{"original-filename": in.FileName},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	created := s.repo.Add(ctx, model.Resource{
		Title:      title,
		FileName:   in.FileName,
		FileURL:    key,
		SemesterID: in.SemesterID,
		SubjectID:  in.SubjectID,
		CreatedAt:  model.Now(),
	})
	if created == nil {
		// Roll the object back so storage holds no unreferenced PDFs.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("%w; rollback delete failed: %v", ErrStoreFault, delErr)
		}
		return nil, ErrStoreFault
	}
	return created, nil
}

func (s *resourceService) Download(ctx context.Context, id string) (io.ReadCloser, *model.Resource, error) {
	res, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, res.FileURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch from storage: %w", err)
	}
	return rc, res, nil
}

func (s *resourceService) PresignURL(ctx context.Context, id string, expiry time.Duration) (string, error) {
	res, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, res.FileURL, expiry)
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	res, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Object first: a dangling record is recoverable, an unreferenced
	// object is not.
	if err := s.store.Delete(ctx, res.FileURL); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return statusErr(s.repo.Delete(ctx, id))
}

func (s *resourceService) find(ctx context.Context, id string) (*model.Resource, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	res := s.repo.Get(ctx, id)
	if res == nil {
		return nil, ErrNotFound
	}
	return res, nil
}

func isPDF(in UploadInput) bool {
	if strings.EqualFold(filepath.Ext(in.FileName), ".pdf") {
		return true
	}
	return in.ContentType == "application/pdf"
}
