package content

import (
	"context"
	"errors"
	"strings"

	"secondbrain/internal/domain"
	"secondbrain/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	contents ContentRepositoryInterface
}

func NewService(contents ContentRepositoryInterface) *Service {
	return &Service{contents: contents}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateContentRequest) (*domain.Content, error) {
	contentType := domain.ContentType(strings.TrimSpace(req.Type))
	if !contentType.Valid() {
		return nil, ErrInvalidContentType
	}

	c := &domain.Content{
		Title:  strings.TrimSpace(req.Title),
		Link:   strings.TrimSpace(req.Link),
		Type:   contentType,
		UserID: userID,
	}

	// Guards non-HTTP callers (the seeder) the same way binding tags
	// guard requests: title and link must be non-empty.
	if fieldErrs := validator.Validate(c); fieldErrs != nil {
		return nil, ErrValidation
	}

	if err := s.contents.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByUser filters by owner id at the query level. The caller's own
// identity is not compared against the requested id; see DESIGN.md.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Content, error) {
	return s.contents.ListByUser(ctx, userID)
}

// Delete removes the content and, via the repository transaction, every
// share link pointing at it.
func (s *Service) Delete(ctx context.Context, contentID int64) (*domain.Content, error) {
	deleted, err := s.contents.Delete(ctx, contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return deleted, nil
}
