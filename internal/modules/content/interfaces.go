package content

import (
	"context"

	"secondbrain/internal/domain"
)

// ContentRepositoryInterface — only the methods the content service uses
type ContentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Content) error
	GetByID(ctx context.Context, id int64) (*domain.Content, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Content, error)
	Delete(ctx context.Context, id int64) (*domain.Content, error)
}
