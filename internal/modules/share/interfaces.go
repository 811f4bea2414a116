package share

import (
	"context"

	"secondbrain/internal/domain"
)

// ShareLinkRepositoryInterface — only the methods the share service uses
type ShareLinkRepositoryInterface interface {
	Create(ctx context.Context, l *domain.ShareLink) error
	GetByToken(ctx context.Context, token string) (*domain.ShareLink, error)
}

// ContentReader — existence check and resolution target
type ContentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Content, error)
}
