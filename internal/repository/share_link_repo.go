package repository

import (
	"context"
	"errors"
	"time"

	"secondbrain/internal/domain"

	"gorm.io/gorm"
)

// ErrDuplicateToken surfaces a unique-index collision on the token
// column. With 128-bit random tokens this is effectively unreachable,
// but the share service retries once rather than trusting that.
var ErrDuplicateToken = errors.New("share token already exists")

type ShareLinkRepository struct {
	db *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

type shareLinkModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	ContentID int64      `gorm:"column:content_id;index;not null"`
	Token     string     `gorm:"column:token;size:64;uniqueIndex;not null"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
}

func (shareLinkModel) TableName() string { return "share_links" }

func toDomainShareLink(m shareLinkModel) *domain.ShareLink {
	return &domain.ShareLink{
		ID:        m.ID,
		ContentID: m.ContentID,
		Token:     m.Token,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

func (r *ShareLinkRepository) Create(ctx context.Context, l *domain.ShareLink) error {
	m := shareLinkModel{
		ContentID: l.ContentID,
		Token:     l.Token,
		ExpiresAt: l.ExpiresAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateToken
		}
		return tx.Error
	}
	*l = *toDomainShareLink(m)
	return nil
}

func (r *ShareLinkRepository) GetByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	var m shareLinkModel
	tx := r.db.WithContext(ctx).Where("token = ?", token).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainShareLink(m), nil
}

// DeleteExpired purges share links whose expiry has passed. Rows with a
// NULL expiry are never touched.
func (r *ShareLinkRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&shareLinkModel{})
	return tx.RowsAffected, tx.Error
}
