package repository

import (
	"context"
	"time"

	"secondbrain/internal/domain"

	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

type contentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Link      string    `gorm:"column:link;not null"`
	Type      string    `gorm:"column:content_type;size:20;not null"`
	UserID    int64     `gorm:"column:user_id;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contentModel) TableName() string { return "contents" }

func toDomainContent(m contentModel) *domain.Content {
	return &domain.Content{
		ID:        m.ID,
		Title:     m.Title,
		Link:      m.Link,
		Type:      domain.ContentType(m.Type),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toContentModel(c *domain.Content) contentModel {
	return contentModel{
		ID:        c.ID,
		Title:     c.Title,
		Link:      c.Link,
		Type:      string(c.Type),
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.Content) error {
	m := toContentModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainContent(m)
	return nil
}

func (r *ContentRepository) GetByID(ctx context.Context, id int64) (*domain.Content, error) {
	var m contentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainContent(m), nil
}

func (r *ContentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Content, error) {
	var models []contentModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	contents := make([]domain.Content, 0, len(models))
	for _, m := range models {
		contents = append(contents, *toDomainContent(m))
	}
	return contents, nil
}

// Delete removes the content row and its share links in one transaction.
// SQLite does not always enforce ON DELETE CASCADE depending on pragma
// state, so the cascade is done explicitly.
func (r *ContentRepository) Delete(ctx context.Context, id int64) (*domain.Content, error) {
	var m contentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&shareLinkModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&contentModel{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainContent(m), nil
}
