package content

import "secondbrain/internal/domain"

type CreateContentRequest struct {
	Title string `json:"title" binding:"required"`
	Link  string `json:"link" binding:"required"`
	Type  string `json:"content_type" binding:"required"`
	// Accepted for wire compatibility with older clients; the owner is
	// always taken from the verified token, never from the body.
	UserID int64 `json:"user_id"`
}

type ContentResponse struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Link      string             `json:"link"`
	Type      domain.ContentType `json:"content_type"`
	UserID    int64              `json:"user_id"`
	CreatedAt string             `json:"created_at"`
}

func toContentResponse(c *domain.Content) ContentResponse {
	return ContentResponse{
		ID:        c.ID,
		Title:     c.Title,
		Link:      c.Link,
		Type:      c.Type,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
