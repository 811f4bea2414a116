package domain

import "time"

// ShareLink grants unauthenticated read access to one Content record.
// Tokens are write-once: rows are only ever created or deleted together
// with their parent content, never updated.
type ShareLink struct {
	ID        int64      `json:"id"`
	ContentID int64      `json:"content_id"`
	Token     string     `json:"token"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil = never expires
}

func (l *ShareLink) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}
