package domain

import "time"

type ContentType string

const (
	TypeImage    ContentType = "image"
	TypeVideo    ContentType = "video"
	TypeArticle  ContentType = "article"
	TypeAudio    ContentType = "audio"
	TypeDocument ContentType = "document"
	TypeTwitter  ContentType = "twitter"
)

// ValidContentTypes lists the accepted values in the order they are
// reported back to clients on validation failures.
var ValidContentTypes = []ContentType{
	TypeImage,
	TypeVideo,
	TypeArticle,
	TypeAudio,
	TypeDocument,
	TypeTwitter,
}

func (t ContentType) Valid() bool {
	for _, v := range ValidContentTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Content struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title" validate:"required"`
	Link      string      `json:"link" validate:"required"`
	Type      ContentType `json:"content_type"`
	UserID    int64       `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
