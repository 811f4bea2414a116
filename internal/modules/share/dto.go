package share

type CreateShareRequest struct {
	ContentID int64 `json:"contentId" binding:"required"`
}

type ShareResponse struct {
	ShareURL  string `json:"shareUrl"`
	ExpiresAt string `json:"expiresAt"`
}
