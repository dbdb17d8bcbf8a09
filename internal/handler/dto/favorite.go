package dto

// FavoriteRequest is the POST/DELETE /api/favorites payload.
type FavoriteRequest struct {
	UserID int64  `json:"userId"`
	City   string `json:"city"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}
