package model

import "time"

// Notice is an announcement shown on the classroom portal.
type Notice struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateNoticeRequest is the payload for creating or updating a notice.
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required"`
	Pinned  bool   `json:"pinned"`
}
