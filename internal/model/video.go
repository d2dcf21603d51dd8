package model

import "time"

// Video is a VOD entry students can watch from the classroom portal.
// ClassID is nullable: orphaned videos stay listable in the admin
// dashboard until reassigned.
type Video struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	ClassID   *int      `json:"classId"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateVideoRequest is the payload for creating or updating a video.
type CreateVideoRequest struct {
	Title     string `json:"title" binding:"required,min=1,max=200"`
	URL       string `json:"url" binding:"required,url"`
	ClassID   *int   `json:"classId"`
	SortOrder int    `json:"sortOrder"`
}
