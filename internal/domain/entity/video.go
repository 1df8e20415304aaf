package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video represents an uploaded video and its public metadata.
type Video struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the video.
	OwnerID      uuid.UUID // The user who uploaded the video.
	VideoFileURL string    // Public URL of the stored video file.
	ThumbnailURL string    // Public URL of the stored thumbnail image.
	Title        string    // Display title.
	Description  string    // Free-form description.
	Duration     float64   // Duration in seconds, as reported by the uploader.
	Views        int64     // Total recorded views.
	IsPublished  bool      // Whether the video is visible in public listings.
	Owner        *User     // Uploader details, populated on reads.
	CreatedAt    time.Time // Timestamp of when the video was published.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// VideoPage is one page of a video listing together with pagination totals.
type VideoPage struct {
	Videos     []*Video `json:"videos"`
	TotalCount int64    `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
	TotalPages int      `json:"total_pages"`
}
