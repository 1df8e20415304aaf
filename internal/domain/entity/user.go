// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account
// that owns a channel. It carries both the public channel identity and
// the private credential material.
type User struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username      string    // Unique handle, stored lowercased. Doubles as the channel slug.
	Email         string    // The user's primary contact email, used as a login identifier.
	FullName      string    // The user's display name.
	AvatarURL     string    // Public URL of the avatar image.
	CoverImageURL string    // Public URL of the channel cover image. Optional.
	PasswordHash  string    // Bcrypt hash of the user's password. Never exposed outward.
	RefreshToken  *string   // The single currently valid refresh token. Nil when logged out.
	CreatedAt     time.Time // Timestamp of when this account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// ChannelProfile is the public view of a user's channel as seen by a viewer,
// enriched with subscription aggregates relative to that viewer.
type ChannelProfile struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	AvatarURL       string    `json:"avatar_url"`
	CoverImageURL   string    `json:"cover_image_url"`
	SubscriberCount int64     `json:"subscriber_count"`    // Number of users subscribed to this channel.
	SubscribedTo    int64     `json:"channels_subscribed"` // Number of channels this user subscribes to.
	IsSubscribed    bool      `json:"is_subscribed"`       // Whether the viewing user subscribes to this channel.
}

// WatchEntry records a single video in a user's watch history.
type WatchEntry struct {
	UserID    uuid.UUID // The user who watched the video.
	VideoID   uuid.UUID // The video that was watched.
	WatchedAt time.Time // When the most recent watch happened.
	Video     *Video    // The watched video, populated on reads.
}
