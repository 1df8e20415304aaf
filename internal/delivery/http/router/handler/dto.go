// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"clipstream/internal/domain/entity"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the public view of a user account. Credential material
// never appears here.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	AvatarURL     string    `json:"avatar_url"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		AvatarURL:     user.AvatarURL,
		CoverImageURL: user.CoverImageURL,
		CreatedAt:     user.CreatedAt,
	}
}

func newUserList(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}

	return out
}

// VideoResponse is the public view of a video.
type VideoResponse struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	VideoFileURL string        `json:"video_file_url"`
	ThumbnailURL string        `json:"thumbnail_url"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Duration     float64       `json:"duration"`
	Views        int64         `json:"views"`
	IsPublished  bool          `json:"is_published"`
	Owner        *UserResponse `json:"owner,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func newVideoResponse(video *entity.Video) *VideoResponse {
	if video == nil {
		return nil
	}

	return &VideoResponse{
		ID:           video.ID,
		OwnerID:      video.OwnerID,
		VideoFileURL: video.VideoFileURL,
		ThumbnailURL: video.ThumbnailURL,
		Title:        video.Title,
		Description:  video.Description,
		Duration:     video.Duration,
		Views:        video.Views,
		IsPublished:  video.IsPublished,
		Owner:        newUserResponse(video.Owner),
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
	}
}

func newVideoList(videos []*entity.Video) []*VideoResponse {
	out := make([]*VideoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, newVideoResponse(video))
	}

	return out
}

// VideoPageResponse is one page of a video listing.
type VideoPageResponse struct {
	Videos     []*VideoResponse `json:"videos"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

func newVideoPageResponse(page *entity.VideoPage) *VideoPageResponse {
	return &VideoPageResponse{
		Videos:     newVideoList(page.Videos),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        uuid.UUID     `json:"id"`
	VideoID   uuid.UUID     `json:"video_id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	Content   string        `json:"content"`
	Owner     *UserResponse `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newCommentResponse(comment *entity.Comment) *CommentResponse {
	if comment == nil {
		return nil
	}

	return &CommentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		OwnerID:   comment.OwnerID,
		Content:   comment.Content,
		Owner:     newUserResponse(comment.Owner),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// CommentPageResponse is one page of a video's comments.
type CommentPageResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func newCommentPageResponse(page *usecase.CommentPage) *CommentPageResponse {
	comments := make([]*CommentResponse, 0, len(page.Comments))
	for _, comment := range page.Comments {
		comments = append(comments, newCommentResponse(comment))
	}

	return &CommentPageResponse{
		Comments:   comments,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		Limit:      page.Limit,
	}
}

// TweetResponse is the public view of a tweet.
type TweetResponse struct {
	ID        uuid.UUID     `json:"id"`
	OwnerID   uuid.UUID     `json:"owner_id"`
	Content   string        `json:"content"`
	Owner     *UserResponse `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func newTweetResponse(tweet *entity.Tweet) *TweetResponse {
	if tweet == nil {
		return nil
	}

	return &TweetResponse{
		ID:        tweet.ID,
		OwnerID:   tweet.OwnerID,
		Content:   tweet.Content,
		Owner:     newUserResponse(tweet.Owner),
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
}

func newTweetList(tweets []*entity.Tweet) []*TweetResponse {
	out := make([]*TweetResponse, 0, len(tweets))
	for _, tweet := range tweets {
		out = append(out, newTweetResponse(tweet))
	}

	return out
}

// PlaylistResponse is the public view of a playlist.
type PlaylistResponse struct {
	ID          uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"owner_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Videos      []*VideoResponse `json:"videos"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func newPlaylistResponse(playlist *entity.Playlist) *PlaylistResponse {
	if playlist == nil {
		return nil
	}

	return &PlaylistResponse{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		Videos:      newVideoList(playlist.Videos),
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
}

func newPlaylistList(playlists []*entity.Playlist) []*PlaylistResponse {
	out := make([]*PlaylistResponse, 0, len(playlists))
	for _, playlist := range playlists {
		out = append(out, newPlaylistResponse(playlist))
	}

	return out
}

// WatchEntryResponse is one item in a user's watch history.
type WatchEntryResponse struct {
	VideoID   uuid.UUID      `json:"video_id"`
	WatchedAt time.Time      `json:"watched_at"`
	Video     *VideoResponse `json:"video,omitempty"`
}

func newWatchHistoryResponse(entries []*entity.WatchEntry) []*WatchEntryResponse {
	out := make([]*WatchEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &WatchEntryResponse{
			VideoID:   entry.VideoID,
			WatchedAt: entry.WatchedAt,
			Video:     newVideoResponse(entry.Video),
		})
	}

	return out
}
