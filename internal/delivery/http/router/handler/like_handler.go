package handler

import (
	"log/slog"
	"net/http"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like-related handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{uc: uc, logger: logger}
}

// ToggleVideoLike flips the caller's like on a video.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	liked, err := h.uc.ToggleVideoLike(c.Request().Context(), videoID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Video like toggled successfully")
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	liked, err := h.uc.ToggleCommentLike(c.Request().Context(), commentID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Comment like toggled successfully")
}

// ToggleTweetLike flips the caller's like on a tweet.
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	liked, err := h.uc.ToggleTweetLike(c.Request().Context(), tweetID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Tweet like toggled successfully")
}

// LikedVideos returns the caller's liked videos.
func (h *LikeHandler) LikedVideos(c echo.Context) error {
	videos, err := h.uc.GetLikedVideos(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoList(videos), "Liked videos fetched successfully")
}
