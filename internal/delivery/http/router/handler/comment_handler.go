package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// List returns one page of a video's comments, newest first.
func (h *CommentHandler) List(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	comments, err := h.uc.ListComments(c.Request().Context(), videoID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentPageResponse(comments), "Comments fetched successfully")
}

// Add attaches a new comment to a video.
func (h *CommentHandler) Add(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	comment, err := h.uc.AddComment(c.Request().Context(), videoID, middleware.GetUserID(c), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCommentResponse(comment), "Comment added successfully")
}

// Update changes a comment's content.
func (h *CommentHandler) Update(c echo.Context) error {
	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	comment, err := h.uc.UpdateComment(c.Request().Context(), commentID, middleware.GetUserID(c), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCommentResponse(comment), "Comment updated successfully")
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), commentID, middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
