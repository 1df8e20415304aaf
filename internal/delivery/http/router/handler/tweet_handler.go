package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TweetHandler holds dependencies for tweet-related handlers.
type TweetHandler struct {
	uc     usecase.TweetUsecase
	logger *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler, injected by Fx.
func NewTweetHandler(uc usecase.TweetUsecase, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{uc: uc, logger: logger}
}

type tweetRequest struct {
	Content string `json:"content" validate:"required"`
}

// Create posts a new tweet on the caller's channel feed.
func (h *TweetHandler) Create(c echo.Context) error {
	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	tweet, err := h.uc.CreateTweet(c.Request().Context(), middleware.GetUserID(c), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTweetResponse(tweet), "Tweet created successfully")
}

// ListByUser returns a user's tweets, newest first.
func (h *TweetHandler) ListByUser(c echo.Context) error {
	ownerID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.uc.GetUserTweets(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTweetList(tweets), "Tweets fetched successfully")
}

// Update changes a tweet's content.
func (h *TweetHandler) Update(c echo.Context) error {
	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	tweet, err := h.uc.UpdateTweet(c.Request().Context(), tweetID, middleware.GetUserID(c), req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTweetResponse(tweet), "Tweet updated successfully")
}

// Delete removes a tweet.
func (h *TweetHandler) Delete(c echo.Context) error {
	tweetID, err := pathUUID(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTweet(c.Request().Context(), tweetID, middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tweet deleted successfully")
}
