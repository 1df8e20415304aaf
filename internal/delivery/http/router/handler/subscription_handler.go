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

// SubscriptionHandler holds dependencies for subscription-related handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

// Toggle subscribes or unsubscribes the caller to a channel.
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	subscribed, err := h.uc.ToggleSubscription(c.Request().Context(), channelID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"subscribed": subscribed}, "Subscription toggled successfully")
}

// Subscribers returns the users subscribed to a channel.
func (h *SubscriptionHandler) Subscribers(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return err
	}

	subscribers, err := h.uc.GetChannelSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserList(subscribers), "Subscribers fetched successfully")
}

// SubscribedChannels returns the channels a user is subscribed to.
func (h *SubscriptionHandler) SubscribedChannels(c echo.Context) error {
	subscriberID, err := pathUUID(c, "subscriberId")
	if err != nil {
		return err
	}

	channels, err := h.uc.GetSubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserList(channels), "Subscribed channels fetched successfully")
}
