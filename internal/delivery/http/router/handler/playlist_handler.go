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

// PlaylistHandler holds dependencies for playlist-related handlers.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{uc: uc, logger: logger}
}

type playlistRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Create makes a new, empty playlist.
func (h *PlaylistHandler) Create(c echo.Context) error {
	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	playlist, err := h.uc.CreatePlaylist(c.Request().Context(), &usecase.CreatePlaylistInput{
		OwnerID:     middleware.GetUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newPlaylistResponse(playlist), "Playlist created successfully")
}

// Get returns a playlist with its videos.
func (h *PlaylistHandler) Get(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.GetPlaylist(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Playlist fetched successfully")
}

// ListByUser returns all playlists owned by the given user.
func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	ownerID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.uc.GetUserPlaylists(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistList(playlists), "Playlists fetched successfully")
}

// Fields left empty keep their current value, so no required tags here.
type updatePlaylistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Update changes the playlist's name and/or description.
func (h *PlaylistHandler) Update(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	var req updatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	input := &usecase.UpdatePlaylistInput{
		PlaylistID: playlistID,
		CallerID:   middleware.GetUserID(c),
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		input.Name = &name
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		input.Description = &description
	}
	if input.Name == nil && input.Description == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "name or description is required")
	}

	playlist, err := h.uc.UpdatePlaylist(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Playlist updated successfully")
}

// Delete removes a playlist.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlaylist(c.Request().Context(), playlistID, middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo appends a video to a playlist.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.AddVideo(c.Request().Context(), playlistID, videoID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Video added to playlist successfully")
}

// RemoveVideo removes a video from a playlist.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return err
	}
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.RemoveVideo(c.Request().Context(), playlistID, videoID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaylistResponse(playlist), "Video removed from playlist successfully")
}
