package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"clipstream/internal/delivery/http/middleware"
	"clipstream/internal/delivery/http/response"
	domainerrors "clipstream/internal/domain/errors"
	"clipstream/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VideoHandler holds dependencies for video-related handlers.
type VideoHandler struct {
	uc     usecase.VideoUsecase
	logger *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{uc: uc, logger: logger}
}

// List returns one page of published videos.
// Query params: page, limit, query, userId, sortBy, sortType.
func (h *VideoHandler) List(c echo.Context) error {
	input := &usecase.ListVideosInput{
		Search:    strings.TrimSpace(c.QueryParam("query")),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortType"),
	}
	input.Page, _ = strconv.Atoi(c.QueryParam("page"))
	input.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	if ownerParam := c.QueryParam("userId"); ownerParam != "" {
		ownerID, err := uuid.Parse(ownerParam)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "invalid userId")
		}
		input.OwnerID = &ownerID
	}

	page, err := h.uc.ListVideos(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoPageResponse(page), "Videos fetched successfully")
}

type publishVideoRequest struct {
	Title       string  `form:"title" validate:"required"`
	Description string  `form:"description" validate:"required"`
	Duration    float64 `form:"duration"`
}

// Publish handles the video upload request. The body is multipart:
// title/description plus videoFile and thumbnail files.
func (h *VideoHandler) Publish(c echo.Context) error {
	var req publishVideoRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid video input")
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	videoFile, closeVideo, err := openUpload(c, "videoFile")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeVideo()

	thumbnail, closeThumb, err := openUpload(c, "thumbnail")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeThumb()

	video, err := h.uc.PublishVideo(c.Request().Context(), &usecase.PublishVideoInput{
		OwnerID:     middleware.GetUserID(c),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newVideoResponse(video), "Video published successfully")
}

// Get returns a single video by ID.
func (h *VideoHandler) Get(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.GetVideo(c.Request().Context(), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video), "Video fetched successfully")
}

// Update changes the video's metadata. Accepts multipart or form fields
// title/description plus an optional replacement thumbnail.
func (h *VideoHandler) Update(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	input := &usecase.UpdateVideoInput{
		VideoID:  videoID,
		CallerID: middleware.GetUserID(c),
	}
	if title := strings.TrimSpace(c.FormValue("title")); title != "" {
		input.Title = &title
	}
	if description := strings.TrimSpace(c.FormValue("description")); description != "" {
		input.Description = &description
	}

	thumbnail, closeThumb, err := openUpload(c, "thumbnail")
	if err != nil {
		return errors.WithStack(err)
	}
	defer closeThumb()
	input.Thumbnail = thumbnail

	if input.Title == nil && input.Description == nil && input.Thumbnail == nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "nothing to update")
	}

	video, err := h.uc.UpdateVideo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video), "Video updated successfully")
}

// Delete removes a video and its dependents.
func (h *VideoHandler) Delete(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVideo(c.Request().Context(), videoID, middleware.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the video's publish flag.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.TogglePublishStatus(c.Request().Context(), videoID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newVideoResponse(video), "Publish status toggled successfully")
}

// RecordView counts a view and tracks watch history for signed-in viewers.
func (h *VideoHandler) RecordView(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return err
	}

	views, err := h.uc.RecordView(c.Request().Context(), videoID, middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"views": views}, "View recorded successfully")
}

// pathUUID parses a UUID path parameter. The returned error carries a 400
// and is rendered by the error middleware.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WrapMessage("invalid " + name)
	}

	return id, nil
}
