package handler

import (
	"mime/multipart"
	"net/http"

	"clipstream/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// openUpload reads one multipart file field into an UploadFile. It returns
// (nil, noop, nil) when the field is absent so optional uploads stay simple.
// The returned closer must be called once the use case has consumed the file.
func openUpload(c echo.Context, field string) (*usecase.UploadFile, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, errors.Wrapf(err, "failed to read %q form file", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, noop, errors.Wrapf(err, "failed to open %q form file", field)
	}

	return &usecase.UploadFile{
		Filename:    fileHeader.Filename,
		ContentType: uploadContentType(fileHeader),
		Size:        fileHeader.Size,
		Content:     file,
	}, func() { file.Close() }, nil
}

func uploadContentType(fileHeader *multipart.FileHeader) string {
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}

	return "application/octet-stream"
}
