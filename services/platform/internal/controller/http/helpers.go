package http

import (
	"mime/multipart"
	"strconv"

	"vidtube/pkg/apperr"
	"vidtube/pkg/middleware"
	"vidtube/services/platform/internal/entity"
	"vidtube/services/platform/internal/usecase"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// paging reads ?page and ?limit, defaulting to the first page of ten.
func paging(c *gin.Context) (int, int, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, apperr.Validation("Invalid page number")
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(entity.DefaultPageLimit)))
	if err != nil {
		return 0, 0, apperr.Validation("Invalid limit")
	}
	return page, limit, nil
}

// openMedia opens an optional multipart file. A missing field yields nil.
// The returned closer must always be called.
func openMedia(c *gin.Context, field string) (*usecase.MediaFile, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	return openHeader(header)
}

func openHeader(header *multipart.FileHeader) (*usecase.MediaFile, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, apperr.Validation("Failed to read uploaded file")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &usecase.MediaFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, func() { file.Close() }, nil
}
