package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"upchat/internal/log"
	"upchat/internal/response"
	"upchat/internal/service"
)

// UploadHandler accepts multipart file uploads and round-trips each file
// through the cache.
type UploadHandler struct {
	uploader    service.Uploader
	maxFileSize int64
}

func NewUploadHandler(uploader service.Uploader, maxFileSize int64) *UploadHandler {
	return &UploadHandler{
		uploader:    uploader,
		maxFileSize: maxFileSize,
	}
}

// Handle processes a multipart form post. Every file part in the form is
// uploaded; a failing part fails only itself, not the request.
func (h *UploadHandler) Handle(c *gin.Context) {
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	form, err := c.MultipartForm()
	if err != nil {
		l.Warn().Err(err).Msg("failed to parse multipart form")
		response.BadRequest(c, "invalid multipart form")
		return
	}

	var results []*service.UploadResult
	var failed []string

	for _, files := range form.File {
		for _, header := range files {
			if h.maxFileSize > 0 && header.Size > h.maxFileSize {
				l.Warn().Str(log.FieldFileName, header.Filename).Int64(log.FieldFileSize, header.Size).Msg("file too large")
				failed = append(failed, header.Filename)
				continue
			}

			file, err := header.Open()
			if err != nil {
				l.Warn().Err(err).Str(log.FieldFileName, header.Filename).Msg("failed to open file part")
				failed = append(failed, header.Filename)
				continue
			}

			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				l.Warn().Err(err).Str(log.FieldFileName, header.Filename).Msg("failed to read file part")
				failed = append(failed, header.Filename)
				continue
			}

			result, err := h.uploader.RoundTrip(ctx, header.Filename, data)
			if err != nil {
				l.Error().Err(err).Str(log.FieldFileName, header.Filename).Msg("upload round trip failed")
				failed = append(failed, header.Filename)
				continue
			}
			results = append(results, result)
		}
	}

	if len(results) == 0 && len(failed) > 0 {
		response.InternalError(c, "all uploads failed")
		return
	}

	response.Success(c, gin.H{
		"uploaded": results,
		"failed":   failed,
	})
}
