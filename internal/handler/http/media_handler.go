package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"coursehub/internal/domain/contract"
	"coursehub/internal/handler/http/dto"
)

// MediaHandler serves the raw media upload route used by the course editor.
type MediaHandler struct {
	mediaService contract.IMediaService
}

func NewMediaHandler(mediaService contract.IMediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadVideo handles POST /media/upload-video (multipart field `file`).
func (h *MediaHandler) UploadVideo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "file is required")
		return
	}

	localPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}
	defer os.Remove(localPath)

	result, err := h.mediaService.Upload(c.Request.Context(), localPath)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UploadEnvelope{
		Success: true,
		Message: "File uploaded successfully.",
		Data:    dto.UploadData{URL: result.URL, PublicID: result.PublicID},
	})
}
