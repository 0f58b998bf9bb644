package api

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"whatsapp-studio/internal/template"
	"whatsapp-studio/internal/whatsapp"
)

var headerMimeTypes = map[template.HeaderFormat][]string{
	template.HeaderImage:    {"image/jpeg", "image/png"},
	template.HeaderVideo:    {"video/mp4", "video/3gpp"},
	template.HeaderDocument: {"application/pdf"},
}

type MediaHandler struct {
	Uploader template.FileUploadHost
}

func NewMediaHandler(uploader template.FileUploadHost) *MediaHandler {
	return &MediaHandler{Uploader: uploader}
}

// UploadHeaderSample accepts a multipart "file" and an optional "format"
// field, and returns the handle for the header example.
func (h *MediaHandler) UploadHeaderSample(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if format := template.HeaderFormat(strings.ToUpper(c.PostForm("format"))); format != "" {
		allowed, ok := headerMimeTypes[format]
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Header format must be IMAGE, VIDEO or DOCUMENT"})
			return
		}
		if !slices.Contains(allowed, mimeType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type " + mimeType + " for " + string(format) + " header"})
			return
		}
	}

	handle, err := h.Uploader.UploadHeaderSample(c.Request.Context(), template.MediaFile{
		Name:     header.Filename,
		MimeType: mimeType,
		Size:     header.Size,
		Content:  file,
	})
	if errors.Is(err, whatsapp.ErrSampleTooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		graphError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"handle": handle})
}
