package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"product-admin/internal/logger"
	"product-admin/internal/media"
	"product-admin/internal/metrics"
)

// ImageField is the multipart field carrying the uploaded image.
const ImageField = "image"

// UploadHandler stages an uploaded image locally and forwards it to the media host.
type UploadHandler struct {
	uploader media.Uploader
	tmpDir   string
}

func NewUploadHandler(uploader media.Uploader, tmpDir string) *UploadHandler {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &UploadHandler{uploader: uploader, tmpDir: tmpDir}
}

// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile(ImageField)
	if err != nil {
		metrics.Uploads.WithLabelValues("invalid").Inc()
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	staged := filepath.Join(h.tmpDir, "upload-"+uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))
	defer removeStaged(staged)

	if err := c.SaveUploadedFile(file, staged); err != nil {
		logger.Errorf("stage upload %s: %v", file.Filename, err)
		metrics.Uploads.WithLabelValues("failed").Inc()
		fail(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	res, err := h.uploader.Upload(c.Request.Context(), staged, media.Folder)
	if err != nil {
		logger.Errorf("forward upload %s: %v", file.Filename, err)
		metrics.Uploads.WithLabelValues("failed").Inc()
		fail(c, http.StatusInternalServerError, "Upload failed")
		return
	}

	metrics.Uploads.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": res.URL, "public_id": res.PublicID})
}

func removeStaged(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("remove staged upload %s: %v", path, err)
	}
}
