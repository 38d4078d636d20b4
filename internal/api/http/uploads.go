package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pro6vastgoed/cms-backend/internal/upload"
)

// Upload accepts one multipart file, validates it and stores it. The failure
// class is visible in the status code: 415 for a type outside the allow-list,
// 413 for an oversized payload, 500 only when storage itself failed.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	result, err := h.uploads.Process(c.Request.Context(), fileHeader.Filename, mimeType, fileHeader.Size, f)
	if err != nil {
		var tooLarge *upload.TooLargeError
		switch {
		case errors.Is(err, upload.ErrUnsupportedType):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": tooLarge.Error()})
		default:
			log.Printf("upload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

type deleteFileRequest struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// DeleteFile removes a blob and, when an id is given, its media record. The
// blob delete is best-effort: a storage failure is logged and the response
// still reports success so the metadata cleanup can proceed. The nightly
// sweep reports any resulting orphans.
func (h *Handler) DeleteFile(c *gin.Context) {
	var req deleteFileRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if err := h.blobs.Delete(c.Request.Context(), req.URL); err != nil {
		log.Printf("blob delete failed for %s: %v", req.URL, err)
	}

	if req.ID != "" {
		if err := h.media.Delete(c.Request.Context(), req.ID); err != nil {
			storeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) BlobFiles(c *gin.Context) {
	files, err := h.blobs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list files"})
		return
	}
	c.JSON(http.StatusOK, files)
}

// StorageUsage totals the stored blobs against the plan quota.
func (h *Handler) StorageUsage(c *gin.Context) {
	files, err := h.blobs.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list files"})
		return
	}

	var used int64
	for _, f := range files {
		used += f.Size
	}
	quotaBytes := int64(h.quotaMB) << 20

	var percent float64
	if quotaBytes > 0 {
		percent = float64(used) / float64(quotaBytes) * 100
	}

	c.JSON(http.StatusOK, gin.H{
		"usedBytes":  used,
		"quotaBytes": quotaBytes,
		"quotaMB":    h.quotaMB,
		"percent":    percent,
		"files":      len(files),
	})
}
