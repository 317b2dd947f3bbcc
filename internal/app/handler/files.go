package handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"printshop/internal/app/middleware"
	"printshop/internal/app/storage"

	"github.com/gin-gonic/gin"
)

const presignTTL = 15 * time.Minute

// DownloadFile sends an uploaded file to staff
// @Summary Download an uploaded file
// @Description Redirects to a presigned link when the store supports it, otherwise streams the file
// @Tags Files
// @Produce octet-stream
// @Security BearerAuth
// @Param filename path string true "Generated file name"
// @Success 200 {file} binary
// @Success 307
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/files/{filename} [get]
func (h *APIHandler) DownloadFile(c *gin.Context) {
	name := c.Param("filename")
	ctx := c.Request.Context()

	if p, ok := h.Files.(storage.Presigner); ok {
		exists, err := h.Files.Exists(ctx, name)
		if err != nil {
			h.fileError(c, err)
			return
		}
		if !exists {
			errorResponse(c, http.StatusNotFound, "File not found")
			return
		}
		link, err := p.PresignedURL(ctx, name, presignTTL)
		if err != nil {
			h.fileError(c, err)
			return
		}
		c.Redirect(http.StatusTemporaryRedirect, link)
		return
	}

	rc, err := h.Files.Open(ctx, name)
	if err != nil {
		h.fileError(c, err)
		return
	}
	defer rc.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		h.fileError(c, err)
		return
	}
	head = head[:n]

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Header("Content-Type", storage.DetectType("", head))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, io.MultiReader(bytes.NewReader(head), rc)); err != nil {
		middleware.Logger(c).WithError(err).Warn("download interrupted")
	}
}

func (h *APIHandler) fileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		errorResponse(c, http.StatusNotFound, "File not found")
	case errors.Is(err, storage.ErrInvalidName):
		errorResponse(c, http.StatusBadRequest, "Invalid file name")
	default:
		middleware.Logger(c).WithError(err).Error("file access failed")
		errorResponse(c, http.StatusInternalServerError, "Error reading file")
	}
}
