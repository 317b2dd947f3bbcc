package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"printshop/internal/app/dto"
	"printshop/internal/app/form"
	"printshop/internal/app/middleware"
	"printshop/internal/app/storage"

	"github.com/gin-gonic/gin"
)

const (
	purposeDoc     = "doc"
	purposePayment = "payment"

	sniffLen = 512
)

// parseOrderType splits an upload tag such as "binding-doc".
func parseOrderType(tag string) (form.Kind, string, bool) {
	kind, purpose, ok := strings.Cut(tag, "-")
	if !ok || !form.Kind(kind).Valid() {
		return "", "", false
	}
	if purpose != purposeDoc && purpose != purposePayment {
		return "", "", false
	}
	return form.Kind(kind), purpose, true
}

// Upload stores one document or payment proof
// @Summary Upload a file
// @Description Stores a document or payment proof and returns the generated file name
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param orderType formData string true "print-doc, binding-payment, ..."
// @Param contactEmail formData string false "Contact email"
// @Param contactPhone formData string false "Contact phone"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/upload [post]
func (h *APIHandler) Upload(c *gin.Context) {
	maxBytes := h.Config.MaxUploadBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+1<<20)

	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorResponse(c, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		errorResponse(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if file.Size > maxBytes {
		errorResponse(c, http.StatusRequestEntityTooLarge, "File is too large")
		return
	}

	orderType := c.PostForm("orderType")
	kind, purpose, ok := parseOrderType(orderType)
	if !ok {
		errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Unknown order type %q", orderType))
		return
	}

	src, err := file.Open()
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Error reading file")
		return
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		errorResponse(c, http.StatusInternalServerError, "Error reading file")
		return
	}
	head = head[:n]

	contentType := storage.DetectType(file.Header.Get("Content-Type"), head)
	originalName := storage.SafeBase(file.Filename)

	switch {
	case purpose == purposePayment && !storage.IsImageOrPDF(contentType):
		errorResponse(c, http.StatusBadRequest, "Payment proof must be an image or a PDF")
		return
	case kind == form.KindBinding && purpose == purposeDoc && !form.IsBindableDocument(originalName):
		errorResponse(c, http.StatusBadRequest, fmt.Sprintf("File %q is not supported. Only PDF and Word files are allowed.", originalName))
		return
	}

	name := storage.NewName(orderType, c.PostForm("contactEmail"), c.PostForm("contactPhone"), originalName, h.now())

	body := io.MultiReader(bytes.NewReader(head), src)
	if err := h.Files.Save(c.Request.Context(), name.Filename, body, file.Size, contentType); err != nil {
		middleware.Logger(c).WithError(err).Error("upload failed")
		errorResponse(c, http.StatusInternalServerError, "Error uploading file")
		return
	}

	if h.Metrics != nil {
		h.Metrics.ObserveUpload(orderType, file.Size)
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Success:           true,
		Filename:          name.Filename,
		OriginalName:      originalName,
		Size:              file.Size,
		Type:              contentType,
		UploadedAt:        name.Timestamp,
		ContactIdentifier: name.ContactIdentifier,
	})
}
