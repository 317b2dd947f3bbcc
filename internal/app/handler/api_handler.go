package handler

import (
	"context"
	"net/http"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/ds"
	"printshop/internal/app/dto"
	"printshop/internal/app/metrics"
	"printshop/internal/app/middleware"
	"printshop/internal/app/repository"
	"printshop/internal/app/storage"

	"github.com/gin-gonic/gin"
)

// OrderStore is the part of the repository the order endpoints use.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *ds.Order) error
	GetOrderByID(ctx context.Context, id uint) (*ds.Order, error)
	GetOrderByReference(ctx context.Context, reference string) (*ds.Order, error)
	ListOrders(ctx context.Context, f repository.OrderFilter) ([]ds.Order, int64, error)
}

// APIHandler serves the public order intake API and the staff order views.
type APIHandler struct {
	Orders      OrderStore
	Files       storage.FileStore
	Metrics     *metrics.Metrics
	Config      *config.Config
	AuthHandler *AuthHandler

	now func() time.Time
}

func NewAPIHandler(orders OrderStore, files storage.FileStore, m *metrics.Metrics, cfg *config.Config, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Orders:      orders,
		Files:       files,
		Metrics:     m,
		Config:      cfg,
		AuthHandler: authHandler,
		now:         time.Now,
	}
}

// ============ Helpers ============

func errorResponse(c *gin.Context, statusCode int, message string) {
	if statusCode >= http.StatusInternalServerError {
		middleware.Logger(c).Error(message)
	}
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func validationResponse(c *gin.Context, errs []string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status:  "fail",
		Message: errs[0],
		Errors:  errs,
	})
}

func successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// Ping checks the API is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
