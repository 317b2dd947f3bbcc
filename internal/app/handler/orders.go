package handler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"printshop/internal/app/ds"
	"printshop/internal/app/dto"
	"printshop/internal/app/form"
	"printshop/internal/app/middleware"
	"printshop/internal/app/repository"
	"printshop/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var referencePrefix = map[string]string{
	string(form.KindPrint):      "PO",
	string(form.KindBinding):    "BO",
	string(form.KindPlagiarism): "PL",
}

// newReference builds a customer facing order number such as "BO-12345678-042".
func newReference(serviceType string, now time.Time) string {
	return fmt.Sprintf("%s-%08d-%03d", referencePrefix[serviceType], now.UnixMilli()%100_000_000, rand.IntN(1000))
}

// CreateOrder stores an order for previously uploaded files
// @Summary Create an order
// @Description Validates the order, prices it and stores it with its documents and payment proof
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} dto.CreateOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}

	built, errs := buildOrder(req)
	if len(errs) > 0 {
		validationResponse(c, errs)
		return
	}
	order := built.Order

	for _, name := range referencedFiles(order) {
		ok, err := h.Files.Exists(c.Request.Context(), name)
		if errors.Is(err, storage.ErrInvalidName) {
			validationResponse(c, []string{fmt.Sprintf("Uploaded file %q has an invalid name", name)})
			return
		}
		if err != nil {
			middleware.Logger(c).WithError(err).Error("file lookup failed")
			errorResponse(c, http.StatusInternalServerError, "Error creating order")
			return
		}
		if !ok {
			validationResponse(c, []string{fmt.Sprintf("Uploaded file %q was not found, please upload it again", name)})
			return
		}
	}

	if req.TotalPrice != nil && !decimal.NewFromFloat(*req.TotalPrice).Equal(built.Total) {
		middleware.Logger(c).WithFields(logrus.Fields{
			"client_total": *req.TotalPrice,
			"server_total": built.Total.String(),
		}).Warn("client total differs, storing the server price")
	}

	if err := h.createWithReference(c, order); err != nil {
		middleware.Logger(c).WithError(err).Error("create order failed")
		errorResponse(c, http.StatusInternalServerError, "Error creating order")
		return
	}

	if h.Metrics != nil {
		h.Metrics.ObserveOrder(order.ServiceType, order.TotalPrice.InexactFloat64())
	}
	middleware.Logger(c).WithField("reference", order.Reference).Info("order created")

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success:   true,
		OrderID:   order.ID,
		Reference: order.Reference,
		Pricing:   built.Quote,
	})
}

// createWithReference stores the order, drawing a fresh reference once if the
// first one is already taken.
func (h *APIHandler) createWithReference(c *gin.Context, order *ds.Order) error {
	order.Reference = newReference(order.ServiceType, h.now())
	err := h.Orders.CreateOrder(c.Request.Context(), order)
	if !errors.Is(err, repository.ErrAlreadyExists) {
		return err
	}

	middleware.Logger(c).WithField("reference", order.Reference).Warn("order reference taken, retrying")
	order.Reference = newReference(order.ServiceType, h.now())
	return h.Orders.CreateOrder(c.Request.Context(), order)
}

func referencedFiles(o *ds.Order) []string {
	names := make([]string, 0, len(o.Documents)+1)
	for _, d := range o.Documents {
		names = append(names, d.Filename)
	}
	return append(names, o.PaymentProof.Filename)
}

// GetOrders lists orders for staff
// @Summary List orders
// @Description Newest first, optionally filtered by service type
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param service_type query string false "print, binding or plagiarism"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.OrderListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	filter := repository.OrderFilter{ServiceType: c.Query("service_type")}
	if filter.ServiceType != "" && !form.Kind(filter.ServiceType).Valid() {
		errorResponse(c, http.StatusBadRequest, "Unknown service type")
		return
	}
	for key, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		if v := c.Query(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", key))
				return
			}
			*dst = n
		}
	}

	orders, total, err := h.Orders.ListOrders(c.Request.Context(), filter)
	if err != nil {
		middleware.Logger(c).WithError(err).Error("list orders failed")
		errorResponse(c, http.StatusInternalServerError, "Error loading orders")
		return
	}

	resp := dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders)), Total: total}
	for i := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrder returns one order
// @Summary Get an order by ID
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *APIHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		errorResponse(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.Orders.GetOrderByID(c.Request.Context(), uint(id))
	h.writeOrder(c, order, err)
}

// GetOrderByReference returns one order by its customer facing number
// @Summary Get an order by reference
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Order reference, e.g. BO-12345678-042"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/ref/{reference} [get]
func (h *APIHandler) GetOrderByReference(c *gin.Context) {
	order, err := h.Orders.GetOrderByReference(c.Request.Context(), strings.ToUpper(c.Param("reference")))
	h.writeOrder(c, order, err)
}

func (h *APIHandler) writeOrder(c *gin.Context, order *ds.Order, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		errorResponse(c, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		middleware.Logger(c).WithError(err).Error("get order failed")
		errorResponse(c, http.StatusInternalServerError, "Error loading order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func toOrderResponse(o *ds.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:             o.ID,
		Reference:      o.Reference,
		ServiceType:    o.ServiceType,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
		BWPages:        o.BWPages,
		ColorPages:     o.ColorPages,
		Copies:         o.Copies,
		PaperGsm:       o.PaperGrade,
		ColorOption:    o.ColorOption,
		BindingType:    o.BindingType,
		CoverType:      o.CoverType,
		CoverColor:     o.CoverColor,
		IsAIService:    o.IsAIService,
		PageRange:      o.PageTier,
		TotalPages:     o.TotalPages,
		PrintPrice:     o.PrintPrice.InexactFloat64(),
		BindingPrice:   o.BindingPrice.InexactFloat64(),
		CoverPrice:     o.CoverPrice.InexactFloat64(),
		ServicePrice:   o.ServicePrice.InexactFloat64(),
		TotalPrice:     o.TotalPrice.InexactFloat64(),
		ContactInfo:    dto.ContactInfo{Email: o.ContactEmail, Phone: o.ContactPhone},
		Specifications: o.Specifications,
	}
	if o.Services != "" {
		resp.Services = strings.Split(o.Services, ",")
	}
	for _, d := range o.Documents {
		resp.Documents = append(resp.Documents, dto.DocumentResponse{
			Filename:     d.Filename,
			OriginalName: d.OriginalName,
			Size:         d.Size,
			Type:         d.Type,
			Pages:        d.Pages,
		})
	}
	if o.PaymentProof.Filename != "" {
		resp.PaymentProof = &dto.DocumentResponse{
			Filename:     o.PaymentProof.Filename,
			OriginalName: o.PaymentProof.OriginalName,
			Size:         o.PaymentProof.Size,
			Type:         o.PaymentProof.Type,
		}
	}
	return resp
}
