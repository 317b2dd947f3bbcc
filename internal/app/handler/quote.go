package handler

import (
	"net/http"

	"printshop/internal/app/dto"
	"printshop/internal/app/form"
	"printshop/internal/app/pricing"

	"github.com/gin-gonic/gin"
)

func printInput(req dto.PrintQuoteRequest, defaultGrade pricing.PaperGrade) pricing.PrintInput {
	grade := defaultGrade
	if req.PaperGsm != "" {
		// already checked by the paper_grade binding rule
		grade, _ = pricing.ParsePaperGrade(req.PaperGsm)
	}
	copies := req.Copies
	if copies < 1 {
		copies = 1
	}
	return pricing.PrintInput{
		BWPages:    req.BWPages,
		ColorPages: req.ColorPages,
		Copies:     copies,
		Grade:      grade,
	}
}

// QuotePrint prices a print job
// @Summary Quote a print order
// @Description Returns the price breakdown, or null pricing when there are no pages
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.PrintQuoteRequest true "Print options"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quote/print [post]
func (h *APIHandler) QuotePrint(c *gin.Context) {
	var req dto.PrintQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}

	if req.BWPages+req.ColorPages == 0 {
		c.JSON(http.StatusOK, dto.QuoteResponse{})
		return
	}
	b := pricing.Print(printInput(req, pricing.PaperNormal))
	c.JSON(http.StatusOK, dto.QuoteResponse{Pricing: dto.NewPrintQuote(b)})
}

// QuoteBinding prices a binding job
// @Summary Quote a binding order
// @Description Printing plus binding plus cover; cover only applies to hard bindings
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.BindingQuoteRequest true "Binding options"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quote/binding [post]
func (h *APIHandler) QuoteBinding(c *gin.Context) {
	var req dto.BindingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}

	if req.BWPages+req.ColorPages == 0 {
		c.JSON(http.StatusOK, dto.QuoteResponse{})
		return
	}

	in := pricing.BindingInput{
		Print:   printInput(req.PrintQuoteRequest, pricing.Paper80GSM),
		Binding: pricing.BindingHardNormal,
		Cover:   pricing.CoverNone,
	}
	if req.BindingType != "" {
		in.Binding, _ = pricing.ParseBindingType(req.BindingType)
	}
	if req.CoverType != "" {
		in.Cover, _ = pricing.ParseCoverType(req.CoverType)
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Pricing: dto.NewBindingQuote(pricing.Binding(in))})
}

// QuotePlagiarism prices a plagiarism or AI content job
// @Summary Quote a plagiarism order
// @Description Flat fee per selected service for the page tier of the total page count
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.PlagiarismQuoteRequest true "Pages and services"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quote/plagiarism [post]
func (h *APIHandler) QuotePlagiarism(c *gin.Context) {
	var req dto.PlagiarismQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}

	var errs []string
	if !req.Services.Any() {
		errs = append(errs, "Please select at least one service")
	}
	if !req.Services.Exclusive() {
		errs = append(errs, msgExclusive)
	}
	if len(errs) > 0 {
		validationResponse(c, errs)
		return
	}

	if req.TotalPages == 0 {
		c.JSON(http.StatusOK, dto.QuoteResponse{})
		return
	}
	b := pricing.Plagiarism(pricing.PlagiarismInput{TotalPages: req.TotalPages, Services: req.Services})
	c.JSON(http.StatusOK, dto.QuoteResponse{Pricing: dto.NewPlagiarismQuote(b)})
}

// ToggleService applies one checkbox change to a plagiarism service selection
// @Summary Toggle a plagiarism service
// @Description Checking a service clears its counterpart; clearing the last service is rejected
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.ToggleServiceRequest true "Current selection and change"
// @Success 200 {object} dto.ToggleServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/plagiarism/services/toggle [post]
func (h *APIHandler) ToggleService(c *gin.Context) {
	var req dto.ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationResponse(c, bindingMessages(err))
		return
	}

	svc, err := pricing.ParseService(req.Service)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "Unknown service")
		return
	}

	next, accepted := req.Services.Toggle(svc, req.Checked)
	c.JSON(http.StatusOK, dto.ToggleServiceResponse{Services: next, Accepted: accepted})
}

// GetPricing returns the price list
// @Summary Price list
// @Tags Quotes
// @Produce json
// @Success 200 {object} dto.RateTablesResponse
// @Router /api/pricing [get]
func (h *APIHandler) GetPricing(c *gin.Context) {
	t := pricing.Tables()

	resp := dto.RateTablesResponse{CoverColors: form.CoverColors()}
	for _, row := range t.Paper {
		resp.Paper = append(resp.Paper, dto.PaperRateResponse{
			Grade: string(row.Grade),
			BW:    row.BW.InexactFloat64(),
			Color: row.Color.InexactFloat64(),
		})
	}
	for _, row := range t.Binding {
		resp.Binding = append(resp.Binding, dto.FlatRateResponse{Key: string(row.Key), Price: row.Price.InexactFloat64()})
	}
	for _, row := range t.Cover {
		resp.Cover = append(resp.Cover, dto.FlatRateResponse{Key: string(row.Key), Price: row.Price.InexactFloat64()})
	}
	for _, row := range t.Plagiarism {
		svc := dto.ServiceRateResponse{Service: string(row.Service), Label: row.Label}
		for _, tier := range row.Prices {
			svc.Tiers = append(svc.Tiers, dto.FlatRateResponse{Key: string(tier.Key), Price: tier.Price.InexactFloat64()})
		}
		resp.Plagiarism = append(resp.Plagiarism, svc)
	}
	c.JSON(http.StatusOK, resp)
}
