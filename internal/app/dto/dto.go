package dto

import (
	"time"

	"printshop/internal/app/pricing"
)

// ============ Common ============

type ErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Uploads ============

type UploadResponse struct {
	Success           bool   `json:"success"`
	Filename          string `json:"filename"`
	OriginalName      string `json:"originalName"`
	Size              int64  `json:"size"`
	Type              string `json:"type"`
	UploadedAt        string `json:"uploadedAt"`
	ContactIdentifier string `json:"contactIdentifier"`
}

// ============ Orders ============

// FileRef points at a previously uploaded file. Pages is only used by plagiarism orders.
type FileRef struct {
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"originalName" binding:"required"`
	Size         int64  `json:"size" binding:"gte=0"`
	Type         string `json:"type"`
	Pages        int    `json:"pages,omitempty" binding:"gte=0"`
}

type ContactInfo struct {
	Email string `json:"email" binding:"omitempty,max=100,email"`
	Phone string `json:"phone" binding:"omitempty,max=30"`
}

type CreateOrderRequest struct {
	ServiceType string `json:"serviceType" binding:"required,oneof=print binding plagiarism"`

	BWPages     int    `json:"bwPages" binding:"gte=0"`
	ColorPages  int    `json:"colorPages" binding:"gte=0"`
	Copies      int    `json:"copies" binding:"gte=0"`
	PaperGsm    string `json:"paperGsm" binding:"omitempty,paper_grade"`
	ColorOption string `json:"colorOption" binding:"omitempty,oneof=detect all-bw all-color"`
	BindingType string `json:"bindingType" binding:"omitempty,binding_type"`
	CoverType   string `json:"coverType" binding:"omitempty,cover_type"`
	CoverColor  string `json:"coverColor"`

	Services *pricing.Selection `json:"services,omitempty"`

	// Figures the form showed the customer. The server prices the order itself.
	TotalPages int      `json:"totalPages,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`

	Documents      []FileRef   `json:"documents" binding:"dive"`
	PaymentProof   *FileRef    `json:"paymentProof"`
	ContactInfo    ContactInfo `json:"contactInfo"`
	Specifications string      `json:"specifications" binding:"max=5000"`
}

type CreateOrderResponse struct {
	Success   bool        `json:"success"`
	OrderID   uint        `json:"orderId"`
	Reference string      `json:"reference"`
	Pricing   interface{} `json:"pricing,omitempty"`
}

type DocumentResponse struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	Type         string `json:"type"`
	Pages        int    `json:"pages,omitempty"`
}

type OrderResponse struct {
	ID             uint               `json:"id"`
	Reference      string             `json:"reference"`
	ServiceType    string             `json:"serviceType"`
	Status         string             `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	BWPages        int                `json:"bwPages,omitempty"`
	ColorPages     int                `json:"colorPages,omitempty"`
	Copies         int                `json:"copies,omitempty"`
	PaperGsm       string             `json:"paperGsm,omitempty"`
	ColorOption    string             `json:"colorOption,omitempty"`
	BindingType    string             `json:"bindingType,omitempty"`
	CoverType      string             `json:"coverType,omitempty"`
	CoverColor     string             `json:"coverColor,omitempty"`
	Services       []string           `json:"services,omitempty"`
	IsAIService    bool               `json:"isAiService"`
	PageRange      string             `json:"pageRange,omitempty"`
	TotalPages     int                `json:"totalPages"`
	PrintPrice     float64            `json:"printPrice"`
	BindingPrice   float64            `json:"bindingPrice"`
	CoverPrice     float64            `json:"coverPrice"`
	ServicePrice   float64            `json:"servicePrice"`
	TotalPrice     float64            `json:"totalPrice"`
	ContactInfo    ContactInfo        `json:"contactInfo"`
	Specifications string             `json:"specifications,omitempty"`
	Documents      []DocumentResponse `json:"documents,omitempty"`
	PaymentProof   *DocumentResponse  `json:"paymentProof,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

// ============ Quotes ============

type PrintQuoteRequest struct {
	BWPages    int    `json:"bwPages" binding:"gte=0"`
	ColorPages int    `json:"colorPages" binding:"gte=0"`
	Copies     int    `json:"copies" binding:"gte=0"`
	PaperGsm   string `json:"paperGsm" binding:"omitempty,paper_grade"`
}

type BindingQuoteRequest struct {
	PrintQuoteRequest
	BindingType string `json:"bindingType" binding:"omitempty,binding_type"`
	CoverType   string `json:"coverType" binding:"omitempty,cover_type"`
}

type PlagiarismQuoteRequest struct {
	TotalPages int               `json:"totalPages" binding:"gte=0"`
	Services   pricing.Selection `json:"services"`
}

type ToggleServiceRequest struct {
	Services pricing.Selection `json:"services"`
	Service  string            `json:"service" binding:"required"`
	Checked  bool              `json:"checked"`
}

type ToggleServiceResponse struct {
	Services pricing.Selection `json:"services"`
	Accepted bool              `json:"accepted"`
}

// QuoteResponse carries a breakdown, or null when there is nothing to price.
type QuoteResponse struct {
	Pricing interface{} `json:"pricing"`
}

type PrintQuote struct {
	BWPrice     float64             `json:"bwPrice"`
	ColorPrice  float64             `json:"colorPrice"`
	PrintPrice  float64             `json:"printPrice"`
	TotalPrice  float64             `json:"totalPrice"`
	PageDetails pricing.PageDetails `json:"pageDetails"`
}

type BindingQuote struct {
	PrintPrice   float64             `json:"printPrice"`
	BindingPrice float64             `json:"bindingPrice"`
	CoverPrice   float64             `json:"coverPrice"`
	TotalPrice   float64             `json:"totalPrice"`
	PageDetails  pricing.PageDetails `json:"pageDetails"`
}

type PlagiarismPageDetails struct {
	TotalPages int    `json:"totalPages"`
	PageRange  string `json:"pageRange"`
}

type PlagiarismQuote struct {
	ServicePrice   float64               `json:"servicePrice"`
	TotalPrice     float64               `json:"totalPrice"`
	PageDetails    PlagiarismPageDetails `json:"pageDetails"`
	ServiceSummary []string              `json:"serviceSummary"`
}

func NewPrintQuote(b pricing.PrintBreakdown) PrintQuote {
	return PrintQuote{
		BWPrice:     b.BWPrice.InexactFloat64(),
		ColorPrice:  b.ColorPrice.InexactFloat64(),
		PrintPrice:  b.PrintPrice.InexactFloat64(),
		TotalPrice:  b.TotalPrice.InexactFloat64(),
		PageDetails: b.Pages,
	}
}

func NewBindingQuote(b pricing.BindingBreakdown) BindingQuote {
	return BindingQuote{
		PrintPrice:   b.PrintPrice.InexactFloat64(),
		BindingPrice: b.BindingPrice.InexactFloat64(),
		CoverPrice:   b.CoverPrice.InexactFloat64(),
		TotalPrice:   b.TotalPrice.InexactFloat64(),
		PageDetails:  b.Pages,
	}
}

func NewPlagiarismQuote(b pricing.PlagiarismBreakdown) PlagiarismQuote {
	return PlagiarismQuote{
		ServicePrice: b.ServicePrice.InexactFloat64(),
		TotalPrice:   b.TotalPrice.InexactFloat64(),
		PageDetails: PlagiarismPageDetails{
			TotalPages: b.TotalPages,
			PageRange:  string(b.Tier),
		},
		ServiceSummary: b.Summary(),
	}
}

// ============ Price list ============

type PaperRateResponse struct {
	Grade string  `json:"grade"`
	BW    float64 `json:"bw"`
	Color float64 `json:"color"`
}

type FlatRateResponse struct {
	Key   string  `json:"key"`
	Price float64 `json:"price"`
}

type ServiceRateResponse struct {
	Service string             `json:"service"`
	Label   string             `json:"label"`
	Tiers   []FlatRateResponse `json:"tiers"`
}

type RateTablesResponse struct {
	Paper       []PaperRateResponse   `json:"paper"`
	Binding     []FlatRateResponse    `json:"binding"`
	Cover       []FlatRateResponse    `json:"cover"`
	Plagiarism  []ServiceRateResponse `json:"plagiarism"`
	CoverColors []string              `json:"coverColors"`
}

// ============ Contact ============

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type ContactResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
	MailtoURL   string `json:"mailtoUrl"`
}

// ============ Staff ============

type StaffResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresIn int           `json:"expires_in"`
	Staff     StaffResponse `json:"staff"`
}

type CreateStaffRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required"`
	Admin    bool   `json:"admin"`
}
