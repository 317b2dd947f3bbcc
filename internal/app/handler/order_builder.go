package handler

import (
	"strings"

	"printshop/internal/app/ds"
	"printshop/internal/app/dto"
	"printshop/internal/app/form"
	"printshop/internal/app/pricing"

	"github.com/shopspring/decimal"
)

const (
	msgPaperGrade  = "Please choose a valid paper type"
	msgBinding     = "Please choose a valid binding type"
	msgCover       = "Please choose a valid cover type"
	msgCoverColor  = "Please choose a valid cover colour"
	msgExclusive   = "Please choose either a check or a removal for each service, not both"
	msgServiceType = "Unknown service type"
)

// builtOrder is a validated order ready to store, with its server-side quote.
type builtOrder struct {
	Order *ds.Order
	Quote interface{}
	Total decimal.Decimal
}

// buildOrder replays the request through the matching order form, so the
// server applies the same validation messages and prices as the forms do.
func buildOrder(req dto.CreateOrderRequest) (*builtOrder, []string) {
	base := form.Base{
		Contact: form.Contact{
			Email: strings.TrimSpace(req.ContactInfo.Email),
			Phone: strings.TrimSpace(req.ContactInfo.Phone),
		},
		Specifications: strings.TrimSpace(req.Specifications),
	}
	if req.PaymentProof != nil {
		base.SetPaymentProof(fileFromRef(*req.PaymentProof))
	}
	docs := make([]form.File, 0, len(req.Documents))
	for _, ref := range req.Documents {
		docs = append(docs, fileFromRef(ref))
	}

	var (
		built *builtOrder
		errs  []string
	)
	switch form.Kind(req.ServiceType) {
	case form.KindPrint:
		built, errs = buildPrintOrder(req, base, docs)
	case form.KindBinding:
		built, errs = buildBindingOrder(req, base, docs)
	case form.KindPlagiarism:
		built, errs = buildPlagiarismOrder(req, base, docs)
	default:
		return nil, []string{msgServiceType}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	o := built.Order
	o.ServiceType = req.ServiceType
	o.Status = ds.StatusPending
	o.TotalPrice = built.Total
	o.ContactEmail = base.Contact.Email
	o.ContactPhone = base.Contact.Phone
	o.Specifications = base.Specifications
	for _, ref := range req.Documents {
		o.Documents = append(o.Documents, ds.Document{
			Filename:     ref.Filename,
			OriginalName: ref.OriginalName,
			Size:         ref.Size,
			Type:         ref.Type,
			Pages:        ref.Pages,
		})
	}
	o.PaymentProof = ds.PaymentProof{
		Filename:     req.PaymentProof.Filename,
		OriginalName: req.PaymentProof.OriginalName,
		Size:         req.PaymentProof.Size,
		Type:         req.PaymentProof.Type,
	}
	return built, nil
}

func fileFromRef(ref dto.FileRef) form.File {
	return form.File{
		ID:    ref.Filename,
		Name:  ref.OriginalName,
		Size:  ref.Size,
		Type:  ref.Type,
		Pages: ref.Pages,
	}
}

func buildPrintOrder(req dto.CreateOrderRequest, base form.Base, docs []form.File) (*builtOrder, []string) {
	f := form.NewPrintForm()
	f.Base = base
	f.AddFiles(docs...)

	var errs []string
	if req.PaperGsm != "" {
		g, err := pricing.ParsePaperGrade(req.PaperGsm)
		if err != nil {
			errs = append(errs, msgPaperGrade)
		}
		f.Grade = g
	}
	if req.ColorOption != "" {
		f.ColorOption = form.ColorOption(req.ColorOption)
	}
	f.SetPages(req.BWPages, req.ColorPages)
	f.SetCopies(req.Copies)

	errs = append(errs, f.Validate()...)
	if len(errs) > 0 {
		return nil, errs
	}

	p := f.Pricing()
	return &builtOrder{
		Order: &ds.Order{
			BWPages:     f.BWPages,
			ColorPages:  f.ColorPages,
			Copies:      f.Copies,
			PaperGrade:  string(f.Grade),
			ColorOption: string(f.ColorOption),
			TotalPages:  p.Pages.TotalPages,
			PrintPrice:  p.PrintPrice,
		},
		Quote: dto.NewPrintQuote(*p),
		Total: p.TotalPrice,
	}, nil
}

func buildBindingOrder(req dto.CreateOrderRequest, base form.Base, docs []form.File) (*builtOrder, []string) {
	f := form.NewBindingForm()
	f.Base = base
	_, errs := f.AddDocuments(docs...)

	if req.PaperGsm != "" {
		g, err := pricing.ParsePaperGrade(req.PaperGsm)
		if err != nil {
			errs = append(errs, msgPaperGrade)
		}
		f.Grade = g
	}
	if req.ColorOption != "" {
		f.ColorOption = form.ColorOption(req.ColorOption)
	}
	if req.BindingType != "" {
		b, err := pricing.ParseBindingType(req.BindingType)
		if err != nil {
			errs = append(errs, msgBinding)
		}
		f.SetBinding(b)
	}
	if req.CoverType != "" && f.Binding.IsHard() {
		cv, err := pricing.ParseCoverType(req.CoverType)
		if err != nil {
			errs = append(errs, msgCover)
		}
		f.Cover = cv
	}
	if req.CoverColor != "" && f.Binding.IsHard() {
		if !form.ValidCoverColor(req.CoverColor) {
			errs = append(errs, msgCoverColor)
		}
		f.CoverColor = req.CoverColor
	}
	f.SetPages(req.BWPages, req.ColorPages)
	f.SetCopies(req.Copies)

	errs = append(errs, f.Validate()...)
	if len(errs) > 0 {
		return nil, errs
	}

	p := f.Pricing()
	order := &ds.Order{
		BWPages:      f.BWPages,
		ColorPages:   f.ColorPages,
		Copies:       f.Copies,
		PaperGrade:   string(f.Grade),
		ColorOption:  string(f.ColorOption),
		BindingType:  string(f.Binding),
		CoverType:    string(pricing.EffectiveCover(f.Binding, f.Cover)),
		TotalPages:   p.Pages.TotalPages,
		PrintPrice:   p.PrintPrice,
		BindingPrice: p.BindingPrice,
		CoverPrice:   p.CoverPrice,
	}
	if f.Binding.IsHard() {
		order.CoverColor = f.CoverColor
	}
	return &builtOrder{Order: order, Quote: dto.NewBindingQuote(*p), Total: p.TotalPrice}, nil
}

func buildPlagiarismOrder(req dto.CreateOrderRequest, base form.Base, docs []form.File) (*builtOrder, []string) {
	f := form.NewPlagiarismForm()
	f.Base = base
	f.AddFiles(docs...)
	if req.Services != nil {
		f.Services = *req.Services
	}

	var errs []string
	if !f.Services.Exclusive() {
		errs = append(errs, msgExclusive)
	}
	errs = append(errs, f.Validate()...)
	if len(errs) > 0 {
		return nil, errs
	}

	p := f.Pricing()
	return &builtOrder{
		Order: &ds.Order{
			Services:     f.Services.String(),
			IsAIService:  f.Services.IsAIService(),
			PageTier:     string(p.Tier),
			TotalPages:   p.TotalPages,
			ServicePrice: p.ServicePrice,
		},
		Quote: dto.NewPlagiarismQuote(*p),
		Total: p.TotalPrice,
	}, nil
}
