// Package pricing holds the shop's rate tables and the three order
// calculators. Every function here is pure: the same input always yields
// the same breakdown.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PageDetails are the page counts of an order, already multiplied by copies.
type PageDetails struct {
	TotalPages int `json:"totalPages"`
	BWPages    int `json:"bwPages"`
	ColorPages int `json:"colorPages"`
}

// ============ Print ============

type PrintInput struct {
	BWPages    int
	ColorPages int
	Copies     int
	Grade      PaperGrade
}

type PrintBreakdown struct {
	BWPrice    decimal.Decimal
	ColorPrice decimal.Decimal
	PrintPrice decimal.Decimal
	TotalPrice decimal.Decimal
	Pages      PageDetails
}

// Print prices black-and-white and colour pages on the chosen paper.
func Print(in PrintInput) PrintBreakdown {
	bw, color, copies := nonNegative(in.BWPages), nonNegative(in.ColorPages), nonNegative(in.Copies)
	rate := in.Grade.Rate()
	n := decimal.NewFromInt(int64(copies))

	bwPrice := rate.BW.Mul(decimal.NewFromInt(int64(bw))).Mul(n)
	colorPrice := rate.Color.Mul(decimal.NewFromInt(int64(color))).Mul(n)
	printPrice := bwPrice.Add(colorPrice)

	return PrintBreakdown{
		BWPrice:    bwPrice,
		ColorPrice: colorPrice,
		PrintPrice: printPrice,
		TotalPrice: printPrice,
		Pages: PageDetails{
			TotalPages: (bw + color) * copies,
			BWPages:    bw * copies,
			ColorPages: color * copies,
		},
	}
}

// ============ Binding ============

type BindingInput struct {
	Print   PrintInput
	Binding BindingType
	Cover   CoverType
}

type BindingBreakdown struct {
	PrintPrice   decimal.Decimal
	BindingPrice decimal.Decimal
	CoverPrice   decimal.Decimal
	TotalPrice   decimal.Decimal
	Pages        PageDetails
}

// EffectiveCover is the cover that is actually priced: only hard bindings take one.
func EffectiveCover(b BindingType, c CoverType) CoverType {
	if !b.IsHard() || c == "" {
		return CoverNone
	}
	return c
}

// Binding prices the printing plus binding and cover per copy.
func Binding(in BindingInput) BindingBreakdown {
	p := Print(in.Print)
	n := decimal.NewFromInt(int64(nonNegative(in.Print.Copies)))

	bindingPrice := in.Binding.Rate().Mul(n)
	coverPrice := EffectiveCover(in.Binding, in.Cover).Rate().Mul(n)

	return BindingBreakdown{
		PrintPrice:   p.PrintPrice,
		BindingPrice: bindingPrice,
		CoverPrice:   coverPrice,
		TotalPrice:   p.PrintPrice.Add(bindingPrice).Add(coverPrice),
		Pages:        p.Pages,
	}
}

// ============ Plagiarism ============

type PlagiarismInput struct {
	TotalPages int
	Services   Selection
}

type ServiceLine struct {
	Service Service
	Label   string
	Price   decimal.Decimal
}

type PlagiarismBreakdown struct {
	Tier         PageTier
	TotalPages   int
	Lines        []ServiceLine
	ServicePrice decimal.Decimal
	TotalPrice   decimal.Decimal
}

// Plagiarism sums the tier fee of every selected service.
func Plagiarism(in PlagiarismInput) PlagiarismBreakdown {
	pages := nonNegative(in.TotalPages)
	tier := TierFor(pages)

	total := decimal.Zero
	lines := make([]ServiceLine, 0, 4)
	for _, s := range in.Services.Selected() {
		price := TierPrice(s, tier)
		total = total.Add(price)
		lines = append(lines, ServiceLine{Service: s, Label: s.Label(), Price: price})
	}

	return PlagiarismBreakdown{
		Tier:         tier,
		TotalPages:   pages,
		Lines:        lines,
		ServicePrice: total,
		TotalPrice:   total,
	}
}

// Summary renders the lines the way the order form shows them ("Plagiarism Check: ₹399").
func (b PlagiarismBreakdown) Summary() []string {
	out := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		out[i] = fmt.Sprintf("%s: %s", l.Label, Rupees(l.Price))
	}
	return out
}

// Rupees formats an amount the way the site prints prices: no trailing zeros.
func Rupees(d decimal.Decimal) string {
	return "₹" + d.String()
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
