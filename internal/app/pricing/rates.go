package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PaperGrade selects the per-page paper rate.
type PaperGrade string

const (
	PaperNormal PaperGrade = "normal"
	Paper80GSM  PaperGrade = "80"
	Paper90GSM  PaperGrade = "90"
	Paper100GSM PaperGrade = "100"
)

// BindingType selects the per-copy binding rate.
type BindingType string

const (
	BindingHardNormal BindingType = "hard-normal"
	BindingHardHigh   BindingType = "hard-high"
	BindingHardGloss  BindingType = "hard-gloss"
	BindingHardEmboss BindingType = "hard-emboss"
	BindingSoft       BindingType = "soft"
	BindingSpiral     BindingType = "spiral"
)

// CoverType selects the per-copy cover print rate (hard bindings only).
type CoverType string

const (
	CoverNone    CoverType = "none"
	CoverSimple  CoverType = "simple"
	CoverPremium CoverType = "premium"
)

// PaperRate is the price of one printed side in INR.
type PaperRate struct {
	BW    decimal.Decimal
	Color decimal.Decimal
}

// ============ Rate tables ============

var paperRates = map[PaperGrade]PaperRate{
	PaperNormal: {BW: decimal.NewFromInt(1), Color: decimal.NewFromInt(5)},
	Paper80GSM:  {BW: decimal.NewFromInt(2), Color: decimal.NewFromInt(6)},
	Paper90GSM:  {BW: decimal.RequireFromString("2.5"), Color: decimal.RequireFromString("6.5")},
	Paper100GSM: {BW: decimal.NewFromInt(3), Color: decimal.NewFromInt(7)},
}

var bindingRates = map[BindingType]decimal.Decimal{
	BindingHardNormal: decimal.NewFromInt(120),
	BindingHardHigh:   decimal.NewFromInt(220),
	BindingHardGloss:  decimal.NewFromInt(250),
	BindingHardEmboss: decimal.NewFromInt(350),
	BindingSoft:       decimal.NewFromInt(40),
	BindingSpiral:     decimal.NewFromInt(30),
}

var coverRates = map[CoverType]decimal.Decimal{
	CoverNone:    decimal.Zero,
	CoverSimple:  decimal.NewFromInt(50),
	CoverPremium: decimal.NewFromInt(150),
}

// Display order for listings.
var (
	paperGrades  = []PaperGrade{PaperNormal, Paper80GSM, Paper90GSM, Paper100GSM}
	bindingTypes = []BindingType{BindingHardNormal, BindingHardHigh, BindingHardGloss, BindingHardEmboss, BindingSoft, BindingSpiral}
	coverTypes   = []CoverType{CoverNone, CoverSimple, CoverPremium}
)

// ============ Selectors ============

func (g PaperGrade) Valid() bool {
	_, ok := paperRates[g]
	return ok
}

// Rate returns the paper rate; unknown grades price at zero.
func (g PaperGrade) Rate() PaperRate {
	r, ok := paperRates[g]
	if !ok {
		return PaperRate{BW: decimal.Zero, Color: decimal.Zero}
	}
	return r
}

func (b BindingType) Valid() bool {
	_, ok := bindingRates[b]
	return ok
}

// IsHard reports whether the binding takes a hard cover (and therefore cover options).
func (b BindingType) IsHard() bool {
	return strings.HasPrefix(string(b), "hard-")
}

// MinimumCopies is the smallest order the workshop accepts for this binding.
func (b BindingType) MinimumCopies() int {
	if b == BindingHardEmboss {
		return 4
	}
	return 1
}

func (b BindingType) Rate() decimal.Decimal {
	return bindingRates[b]
}

func (c CoverType) Valid() bool {
	_, ok := coverRates[c]
	return ok
}

func (c CoverType) Rate() decimal.Decimal {
	return coverRates[c]
}

// ParsePaperGrade accepts "normal", "80", "90", "100" and the "gsm"-suffixed forms.
func ParsePaperGrade(s string) (PaperGrade, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "gsm")
	g := PaperGrade(strings.TrimSpace(v))
	if !g.Valid() {
		return "", fmt.Errorf("unknown paper grade %q", s)
	}
	return g, nil
}

func ParseBindingType(s string) (BindingType, error) {
	b := BindingType(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("unknown binding type %q", s)
	}
	return b, nil
}

func ParseCoverType(s string) (CoverType, error) {
	c := CoverType(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CoverNone, nil
	}
	if !c.Valid() {
		return "", fmt.Errorf("unknown cover type %q", s)
	}
	return c, nil
}

// PaperGrades lists all grades in display order.
func PaperGrades() []PaperGrade {
	return append([]PaperGrade(nil), paperGrades...)
}

func BindingTypes() []BindingType {
	return append([]BindingType(nil), bindingTypes...)
}

func CoverTypes() []CoverType {
	return append([]CoverType(nil), coverTypes...)
}
