package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Service is one of the independently selectable plagiarism services.
type Service string

const (
	PlagiarismCheck   Service = "plagiarismCheck"
	PlagiarismRemoval Service = "plagiarismRemoval"
	AICheck           Service = "aiCheck"
	AIRemoval         Service = "aiRemoval"
)

// PageTier is a contiguous page range with a flat fee per service.
type PageTier string

const (
	Tier1To50    PageTier = "1-50"
	Tier51To100  PageTier = "51-100"
	Tier101To150 PageTier = "101-150"
	Tier151Plus  PageTier = "151+"
)

var (
	services = []Service{PlagiarismCheck, PlagiarismRemoval, AICheck, AIRemoval}
	tiers    = []PageTier{Tier1To50, Tier51To100, Tier101To150, Tier151Plus}
)

var serviceLabels = map[Service]string{
	PlagiarismCheck:   "Plagiarism Check",
	PlagiarismRemoval: "Plagiarism Removal",
	AICheck:           "AI Content Check",
	AIRemoval:         "AI Content Removal",
}

func flatFees(a, b, c, d int64) map[PageTier]decimal.Decimal {
	return map[PageTier]decimal.Decimal{
		Tier1To50:    decimal.NewFromInt(a),
		Tier51To100:  decimal.NewFromInt(b),
		Tier101To150: decimal.NewFromInt(c),
		Tier151Plus:  decimal.NewFromInt(d),
	}
}

var servicePrices = map[Service]map[PageTier]decimal.Decimal{
	PlagiarismCheck:   flatFees(399, 699, 1099, 1499),
	PlagiarismRemoval: flatFees(899, 1699, 2099, 2499),
	AICheck:           flatFees(399, 699, 1099, 1499),
	AIRemoval:         flatFees(899, 1699, 2099, 2499),
}

func (s Service) Valid() bool {
	_, ok := servicePrices[s]
	return ok
}

// Label is the customer facing name used in summaries.
func (s Service) Label() string {
	if l, ok := serviceLabels[s]; ok {
		return l
	}
	return string(s)
}

// counterpart returns the other half of the {check, removal} pair of the same category.
func (s Service) counterpart() Service {
	switch s {
	case PlagiarismCheck:
		return PlagiarismRemoval
	case PlagiarismRemoval:
		return PlagiarismCheck
	case AICheck:
		return AIRemoval
	case AIRemoval:
		return AICheck
	}
	return ""
}

func ParseService(s string) (Service, error) {
	trimmed := strings.TrimSpace(s)
	for _, svc := range services {
		if strings.EqualFold(trimmed, string(svc)) {
			return svc, nil
		}
	}
	return "", fmt.Errorf("unknown plagiarism service %q", s)
}

// Services lists all plagiarism services in display order.
func Services() []Service {
	return append([]Service(nil), services...)
}

// Tiers lists all page tiers in ascending order.
func Tiers() []PageTier {
	return append([]PageTier(nil), tiers...)
}

// TierFor maps a total page count to its tier. Boundaries are inclusive on
// the upper end: 50 is "1-50", 51 is "51-100".
func TierFor(pages int) PageTier {
	switch {
	case pages > 150:
		return Tier151Plus
	case pages > 100:
		return Tier101To150
	case pages > 50:
		return Tier51To100
	default:
		return Tier1To50
	}
}

// TierPrice is the flat fee of a service for a tier; zero for unknown keys.
func TierPrice(s Service, t PageTier) decimal.Decimal {
	return servicePrices[s][t]
}

// ============ Selection ============

// Selection is the set of chosen plagiarism services.
type Selection struct {
	PlagiarismCheck   bool `json:"plagiarismCheck"`
	PlagiarismRemoval bool `json:"plagiarismRemoval"`
	AICheck           bool `json:"aiCheck"`
	AIRemoval         bool `json:"aiRemoval"`
}

// DefaultSelection is what a fresh plagiarism form starts with.
func DefaultSelection() Selection {
	return Selection{PlagiarismCheck: true}
}

// SelectionOf builds a selection from a list of services.
func SelectionOf(svcs ...Service) Selection {
	var sel Selection
	for _, s := range svcs {
		sel.set(s, true)
	}
	return sel
}

func (sel Selection) Has(s Service) bool {
	switch s {
	case PlagiarismCheck:
		return sel.PlagiarismCheck
	case PlagiarismRemoval:
		return sel.PlagiarismRemoval
	case AICheck:
		return sel.AICheck
	case AIRemoval:
		return sel.AIRemoval
	}
	return false
}

func (sel *Selection) set(s Service, v bool) {
	switch s {
	case PlagiarismCheck:
		sel.PlagiarismCheck = v
	case PlagiarismRemoval:
		sel.PlagiarismRemoval = v
	case AICheck:
		sel.AICheck = v
	case AIRemoval:
		sel.AIRemoval = v
	}
}

// Any reports whether at least one service is selected.
func (sel Selection) Any() bool {
	return sel.PlagiarismCheck || sel.PlagiarismRemoval || sel.AICheck || sel.AIRemoval
}

// IsAIService reports whether any AI content service is selected.
func (sel Selection) IsAIService() bool {
	return sel.AICheck || sel.AIRemoval
}

// Selected returns the chosen services in display order.
func (sel Selection) Selected() []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		if sel.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (sel Selection) String() string {
	names := make([]string, 0, 4)
	for _, s := range sel.Selected() {
		names = append(names, string(s))
	}
	return strings.Join(names, ",")
}

// Toggle applies one checkbox change. Checking a service clears its
// counterpart in the same category. A change that would leave nothing
// selected is rejected: the original selection is returned with false.
func (sel Selection) Toggle(s Service, checked bool) (Selection, bool) {
	if !s.Valid() {
		return sel, false
	}

	next := sel
	next.set(s, checked)
	if checked {
		next.set(s.counterpart(), false)
	}

	if !next.Any() {
		return sel, false
	}
	return next, true
}

// Exclusive reports whether no check is selected together with its removal.
func (sel Selection) Exclusive() bool {
	return !(sel.PlagiarismCheck && sel.PlagiarismRemoval) && !(sel.AICheck && sel.AIRemoval)
}
