package pricing

import "github.com/shopspring/decimal"

type PaperRow struct {
	Grade PaperGrade
	BW    decimal.Decimal
	Color decimal.Decimal
}

type FlatRow[K ~string] struct {
	Key   K
	Price decimal.Decimal
}

type ServiceTierRow struct {
	Service Service
	Label   string
	Prices  []FlatRow[PageTier]
}

// RateTables is the full price list as shown on the pricing page.
type RateTables struct {
	Paper      []PaperRow
	Binding    []FlatRow[BindingType]
	Cover      []FlatRow[CoverType]
	Plagiarism []ServiceTierRow
}

func Tables() RateTables {
	t := RateTables{}
	for _, g := range paperGrades {
		r := g.Rate()
		t.Paper = append(t.Paper, PaperRow{Grade: g, BW: r.BW, Color: r.Color})
	}
	for _, b := range bindingTypes {
		t.Binding = append(t.Binding, FlatRow[BindingType]{Key: b, Price: b.Rate()})
	}
	for _, c := range coverTypes {
		t.Cover = append(t.Cover, FlatRow[CoverType]{Key: c, Price: c.Rate()})
	}
	for _, s := range services {
		row := ServiceTierRow{Service: s, Label: s.Label()}
		for _, tier := range tiers {
			row.Prices = append(row.Prices, FlatRow[PageTier]{Key: tier, Price: TierPrice(s, tier)})
		}
		t.Plagiarism = append(t.Plagiarism, row)
	}
	return t
}
