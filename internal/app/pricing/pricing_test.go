package pricing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func amount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestPrint_RatesPerGrade(t *testing.T) {
	tests := []struct {
		grade     PaperGrade
		bw, color string
	}{
		{PaperNormal, "1", "5"},
		{Paper80GSM, "2", "6"},
		{Paper90GSM, "2.5", "6.5"},
		{Paper100GSM, "3", "7"},
	}

	for _, tt := range tests {
		t.Run(string(tt.grade), func(t *testing.T) {
			b := Print(PrintInput{BWPages: 1, ColorPages: 0, Copies: 1, Grade: tt.grade})
			amount(t, tt.bw, b.TotalPrice)

			b = Print(PrintInput{BWPages: 0, ColorPages: 1, Copies: 1, Grade: tt.grade})
			amount(t, tt.color, b.TotalPrice)
		})
	}
}

func TestPrint_Formula(t *testing.T) {
	b := Print(PrintInput{BWPages: 3, ColorPages: 1, Copies: 2, Grade: Paper90GSM})

	want := PrintBreakdown{
		BWPrice:    decimal.NewFromInt(15),
		ColorPrice: decimal.NewFromInt(13),
		PrintPrice: decimal.NewFromInt(28),
		TotalPrice: decimal.NewFromInt(28),
		Pages:      PageDetails{TotalPages: 8, BWPages: 6, ColorPages: 2},
	}
	if diff := cmp.Diff(want, b, decimalEqual); diff != "" {
		t.Errorf("Print() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrint_ExhaustiveSmallGrid(t *testing.T) {
	for _, g := range PaperGrades() {
		r := g.Rate()
		for bw := 0; bw <= 12; bw += 3 {
			for color := 0; color <= 8; color += 4 {
				for copies := 1; copies <= 3; copies++ {
					got := Print(PrintInput{BWPages: bw, ColorPages: color, Copies: copies, Grade: g})
					n := decimal.NewFromInt(int64(copies))
					want := r.BW.Mul(decimal.NewFromInt(int64(bw))).Mul(n).
						Add(r.Color.Mul(decimal.NewFromInt(int64(color))).Mul(n))
					require.True(t, want.Equal(got.TotalPrice), "grade=%s bw=%d color=%d copies=%d", g, bw, color, copies)
				}
			}
		}
	}
}

func TestPrint_UnknownGradeIsZero(t *testing.T) {
	b := Print(PrintInput{BWPages: 10, ColorPages: 10, Copies: 1, Grade: "120"})
	assert.True(t, b.TotalPrice.IsZero())
}

func TestBinding(t *testing.T) {
	t.Run("hard emboss with premium cover", func(t *testing.T) {
		b := Binding(BindingInput{
			Print:   PrintInput{BWPages: 100, ColorPages: 4, Copies: 4, Grade: Paper80GSM},
			Binding: BindingHardEmboss,
			Cover:   CoverPremium,
		})
		// print: 100*2*4 + 4*6*4 = 896; binding: 350*4; cover: 150*4
		amount(t, "896", b.PrintPrice)
		amount(t, "1400", b.BindingPrice)
		amount(t, "600", b.CoverPrice)
		amount(t, "2896", b.TotalPrice)
		assert.Equal(t, PageDetails{TotalPages: 416, BWPages: 400, ColorPages: 16}, b.Pages)
	})

	t.Run("soft binding ignores cover", func(t *testing.T) {
		b := Binding(BindingInput{
			Print:   PrintInput{BWPages: 10, Copies: 2, Grade: PaperNormal},
			Binding: BindingSoft,
			Cover:   CoverSimple,
		})
		amount(t, "20", b.PrintPrice)
		amount(t, "80", b.BindingPrice)
		amount(t, "0", b.CoverPrice)
		amount(t, "100", b.TotalPrice)
	})

	t.Run("every binding rate", func(t *testing.T) {
		want := map[BindingType]string{
			BindingHardNormal: "120",
			BindingHardHigh:   "220",
			BindingHardGloss:  "250",
			BindingHardEmboss: "350",
			BindingSoft:       "40",
			BindingSpiral:     "30",
		}
		for bt, price := range want {
			b := Binding(BindingInput{Print: PrintInput{Copies: 1, Grade: PaperNormal}, Binding: bt, Cover: CoverNone})
			amount(t, price, b.BindingPrice)
		}
	})

	t.Run("cover rates", func(t *testing.T) {
		for cover, price := range map[CoverType]string{CoverNone: "0", CoverSimple: "50", CoverPremium: "150"} {
			b := Binding(BindingInput{Print: PrintInput{Copies: 3, Grade: PaperNormal}, Binding: BindingHardNormal, Cover: cover})
			amount(t, decimal.RequireFromString(price).Mul(decimal.NewFromInt(3)).String(), b.CoverPrice)
		}
	})
}

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		pages int
		want  PageTier
	}{
		{0, Tier1To50},
		{1, Tier1To50},
		{50, Tier1To50},
		{51, Tier51To100},
		{100, Tier51To100},
		{101, Tier101To150},
		{150, Tier101To150},
		{151, Tier151Plus},
		{10000, Tier151Plus},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pages), "pages=%d", tt.pages)
	}
}

func TestTierPrice_Table(t *testing.T) {
	want := map[Service][]int64{
		PlagiarismCheck:   {399, 699, 1099, 1499},
		PlagiarismRemoval: {899, 1699, 2099, 2499},
		AICheck:           {399, 699, 1099, 1499},
		AIRemoval:         {899, 1699, 2099, 2499},
	}
	for svc, prices := range want {
		for i, tier := range Tiers() {
			assert.True(t, decimal.NewFromInt(prices[i]).Equal(TierPrice(svc, tier)), "%s %s", svc, tier)
		}
	}
}

func TestPlagiarism(t *testing.T) {
	b := Plagiarism(PlagiarismInput{
		TotalPages: 120,
		Services:   SelectionOf(PlagiarismRemoval, AICheck),
	})

	assert.Equal(t, Tier101To150, b.Tier)
	assert.Equal(t, 120, b.TotalPages)
	amount(t, "3198", b.TotalPrice)
	amount(t, "3198", b.ServicePrice)
	assert.Equal(t, []string{
		"Plagiarism Removal: ₹2099",
		"AI Content Check: ₹1099",
	}, b.Summary())
}

func TestPlagiarism_FlatFeeNotPerPage(t *testing.T) {
	a := Plagiarism(PlagiarismInput{TotalPages: 51, Services: DefaultSelection()})
	b := Plagiarism(PlagiarismInput{TotalPages: 100, Services: DefaultSelection()})
	amount(t, "699", a.TotalPrice)
	assert.True(t, a.TotalPrice.Equal(b.TotalPrice))
}

func TestCalculators_Idempotent(t *testing.T) {
	in := BindingInput{
		Print:   PrintInput{BWPages: 7, ColorPages: 3, Copies: 5, Grade: Paper90GSM},
		Binding: BindingHardGloss,
		Cover:   CoverSimple,
	}
	first := Binding(in)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, Binding(in), decimalEqual); diff != "" {
			t.Fatalf("Binding() changed between calls:\n%s", diff)
		}
	}

	pin := PlagiarismInput{TotalPages: 77, Services: SelectionOf(PlagiarismCheck, AIRemoval)}
	pfirst := Plagiarism(pin)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(pfirst, Plagiarism(pin), decimalEqual); diff != "" {
			t.Fatalf("Plagiarism() changed between calls:\n%s", diff)
		}
	}
}

func TestSelection_Toggle(t *testing.T) {
	t.Run("removal clears check in same category", func(t *testing.T) {
		sel := SelectionOf(AICheck, PlagiarismCheck)
		next, ok := sel.Toggle(AIRemoval, true)
		require.True(t, ok)
		assert.False(t, next.AICheck)
		assert.True(t, next.AIRemoval)
		assert.True(t, next.PlagiarismCheck)
	})

	t.Run("check clears removal in same category", func(t *testing.T) {
		sel := SelectionOf(PlagiarismRemoval)
		next, ok := sel.Toggle(PlagiarismCheck, true)
		require.True(t, ok)
		assert.Equal(t, SelectionOf(PlagiarismCheck), next)
	})

	t.Run("categories are independent", func(t *testing.T) {
		sel := SelectionOf(PlagiarismCheck)
		next, ok := sel.Toggle(AIRemoval, true)
		require.True(t, ok)
		assert.Equal(t, SelectionOf(PlagiarismCheck, AIRemoval), next)
	})

	t.Run("last service cannot be cleared", func(t *testing.T) {
		sel := DefaultSelection()
		next, ok := sel.Toggle(PlagiarismCheck, false)
		assert.False(t, ok)
		assert.Equal(t, sel, next)
	})

	t.Run("clearing one of two is allowed", func(t *testing.T) {
		sel := SelectionOf(PlagiarismCheck, AICheck)
		next, ok := sel.Toggle(AICheck, false)
		require.True(t, ok)
		assert.Equal(t, SelectionOf(PlagiarismCheck), next)
	})

	t.Run("unknown service is rejected", func(t *testing.T) {
		sel := DefaultSelection()
		next, ok := sel.Toggle("translation", true)
		assert.False(t, ok)
		assert.Equal(t, sel, next)
	})
}

func TestSelection_Helpers(t *testing.T) {
	sel := SelectionOf(AIRemoval, PlagiarismCheck)
	assert.Equal(t, []Service{PlagiarismCheck, AIRemoval}, sel.Selected())
	assert.True(t, sel.IsAIService())
	assert.Equal(t, "plagiarismCheck,aiRemoval", sel.String())
	assert.False(t, Selection{}.Any())
	assert.False(t, DefaultSelection().IsAIService())
	assert.True(t, sel.Exclusive())
	assert.False(t, SelectionOf(AICheck, AIRemoval).Exclusive())
	assert.False(t, SelectionOf(PlagiarismCheck, PlagiarismRemoval).Exclusive())
}

func TestParsers(t *testing.T) {
	g, err := ParsePaperGrade("90gsm")
	require.NoError(t, err)
	assert.Equal(t, Paper90GSM, g)

	g, err = ParsePaperGrade(" Normal ")
	require.NoError(t, err)
	assert.Equal(t, PaperNormal, g)

	_, err = ParsePaperGrade("120")
	assert.Error(t, err)

	b, err := ParseBindingType("HARD-EMBOSS")
	require.NoError(t, err)
	assert.Equal(t, BindingHardEmboss, b)
	assert.True(t, b.IsHard())
	assert.Equal(t, 4, b.MinimumCopies())
	assert.Equal(t, 1, BindingSpiral.MinimumCopies())

	_, err = ParseBindingType("glue")
	assert.Error(t, err)

	c, err := ParseCoverType("")
	require.NoError(t, err)
	assert.Equal(t, CoverNone, c)

	s, err := ParseService("aicheck")
	require.NoError(t, err)
	assert.Equal(t, AICheck, s)
}

func TestTables(t *testing.T) {
	tables := Tables()
	require.Len(t, tables.Paper, 4)
	require.Len(t, tables.Binding, 6)
	require.Len(t, tables.Cover, 3)
	require.Len(t, tables.Plagiarism, 4)

	assert.Equal(t, Paper90GSM, tables.Paper[2].Grade)
	amount(t, "6.5", tables.Paper[2].Color)
	assert.Equal(t, BindingHardEmboss, tables.Binding[3].Key)
	amount(t, "2499", tables.Plagiarism[1].Prices[3].Price)
}
