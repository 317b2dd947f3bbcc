package form

import "printshop/internal/app/pricing"

// ColorOption is how the customer wants colour handled. It is recorded with
// the order; pricing only looks at the manual page counts.
type ColorOption string

const (
	ColorDetect ColorOption = "detect"
	ColorAllBW  ColorOption = "all-bw"
	ColorAll    ColorOption = "all-color"
)

func (c ColorOption) Valid() bool {
	switch c {
	case ColorDetect, ColorAllBW, ColorAll:
		return true
	}
	return false
}

const msgPrintPages = "Please specify at least one page to print"

type PrintForm struct {
	Base
	BWPages     int
	ColorPages  int
	Copies      int
	Grade       pricing.PaperGrade
	ColorOption ColorOption
}

func NewPrintForm() *PrintForm {
	return &PrintForm{
		Copies:      1,
		Grade:       pricing.PaperNormal,
		ColorOption: ColorDetect,
	}
}

func (f *PrintForm) SetPages(bw, color int) {
	f.BWPages, f.ColorPages = clampPages(bw), clampPages(color)
}

func (f *PrintForm) SetCopies(n int) {
	f.Copies = clampCopies(n)
}

func (f *PrintForm) Input() pricing.PrintInput {
	return pricing.PrintInput{
		BWPages:    f.BWPages,
		ColorPages: f.ColorPages,
		Copies:     clampCopies(f.Copies),
		Grade:      f.Grade,
	}
}

// Pricing is nil until there is a file and at least one page.
func (f *PrintForm) Pricing() *pricing.PrintBreakdown {
	if len(f.Files) == 0 || f.BWPages+f.ColorPages == 0 {
		return nil
	}
	b := pricing.Print(f.Input())
	return &b
}

func (f *PrintForm) Validate() []string {
	var errs []string
	if len(f.Files) == 0 {
		errs = append(errs, "Please upload at least one file")
	}
	if f.BWPages == 0 && f.ColorPages == 0 {
		errs = append(errs, msgPrintPages)
	}
	return f.commonErrors(errs)
}

func (f *PrintForm) Reset() {
	f.Base.Reset()
	f.BWPages, f.ColorPages = 0, 0
}
