package form

import (
	"fmt"

	"printshop/internal/app/pricing"
)

const (
	DefaultCoverColor = "black"

	msgBindPages = "Please specify at least one page to bind"
)

var coverColors = []string{"black", "navy-blue", "sky-blue", "maroon", "green"}

// CoverColors lists the hard cover colours the workshop stocks.
func CoverColors() []string {
	return append([]string(nil), coverColors...)
}

func ValidCoverColor(c string) bool {
	for _, v := range coverColors {
		if v == c {
			return true
		}
	}
	return false
}

type BindingForm struct {
	Base
	BWPages     int
	ColorPages  int
	Copies      int
	Grade       pricing.PaperGrade
	ColorOption ColorOption
	Binding     pricing.BindingType
	Cover       pricing.CoverType
	CoverColor  string
}

func NewBindingForm() *BindingForm {
	return &BindingForm{
		Copies:      1,
		Grade:       pricing.Paper80GSM,
		ColorOption: ColorDetect,
		Binding:     pricing.BindingHardNormal,
		Cover:       pricing.CoverNone,
		CoverColor:  DefaultCoverColor,
	}
}

// AddDocuments accepts only PDF and Word files. It returns the files that
// were added and one message per rejected file.
func (f *BindingForm) AddDocuments(files ...File) ([]File, []string) {
	var accepted []File
	var rejected []string
	for _, file := range files {
		if !IsBindableDocument(file.Name) {
			rejected = append(rejected, fmt.Sprintf("File %q is not supported. Only PDF and Word files are allowed.", file.Name))
			continue
		}
		accepted = append(accepted, file)
	}
	return f.AddFiles(accepted...), rejected
}

// SetBinding switches binding type; soft and spiral bindings have no cover options.
func (f *BindingForm) SetBinding(b pricing.BindingType) {
	f.Binding = b
	if !b.IsHard() {
		f.Cover = pricing.CoverNone
		f.CoverColor = DefaultCoverColor
	}
}

func (f *BindingForm) SetPages(bw, color int) {
	f.BWPages, f.ColorPages = clampPages(bw), clampPages(color)
}

func (f *BindingForm) SetCopies(n int) {
	f.Copies = clampCopies(n)
}

func (f *BindingForm) Input() pricing.BindingInput {
	return pricing.BindingInput{
		Print: pricing.PrintInput{
			BWPages:    f.BWPages,
			ColorPages: f.ColorPages,
			Copies:     clampCopies(f.Copies),
			Grade:      f.Grade,
		},
		Binding: f.Binding,
		Cover:   f.Cover,
	}
}

func (f *BindingForm) Pricing() *pricing.BindingBreakdown {
	if len(f.Files) == 0 || f.BWPages+f.ColorPages == 0 {
		return nil
	}
	b := pricing.Binding(f.Input())
	return &b
}

func (f *BindingForm) Validate() []string {
	var errs []string
	if len(f.Files) == 0 {
		errs = append(errs, "Please upload at least one file")
	}
	if f.BWPages == 0 && f.ColorPages == 0 {
		errs = append(errs, msgBindPages)
	}
	errs = f.commonErrors(errs)
	if minCopies := f.Binding.MinimumCopies(); f.Copies < minCopies {
		errs = append(errs, fmt.Sprintf("Emboss binding requires a minimum of %d copies", minCopies))
	}
	return errs
}

func (f *BindingForm) Reset() {
	f.Base.Reset()
	f.BWPages, f.ColorPages = 0, 0
}
