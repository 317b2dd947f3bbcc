package form

import "printshop/internal/app/pricing"

type PlagiarismForm struct {
	Base
	Services pricing.Selection
}

func NewPlagiarismForm() *PlagiarismForm {
	return &PlagiarismForm{Services: pricing.DefaultSelection()}
}

// SetPages records the manual page count of one document.
func (f *PlagiarismForm) SetPages(id string, pages int) bool {
	for i := range f.Files {
		if f.Files[i].ID == id {
			f.Files[i].Pages = clampPages(pages)
			return true
		}
	}
	return false
}

func (f *PlagiarismForm) TotalPages() int {
	total := 0
	for _, file := range f.Files {
		total += file.Pages
	}
	return total
}

// ToggleService applies a checkbox change; false means it was rejected and nothing changed.
func (f *PlagiarismForm) ToggleService(s pricing.Service, checked bool) bool {
	next, ok := f.Services.Toggle(s, checked)
	if ok {
		f.Services = next
	}
	return ok
}

func (f *PlagiarismForm) Input() pricing.PlagiarismInput {
	return pricing.PlagiarismInput{TotalPages: f.TotalPages(), Services: f.Services}
}

func (f *PlagiarismForm) Pricing() *pricing.PlagiarismBreakdown {
	if len(f.Files) == 0 || f.TotalPages() == 0 {
		return nil
	}
	b := pricing.Plagiarism(f.Input())
	return &b
}

func (f *PlagiarismForm) Validate() []string {
	var errs []string
	if len(f.Files) == 0 {
		errs = append(errs, "Please upload at least one document")
	}
	for _, file := range f.Files {
		if file.Pages == 0 {
			errs = append(errs, "Please enter page count for all uploaded documents")
			break
		}
	}
	if !f.Services.Any() {
		errs = append(errs, "Please select at least one service")
	}
	return f.commonErrors(errs)
}

// Reset keeps the service selection, as the order page does.
func (f *PlagiarismForm) Reset() {
	f.Base.Reset()
}
