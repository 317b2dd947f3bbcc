// Package form models the in-memory state of the three order forms: the
// attached files, manual page counts, contact details and selectors. It
// produces the price breakdown (or nothing) and the list of validation
// messages that block submission.
package form

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Kind is the order type a form submits.
type Kind string

const (
	KindPrint      Kind = "print"
	KindBinding    Kind = "binding"
	KindPlagiarism Kind = "plagiarism"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPrint, KindBinding, KindPlagiarism:
		return true
	}
	return false
}

// DocumentTag and PaymentTag are the upload "orderType" values for this kind.
func (k Kind) DocumentTag() string { return string(k) + "-doc" }
func (k Kind) PaymentTag() string  { return string(k) + "-payment" }

// Validation messages shared by all forms.
const (
	MsgPaymentProof = "Please upload payment proof"
	MsgContact      = "Please provide either email or phone number for contact"
)

// File is a document or payment proof attached to a form.
type File struct {
	ID    string
	Name  string
	Size  int64
	Type  string
	Pages int
	// Path is where the bytes live locally; empty for files that only exist as metadata.
	Path string
}

// NewFile tags a file with a fresh random identifier.
func NewFile(name string, size int64, mimeType string) File {
	return File{
		ID:   uuid.NewString(),
		Name: name,
		Size: size,
		Type: mimeType,
	}
}

type Contact struct {
	Email string
	Phone string
}

// Provided reports whether at least one contact method is filled in.
func (c Contact) Provided() bool {
	return strings.TrimSpace(c.Email) != "" || strings.TrimSpace(c.Phone) != ""
}

// Base is the state every order form has.
type Base struct {
	Files          []File
	PaymentProof   *File
	Contact        Contact
	Specifications string
}

// AddFiles appends files, assigning an id to any that lack one, and returns what was added.
func (b *Base) AddFiles(files ...File) []File {
	added := make([]File, 0, len(files))
	for _, f := range files {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		b.Files = append(b.Files, f)
		added = append(added, f)
	}
	return added
}

// RemoveFile drops the file with the given id.
func (b *Base) RemoveFile(id string) bool {
	for i, f := range b.Files {
		if f.ID == id {
			b.Files = append(b.Files[:i], b.Files[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Base) SetPaymentProof(f File) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	b.PaymentProof = &f
}

func (b *Base) ClearPaymentProof() {
	b.PaymentProof = nil
}

// Reset clears everything a successful submission clears.
func (b *Base) Reset() {
	b.Files = nil
	b.PaymentProof = nil
	b.Contact = Contact{}
	b.Specifications = ""
}

// commonErrors are the payment and contact checks, appended after form specific ones.
func (b *Base) commonErrors(errs []string) []string {
	if b.PaymentProof == nil {
		errs = append(errs, MsgPaymentProof)
	}
	if !b.Contact.Provided() {
		errs = append(errs, MsgContact)
	}
	return errs
}

// IsBindableDocument reports whether a file name is a PDF or Word document.
func IsBindableDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".doc", ".docx":
		return true
	}
	return false
}

func clampCopies(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func clampPages(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Form is what every order form exposes to the submission flow.
type Form interface {
	Kind() Kind
	Validate() []string
	Common() *Base
	Reset()
}

// Common gives access to the shared state of an embedding form.
func (b *Base) Common() *Base { return b }

func (f *PrintForm) Kind() Kind      { return KindPrint }
func (f *BindingForm) Kind() Kind    { return KindBinding }
func (f *PlagiarismForm) Kind() Kind { return KindPlagiarism }

var (
	_ Form = (*PrintForm)(nil)
	_ Form = (*BindingForm)(nil)
	_ Form = (*PlagiarismForm)(nil)
)
