package form

import (
	"testing"

	"printshop/internal/app/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyBase(b *Base) {
	b.AddFiles(NewFile("thesis.pdf", 2048, "application/pdf"))
	b.SetPaymentProof(NewFile("upi.png", 512, "image/png"))
	b.Contact = Contact{Phone: "+91 93112 44099"}
}

func TestBase_Files(t *testing.T) {
	var b Base
	added := b.AddFiles(File{Name: "a.pdf"}, File{Name: "b.pdf", ID: "fixed"})
	require.Len(t, added, 2)

	_, err := uuid.Parse(added[0].ID)
	assert.NoError(t, err, "generated ids are UUIDs")
	assert.Equal(t, "fixed", added[1].ID)

	assert.True(t, b.RemoveFile(added[0].ID))
	assert.False(t, b.RemoveFile(added[0].ID))
	require.Len(t, b.Files, 1)
	assert.Equal(t, "b.pdf", b.Files[0].Name)
}

func TestNewFile_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		f := NewFile("x.pdf", 1, "application/pdf")
		assert.False(t, seen[f.ID])
		seen[f.ID] = true
	}
}

func TestContact_Provided(t *testing.T) {
	assert.False(t, Contact{}.Provided())
	assert.False(t, Contact{Email: "  "}.Provided())
	assert.True(t, Contact{Email: "a@b.in"}.Provided())
	assert.True(t, Contact{Phone: "99999"}.Provided())
}

func TestPrintForm_Pricing(t *testing.T) {
	f := NewPrintForm()
	assert.Nil(t, f.Pricing(), "no files means no pricing")

	f.SetPages(10, 2)
	assert.Nil(t, f.Pricing(), "still no files")

	f.AddFiles(NewFile("notes.pdf", 1, "application/pdf"))
	p := f.Pricing()
	require.NotNil(t, p)
	assert.Equal(t, "20", p.TotalPrice.String())

	f.SetPages(0, 0)
	assert.Nil(t, f.Pricing(), "zero pages means no pricing, not zero")
}

func TestPrintForm_Validate(t *testing.T) {
	f := NewPrintForm()
	assert.Equal(t, []string{
		"Please upload at least one file",
		"Please specify at least one page to print",
		MsgPaymentProof,
		MsgContact,
	}, f.Validate())

	readyBase(&f.Base)
	f.SetPages(1, 0)
	assert.Empty(t, f.Validate())
}

func TestPrintForm_CopiesClamp(t *testing.T) {
	f := NewPrintForm()
	f.SetCopies(0)
	assert.Equal(t, 1, f.Copies)
	f.SetCopies(-5)
	assert.Equal(t, 1, f.Copies)
	f.SetCopies(3)
	assert.Equal(t, 3, f.Copies)
}

func TestPrintForm_Reset(t *testing.T) {
	f := NewPrintForm()
	readyBase(&f.Base)
	f.SetPages(4, 4)
	f.Specifications = "staple"
	f.Reset()

	assert.Empty(t, f.Files)
	assert.Nil(t, f.PaymentProof)
	assert.False(t, f.Contact.Provided())
	assert.Zero(t, f.BWPages+f.ColorPages)
	assert.Empty(t, f.Specifications)
	assert.Nil(t, f.Pricing())
}

func TestBindingForm_Defaults(t *testing.T) {
	f := NewBindingForm()
	assert.Equal(t, pricing.BindingHardNormal, f.Binding)
	assert.Equal(t, pricing.Paper80GSM, f.Grade)
	assert.Equal(t, pricing.CoverNone, f.Cover)
	assert.Equal(t, "black", f.CoverColor)
}

func TestBindingForm_AddDocuments(t *testing.T) {
	f := NewBindingForm()
	added, rejected := f.AddDocuments(
		NewFile("report.PDF", 1, ""),
		NewFile("draft.docx", 1, ""),
		NewFile("photo.jpg", 1, ""),
	)
	assert.Len(t, added, 2)
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0], "photo.jpg")
	assert.Len(t, f.Files, 2)
}

func TestBindingForm_SetBindingResetsCover(t *testing.T) {
	f := NewBindingForm()
	f.Cover = pricing.CoverPremium
	f.CoverColor = "maroon"

	f.SetBinding(pricing.BindingHardGloss)
	assert.Equal(t, pricing.CoverPremium, f.Cover)

	f.SetBinding(pricing.BindingSpiral)
	assert.Equal(t, pricing.CoverNone, f.Cover)
	assert.Equal(t, "black", f.CoverColor)
}

func TestBindingForm_EmbossMinimum(t *testing.T) {
	const msg = "Emboss binding requires a minimum of 4 copies"

	f := NewBindingForm()
	readyBase(&f.Base)
	f.SetPages(50, 0)
	f.SetBinding(pricing.BindingHardEmboss)

	f.SetCopies(2)
	assert.Contains(t, f.Validate(), msg)
	require.NotNil(t, f.Pricing(), "minimum is a validation error, not a price change")

	f.SetCopies(4)
	assert.NotContains(t, f.Validate(), msg)
	assert.Empty(t, f.Validate())

	f.SetBinding(pricing.BindingHardNormal)
	f.SetCopies(1)
	assert.Empty(t, f.Validate())
}

func TestBindingForm_Validate(t *testing.T) {
	f := NewBindingForm()
	assert.Equal(t, []string{
		"Please upload at least one file",
		"Please specify at least one page to bind",
		MsgPaymentProof,
		MsgContact,
	}, f.Validate())
}

func TestBindingForm_Pricing(t *testing.T) {
	f := NewBindingForm()
	f.AddDocuments(NewFile("a.pdf", 1, "application/pdf"))
	f.SetPages(10, 0)
	f.SetCopies(2)
	f.Cover = pricing.CoverSimple

	p := f.Pricing()
	require.NotNil(t, p)
	// 10*2*2 + 120*2 + 50*2
	assert.Equal(t, "380", p.TotalPrice.String())
}

func TestPlagiarismForm_Pricing(t *testing.T) {
	f := NewPlagiarismForm()
	assert.Nil(t, f.Pricing())

	docs := f.AddFiles(NewFile("a.docx", 1, ""), NewFile("b.docx", 1, ""))
	assert.Nil(t, f.Pricing(), "files without page counts price as nothing")

	require.True(t, f.SetPages(docs[0].ID, 30))
	require.True(t, f.SetPages(docs[1].ID, 21))
	assert.False(t, f.SetPages("missing", 3))
	assert.Equal(t, 51, f.TotalPages())

	p := f.Pricing()
	require.NotNil(t, p)
	assert.Equal(t, pricing.Tier51To100, p.Tier)
	assert.Equal(t, "699", p.TotalPrice.String())
}

func TestPlagiarismForm_Validate(t *testing.T) {
	f := NewPlagiarismForm()
	assert.Equal(t, []string{
		"Please upload at least one document",
		MsgPaymentProof,
		MsgContact,
	}, f.Validate())

	readyBase(&f.Base)
	assert.Equal(t, []string{"Please enter page count for all uploaded documents"}, f.Validate())

	f.SetPages(f.Files[0].ID, 12)
	assert.Empty(t, f.Validate())

	f.Services = pricing.Selection{}
	assert.Equal(t, []string{"Please select at least one service"}, f.Validate())
}

func TestPlagiarismForm_ToggleService(t *testing.T) {
	f := NewPlagiarismForm()

	assert.False(t, f.ToggleService(pricing.PlagiarismCheck, false), "cannot clear the only service")
	assert.Equal(t, pricing.DefaultSelection(), f.Services)

	assert.True(t, f.ToggleService(pricing.AICheck, true))
	assert.True(t, f.ToggleService(pricing.AIRemoval, true))
	assert.False(t, f.Services.AICheck)
	assert.True(t, f.Services.AIRemoval)
	assert.True(t, f.Services.PlagiarismCheck)
}

func TestKindTags(t *testing.T) {
	assert.Equal(t, "binding-doc", KindBinding.DocumentTag())
	assert.Equal(t, "plagiarism-payment", KindPlagiarism.PaymentTag())
	assert.True(t, KindPrint.Valid())
	assert.False(t, Kind("scan").Valid())

	var forms []Form = []Form{NewPrintForm(), NewBindingForm(), NewPlagiarismForm()}
	assert.Equal(t, KindPrint, forms[0].Kind())
	assert.Equal(t, KindBinding, forms[1].Kind())
	assert.Equal(t, KindPlagiarism, forms[2].Kind())
}
