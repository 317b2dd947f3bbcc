package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printshop/internal/app/dto"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pdfBytes = "%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"

func multipartUpload(t *testing.T, a *testAPI, fields map[string]string, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestUpload(t *testing.T) {
	a := newTestAPI(t)

	w := multipartUpload(t, a, map[string]string{
		"orderType":    "print-doc",
		"contactEmail": "riya@college.edu",
		"contactPhone": "98111 22233",
	}, "thesis.pdf", []byte(pdfBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.UploadResponse
	decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Filename, "print-doc-riya-2024-05-01T10-00-00-000Z-"), resp.Filename)
	assert.True(t, strings.HasSuffix(resp.Filename, "-thesis.pdf"))
	assert.Equal(t, "thesis.pdf", resp.OriginalName)
	assert.Equal(t, int64(len(pdfBytes)), resp.Size)
	assert.Equal(t, "application/pdf", resp.Type, "octet-stream is replaced by the sniffed type")
	assert.Equal(t, "2024-05-01T10-00-00-000Z", resp.UploadedAt)
	assert.Equal(t, "riya", resp.ContactIdentifier)

	stored, err := afero.ReadFile(a.fs, "uploads/"+resp.Filename)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, string(stored))

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.Uploads.WithLabelValues("print-doc")))
}

func TestUpload_PhoneIdentifier(t *testing.T) {
	a := newTestAPI(t)

	w := multipartUpload(t, a, map[string]string{
		"orderType":    "plagiarism-payment",
		"contactPhone": "+91 93112-44099",
	}, "upi.pdf", []byte(pdfBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.UploadResponse
	decode(t, w, &resp)
	assert.Equal(t, "919311244099", resp.ContactIdentifier)
	assert.True(t, strings.HasPrefix(resp.Filename, "plagiarism-payment-919311244099-"))
}

func TestUpload_SlashInEmail(t *testing.T) {
	a := newTestAPI(t)

	w := multipartUpload(t, a, map[string]string{
		"orderType":    "print-doc",
		"contactEmail": "a/b@college.edu",
	}, "thesis.pdf", []byte(pdfBytes))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.UploadResponse
	decode(t, w, &resp)
	assert.Equal(t, "ab", resp.ContactIdentifier)
	assert.True(t, strings.HasPrefix(resp.Filename, "print-doc-ab-"), resp.Filename)

	ok, err := afero.Exists(a.fs, "uploads/"+resp.Filename)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpload_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		file     string
		content  []byte
		code     int
		contains string
	}{
		{"NoFile", map[string]string{"orderType": "print-doc"}, "", nil, http.StatusBadRequest, "No file uploaded"},
		{"UnknownOrderType", map[string]string{"orderType": "scan-doc"}, "a.pdf", []byte(pdfBytes), http.StatusBadRequest, "Unknown order type"},
		{"MissingPurpose", map[string]string{"orderType": "print"}, "a.pdf", []byte(pdfBytes), http.StatusBadRequest, "Unknown order type"},
		{"PaymentNotImage", map[string]string{"orderType": "binding-payment"}, "proof.txt", []byte("just text"), http.StatusBadRequest, "image or a PDF"},
		{"BindingNotDocument", map[string]string{"orderType": "binding-doc"}, "photo.jpg", []byte("\xff\xd8\xff\xe0"), http.StatusBadRequest, "Only PDF and Word files"},
		{"TooLarge", map[string]string{"orderType": "print-doc"}, "big.pdf", bytes.Repeat([]byte("a"), 1<<20+10), http.StatusRequestEntityTooLarge, "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t)
			w := multipartUpload(t, a, tt.fields, tt.file, tt.content)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)

			entries, err := afero.ReadDir(a.fs, "uploads")
			require.NoError(t, err)
			assert.Empty(t, entries, "nothing is written for a rejected upload")
		})
	}
}

func TestParseOrderType(t *testing.T) {
	kind, purpose, ok := parseOrderType("binding-payment")
	assert.True(t, ok)
	assert.Equal(t, "binding", string(kind))
	assert.Equal(t, "payment", purpose)

	for _, tag := range []string{"", "print", "print-", "print-cover", "xerox-doc"} {
		_, _, ok := parseOrderType(tag)
		assert.False(t, ok, tag)
	}
}
