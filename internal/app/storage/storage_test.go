package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 123_000_000, time.FixedZone("IST", 19800))

	n := NewName("print-doc", "riya.s@college.edu", "98111 22233", "thesis final.pdf", now)
	assert.Equal(t, "riya.s", n.ContactIdentifier)
	assert.Equal(t, "2024-03-05T08-37-09-123Z", n.Timestamp)

	prefix := "print-doc-riya.s-2024-03-05T08-37-09-123Z-"
	require.True(t, strings.HasPrefix(n.Filename, prefix), n.Filename)
	rest := strings.TrimPrefix(n.Filename, prefix)
	_, err := uuid.Parse(rest[:36])
	assert.NoError(t, err)
	assert.Equal(t, "-thesis final.pdf", rest[36:])
}

func TestNewName_Unique(t *testing.T) {
	now := time.Now()
	a := NewName("binding-doc", "", "1", "a.pdf", now)
	b := NewName("binding-doc", "", "1", "a.pdf", now)
	assert.NotEqual(t, a.Filename, b.Filename)
}

func TestContactIdentifier(t *testing.T) {
	assert.Equal(t, "ops", ContactIdentifier("ops@dcprintingpress.com", "123"))
	assert.Equal(t, "919311244099", ContactIdentifier("", "+91 93112-44099"))
	assert.Equal(t, "", ContactIdentifier("", ""))
	assert.Equal(t, "ab", ContactIdentifier("a/b@college.edu", ""))
	assert.Equal(t, "ab", ContactIdentifier(`a\b@college.edu`, ""))
}

func TestSafeBase(t *testing.T) {
	assert.Equal(t, "passwd", SafeBase("../../etc/passwd"))
	assert.Equal(t, "scan.png", SafeBase(`C:\Users\me\scan.png`))
	assert.Equal(t, "file", SafeBase(".."))
	assert.Equal(t, "notes.docx", SafeBase("notes.docx"))
}

func TestDetectType(t *testing.T) {
	pdf := []byte("%PDF-1.7\n%âãÏÓ\n")
	assert.Equal(t, "image/png", DetectType("image/png", pdf))
	assert.Equal(t, "application/pdf", DetectType("", pdf))
	assert.Equal(t, "application/pdf", DetectType("application/octet-stream", pdf))
}

func TestIsImageOrPDF(t *testing.T) {
	assert.True(t, IsImageOrPDF("image/jpeg"))
	assert.True(t, IsImageOrPDF("application/pdf"))
	assert.True(t, IsImageOrPDF("IMAGE/PNG; q=1"))
	assert.False(t, IsImageOrPDF("application/msword"))
	assert.False(t, IsImageOrPDF(""))
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	store, err := NewLocalStore(fs, "uploads")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "print-doc-a.pdf", strings.NewReader("hello"), 5, "application/pdf"))

	ok, err := store.Exists(ctx, "print-doc-a.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := store.Open(ctx, "print-doc-a.pdf")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	data, err := afero.ReadFile(fs, "uploads/print-doc-a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStore_Errors(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(afero.NewMemMapFs(), "uploads")
	require.NoError(t, err)

	_, err = store.Open(ctx, "missing.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := store.Exists(ctx, "missing.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.Save(ctx, "../escape.pdf", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = store.Open(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidName)
}
