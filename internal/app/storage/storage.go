// Package storage keeps uploaded documents and payment proofs, either on a
// local filesystem or in a MinIO bucket.
package storage

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// FileStore is implemented by LocalStore and MinIOStore.
type FileStore interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Exists(ctx context.Context, name string) (bool, error)
}

// Presigner is implemented by stores that can hand out temporary download links.
type Presigner interface {
	PresignedURL(ctx context.Context, name string, ttl time.Duration) (string, error)
}

// Name is a generated storage name together with the parts that went into it.
type Name struct {
	Filename          string
	ContactIdentifier string
	Timestamp         string
}

// NewName builds "{orderType}-{contact}-{timestamp}-{uuid}-{original}". The
// contact part is the local part of the email, or the digits of the phone
// when no email is given.
func NewName(orderType, email, phone, original string, now time.Time) Name {
	ident := ContactIdentifier(email, phone)
	stamp := Timestamp(now)
	return Name{
		Filename:          strings.Join([]string{orderType, ident, stamp, uuid.NewString(), SafeBase(original)}, "-"),
		ContactIdentifier: ident,
		Timestamp:         stamp,
	}
}

func ContactIdentifier(email, phone string) string {
	if email = strings.TrimSpace(email); email != "" {
		local, _, _ := strings.Cut(email, "@")
		return strings.Map(func(r rune) rune {
			if r == '/' || r == '\\' {
				return -1
			}
			return r
		}, local)
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// Timestamp renders t as an ISO-8601 UTC instant with ':' and '.' replaced by '-'.
func Timestamp(t time.Time) string {
	return strings.NewReplacer(":", "-", ".", "-").Replace(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}

// SafeBase strips any directory components a client put in a file name.
func SafeBase(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == ".." || name == "/" {
		return "file"
	}
	return name
}

func validName(name string) error {
	if name == "" || name != SafeBase(name) {
		return ErrInvalidName
	}
	return nil
}

// DetectType returns the declared content type, or sniffs it from the first
// bytes of the file when the client sent nothing useful.
func DetectType(declared string, head []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return mimetype.Detect(head).String()
}

// IsImageOrPDF reports whether a content type is acceptable as payment proof.
func IsImageOrPDF(contentType string) bool {
	mt, _, _ := strings.Cut(contentType, ";")
	mt = strings.ToLower(strings.TrimSpace(mt))
	return strings.HasPrefix(mt, "image/") || mt == "application/pdf"
}
