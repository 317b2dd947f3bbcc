// Package client submits order forms to the print shop API: every attached
// file is uploaded concurrently, then a single order referencing the uploads
// is created.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"printshop/internal/app/dto"
	"printshop/internal/app/form"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// ErrSubmit is returned for any network or server failure during submission.
// Its message is what the customer sees.
var ErrSubmit = errors.New("Failed to submit order. Please try again.")

// ValidationError lists the problems that block a form from being submitted.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

type Client struct {
	baseURL string
	http    *http.Client
	fs      afero.Fs
}

// New returns a client for the API at baseURL. File paths on forms are read from fs.
func New(baseURL string, fs afero.Fs, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		fs:      fs,
	}
}

func (c *Client) SubmitPrint(ctx context.Context, f *form.PrintForm) (*dto.CreateOrderResponse, error) {
	return c.submit(ctx, f, func(docs []dto.FileRef) dto.CreateOrderRequest {
		req := dto.CreateOrderRequest{
			BWPages:     f.BWPages,
			ColorPages:  f.ColorPages,
			Copies:      f.Copies,
			PaperGsm:    string(f.Grade),
			ColorOption: string(f.ColorOption),
			Documents:   docs,
		}
		if p := f.Pricing(); p != nil {
			total := p.TotalPrice.InexactFloat64()
			req.TotalPrice = &total
		}
		return req
	})
}

func (c *Client) SubmitBinding(ctx context.Context, f *form.BindingForm) (*dto.CreateOrderResponse, error) {
	return c.submit(ctx, f, func(docs []dto.FileRef) dto.CreateOrderRequest {
		req := dto.CreateOrderRequest{
			BWPages:     f.BWPages,
			ColorPages:  f.ColorPages,
			Copies:      f.Copies,
			PaperGsm:    string(f.Grade),
			ColorOption: string(f.ColorOption),
			BindingType: string(f.Binding),
			CoverType:   string(f.Cover),
			CoverColor:  f.CoverColor,
			Documents:   docs,
		}
		if p := f.Pricing(); p != nil {
			total := p.TotalPrice.InexactFloat64()
			req.TotalPrice = &total
		}
		return req
	})
}

func (c *Client) SubmitPlagiarism(ctx context.Context, f *form.PlagiarismForm) (*dto.CreateOrderResponse, error) {
	return c.submit(ctx, f, func(docs []dto.FileRef) dto.CreateOrderRequest {
		services := f.Services
		req := dto.CreateOrderRequest{
			Services:   &services,
			TotalPages: f.TotalPages(),
			Documents:  docs,
		}
		if p := f.Pricing(); p != nil {
			total := p.TotalPrice.InexactFloat64()
			req.TotalPrice = &total
		}
		return req
	})
}

// submit validates f, uploads its files and creates the order. The form is
// reset only after the order was accepted.
func (c *Client) submit(ctx context.Context, f form.Form, build func(docs []dto.FileRef) dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	base := f.Common()
	kind := f.Kind()

	docs := make([]dto.FileRef, len(base.Files))
	var proof dto.FileRef

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range base.Files {
		g.Go(func() error {
			ref, err := c.upload(gctx, file, kind.DocumentTag(), base.Contact)
			if err != nil {
				return err
			}
			docs[i] = ref
			return nil
		})
	}
	paymentFile := *base.PaymentProof
	g.Go(func() error {
		ref, err := c.upload(gctx, paymentFile, kind.PaymentTag(), base.Contact)
		if err != nil {
			return err
		}
		proof = ref
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).WithField("order_type", kind).Error("upload failed")
		return nil, fmt.Errorf("%w: %v", ErrSubmit, err)
	}

	req := build(docs)
	req.ServiceType = string(kind)
	req.PaymentProof = &proof
	req.ContactInfo = dto.ContactInfo{Email: base.Contact.Email, Phone: base.Contact.Phone}
	req.Specifications = base.Specifications

	resp, err := c.createOrder(ctx, req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		log.WithError(err).WithField("order_type", kind).Error("create order failed")
		return nil, fmt.Errorf("%w: %v", ErrSubmit, err)
	}

	f.Reset()
	return resp, nil
}

func (c *Client) upload(ctx context.Context, file form.File, orderType string, contact form.Contact) (dto.FileRef, error) {
	src, err := c.fs.Open(file.Path)
	if err != nil {
		return dto.FileRef{}, fmt.Errorf("open %s: %w", file.Name, err)
	}
	defer src.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"orderType":    orderType,
		"contactEmail": contact.Email,
		"contactPhone": contact.Phone,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return dto.FileRef{}, err
		}
	}
	fw, err := mw.CreateFormFile("file", file.Name)
	if err != nil {
		return dto.FileRef{}, err
	}
	if _, err := io.Copy(fw, src); err != nil {
		return dto.FileRef{}, fmt.Errorf("read %s: %w", file.Name, err)
	}
	if err := mw.Close(); err != nil {
		return dto.FileRef{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &body)
	if err != nil {
		return dto.FileRef{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out dto.UploadResponse
	if err := c.do(req, http.StatusOK, &out); err != nil {
		return dto.FileRef{}, fmt.Errorf("upload %s: %w", file.Name, err)
	}

	return dto.FileRef{
		Filename:     out.Filename,
		OriginalName: out.OriginalName,
		Size:         out.Size,
		Type:         out.Type,
		Pages:        file.Pages,
	}, nil
}

func (c *Client) createOrder(ctx context.Context, order dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	data, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out dto.CreateOrderResponse
	if err := c.do(req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends req and decodes a want-status response into out. A 400 with a
// list of errors comes back as a ValidationError.
func (c *Client) do(req *http.Request, want int, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusBadRequest && len(apiErr.Errors) > 0 {
			return &ValidationError{Errors: apiErr.Errors}
		}
		return fmt.Errorf("%s %s: %d %s", req.Method, req.URL.Path, resp.StatusCode, apiErr.Message)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
