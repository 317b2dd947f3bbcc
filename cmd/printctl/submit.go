package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"printshop/internal/app/client"
	"printshop/internal/app/dto"
	"printshop/internal/app/form"
	"printshop/internal/app/pricing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type submitFlags struct {
	jobFlags
	files   []string
	payment string
	email   string
	phone   string
	notes   string
}

func (f *submitFlags) addCommon(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.files, "file", nil, "Document to upload (repeatable)")
	cmd.Flags().StringVar(&f.payment, "payment", "", "Payment proof screenshot or PDF")
	cmd.Flags().StringVar(&f.email, "email", "", "Contact email")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Special instructions")
}

func newSubmitCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Upload files and place an order",
	}

	var printFlags submitFlags
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Place a print order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := form.NewPrintForm()
			if err := printFlags.fill(root.fs, &f.Base); err != nil {
				return err
			}
			in, err := printFlags.printInput()
			if err != nil {
				return err
			}
			f.Grade = in.Grade
			f.SetPages(in.BWPages, in.ColorPages)
			f.SetCopies(in.Copies)
			if printFlags.colorOption != "" {
				f.ColorOption = form.ColorOption(printFlags.colorOption)
			}

			return root.run(cmd, func(ctx context.Context, c *client.Client) (*dto.CreateOrderResponse, error) {
				return c.SubmitPrint(ctx, f)
			})
		},
	}
	printFlags.addPrint(printCmd, pricing.PaperNormal)
	printFlags.addCommon(printCmd)
	printCmd.Flags().StringVar(&printFlags.colorOption, "color-option", "", "detect, all-bw or all-color")

	var bindingFlags submitFlags
	bindingCmd := &cobra.Command{
		Use:   "binding",
		Short: "Place a binding order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := form.NewBindingForm()
			var rejected []string
			if err := bindingFlags.fillWith(root.fs, &f.Base, func(files ...form.File) {
				_, rejected = f.AddDocuments(files...)
			}); err != nil {
				return err
			}
			if len(rejected) > 0 {
				return &client.ValidationError{Errors: rejected}
			}

			in, err := bindingFlags.bindingInput()
			if err != nil {
				return err
			}
			f.Grade = in.Print.Grade
			f.SetPages(in.Print.BWPages, in.Print.ColorPages)
			f.SetCopies(in.Print.Copies)
			f.SetBinding(in.Binding)
			if in.Binding.IsHard() {
				f.Cover = in.Cover
				if bindingFlags.coverColor != "" {
					if !form.ValidCoverColor(bindingFlags.coverColor) {
						return fmt.Errorf("unknown cover colour %q, choose one of %s",
							bindingFlags.coverColor, strings.Join(form.CoverColors(), ", "))
					}
					f.CoverColor = bindingFlags.coverColor
				}
			}

			return root.run(cmd, func(ctx context.Context, c *client.Client) (*dto.CreateOrderResponse, error) {
				return c.SubmitBinding(ctx, f)
			})
		},
	}
	bindingFlags.addBinding(bindingCmd)
	bindingFlags.addCommon(bindingCmd)
	bindingCmd.Flags().StringVar(&bindingFlags.coverColor, "cover-color", "", "Cover colour for hard bindings")

	var plagiarismFlags submitFlags
	plagiarismCmd := &cobra.Command{
		Use:   "plagiarism",
		Short: "Place a plagiarism or AI content order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(plagiarismFlags.pages) != len(plagiarismFlags.files) {
				return fmt.Errorf("give one --pages value per --file")
			}
			sel, err := plagiarismFlags.selection()
			if err != nil {
				return err
			}

			f := form.NewPlagiarismForm()
			f.Services = sel
			var added []form.File
			if err := plagiarismFlags.fillWith(root.fs, &f.Base, func(files ...form.File) {
				added = f.AddFiles(files...)
			}); err != nil {
				return err
			}
			for i, file := range added {
				f.SetPages(file.ID, plagiarismFlags.pages[i])
			}

			return root.run(cmd, func(ctx context.Context, c *client.Client) (*dto.CreateOrderResponse, error) {
				return c.SubmitPlagiarism(ctx, f)
			})
		},
	}
	plagiarismFlags.addServices(plagiarismCmd)
	plagiarismFlags.addCommon(plagiarismCmd)
	plagiarismCmd.Flags().IntSliceVar(&plagiarismFlags.pages, "pages", nil, "Page count of each --file, in order")

	cmd.AddCommand(printCmd, bindingCmd, plagiarismCmd)
	return cmd
}

func (f *submitFlags) fill(fs afero.Fs, base *form.Base) error {
	return f.fillWith(fs, base, func(files ...form.File) { base.AddFiles(files...) })
}

// fillWith attaches the local files, payment proof and contact details.
func (f *submitFlags) fillWith(fs afero.Fs, base *form.Base, add func(...form.File)) error {
	var files []form.File
	for _, path := range f.files {
		file, err := localFile(fs, path)
		if err != nil {
			return err
		}
		files = append(files, file)
	}
	add(files...)

	if f.payment != "" {
		proof, err := localFile(fs, f.payment)
		if err != nil {
			return err
		}
		base.SetPaymentProof(proof)
	}
	base.Contact = form.Contact{Email: f.email, Phone: f.phone}
	base.Specifications = f.notes
	return nil
}

func localFile(fs afero.Fs, path string) (form.File, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return form.File{}, err
	}
	if info.IsDir() {
		return form.File{}, fmt.Errorf("%s is a directory", path)
	}
	f := form.NewFile(filepath.Base(path), info.Size(), "")
	f.Path = path
	return f, nil
}

func (o *rootOptions) run(cmd *cobra.Command, submit func(context.Context, *client.Client) (*dto.CreateOrderResponse, error)) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	resp, err := submit(ctx, client.New(o.server, o.fs, nil))
	var verr *client.ValidationError
	if errors.As(err, &verr) {
		writeErrors(cmd.ErrOrStderr(), verr.Errors)
		return errors.New("order not submitted")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed (id %d)\n", resp.Reference, resp.OrderID)
	return nil
}

func writeErrors(w io.Writer, errs []string) {
	fmt.Fprintln(w, "Please fix the following:")
	for _, e := range errs {
		fmt.Fprintf(w, "  - %s\n", e)
	}
}
