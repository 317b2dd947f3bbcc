package main

import (
	"fmt"
	"io"

	"printshop/internal/app/pricing"

	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a job without placing an order",
	}

	var printFlags jobFlags
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Quote a print job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := printFlags.printInput()
			if err != nil {
				return err
			}
			writePrint(cmd.OutOrStdout(), pricing.Print(in))
			return nil
		},
	}
	printFlags.addPrint(printCmd, pricing.PaperNormal)

	var bindingFlags jobFlags
	bindingCmd := &cobra.Command{
		Use:   "binding",
		Short: "Quote a binding job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := bindingFlags.bindingInput()
			if err != nil {
				return err
			}
			writeBinding(cmd.OutOrStdout(), pricing.Binding(in))
			return nil
		},
	}
	bindingFlags.addBinding(bindingCmd)

	var plagiarismFlags jobFlags
	var totalPages int
	plagiarismCmd := &cobra.Command{
		Use:   "plagiarism",
		Short: "Quote a plagiarism or AI content job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := plagiarismFlags.selection()
			if err != nil {
				return err
			}
			if !sel.Exclusive() {
				return fmt.Errorf("choose either a check or a removal for each service, not both")
			}
			writePlagiarism(cmd.OutOrStdout(), pricing.Plagiarism(pricing.PlagiarismInput{TotalPages: totalPages, Services: sel}))
			return nil
		},
	}
	plagiarismFlags.addServices(plagiarismCmd)
	plagiarismCmd.Flags().IntVar(&totalPages, "pages", 0, "Total pages across all documents")

	cmd.AddCommand(printCmd, bindingCmd, plagiarismCmd)
	return cmd
}

func writePrint(w io.Writer, b pricing.PrintBreakdown) {
	fmt.Fprintf(w, "Pages:        %d (%d B&W, %d colour)\n", b.Pages.TotalPages, b.Pages.BWPages, b.Pages.ColorPages)
	fmt.Fprintf(w, "B&W:          %s\n", pricing.Rupees(b.BWPrice))
	fmt.Fprintf(w, "Colour:       %s\n", pricing.Rupees(b.ColorPrice))
	fmt.Fprintf(w, "Total:        %s\n", pricing.Rupees(b.TotalPrice))
}

func writeBinding(w io.Writer, b pricing.BindingBreakdown) {
	fmt.Fprintf(w, "Pages:        %d (%d B&W, %d colour)\n", b.Pages.TotalPages, b.Pages.BWPages, b.Pages.ColorPages)
	fmt.Fprintf(w, "Printing:     %s\n", pricing.Rupees(b.PrintPrice))
	fmt.Fprintf(w, "Binding:      %s\n", pricing.Rupees(b.BindingPrice))
	fmt.Fprintf(w, "Cover:        %s\n", pricing.Rupees(b.CoverPrice))
	fmt.Fprintf(w, "Total:        %s\n", pricing.Rupees(b.TotalPrice))
}

func writePlagiarism(w io.Writer, b pricing.PlagiarismBreakdown) {
	fmt.Fprintf(w, "Pages:        %d (%s)\n", b.TotalPages, b.Tier)
	for _, line := range b.Summary() {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintf(w, "Total:        %s\n", pricing.Rupees(b.TotalPrice))
}
