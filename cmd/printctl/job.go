package main

import (
	"fmt"

	"printshop/internal/app/pricing"

	"github.com/spf13/cobra"
)

// jobFlags are the order options shared by quote and submit.
type jobFlags struct {
	bw, color, copies int
	paper             string
	colorOption       string
	binding, cover    string
	coverColor        string
	pages             []int
	services          []string
}

func (f *jobFlags) addPrint(cmd *cobra.Command, defaultPaper pricing.PaperGrade) {
	cmd.Flags().IntVar(&f.bw, "bw", 0, "Black and white pages per copy")
	cmd.Flags().IntVar(&f.color, "color", 0, "Colour pages per copy")
	cmd.Flags().IntVar(&f.copies, "copies", 1, "Number of copies")
	cmd.Flags().StringVar(&f.paper, "paper", string(defaultPaper), "Paper grade: normal, 80, 90 or 100")
}

func (f *jobFlags) addBinding(cmd *cobra.Command) {
	f.addPrint(cmd, pricing.Paper80GSM)
	cmd.Flags().StringVar(&f.binding, "binding", string(pricing.BindingHardNormal), "Binding type")
	cmd.Flags().StringVar(&f.cover, "cover", string(pricing.CoverNone), "Cover for hard bindings: none, simple or premium")
}

func (f *jobFlags) addServices(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.services, "services", []string{string(pricing.PlagiarismCheck)},
		"Services: plagiarismCheck, plagiarismRemoval, aiCheck, aiRemoval")
}

func (f *jobFlags) printInput() (pricing.PrintInput, error) {
	grade, err := pricing.ParsePaperGrade(f.paper)
	if err != nil {
		return pricing.PrintInput{}, err
	}
	if f.bw < 0 || f.color < 0 {
		return pricing.PrintInput{}, fmt.Errorf("page counts cannot be negative")
	}
	return pricing.PrintInput{BWPages: f.bw, ColorPages: f.color, Copies: max(f.copies, 1), Grade: grade}, nil
}

func (f *jobFlags) bindingInput() (pricing.BindingInput, error) {
	p, err := f.printInput()
	if err != nil {
		return pricing.BindingInput{}, err
	}
	b, err := pricing.ParseBindingType(f.binding)
	if err != nil {
		return pricing.BindingInput{}, err
	}
	c, err := pricing.ParseCoverType(f.cover)
	if err != nil {
		return pricing.BindingInput{}, err
	}
	return pricing.BindingInput{Print: p, Binding: b, Cover: c}, nil
}

// selection applies the services in order through Toggle, so a removal
// listed after its check wins just as it does on the order form.
func (f *jobFlags) selection() (pricing.Selection, error) {
	var sel pricing.Selection
	for _, name := range f.services {
		svc, err := pricing.ParseService(name)
		if err != nil {
			return sel, err
		}
		if !sel.Any() {
			sel = pricing.SelectionOf(svc)
			continue
		}
		sel, _ = sel.Toggle(svc, true)
	}
	if !sel.Any() {
		return sel, fmt.Errorf("select at least one service")
	}
	return sel, nil
}
