package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"printshop/internal/app/ds"
	"printshop/internal/app/dsn"
	"printshop/internal/app/pricing"
	"printshop/internal/app/repository"

	"github.com/spf13/cobra"
)

func newOrdersCmd() *cobra.Command {
	var (
		limit       int
		serviceType string
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List recent orders from the database",
		Long: `List recent orders, newest first.

The database connection is read from DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dsnStr := dsn.FromEnv()
			if dsnStr == "" {
				return fmt.Errorf("DSN string is empty. Check your .env file")
			}
			repo, err := repository.New(dsnStr)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer repo.Close()

			orders, total, err := repo.ListOrders(cmd.Context(), repository.OrderFilter{ServiceType: serviceType, Limit: limit})
			if err != nil {
				return err
			}
			writeOrders(cmd.OutOrStdout(), orders, total)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of orders to show")
	cmd.Flags().StringVar(&serviceType, "type", "", "Only print, binding or plagiarism orders")
	return cmd
}

func writeOrders(w io.Writer, orders []ds.Order, total int64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREFERENCE\tTYPE\tSTATUS\tTOTAL\tCONTACT\tCREATED")
	for _, o := range orders {
		contact := o.ContactEmail
		if contact == "" {
			contact = o.ContactPhone
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.Reference, o.ServiceType, o.Status, pricing.Rupees(o.TotalPrice), contact,
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d of %d orders\n", len(orders), total)
}
