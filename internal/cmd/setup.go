package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WilliamWisten/DatabasteknikInl-mning/internal/database"
)

func newSetupCmd(opts *rootOptions) *cobra.Command {
	var (
		dropFirst bool
		seed      bool
	)

	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the shop schema and the AddToCart procedure",
		Long: `Creates the customer, shoe, size, color, inventory, orders and order_item
tables together with the AddToCart stored procedure.

With --seed a small demo catalog and three customers are inserted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			cfg, err := opts.load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.NewConnection(ctx, &cfg.DB)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if dropFirst {
				fmt.Fprintln(out, "Dropping existing tables...")
				if err := db.DropSchema(ctx); err != nil {
					return fmt.Errorf("failed to drop schema: %w", err)
				}
			}

			fmt.Fprintln(out, "Creating schema...")
			if err := db.SetupSchema(ctx); err != nil {
				return fmt.Errorf("failed to setup schema: %w", err)
			}

			if seed {
				fmt.Fprintln(out, "Seeding demo data...")
				if err := db.SeedDemoData(ctx); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
			}

			fmt.Fprintln(out, "Database setup complete.")
			return nil
		},
	}

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	setupCmd.Flags().BoolVar(&seed, "seed", false, "Insert demo catalog and customers")
	return setupCmd
}
