package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/ioschema"
	"github.com/spf13/cobra"
)

// clearCmd removes all rows while keeping the schema.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored results",
	Long: `Delete every skipper, race and result while keeping the schema
in place. The deletion runs in a single transaction and the removed row
counts are written to the log.

Use --force to skip confirmation.

Examples:
  regattadb clear
  regattadb clear --force`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolP("force", "f",
		false, "delete all rows without confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		gn.Warn("\nWarning: This deletes ALL stored regatta data.")
		ok, err := confirm("\nDo you want to continue? (yes/no): ")
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}
	// An interactive or --force confirmation is an explicit destructive
	// approval.
	cfg.Database.AllowDestructive = true

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	mgr := ioschema.NewManager(cfg, op)
	res, err := mgr.Clear(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Database cleared")
	gn.Info("  Skippers removed: <em>%s</em>",
		humanize.Comma(int64(res.Skippers)))
	gn.Info("  Races removed:    <em>%s</em>",
		humanize.Comma(int64(res.Races)))
	gn.Info("  Results removed:  <em>%s</em>",
		humanize.Comma(int64(res.Results)))

	return nil
}
