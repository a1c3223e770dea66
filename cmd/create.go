package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/ioschema"
	"github.com/spf13/cobra"
)

// createCmd creates or refreshes the database schema.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create database schema",
	Long: `Create the RegattaDB schema from scratch.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates skippers, races and results tables using GORM AutoMigrate

Use --force to skip confirmation and drop existing tables.

Examples:
  regattadb create
  regattadb create --force`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolP("force", "f",
		false, "drop existing tables without confirmation")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	force, _ := cmd.Flags().GetBool("force")

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	overwrite := false
	if hasTables {
		if !force {
			gn.Warn("\nWarning: Database contains existing tables.")
			gn.Warn("Creating schema will drop ALL existing tables and data.")
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
		overwrite = true
		// An interactive or --force confirmation is an explicit
		// destructive approval.
		cfg.Database.AllowDestructive = true
	}

	sm := ioschema.NewManager(cfg, op)

	gn.Info("Creating schema using GORM AutoMigrate...")
	if err := sm.Create(ctx, overwrite); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'regattadb import <file.csv>' to load results")
	gn.Info("  - Run 'regattadb ask \"...\"' to query them")

	return nil
}
