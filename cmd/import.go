package cmd

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/internal/ioimport"
	"github.com/spf13/cobra"
)

// importCmd loads one CSV result sheet into the database.
var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a CSV result sheet",
	Long: `Import sailing results from a CSV file.

The first line must be a header; recognized columns are matched
case-insensitively with built-in aliases (helm, event, place and so
on) plus any user aliases from columns.yaml. Every row needs a regatta
name, a skipper and a parseable date.

The upload is all-or-nothing: a single bad row rejects the whole file
with its line number, and nothing is stored.

Examples:
  regattadb import results.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	imp := ioimport.New(cfg, op)
	res, err := imp.Import(ctx, args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nImport complete in %s",
		gnfmt.TimeString(res.Elapsed.Seconds()))
	gn.Info("  Rows imported:    <em>%s</em>",
		humanize.Comma(int64(res.RowsImported)))
	gn.Info("  Distinct sailors: <em>%s</em>",
		humanize.Comma(int64(res.Skippers)))
	gn.Info("  Race results:     <em>%s</em>",
		humanize.Comma(int64(res.Results)))

	return nil
}
