package cmd

import (
	"context"
	"fmt"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/internal/ioask"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/sailstats/regattadb/pkg/query"
	"github.com/spf13/cobra"
)

// statusCmd reports database-wide statistics without the classifier.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database statistics",
	Long: `Show how many skippers, races and results the database holds
and the date range they span. Unlike ask, this command needs no
language-model API key.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusClassifier short-circuits the pipeline with a fixed
// database-status intent so the status command shares the ask code
// path without a network call.
type statusClassifier struct{}

func (statusClassifier) Classify(
	_ context.Context,
	_ string,
) (*query.Intent, error) {
	return &query.Intent{Type: query.TypeDatabaseStatus}, nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	answerer := ioask.New(statusClassifier{}, op.Pool())
	ans, err := answerer.Ask(ctx, "")
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fmt.Println(ans.Message)
	return nil
}
