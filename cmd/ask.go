package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/sailstats/regattadb/internal/ioask"
	"github.com/sailstats/regattadb/internal/ioclassify"
	"github.com/sailstats/regattadb/internal/iodb"
	"github.com/spf13/cobra"
)

// askCmd answers a free-text question about the stored results.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a free-text question about the results",
	Long: `Answer a free-text question about the stored regatta results.

The question is interpreted with a language model into a structured
intent (who, which club, which regatta, which year); the SQL itself is
built locally from fixed templates with positional parameters. The
model never writes SQL and the question text never reaches the
database except as query parameters.

Needs a Gemini API key (REGATTADB_CLASSIFIER_API_KEY).

Examples:
  regattadb ask "who won the Spring Cup in 2024?"
  regattadb ask "how has Ann Davis done this year?"
  regattadb ask "what is in the database?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	question := strings.Join(args, " ")

	classifier, err := ioclassify.New(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	answerer := ioask.New(classifier, op.Pool())
	ans, err := answerer.Ask(ctx, question)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fmt.Println(ans.Message)
	return nil
}
