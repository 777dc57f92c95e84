package cli

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"zonetree/internal/journal"
)

// historyList gives journal entries their tabular shape. Outcomes are
// colored in table output; json/yaml carry the raw text.
type historyList []journal.Entry

func (historyList) TableHeader() []string {
	return []string{"AT", "OP", "ZONE", "RECORD", "OUTCOME"}
}

func (es historyList) TableRows() [][]string {
	rows := make([][]string, 0, len(es))
	for _, e := range es {
		outcome := color.GreenString(e.Outcome)
		if e.Outcome != journal.OutcomeOK {
			outcome = color.RedString(e.Outcome)
		}
		rows = append(rows, []string{
			e.At.Local().Format(time.DateTime),
			e.Operation,
			e.Zone,
			e.RecordType + " " + e.RecordName,
			outcome,
		})
	}
	return rows
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent mutations from the local journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(app)
			if err != nil {
				return err
			}
			entries, err := journal.New(cfg.DataDir).Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, historyList(entries))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max entries (0 = all)")

	return cmd
}
