package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/hanoi/internal/config"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List difficulty tiers",
	Long:  `Display the named difficulty tiers accepted by 'play --tier'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tiers := config.Tiers()

		if jsonOutput {
			type tierOutput struct {
				config.Tier
				MinMoves uint64 `json:"minMoves"`
			}
			out := make([]tierOutput, 0, len(tiers))
			for _, t := range tiers {
				out = append(out, tierOutput{Tier: t, MinMoves: t.MinMoves()})
			}
			return outputJSON(cmd.OutOrStdout(), out)
		}

		out := newPrinter(cmd.OutOrStdout())
		out.Section("Difficulty Tiers")
		rows := make([][]string, 0, len(tiers))
		for _, t := range tiers {
			rows = append(rows, []string{t.Name, fmt.Sprintf("%d", t.Disks), fmt.Sprintf("%d", t.MinMoves())})
		}
		out.Table([]string{"Tier", "Disks", "Minimum"}, rows)
		return nil
	},
}
