package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"zonetree/internal/export"
	"zonetree/internal/model"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [zone ...]",
		Short: "Write BIND-style zone files (all zones when none named)",
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, _, err := newGateway(app)
			if err != nil {
				return err
			}

			all, err := gw.ListZones(cmd.Context())
			if err != nil {
				return err
			}

			zones := all
			if len(args) > 0 {
				zones = make([]model.Zone, 0, len(args))
				byKey := map[string]model.Zone{}
				for _, z := range all {
					byKey[z.Name] = z
					byKey[z.ID] = z
				}
				for _, arg := range args {
					z, ok := byKey[arg]
					if !ok {
						return fmt.Errorf("zone not found: %q", arg)
					}
					zones = append(zones, z)
				}
			}

			if err := export.Zones(cmd.Context(), gw, zones, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d zone(s) to %s\n", color.GreenString("exported"), len(zones), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", ".", "Output directory for <zone>.zone files")

	return cmd
}
