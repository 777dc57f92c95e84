package cli

import (
	"github.com/spf13/cobra"

	"zonetree/internal/model"
)

// zoneList gives the zone listing its tabular shape.
type zoneList []model.Zone

func (zoneList) TableHeader() []string { return []string{"ID", "NAME"} }

func (zs zoneList) TableRows() [][]string {
	rows := make([][]string, 0, len(zs))
	for _, z := range zs {
		rows = append(rows, []string{z.ID, z.Name})
	}
	return rows
}

func newZonesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List zones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, _, err := newGateway(app)
			if err != nil {
				return err
			}
			zones, err := gw.ListZones(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, zoneList(zones))
		},
	}
}
