package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"zonetree/internal/gateway"
	"zonetree/internal/journal"
	"zonetree/internal/model"
)

// recordList gives the record listing its tabular shape.
type recordList []model.Record

func (recordList) TableHeader() []string {
	return []string{"ID", "TYPE", "NAME", "CONTENT", "TTL", "PROXIED"}
}

func (rs recordList) TableRows() [][]string {
	rows := make([][]string, 0, len(rs))
	for _, r := range rs {
		proxied := "-"
		if model.Proxiable(r.Type) {
			proxied = strconv.FormatBool(r.Proxied)
		}
		rows = append(rows, []string{r.ID, r.Type, r.Name, r.Content, model.TTLLabel(r.TTL), proxied})
	}
	return rows
}

func newRecordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage DNS records",
	}
	cmd.AddCommand(newRecordsListCmd(app))
	cmd.AddCommand(newRecordsCreateCmd(app))
	cmd.AddCommand(newRecordsUpdateCmd(app))
	cmd.AddCommand(newRecordsDeleteCmd(app))
	return cmd
}

func newRecordsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <zone>",
		Short: "List a zone's records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, _, err := newGateway(app)
			if err != nil {
				return err
			}
			zone, err := resolveZone(cmd.Context(), gw, args[0])
			if err != nil {
				return err
			}
			records, err := gw.ListRecords(cmd.Context(), zone.ID)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, recordList(records))
		},
	}
}

func newRecordsCreateCmd(app *App) *cobra.Command {
	var (
		typ     string
		name    string
		content string
		ttl     int
		proxied bool
	)

	cmd := &cobra.Command{
		Use:   "create <zone>",
		Short: "Create a record ('@' or a short name are resolved against the zone)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, cfg, err := newGateway(app)
			if err != nil {
				return err
			}
			zone, err := resolveZone(cmd.Context(), gw, args[0])
			if err != nil {
				return err
			}

			payload := model.RecordPayload{
				Type:    strings.ToUpper(strings.TrimSpace(typ)),
				Name:    model.QualifyName(strings.TrimSpace(name), zone.Name),
				Content: strings.TrimSpace(content),
				TTL:     ttl,
				Proxied: proxied,
			}

			rec, err := gw.CreateRecord(cmd.Context(), zone.ID, payload)
			journalMutation(cmd.Context(), cfg.DataDir, journal.OpCreate, zone.Name, payload.Type, payload.Name, err)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, recordList{rec})
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Record type (A, AAAA, CNAME, MX, TXT, ...)")
	cmd.Flags().StringVar(&name, "name", "@", "Record name ('@' = zone apex)")
	cmd.Flags().StringVar(&content, "content", "", "Record content")
	cmd.Flags().IntVar(&ttl, "ttl", model.TTLAuto, "TTL in seconds (1 = automatic)")
	cmd.Flags().BoolVar(&proxied, "proxied", true, "Proxy through the edge (A/AAAA/CNAME only)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}

func newRecordsUpdateCmd(app *App) *cobra.Command {
	var (
		typ     string
		name    string
		content string
		ttl     int
		proxied bool
	)

	cmd := &cobra.Command{
		Use:   "update <zone> <record-id>",
		Short: "Update a record (unset flags keep current values)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, cfg, err := newGateway(app)
			if err != nil {
				return err
			}
			zone, err := resolveZone(cmd.Context(), gw, args[0])
			if err != nil {
				return err
			}
			current, err := findRecord(cmd.Context(), gw, zone.ID, args[1])
			if err != nil {
				return err
			}

			payload := model.RecordPayload{
				Type:    current.Type,
				Name:    current.Name,
				Content: current.Content,
				TTL:     current.TTL,
				Proxied: current.Proxied,
			}
			if cmd.Flags().Changed("type") {
				payload.Type = strings.ToUpper(strings.TrimSpace(typ))
			}
			if cmd.Flags().Changed("name") {
				payload.Name = model.QualifyName(strings.TrimSpace(name), zone.Name)
			}
			if cmd.Flags().Changed("content") {
				payload.Content = strings.TrimSpace(content)
			}
			if cmd.Flags().Changed("ttl") {
				payload.TTL = ttl
			}
			if cmd.Flags().Changed("proxied") {
				payload.Proxied = proxied
			}

			rec, err := gw.UpdateRecord(cmd.Context(), zone.ID, current.ID, payload)
			journalMutation(cmd.Context(), cfg.DataDir, journal.OpUpdate, zone.Name, payload.Type, payload.Name, err)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, recordList{rec})
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "Record type")
	cmd.Flags().StringVar(&name, "name", "", "Record name ('@' = zone apex)")
	cmd.Flags().StringVar(&content, "content", "", "Record content")
	cmd.Flags().IntVar(&ttl, "ttl", model.TTLAuto, "TTL in seconds (1 = automatic)")
	cmd.Flags().BoolVar(&proxied, "proxied", false, "Proxy through the edge (A/AAAA/CNAME only)")

	return cmd
}

func newRecordsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <zone> <record-id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, cfg, err := newGateway(app)
			if err != nil {
				return err
			}
			zone, err := resolveZone(cmd.Context(), gw, args[0])
			if err != nil {
				return err
			}
			rec, err := findRecord(cmd.Context(), gw, zone.ID, args[1])
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %s %s from %s? [y/N] ", rec.Type, rec.Name, zone.Name)
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if ans := strings.ToLower(strings.TrimSpace(line)); ans != "y" && ans != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}

			err = gw.DeleteRecord(cmd.Context(), zone.ID, rec.ID)
			journalMutation(cmd.Context(), cfg.DataDir, journal.OpDelete, zone.Name, rec.Type, rec.Name, err)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s %s\n", rec.Type, rec.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func findRecord(ctx context.Context, gw gateway.Gateway, zoneID, recordID string) (model.Record, error) {
	records, err := gw.ListRecords(ctx, zoneID)
	if err != nil {
		return model.Record{}, err
	}
	for _, r := range records {
		if r.ID == recordID {
			return r, nil
		}
	}
	return model.Record{}, fmt.Errorf("record not found in zone: %q", recordID)
}

// journalMutation mirrors the TUI dispatcher's audit trail for scripted
// mutations. Journal failures never fail the command.
func journalMutation(ctx context.Context, dataDir, op, zone, recordType, recordName string, opErr error) {
	outcome := journal.OutcomeOK
	if opErr != nil {
		outcome = opErr.Error()
	}
	_ = journal.New(dataDir).Append(ctx, journal.Entry{
		Operation:  op,
		Zone:       zone,
		RecordType: recordType,
		RecordName: recordName,
		Outcome:    outcome,
	})
}
