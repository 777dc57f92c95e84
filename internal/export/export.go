package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"zonetree/internal/gateway"
	"zonetree/internal/model"
)

// RenderZone renders a zone's records as BIND-style lines: name, TTL, IN,
// type, content. Proxied records get a trailing comment since proxying has
// no zone-file representation.
func RenderZone(zone model.Zone, records []model.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, ";; zone: %s (%d records)\n", zone.Name, len(records))
	for _, r := range records {
		content := r.Content
		if strings.EqualFold(r.Type, model.TypeTXT) && !strings.HasPrefix(content, `"`) {
			content = fmt.Sprintf("%q", content)
		}
		fmt.Fprintf(&b, "%s\t%d\tIN\t%s\t%s", r.Name, r.TTL, strings.ToUpper(r.Type), content)
		if r.Proxied && model.Proxiable(r.Type) {
			b.WriteString("\t; proxied")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Zones fetches and writes one .zone file per zone into dir, fanning out
// one gateway call per zone. The first failure cancels the rest.
func Zones(ctx context.Context, gw gateway.Gateway, zones []model.Zone, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, z := range zones {
		zone := z
		g.Go(func() error {
			records, err := gw.ListRecords(ctx, zone.ID)
			if err != nil {
				return fmt.Errorf("list records for %s: %w", zone.Name, err)
			}
			out := RenderZone(zone, records)
			path := filepath.Join(dir, zone.Name+".zone")
			if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}
