package tui

const helpMarkdown = `# zonetree

## Keys

- ` + "`enter`" + ` — load the selected zone's records, or edit the selected record
- ` + "`a`" + ` — add a record under the selected (or enclosing) zone
- ` + "`e`" + ` — edit the selected record
- ` + "`d`" + ` — delete the selected record (asks for confirmation)
- ` + "`r`" + ` — refresh the zone list
- ` + "`j`/`k`, `g`/`G`" + ` — move / jump first / jump last
- ` + "`?`" + ` — this help, ` + "`q`" + ` — quit

## Record fields

- **Name**: short form relative to the zone; ` + "`@`" + ` means the zone apex.
- **TTL**: seconds; ` + "`1`" + ` means automatic.
- **Proxied**: only meaningful for A/AAAA/CNAME records; other types carry
  the flag but the API ignores it.

Semantic validation (is this content a valid AAAA address?) is left to the
API: anything non-empty is submitted as-is.`

func renderHelp(width int) string {
	body := renderMarkdown(helpMarkdown, modalBodyWidth(width))
	return renderModalBox(width, "Help", body)
}
