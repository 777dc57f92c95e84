package main

import (
	"os"
	"strings"

	"zonetree/internal/cli"
)

func looksLikeZone(s string) bool {
	s = strings.TrimSpace(s)
	// Zone names always carry a dot; keep it permissive beyond that.
	return strings.Contains(s, ".") && !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, ".")
}

// rewriteDirectZoneLookupArgs makes `zonetree <zone>` work like
// `zonetree records list <zone>`.
//
// Cobra treats the first non-flag token as a subcommand, so we rewrite argv
// before parsing. Persistent flags may come first (e.g. `zonetree --format
// json <zone>`), so we find the first positional token, not just argv[1].
func rewriteDirectZoneLookupArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--token":    true,
		"--endpoint": true,
		"--data":     true,
		"--format":   true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && looksLikeZone(argv[i+1]) {
				out := make([]string, 0, len(argv)+2)
				out = append(out, argv[:i+1]...)
				out = append(out, "records", "list")
				out = append(out, argv[i+1:]...)
				return out
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// --flag=value form carries its value already.
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token.
		if looksLikeZone(a) {
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "records", "list")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectZoneLookupArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
