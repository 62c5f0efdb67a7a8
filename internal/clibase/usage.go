// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"guardwalk/internal/version"
	"guardwalk/internal/writers"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – guard patrol simulator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -m, --map file              Map file(s) (repeatable, .gz ok) or '-' for STDIN")
		fmt.Fprintln(out, "      --config file           YAML run config (flags win over file values)")

		fmt.Fprintln(out, "\nSimulation:")
		fmt.Fprintf(out, "      --part string           visited | loops | both [%s]\n", def("part"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", strings.Join(writers.Formats(), " | "), def("output"))
		fmt.Fprintf(out, "      --positions             List individual positions [%s]\n", def("positions"))
		fmt.Fprintf(out, "      --pretty                ASCII map overlay (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-loop-exit-code int  Exit code when no loop obstruction exists [%s]\n", def("no-loop-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
