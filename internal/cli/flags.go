// Package cli parses the binary's command line and assembles the demo
// configuration from its file and environment layers.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Options is the parsed command line. Mode is "gui" or "combine".
type Options struct {
	Mode string

	// GUI mode
	ConfigPath string // YAML design-token file, empty = defaults
	Watch      bool   // hot-reload the token file

	// combine mode
	CombineRoot string
	CombineOut  string
	CombineExts []string
}

// ParseFlags parses args (excluding the program name). A nil Options with
// nil error means help was requested and printed.
func ParseFlags(args []string) (*Options, error) {
	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		PrintUsage()
		return nil, nil
	}

	if len(args) > 0 && args[0] == "combine" {
		return parseCombineFlags(args[1:])
	}
	return parseGUIFlags(args)
}

func parseGUIFlags(args []string) (*Options, error) {
	opts := &Options{Mode: "gui"}

	fs := flag.NewFlagSet("px-responsive", flag.ContinueOnError)
	fs.StringVar(&opts.ConfigPath, "config", "", "YAML design-token file")
	fs.BoolVar(&opts.Watch, "watch", false, "Hot-reload the design-token file on change")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.Watch && opts.ConfigPath == "" {
		fmt.Fprintf(os.Stderr, "Error: -watch requires -config\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}
	return opts, nil
}

func parseCombineFlags(args []string) (*Options, error) {
	opts := &Options{
		Mode:        "combine",
		CombineRoot: ".",
		CombineOut:  "combined.txt",
	}
	exts := ".go,.md,.yaml,.yml,.txt"

	fs := flag.NewFlagSet("px-responsive combine", flag.ContinueOnError)
	fs.StringVar(&opts.CombineRoot, "dir", opts.CombineRoot, "Directory to scan recursively")
	fs.StringVar(&opts.CombineOut, "out", opts.CombineOut, "Output file")
	fs.StringVar(&exts, "ext", exts, "Comma-separated list of file extensions to include")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for _, e := range strings.Split(exts, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		opts.CombineExts = append(opts.CombineExts, strings.ToLower(e))
	}
	return opts, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `px-responsive

Usage: px-responsive [flags]            (demo window)
       px-responsive combine [flags]    (combine text files)
       px-responsive help               (show this message)

DEMO MODE:
  -config <path>        YAML design-token file (defaults built in)
  -watch                Hot-reload the token file on change (requires -config)

  Environment overrides (applied after the file):
  PXR_CONFIG            Token file path (same as -config)
  PXR_MAX_WIDTH         Effective-width cap
  PXR_MOBILE_BREAKPOINT, PXR_TABLET_BREAKPOINT
  PXR_MIN_SCALE, PXR_MAX_SCALE, PXR_MAX_TEXT_SCALE

COMBINE MODE:
  -dir <path>           Directory to scan recursively (default: .)
  -out <path>           Output file (default: combined.txt)
  -ext <list>           Extensions to include (default: .go,.md,.yaml,.yml,.txt)
`)
}
