// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --tour, --snapshot, --out, --width, --height, --verbose, --version

package main

import "flag"

type cliArgs struct {
	tour     string
	snapshot bool
	out      string
	width    int
	height   int
	verbose  bool
	version  bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.tour, "tour", "", "Path to a YAML tour file (default: built-in demo tour)")
	flag.BoolVar(&args.snapshot, "snapshot", false, "Render one frame to a PNG instead of running the TUI")
	flag.StringVar(&args.out, "out", "spotlight.png", "Output path for --snapshot")
	flag.IntVar(&args.width, "width", 400, "Snapshot viewport width in pixels")
	flag.IntVar(&args.height, "height", 800, "Snapshot viewport height in pixels")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
