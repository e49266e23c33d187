// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --course, --lesson, --theme, --mode, --export, --verbose, --version

package main

import "flag"

type cliArgs struct {
	course  string
	lesson  string
	theme   string
	mode    string
	export  string
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.course, "course", "", "Course id to open on startup")
	flag.StringVar(&args.lesson, "lesson", "", "Lesson id to open (requires -course; empty means first lesson)")
	flag.StringVar(&args.theme, "theme", "", "Theme name (built-in or a JSON file in the themes dir)")
	flag.StringVar(&args.mode, "mode", "", "Force display mode: light or dark (default: follow the terminal)")
	flag.StringVar(&args.export, "export", "", "Export the selected lesson to an HTML file and exit")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}
