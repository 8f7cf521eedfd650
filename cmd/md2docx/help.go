package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render report data files into DOCX reports")
	fmt.Fprintln(w, "  runs       Show the runs a markdown file converts to")
	fmt.Fprintln(w, "  templates  List available report templates")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2docx help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx render <data>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render YAML or JSON report data into DOCX reports named after their title.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  data     Data files (.yaml, .yml, .json) or directories")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to data file)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Template:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or .docx path (default: default)")
	fmt.Fprintln(w, "      --templates-dir <dir> Custom template directory")
	fmt.Fprintln(w, "      --schema <path>       JSON schema for report data")
	fmt.Fprintln(w, "      --date-format <s>     Default layout for format_date")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long, datetime")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "  -m, --media-root <dir>    Directory holding uploaded_files/")
	fmt.Fprintln(w, "                            (env: MD2DOCX_MEDIA_ROOT)")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for fenced code")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printRunsUsage prints usage for the runs command.
func printRunsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx runs <markdown|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file and print the resulting runs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, yaml (default: text)")
	fmt.Fprintln(w, "  -m, --media-root <dir>    Directory holding uploaded_files/")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for fenced code")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2docx templates [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List built-in templates and those found in the template directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --templates-dir <dir> Custom template directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdRuns:
		printRunsUsage(env.Stdout)
	case cmdTemplates:
		printTemplatesUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: md2docx version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: md2docx help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
