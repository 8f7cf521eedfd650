package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// markdownFlags holds flags affecting markdown conversion.
type markdownFlags struct {
	mediaRoot string
	highlight string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common       commonFlags
	markdown     markdownFlags
	output       string
	template     string
	templatesDir string
	dateFormat   string
	schema       string
	workers      int
}

// runsFlags holds flags for the runs command.
type runsFlags struct {
	common   commonFlags
	markdown markdownFlags
	format   string
}

// templatesFlags holds flags for the templates command.
type templatesFlags struct {
	common       commonFlags
	templatesDir string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addMarkdownFlags adds markdown conversion flags to a FlagSet.
func addMarkdownFlags(fs *flag.FlagSet, f *markdownFlags) {
	fs.StringVarP(&f.mediaRoot, "media-root", "m", "", "directory holding uploaded_files/")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for fenced code (\"\" = off)")
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.template, "template", "t", "", "template name or .docx path")
	fs.StringVar(&f.templatesDir, "templates-dir", "", "custom template directory")
	fs.StringVar(&f.dateFormat, "date-format", "", "default format_date layout or preset")
	fs.StringVar(&f.schema, "schema", "", "JSON schema for report data")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)

	fs.Usage = func() { printRenderUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseRunsFlags parses runs command flags and returns positional args.
func parseRunsFlags(args []string, stderr io.Writer) (*runsFlags, []string, error) {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &runsFlags{}

	fs.StringVarP(&f.format, "format", "f", runsFormatText, "output format: text, yaml")

	addCommonFlags(fs, &f.common)
	addMarkdownFlags(fs, &f.markdown)

	fs.Usage = func() { printRunsUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTemplatesFlags parses templates command flags.
func parseTemplatesFlags(args []string, stderr io.Writer) (*templatesFlags, []string, error) {
	fs := flag.NewFlagSet("templates", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &templatesFlags{}

	fs.StringVar(&f.templatesDir, "templates-dir", "", "custom template directory")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printTemplatesUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
