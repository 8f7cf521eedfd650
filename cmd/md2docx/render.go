package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/hints"
	"github.com/alnah/go-md2docx/internal/schema"
	"github.com/alnah/go-md2docx/internal/templates"
)

// Sentinel errors for the render command.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadData           = errors.New("failed to read report data")
	ErrWriteReport        = errors.New("failed to write report")
	ErrReportFailed       = errors.New("report generation failed")
	ErrDuplicateOutput    = errors.New("output path already used by another report")
	ErrInvalidExtension   = errors.New("data file must have .yaml, .yml or .json extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// dataExtensions are the report data file extensions render accepts.
var dataExtensions = []string{".yaml", ".yml", ".json"}

// ReportRenderer is the interface for the rendering service.
type ReportRenderer interface {
	Render(ctx context.Context, tpl md2docx.Template, data map[string]any) (*md2docx.Result, error)
}

// Compile-time interface implementation check.
var _ ReportRenderer = (*md2docx.Renderer)(nil)

// DataFile is a report data file and the directory its report goes to.
type DataFile struct {
	InputPath string
	OutputDir string
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderJob groups what every render of a batch shares.
type renderJob struct {
	renderer  ReportRenderer
	template  md2docx.Template
	validator md2docx.DataValidator

	mu      sync.Mutex
	claimed map[string]string // output path -> input path
}

// runRender renders every data file named by positionalArgs.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadSettings(&flags.common, env)
	if err != nil {
		return err
	}
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	files, err := discoverDataFiles(positional, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no data files found in %s", ErrNoInput, strings.Join(positional, ", "))
	}

	tpl, err := resolveTemplate(flags.template, cfg)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cfg, env)
	if err != nil {
		return err
	}

	validator, err := loadValidator(cfg.Data.Schema)
	if err != nil {
		return err
	}

	workers := resolveWorkers(cfg.Render.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Template: %s (%s)\n", tpl.Name, templateSource(tpl))
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	job := &renderJob{
		renderer:  renderer,
		template:  tpl,
		validator: validator,
		claimed:   make(map[string]string),
	}
	results := renderBatch(ctx, job, files, workers)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed: %w", failed, len(results), firstError(results))
	}
	return nil
}

// mergeRenderFlags overrides config values with explicitly set flags.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	mergeMarkdownFlags(&f.markdown, cfg)
	if f.output != "" {
		cfg.Output.DefaultDir = f.output
	}
	if f.templatesDir != "" {
		cfg.Templates.Dir = f.templatesDir
	}
	if f.dateFormat != "" {
		cfg.Date.Format = f.dateFormat
	}
	if f.schema != "" {
		cfg.Data.Schema = f.schema
	}
	if f.workers > 0 {
		cfg.Render.Workers = f.workers
	}
}

// resolveTemplate loads the template named by the flag, or the configured default.
// A missing template error lists the available names.
func resolveTemplate(nameOrPath string, cfg *config.Config) (md2docx.Template, error) {
	if nameOrPath == "" {
		nameOrPath = cfg.Templates.Default
	}
	if nameOrPath == "" {
		nameOrPath = templates.DefaultName
	}

	store, err := templates.NewStore(cfg.Templates.Dir)
	if err != nil {
		return md2docx.Template{}, err
	}

	t, err := store.Resolve(nameOrPath)
	if err != nil {
		if errors.Is(err, templates.ErrTemplateNotFound) && !fileutil.IsFilePath(nameOrPath) {
			names, _ := store.Names()
			return md2docx.Template{}, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(names))
		}
		return md2docx.Template{}, err
	}

	return md2docx.Template{
		Name:   t.Name,
		Format: md2docx.Format(t.Format),
		Path:   t.Path,
		Data:   t.Data,
	}, nil
}

func templateSource(t md2docx.Template) string {
	if t.Path == "" {
		return "built-in"
	}
	return t.Path
}

// newRenderer builds a renderer from the resolved configuration.
func newRenderer(cfg *config.Config, env *Environment) (*md2docx.Renderer, error) {
	opts := []md2docx.Option{
		md2docx.WithMediaRoot(cfg.Media.Root),
		md2docx.WithClock(env.Now),
	}
	if cfg.Date.Format != "" {
		opts = append(opts, md2docx.WithDateFormat(cfg.Date.Format))
	}
	if cfg.Markdown.Highlight != "" {
		opts = append(opts, md2docx.WithHighlighting(cfg.Markdown.Highlight))
	}
	return md2docx.NewRenderer(opts...)
}

// loadValidator returns the schema validator for report data. An empty path
// uses the built-in report schema.
func loadValidator(path string) (md2docx.DataValidator, error) {
	if path == "" {
		return schema.Default()
	}
	return schema.Load(path)
}

// discoverDataFiles expands files and directories into data files.
// Reports go to outputDir, mirroring sub-directories of a directory argument,
// or next to their data file when outputDir is empty.
func discoverDataFiles(paths []string, outputDir string) ([]DataFile, error) {
	var files []DataFile
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadData, err)
		}

		if !info.IsDir() {
			if !isDataFile(p) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(p))
			}
			files = append(files, DataFile{InputPath: p, OutputDir: reportDir(p, outputDir, "")})
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !isDataFile(path) {
				return nil
			}
			files = append(files, DataFile{InputPath: path, OutputDir: reportDir(path, outputDir, p)})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isDataFile(path string) bool {
	return slices.Contains(dataExtensions, strings.ToLower(filepath.Ext(path)))
}

// reportDir determines the directory a report for inputPath is written to.
func reportDir(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return filepath.Dir(inputPath)
	}
	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(rel))
		}
	}
	return outputDir
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return min(max(runtime.GOMAXPROCS(0), 1), config.MaxWorkers)
}

// renderBatch renders files concurrently. Results keep the order of files.
func renderBatch(ctx context.Context, job *renderJob, files []DataFile, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}
	workers = min(max(workers, 1), len(files))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = job.renderFile(ctx, files[idx])
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders a single data file and returns the result.
func (j *renderJob) renderFile(ctx context.Context, f DataFile) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: f.InputPath}
	done := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	raw, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return done(fmt.Errorf("%w: %v", ErrReadData, err))
	}

	data, err := md2docx.LoadContextWith(raw, j.validator)
	if err != nil {
		return done(err)
	}

	res, err := j.renderer.Render(ctx, j.template, data)
	if err != nil {
		return done(err)
	}
	if res.Failure != nil {
		return done(fmt.Errorf("%w: %s", ErrReportFailed, res.Failure.Message()))
	}

	outPath := filepath.Join(f.OutputDir, res.Filename)
	if err := j.claim(outPath, f.InputPath); err != nil {
		return done(err)
	}
	result.OutputPath = outPath

	if err := os.MkdirAll(f.OutputDir, dirPermissions); err != nil {
		return done(fmt.Errorf("%w: creating output directory: %v", ErrWriteReport, err))
	}
	if err := fileutil.WriteFileAtomic(outPath, res.Document, filePermissions); err != nil {
		return done(fmt.Errorf("%w: %v", ErrWriteReport, err))
	}

	return done(nil)
}

// claim reserves outPath for input so two reports with the same title in one
// batch do not overwrite each other.
func (j *renderJob) claim(outPath, input string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if prev, ok := j.claimed[outPath]; ok {
		return fmt.Errorf("%w: %s (also produced by %s)", ErrDuplicateOutput, outPath, prev)
	}
	j.claimed[outPath] = input
	return nil
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in input order.
func firstError(results []RenderResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs render results and returns the number of failures.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
