package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	md2docx "github.com/alnah/go-md2docx"
	"github.com/alnah/go-md2docx/internal/config"
	"github.com/alnah/go-md2docx/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Command names.
const (
	cmdRender    = "render"
	cmdRuns      = "runs"
	cmdTemplates = "templates"
	cmdVersion   = "version"
	cmdHelp      = "help"
)

// Sentinel errors for command dispatch.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
)

func main() {
	verbose := hasVerboseFlag(os.Args[1:])

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case cmdRender:
		warnUnknownEnvVars(env.Stderr, os.Environ())
		err = runRender(ctx, rest, env)
	case cmdRuns:
		err = runRuns(ctx, rest, env)
	case cmdTemplates:
		err = runTemplates(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "md2docx %s\n", Version)
	case cmdHelp, "-h", "--help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(env.Stderr)
	}

	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var searched []string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if _, tried, ok := strings.Cut(err.Error(), "tried "); ok {
			searched = strings.Split(tried, ", ")
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, md2docx.ErrImageResolution):
		return hints.ForImageResolution()
	case errors.Is(err, md2docx.ErrUnsupportedFormat):
		return hints.ForUnsupportedFormat()
	case errors.Is(err, md2docx.ErrInvalidData), errors.Is(err, md2docx.ErrMissingTitle):
		return hints.ForInvalidData()
	case errors.Is(err, ErrWriteReport):
		return hints.ForOutputDirectory()
	}
	return ""
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
