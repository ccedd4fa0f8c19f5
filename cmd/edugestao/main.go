// Command edugestao manages the school registry from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"edugestao/internal/config"
	"edugestao/internal/core"
	"edugestao/internal/kv"
	"edugestao/internal/logger"
)

var exitFunc = os.Exit

const usage = `usage: edugestao <command> [flags] [args]

commands:
  seed                         write the initial records if the registry is empty
  list <kind> [flags]          list records (-q term, -school id, -class id, -active yes|no, -json)
  add <kind> field=value...    create a record
  update <kind> <id> field=value...
                               change fields of a record
  delete <kind> <id>           remove a school, class or role
  toggle <kind> <id>           enable or disable a teacher or student
  export <kind> [-dir path]    write the kind as CSV
  stats [-json]                show registry counts
  report [-prompt]             generate the executive report
  login -user U -password P -school ID
                               open a session for a user at a school

kinds: school, class, teacher, student, role`

func main() {
	code := cli(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	exitFunc(code)
}

// app carries what every command needs.
type app struct {
	cfg    config.Config
	store  *core.Store
	log    zerolog.Logger
	stdout io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"seed":   runSeed,
	"list":   runList,
	"add":    runAdd,
	"update": runUpdate,
	"delete": runDelete,
	"toggle": runToggle,
	"export": runExport,
	"stats":  runStats,
	"report": runReport,
	"login":  runLogin,
}

func cli(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		if _, err := fmt.Fprintln(stderr, usage); err != nil {
			return 1
		}
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		if _, err := fmt.Fprintf(stderr, "unknown command %q\n%s\n", args[0], usage); err != nil {
			return 1
		}
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	log := logger.New(stderr, cfg.LogLevel, cfg.LogFormat)

	var (
		opts []core.Option
		reg  *prometheus.Registry
	)
	opts = append(opts, core.WithLogger(log))
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		rec, err := core.NewPrometheusMetricsRecorder(reg)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "metrics: %v\n", err)
			return 1
		}
		opts = append(opts, core.WithMetrics(rec))
	}

	backend, err := kv.Open(ctx, cfg.Storage())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "open storage: %v\n", err)
		return 1
	}
	defer func() {
		if cerr := backend.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("close storage")
		}
	}()

	a := &app{cfg: cfg, store: core.NewStore(backend, opts...), log: log, stdout: stdout}
	var runErr error
	// seed reports its own outcome.
	if args[0] != "seed" {
		runErr = bootstrap(ctx, a)
	}
	if runErr == nil {
		runErr = cmd(ctx, a, args[1:])
	}

	if reg != nil {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			log.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("write metrics")
		}
	}

	if runErr != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", args[0], runErr)
		if errors.Is(runErr, flag.ErrHelp) || errors.Is(runErr, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func bootstrap(ctx context.Context, a *app) error {
	seeded, err := a.store.Bootstrap(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	if seeded {
		a.log.Info().Msg("empty registry seeded with initial records")
	}
	return nil
}

var errUsage = errors.New("invalid arguments")

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseInterspersed lets flags follow positional arguments, as in
// "list student -q ana".
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, usageErr("%v", err)
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
