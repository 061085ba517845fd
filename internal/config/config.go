package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cescofry/recp/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envDebug    = "RECP_DEBUG"
	envTrace    = "RECP_TRACE"
	envLogFile  = "RECP_LOG_FILE"
	envShell    = "SHELL"
	envHome     = "HOME"
	envHistFile = "HISTFILE"
)

const usageText = `Usage: recp [flags] [path/to/.recp]

recp compiles a list of terminal commands (recipes) that can be selected with
the up and down keys and run, copied, or deleted. Shell history is listed
alongside and any entry can be saved as a new recipe.

recp looks for a .recp file in the calling directory and then in each parent
directory. When none is found it falls back to one in the home directory.
A path to a .recp file can be given as an argument instead.

Flags:
`

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The optional
// config path may appear before, between, or after flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs, values := newFlagSet(env)
	fs.SetOutput(new(strings.Builder))

	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return Config{}, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}
	if len(positional) > 1 {
		return Config{}, fmt.Errorf("expected at most one config path, got %d: %s", len(positional), strings.Join(positional, " "))
	}

	debug, trace, logFile := *values.debug, *values.trace, *values.logFile

	var path string
	if len(positional) == 1 {
		path = positional[0]
	}

	cfg := Config{
		App: app.Config{
			ConfigPath: path,
			Debug:      debug,
			Shell:      envOrDefault(env, envShell, ""),
			Home:       envOrDefault(env, envHome, ""),
			HistFile:   envOrDefault(env, envHistFile, ""),
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		Flags: map[string]string{
			"path":    path,
			"debug":   strconv.FormatBool(debug),
			"trace":   strconv.FormatBool(trace),
			"logFile": logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

type flagValues struct {
	debug   *bool
	trace   *bool
	logFile *string
}

func newFlagSet(env map[string]string) (*flag.FlagSet, flagValues) {
	fs := flag.NewFlagSet("recp", flag.ContinueOnError)
	values := flagValues{
		debug:   fs.Bool("debug", envOrBool(env, envDebug, false), "show debug information on screen"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
	return fs, values
}

// Usage writes the help text, including flag defaults, to w.
func Usage(w io.Writer) {
	fs, _ := newFlagSet(nil)
	fmt.Fprint(w, usageText)
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits. --help prints usage and exits 0
// before the terminal is touched.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, flag.ErrHelp) {
		Usage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		Usage(os.Stderr)
		os.Exit(2)
	}
	return cfg
}
