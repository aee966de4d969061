package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/select-control/internal/app"
	"github.com/pelletier/go-toml/v2"
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

// Options is the TOML document supplying the option list and selection
// defaults. Example:
//
//	placeholder = "Choose a fruit…"
//	value = "banana"
//
//	[[option]]
//	value = "apple"
//	label = "Apple"
type Options struct {
	Placeholder string   `toml:"placeholder"`
	Value       string   `toml:"value"`
	Label       string   `toml:"label"`
	Open        bool     `toml:"open"`
	Option      []Option `toml:"option"`
}

// Option is a single entry in the options file.
type Option struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

const (
	envOptionsPath = "SELECT_CONTROL_OPTIONS"
	envWidth       = "SELECT_CONTROL_WIDTH"
	envHeight      = "SELECT_CONTROL_HEIGHT"
	envShowFooter  = "SELECT_CONTROL_FOOTER"
	envTrace       = "SELECT_CONTROL_TRACE"
	envLogFile     = "SELECT_CONTROL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("select-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	optionsPath := fs.String("options", envOrDefault(env, envOptionsPath, ""), "path to a TOML file describing the options list")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	appCfg := app.Config{
		Width:      *width,
		Height:     *height,
		ShowFooter: *footer,
	}

	opts, err := loadOptions(*optionsPath)
	if err != nil {
		return Config{}, err
	}
	applyOptions(&appCfg, opts)

	cfg := Config{
		App: appCfg,
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"options": *optionsPath,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// loadOptions reads the TOML options file. An empty path yields the built-in
// demo option set so the program runs out of the box.
func loadOptions(path string) (Options, error) {
	if strings.TrimSpace(path) == "" {
		return defaultOptions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options file %s: %w", path, err)
	}
	if len(opts.Option) == 0 {
		return Options{}, fmt.Errorf("options file %s defines no options", path)
	}
	return opts, nil
}

func applyOptions(cfg *app.Config, opts Options) {
	cfg.Placeholder = opts.Placeholder
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Select an option…"
	}
	cfg.InitialValue = opts.Value
	cfg.ValueLabel = opts.Label
	cfg.DefaultOpen = opts.Open
	cfg.Options = make([]app.Option, 0, len(opts.Option))
	for _, opt := range opts.Option {
		cfg.Options = append(cfg.Options, app.Option{Value: opt.Value, Label: opt.Label})
	}
}

func defaultOptions() Options {
	return Options{
		Placeholder: "Select a fruit…",
		Option: []Option{
			{Value: "apple", Label: "Apple"},
			{Value: "banana", Label: "Banana"},
			{Value: "avocado", Label: "Avocado"},
			{Value: "blueberry", Label: "Blueberry"},
			{Value: "cherry", Label: "Cherry"},
			{Value: "grape", Label: "Grape"},
			{Value: "kiwi", Label: "Kiwi"},
			{Value: "lemon", Label: "Lemon"},
			{Value: "mango", Label: "Mango"},
			{Value: "orange", Label: "Orange"},
			{Value: "peach", Label: "Peach"},
			{Value: "pear", Label: "Pear"},
			{Value: "plum", Label: "Plum"},
			{Value: "raspberry", Label: "Raspberry"},
			{Value: "strawberry", Label: "Strawberry"},
		},
	}
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

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.App.Options) == 0 {
		return fmt.Errorf("no options configured")
	}
	return nil
}
