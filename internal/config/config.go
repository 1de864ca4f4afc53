package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/primefind/internal/errors"
)

const (
	// EnvPrefix is the prefix for all environment variable overrides.
	EnvPrefix = "PRIMEFIND_"

	// DefaultConfigFile is the configuration file read when --config is absent.
	DefaultConfigFile = "config.json"

	// DefaultExponent sets the default upper bound to 2^20.
	DefaultExponent = 20

	// MinExponent and MaxExponent bound the 2^X notation.
	MinExponent = 1
	MaxExponent = 30

	// MaxUpperBound is the largest N accepted, whether given as 2^X or as an
	// explicit number.
	MaxUpperBound = 1 << MaxExponent
)

// EmitMode selects when discovered primes are reported.
type EmitMode string

const (
	// EmitImmediate reports each prime as soon as a worker finds it.
	EmitImmediate EmitMode = "immediate"
	// EmitDeferred reports the sorted set once every worker has finished.
	EmitDeferred EmitMode = "wait"
)

// ParseEmitMode parses a print mode name. "deferred" is accepted as an alias
// of "wait".
func ParseEmitMode(s string) (EmitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "immediate":
		return EmitImmediate, nil
	case "wait", "deferred":
		return EmitDeferred, nil
	}
	return "", apperrors.ValidationError{Field: "print_mode", Message: fmt.Sprintf("unknown print mode %q (want immediate or wait)", s)}
}

// Scheme selects the work division strategy.
type Scheme string

const (
	// SchemeRange gives each worker a contiguous candidate range.
	SchemeRange Scheme = "range"
	// SchemeDivisibility also fans out each candidate's trial divisors.
	SchemeDivisibility Scheme = "divisibility"
	// SchemeAll runs every scheme and compares the results.
	SchemeAll Scheme = "all"
)

// AllSchemes lists the concrete schemes in comparison order.
var AllSchemes = []Scheme{SchemeRange, SchemeDivisibility}

// ParseScheme parses a division scheme name.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "range":
		return SchemeRange, nil
	case "divisibility", "divisor":
		return SchemeDivisibility, nil
	case "all":
		return SchemeAll, nil
	}
	return "", apperrors.ValidationError{Field: "division_scheme", Message: fmt.Sprintf("unknown scheme %q (want range, divisibility or all)", s)}
}

// SearchConfig is the validated input of a single search run.
type SearchConfig struct {
	Workers    int
	UpperBound int
	EmitMode   EmitMode
	Scheme     Scheme
}

// Validate checks the invariants required before a run may start.
func (c SearchConfig) Validate() error {
	if c.Workers < 1 {
		return apperrors.ValidationError{Field: "num_threads", Message: "must be greater than zero"}
	}
	if c.UpperBound < 1 {
		return apperrors.ValidationError{Field: "max_number", Message: "must be at least 1"}
	}
	if c.UpperBound > MaxUpperBound {
		return apperrors.ValidationError{Field: "max_number", Message: fmt.Sprintf("must not exceed %d (2^%d)", MaxUpperBound, MaxExponent)}
	}
	switch c.EmitMode {
	case EmitImmediate, EmitDeferred:
	default:
		return apperrors.ValidationError{Field: "print_mode", Message: fmt.Sprintf("unknown print mode %q", c.EmitMode)}
	}
	switch c.Scheme {
	case SchemeRange, SchemeDivisibility:
	default:
		return apperrors.ValidationError{Field: "division_scheme", Message: fmt.Sprintf("scheme %q cannot drive a single run", c.Scheme)}
	}
	return nil
}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Threads is the number of workers.
	Threads int
	// Exponent sets the upper bound to 2^Exponent when MaxNumber is zero.
	Exponent int
	// MaxNumber is an explicit upper bound that takes precedence over Exponent.
	MaxNumber int
	// PrintMode is "immediate" or "wait".
	PrintMode string
	// Scheme is "range", "divisibility" or "all".
	Scheme string

	ConfigFile  string
	Configure   bool
	Save        bool
	OutputFile  string
	MetricsFile string
	LogLevel    string
	Completion  string

	Quiet     bool
	Details   bool
	TUI       bool
	NoColor   bool
	Calibrate bool
}

// UpperBound returns the resolved N of the search.
func (c AppConfig) UpperBound() int {
	if c.MaxNumber > 0 {
		return c.MaxNumber
	}
	if c.Exponent < MinExponent || c.Exponent > MaxExponent {
		return 0
	}
	return 1 << c.Exponent
}

// Schemes expands the configured scheme into the concrete schemes to run.
func (c AppConfig) Schemes() []Scheme {
	s, err := ParseScheme(c.Scheme)
	if err != nil {
		return nil
	}
	if s == SchemeAll {
		return AllSchemes
	}
	return []Scheme{s}
}

// SearchConfig builds the run configuration for one concrete scheme.
func (c AppConfig) SearchConfig(scheme Scheme) SearchConfig {
	mode, _ := ParseEmitMode(c.PrintMode)
	return SearchConfig{
		Workers:    c.Threads,
		UpperBound: c.UpperBound(),
		EmitMode:   mode,
		Scheme:     scheme,
	}
}

// Validate checks the application configuration for consistency.
func (c AppConfig) Validate() error {
	if c.Threads < 1 {
		return apperrors.ValidationError{Field: "threads", Message: "must be greater than zero"}
	}
	if c.MaxNumber < 0 {
		return apperrors.ValidationError{Field: "max", Message: "must not be negative"}
	}
	if c.MaxNumber > MaxUpperBound {
		return apperrors.ValidationError{Field: "max", Message: fmt.Sprintf("must not exceed %d (2^%d)", MaxUpperBound, MaxExponent)}
	}
	if c.MaxNumber == 0 && (c.Exponent < MinExponent || c.Exponent > MaxExponent) {
		return apperrors.ValidationError{Field: "exponent", Message: fmt.Sprintf("must be between %d and %d", MinExponent, MaxExponent)}
	}
	if _, err := ParseEmitMode(c.PrintMode); err != nil {
		return err
	}
	if _, err := ParseScheme(c.Scheme); err != nil {
		return err
	}
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Threads:    EstimateDefaultWorkers(),
		Exponent:   DefaultExponent,
		PrintMode:  string(EmitDeferred),
		Scheme:     string(SchemeRange),
		ConfigFile: DefaultConfigFile,
		LogLevel:   "warn",
	}
}

// ParseConfig parses command-line arguments into an AppConfig.
// Values not given on the command line are taken from PRIMEFIND_* environment
// variables, then from the JSON configuration file, then from Defaults.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments without the program name.
//   - errWriter: The writer receiving usage and parse errors.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp, a ConfigError or a ValidationError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [options]\n\nFinds every prime in [1, N] with concurrent workers.\n\nOptions:\n", programName)
		fs.PrintDefaults()
	}

	config := Defaults()
	fs.IntVar(&config.Threads, "threads", config.Threads, "Number of worker goroutines.")
	fs.IntVar(&config.Threads, "t", config.Threads, "Number of worker goroutines (shorthand).")
	fs.IntVar(&config.Exponent, "exponent", config.Exponent, "Search up to N = 2^X (1-30).")
	fs.IntVar(&config.Exponent, "x", config.Exponent, "Search up to N = 2^X (shorthand).")
	fs.IntVar(&config.MaxNumber, "max", 0, "Explicit upper bound N, at most 2^30 (overrides --exponent).")
	fs.IntVar(&config.MaxNumber, "n", 0, "Explicit upper bound N (shorthand).")
	fs.StringVar(&config.PrintMode, "print-mode", config.PrintMode, "When to report primes: 'immediate' or 'wait'.")
	fs.StringVar(&config.Scheme, "scheme", config.Scheme, "Division scheme: 'range', 'divisibility' or 'all'.")
	fs.StringVar(&config.ConfigFile, "config", config.ConfigFile, "Path to the JSON configuration file.")
	fs.BoolVar(&config.Configure, "configure", false, "Prompt for the configuration interactively and save it.")
	fs.BoolVar(&config.Save, "save", false, "Save the resolved configuration to the configuration file.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the sorted primes to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the sorted primes to this file (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file.")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level: debug, info, warn, error or disabled.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script: bash, zsh or fish.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Only print the prime count.")
	fs.BoolVar(&config.Quiet, "q", false, "Only print the prime count (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Show run details (tasks, CPU time, memory).")
	fs.BoolVar(&config.Details, "d", false, "Show run details (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Run with the interactive dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Benchmark worker counts and report the fastest.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	// Env may point at another file; resolve the path before reading it.
	if !isFlagSet(fs, "config") {
		config.ConfigFile = getEnvString("CONFIG", config.ConfigFile)
	}
	file, err := LoadFile(config.ConfigFile)
	if err != nil {
		return AppConfig{}, err
	}
	applyFileConfig(&config, file, fs)
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}
