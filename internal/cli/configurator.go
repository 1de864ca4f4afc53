// Package cli provides the terminal presentation layer: progress display,
// discovery lines, run reports, the interactive configurator and shell
// completion scripts.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/primefind/internal/config"
	apperrors "github.com/agbru/primefind/internal/errors"
	"github.com/agbru/primefind/internal/ui"
)

// ErrInputClosed is returned when the input ends before a valid answer.
var ErrInputClosed = errors.New("input closed before configuration was complete")

// Configurator prompts for the search settings on a line-oriented input.
// Invalid answers re-prompt; an empty answer keeps the current value.
type Configurator struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConfigurator creates a configurator reading answers from in and
// writing prompts to out.
func NewConfigurator(in io.Reader, out io.Writer) *Configurator {
	return &Configurator{reader: bufio.NewReader(in), out: out}
}

// AskConfigure asks whether the user wants to configure the settings.
func (c *Configurator) AskConfigure() (bool, error) {
	for {
		answer, err := c.prompt("Do you want to configure settings? (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
		c.invalid("please answer y or n")
	}
}

// Run prompts for every setting and returns cfg updated with the answers.
func (c *Configurator) Run(cfg config.AppConfig) (config.AppConfig, error) {
	c.printBanner()

	threads, err := c.askInt(fmt.Sprintf("Number of threads [%d]: ", cfg.Threads), cfg.Threads, 1, 0)
	if err != nil {
		return cfg, err
	}
	cfg.Threads = threads

	current := cfg.Exponent
	if current < config.MinExponent || current > config.MaxExponent {
		current = config.DefaultExponent
	}
	exp, err := c.askInt(fmt.Sprintf("Max number as 2^X, X in %d..%d [%d]: ", config.MinExponent, config.MaxExponent, current),
		current, config.MinExponent, config.MaxExponent)
	if err != nil {
		return cfg, err
	}
	cfg.Exponent = exp
	cfg.MaxNumber = 0

	mode, err := c.askChoice("Print mode: 1) immediate  2) wait [%d]: ",
		[]string{string(config.EmitImmediate), string(config.EmitDeferred)}, normalizeMode(cfg.PrintMode))
	if err != nil {
		return cfg, err
	}
	cfg.PrintMode = mode

	scheme, err := c.askChoice("Division scheme: 1) range  2) divisibility [%d]: ",
		[]string{string(config.SchemeRange), string(config.SchemeDivisibility)}, normalizeScheme(cfg.Scheme))
	if err != nil {
		return cfg, err
	}
	cfg.Scheme = scheme

	fmt.Fprintf(c.out, "%sConfiguration updated.%s\n", ui.ColorGreen(), ui.ColorReset())
	return cfg, nil
}

func normalizeMode(s string) string {
	m, _ := config.ParseEmitMode(s)
	return string(m)
}

func normalizeScheme(s string) string {
	sc, _ := config.ParseScheme(s)
	return string(sc)
}

func (c *Configurator) printBanner() {
	fmt.Fprintf(c.out, "\n%s╔══════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(c.out, "%s║%s     %sPrime Search - Configuration%s         %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(c.out, "%s╚══════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// askInt reads an integer >= lo, and <= hi when hi > 0.
func (c *Configurator) askInt(question string, current, lo, hi int) (int, error) {
	for {
		answer, err := c.prompt(question)
		if err != nil {
			return 0, err
		}
		if answer == "" && current >= lo && (hi <= 0 || current <= hi) {
			return current, nil
		}
		v, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			c.invalid("not a number: " + answer)
		case v < lo:
			c.invalid(fmt.Sprintf("must be at least %d", lo))
		case hi > 0 && v > hi:
			c.invalid(fmt.Sprintf("must be at most %d", hi))
		default:
			return v, nil
		}
	}
}

// askChoice reads a 1-based menu index. question receives the index of the
// current value as its only verb.
func (c *Configurator) askChoice(question string, options []string, current string) (string, error) {
	def := 0
	for i, o := range options {
		if o == current {
			def = i + 1
		}
	}
	for {
		answer, err := c.prompt(fmt.Sprintf(question, max(def, 1)))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return options[max(def, 1)-1], nil
		}
		idx, err := strconv.Atoi(answer)
		if err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1], nil
		}
		c.invalid(fmt.Sprintf("choose a value between 1 and %d", len(options)))
	}
}

func (c *Configurator) prompt(question string) (string, error) {
	fmt.Fprint(c.out, ui.ColorGreen()+question+ui.ColorReset())
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", apperrors.WrapError(ErrInputClosed, "interactive configuration")
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (c *Configurator) invalid(msg string) {
	fmt.Fprintf(c.out, "%sInvalid input: %s%s\n", ui.ColorRed(), msg, ui.ColorReset())
}
