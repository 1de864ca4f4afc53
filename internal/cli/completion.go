package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every shell script is generated from flagRegistry, so adding a flag only
// requires appending to it.
type FlagCompletion struct {
	Long      string   // long flag name without "--"
	Short     string   // short flag without "-"
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh (empty = boolean)
	IsFile    bool     // the flag takes a file path
}

// SupportedShells lists the accepted --completion values.
var SupportedShells = []string{"bash", "zsh", "fish"}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "threads", Short: "t", Help: "Number of worker goroutines", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "exponent", Short: "x", Help: "Search up to 2^X", Values: []string{"10", "16", "20", "24"}, ValueName: "exponent"},
	{Long: "max", Short: "n", Help: "Explicit upper bound", ValueName: "number"},
	{Long: "print-mode", Help: "When primes are printed", Values: []string{"immediate", "wait"}, ValueName: "mode"},
	{Long: "scheme", Help: "Division scheme", Values: []string{"range", "divisibility", "all"}, ValueName: "scheme"},
	{Long: "config", Help: "JSON configuration file", IsFile: true, ValueName: "file"},
	{Long: "configure", Help: "Prompt for the configuration"},
	{Long: "save", Help: "Save the effective configuration"},
	{Long: "output", Short: "o", Help: "Write primes to a file", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Write Prometheus metrics to a file", IsFile: true, ValueName: "file"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "quiet", Short: "q", Help: "Print only the prime count"},
	{Long: "details", Short: "d", Help: "Show resource usage"},
	{Long: "tui", Help: "Interactive dashboard"},
	{Long: "no-color", Help: "Disable colors"},
	{Long: "calibrate", Help: "Benchmark worker counts"},
	{Long: "completion", Help: "Generate completion script", Values: SupportedShells, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell to out.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(SupportedShells, ", "))
	}
}

// flagSpellings returns the command-line spellings of f.
func flagSpellings(f FlagCompletion) []string {
	var s []string
	if f.Long != "" {
		s = append(s, "--"+f.Long)
	}
	if f.Short != "" {
		s = append(s, "-"+f.Short)
	}
	return s
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	for _, f := range flagRegistry {
		opts = append(opts, flagSpellings(f)...)
	}

	var b strings.Builder
	b.WriteString("# bash completion for primefind\n")
	b.WriteString("_primefind() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    case \"${prev}\" in\n")
	for _, f := range flagRegistry {
		patterns := strings.Join(flagSpellings(f), "|")
		switch {
		case f.IsFile:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n", patterns)
		case len(f.Values) > 0:
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				patterns, strings.Join(f.Values, " "))
		}
	}
	b.WriteString("    esac\n\n")
	fmt.Fprintf(&b, "    COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(opts, " "))
	b.WriteString("}\n")
	b.WriteString("complete -F _primefind primefind\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func generateZshCompletion(out io.Writer) error {
	var b strings.Builder
	b.WriteString("#compdef primefind\n\n")
	b.WriteString("_primefind() {\n")
	b.WriteString("    _arguments \\\n")
	for i, f := range flagRegistry {
		sep := " \\"
		if i == len(flagRegistry)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "        %s%s\n", zshArgEntry(f), sep)
	}
	b.WriteString("}\n\n")
	b.WriteString("_primefind \"$@\"\n")

	_, err := io.WriteString(out, b.String())
	return err
}

// zshArgEntry renders one _arguments spec, grouping the short and long
// spellings so that zsh does not offer both.
func zshArgEntry(f FlagCompletion) string {
	action := ""
	switch {
	case f.IsFile:
		action = fmt.Sprintf(":%s:_files", f.ValueName)
	case len(f.Values) > 0:
		action = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		action = fmt.Sprintf(":%s:", f.ValueName)
	}
	spellings := flagSpellings(f)
	if len(spellings) == 1 {
		return fmt.Sprintf("'%s[%s]%s'", spellings[0], f.Help, action)
	}
	return fmt.Sprintf("'(%s)'{%s}'[%s]%s'", strings.Join(spellings, " "), strings.Join(spellings, ","), f.Help, action)
}

func generateFishCompletion(out io.Writer) error {
	var b strings.Builder
	b.WriteString("# fish completion for primefind\n")
	for _, f := range flagRegistry {
		b.WriteString(fishCompleteLine(f))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func fishCompleteLine(f FlagCompletion) string {
	line := "complete -c primefind"
	if f.Short != "" {
		line += " -s " + f.Short
	}
	if f.Long != "" {
		line += " -l " + f.Long
	}
	switch {
	case f.IsFile:
		line += " -r -F"
	case len(f.Values) > 0:
		line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
	case f.ValueName != "":
		line += " -x"
	}
	return line + fmt.Sprintf(" -d '%s'", f.Help)
}
