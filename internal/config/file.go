// This file contains the JSON configuration file format.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/primefind/internal/errors"
)

// MaxNumber is the upper bound as stored in the configuration file. It is
// written as "2^X" when an exponent is known and as a plain integer otherwise.
type MaxNumber struct {
	Exponent int
	Value    int
}

// Resolve returns the numeric upper bound.
func (m MaxNumber) Resolve() int {
	if m.Exponent > 0 {
		return 1 << m.Exponent
	}
	return m.Value
}

// IsZero reports whether the value is absent.
func (m MaxNumber) IsZero() bool { return m.Exponent == 0 && m.Value == 0 }

// String renders the value in file notation.
func (m MaxNumber) String() string {
	if m.Exponent > 0 {
		return fmt.Sprintf("2^%d", m.Exponent)
	}
	return strconv.Itoa(m.Value)
}

// MarshalJSON implements json.Marshaler.
func (m MaxNumber) MarshalJSON() ([]byte, error) {
	if m.Exponent > 0 {
		return json.Marshal(m.String())
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts "2^X", a numeric
// string or a JSON number.
func (m *MaxNumber) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var v int
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("max_number: want \"2^X\" or an integer, got %s", data)
		}
		*m = MaxNumber{Value: v}
		return nil
	}
	parsed, err := ParseMaxNumber(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMaxNumber parses "2^X" or a decimal integer.
func ParseMaxNumber(s string) (MaxNumber, error) {
	s = strings.TrimSpace(s)
	if exp, ok := strings.CutPrefix(s, "2^"); ok {
		x, err := strconv.Atoi(exp)
		if err != nil || x < MinExponent || x > MaxExponent {
			return MaxNumber{}, fmt.Errorf("max_number: exponent in %q must be between %d and %d", s, MinExponent, MaxExponent)
		}
		return MaxNumber{Exponent: x}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return MaxNumber{}, fmt.Errorf("max_number: invalid value %q", s)
	}
	return MaxNumber{Value: v}, nil
}

// FileConfig mirrors the JSON configuration file.
type FileConfig struct {
	NumThreads     int       `json:"num_threads"`
	MaxNumber      MaxNumber `json:"max_number"`
	PrintMode      string    `json:"print_mode"`
	DivisionScheme string    `json:"division_scheme"`
}

// LoadFile reads the configuration file at path. A missing file is not an
// error and yields a nil config.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewConfigError("reading %s: %v", path, err)
	}
	var fc FileConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&fc); err != nil {
		return nil, apperrors.NewConfigError("parsing %s: %v", path, err)
	}
	return &fc, nil
}

// SaveFile writes fc to path as four-space indented JSON.
func SaveFile(path string, fc FileConfig) error {
	data, err := json.MarshalIndent(fc, "", "    ")
	if err != nil {
		return apperrors.WrapError(err, "encoding configuration")
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WrapError(err, "writing %s", path)
	}
	return nil
}

// ToFile converts the persisted subset of c to the file format. A "all"
// scheme is stored as "range" since the file holds a single scheme.
func (c AppConfig) ToFile() FileConfig {
	fc := FileConfig{
		NumThreads:     c.Threads,
		PrintMode:      c.PrintMode,
		DivisionScheme: c.Scheme,
	}
	if c.MaxNumber > 0 {
		fc.MaxNumber = MaxNumber{Value: c.MaxNumber}
	} else {
		fc.MaxNumber = MaxNumber{Exponent: c.Exponent}
	}
	if s, err := ParseScheme(c.Scheme); err == nil && s == SchemeAll {
		fc.DivisionScheme = string(SchemeRange)
	}
	return fc
}

// applyFileConfig copies file values into config for every setting whose
// flags were not given on the command line.
func applyFileConfig(config *AppConfig, fc *FileConfig, fs *flag.FlagSet) {
	if fc == nil {
		return
	}
	if fc.NumThreads != 0 && !isFlagSetAny(fs, "threads", "t") {
		config.Threads = fc.NumThreads
	}
	if !fc.MaxNumber.IsZero() && !isFlagSetAny(fs, "exponent", "x", "max", "n") {
		config.Exponent = fc.MaxNumber.Exponent
		config.MaxNumber = fc.MaxNumber.Value
	}
	if fc.PrintMode != "" && !isFlagSet(fs, "print-mode") {
		config.PrintMode = fc.PrintMode
	}
	if fc.DivisionScheme != "" && !isFlagSet(fs, "scheme") {
		config.Scheme = fc.DivisionScheme
	}
}
