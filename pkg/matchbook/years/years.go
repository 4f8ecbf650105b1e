// Package years resolves the season year a results file belongs to
// from nothing but its filename.
package years

import (
	"regexp"
	"strconv"
	"strings"
)

// Config bounds acceptable years and carries manual filename mappings
// for files with no numeric hint at all.
type Config struct {
	Min    int            `yaml:"min"`
	Max    int            `yaml:"max"`
	Manual map[string]int `yaml:"manual"`
}

// DefaultConfig accepts years 1990 through 2030 inclusive.
func DefaultConfig() Config {
	return Config{Min: 1990, Max: 2030}
}

var (
	fourDigit   = regexp.MustCompile(`(\d{4})`)
	twoDigitEnd = regexp.MustCompile(`(\d{2})$`)
)

// Resolver maps filenames to 4-digit years.
type Resolver struct {
	min    int
	max    int
	manual map[string]int
}

// NewResolver creates a resolver from the given config.
func NewResolver(cfg Config) *Resolver {
	if cfg.Min == 0 && cfg.Max == 0 {
		def := DefaultConfig()
		cfg.Min, cfg.Max = def.Min, def.Max
	}
	manual := make(map[string]int, len(cfg.Manual))
	for name, year := range cfg.Manual {
		manual[normalize(name)] = year
	}
	return &Resolver{min: cfg.Min, max: cfg.Max, manual: manual}
}

// Resolve returns the year for a filename, first rule that succeeds:
// a 4-digit run anywhere, then a 2-digit number at the end of the stem
// (<=30 means 2000s, otherwise 1900s), then the manual mapping table.
func (r *Resolver) Resolve(filename string) (int, bool) {
	if m := fourDigit.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		if r.valid(year) {
			return year, true
		}
	}

	stem := stripExt(filename)
	if m := twoDigitEnd.FindStringSubmatch(stem); m != nil {
		n, _ := strconv.Atoi(m[1])
		year := 1900 + n
		if n <= 30 {
			year = 2000 + n
		}
		if r.valid(year) {
			return year, true
		}
	}

	if year, ok := r.manual[normalize(filename)]; ok && r.valid(year) {
		return year, true
	}

	return 0, false
}

func (r *Resolver) valid(year int) bool {
	return year >= r.min && year <= r.max
}

func stripExt(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}

func normalize(filename string) string {
	return strings.ToLower(strings.TrimSpace(filename))
}
