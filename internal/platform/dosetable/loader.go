package dosetable

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ParseRange parses a glucose range string into inclusive bounds.
// Grammar: "<N" means [0, N], ">N" means [N, 1000], "A-B" means [A, B].
func ParseRange(s string) (min, max float64, err error) {
	switch {
	case strings.Contains(s, "<"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, "<", "")))
		if err != nil {
			return 0, 0, fmt.Errorf("parse range %q: %w", s, err)
		}
		return 0, float64(n), nil
	case strings.Contains(s, ">"):
		n, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(s, ">", "")))
		if err != nil {
			return 0, 0, fmt.Errorf("parse range %q: %w", s, err)
		}
		return float64(n), 1000, nil
	default:
		parts := strings.SplitN(s, "-", 2)
		if len(parts) != 2 {
			return 0, 0, fmt.Errorf("parse range %q: expected A-B", s)
		}
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("parse range %q: %w", s, err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("parse range %q: %w", s, err)
		}
		return float64(lo), float64(hi), nil
	}
}

// LoadCSV reads a dose table from a CSV file with the columns
// algorithm,level,grbs_range,dose. Rows whose algorithm column is neither
// "IV" nor "Basal" are skipped; any other malformed row fails the whole load.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"algorithm", "level", "grbs_range", "dose"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	t := New()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		var kind Kind
		switch row[col["algorithm"]] {
		case "IV":
			kind = KindIV
		case "Basal":
			kind = KindBasal
		default:
			continue
		}

		level, err := strconv.Atoi(strings.TrimSpace(row[col["level"]]))
		if err != nil {
			return nil, fmt.Errorf("parse level %q: %w", row[col["level"]], err)
		}
		dose, err := strconv.ParseFloat(strings.TrimSpace(row[col["dose"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("parse dose %q: %w", row[col["dose"]], err)
		}
		min, max, err := ParseRange(row[col["grbs_range"]])
		if err != nil {
			return nil, err
		}

		t.Add(kind, level, Entry{Min: min, Max: max, Dose: dose})
	}

	return t, nil
}

// Load reads the table from path, falling back to the built-in defaults when
// the file is missing or malformed. Loading never fails: a recommendation can
// always be produced against some table.
func Load(path string, logger zerolog.Logger) *Table {
	t, err := LoadCSV(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("dose table load failed, using defaults")
		return Default()
	}
	logger.Info().Str("path", path).Msg("dose table loaded")
	return t
}
