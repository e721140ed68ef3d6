package recommendation

import (
	"testing"

	"github.com/glydose/glydose/internal/platform/dosetable"
)

func TestResolveDose_MatchingRange(t *testing.T) {
	table := dosetable.Default()
	dose, action := ResolveDose(AlgorithmIV, 3, 175, table)
	if dose != 2.0 {
		t.Errorf("expected 2.0, got %v", dose)
	}
	if action != "Increase rate" {
		t.Errorf("expected %q, got %q", "Increase rate", action)
	}
}

func TestResolveDose_MissingLevelFallsBack(t *testing.T) {
	table := dosetable.Default()

	dose, _ := ResolveDose(AlgorithmIV, 9, 175, table)
	if dose != 1.0 {
		t.Errorf("expected IV fallback 1.0, got %v", dose)
	}

	dose, _ = ResolveDose(AlgorithmBasal, 9, 175, table)
	if dose != 2 {
		t.Errorf("expected basal fallback 2, got %v", dose)
	}
}

func TestResolveDose_NoRangeMatchUsesFirstEntry(t *testing.T) {
	// Never refuse a dose: an unmatched glucose value falls back to the
	// first entry of the level's list.
	table := dosetable.Default()
	dose, _ := ResolveDose(AlgorithmIV, 3, 500, table)
	if dose != 2.0 {
		t.Errorf("expected first-entry fallback 2.0, got %v", dose)
	}
}

func TestResolveDose_FirstMatchWinsOnOverlap(t *testing.T) {
	table := dosetable.New()
	table.Add(dosetable.KindIV, 1, dosetable.Entry{Min: 0, Max: 200, Dose: 1})
	table.Add(dosetable.KindIV, 1, dosetable.Entry{Min: 100, Max: 300, Dose: 5})

	dose, _ := ResolveDose(AlgorithmIV, 1, 150, table)
	if dose != 1 {
		t.Errorf("expected first matching range to win, got %v", dose)
	}
}

func TestIVActions(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{0, "Turn off insulin"},
		{0.5, "Maintain current rate"},
		{1, "Maintain current rate"},
		{2, "Increase rate"},
		{39.9, "Increase rate"},
		{40, "Maximum rate"},
		{60, "Maximum rate"},
	}
	for _, c := range cases {
		if got := ivAction(c.rate); got != c.want {
			t.Errorf("ivAction(%v) = %q, want %q", c.rate, got, c.want)
		}
	}
}

func TestBasalActions(t *testing.T) {
	cases := []struct {
		dose float64
		want string
	}{
		{0, "No insulin"},
		{2, "Low dose"},
		{4, "Medium dose"},
		{6, "Medium dose"},
		{10, "High dose"},
		{12, "High dose"},
		{16, "Very high dose"},
		{20, "Very high dose"},
		{24, "Critical dose"},
	}
	for _, c := range cases {
		if got := basalAction(c.dose); got != c.want {
			t.Errorf("basalAction(%v) = %q, want %q", c.dose, got, c.want)
		}
	}
}
