package recommendation

import (
	"math"

	"github.com/glydose/glydose/internal/platform/dosetable"
)

const (
	maxIVLevel    = 5
	maxBasalLevel = 7
	defaultLevel  = 2
)

// InitialLevel infers the starting severity level from the dosing history.
// The returned bool reports whether usable history was found; transitions
// only apply on that branch.
//
// With one or zero valid readings, with no prior dose on record, or for an
// IV patient on dual inotropes, the level defaults to 2 conservatively.
// Otherwise the level is matched to the most recent prior dose: every level
// the table defines for the algorithm, in table order, is resolved at the
// current glucose, and the first level whose dose is strictly closest to the
// prior dose wins. Later levels at the same distance do not override it.
func InitialLevel(s *PatientSnapshot, alg Algorithm, table *dosetable.Table) (int, bool) {
	valid := 0
	for _, g := range s.Glucose {
		if g > 0 {
			valid++
		}
	}
	if valid <= 1 {
		return defaultLevel, false
	}

	hasPriorDose := false
	for _, d := range s.Doses {
		if d > 0 {
			hasPriorDose = true
			break
		}
	}
	if !hasPriorDose {
		return defaultLevel, false
	}

	if alg == AlgorithmIV && s.DualInotropes {
		return defaultLevel, false
	}

	current := CurrentGlucose(s, alg)
	priorDose := s.Doses[0]

	best := defaultLevel
	minDiff := math.Inf(1)
	for _, level := range table.Levels(kindOf(alg)) {
		dose, _ := ResolveDose(alg, level, current, table)
		if diff := math.Abs(dose - priorDose); diff < minDiff {
			minDiff = diff
			best = level
		}
	}
	return best, true
}

// CurrentGlucose picks the reading dose lookups run against. IV matching
// prefers the most recent nonzero reading, falling back through the series;
// basal-bolus uses the most recent slot as-is, even when it is 0.
func CurrentGlucose(s *PatientSnapshot, alg Algorithm) float64 {
	if alg != AlgorithmIV {
		return s.Glucose[0]
	}
	if s.Glucose[0] > 0 {
		return s.Glucose[0]
	}
	for _, g := range s.Glucose {
		if g > 0 {
			return g
		}
	}
	return 0
}

// Transition applies the trend rules for the algorithm family and returns
// the adjusted level.
func Transition(alg Algorithm, level int, readings []float64) int {
	if alg == AlgorithmIV {
		return transitionIV(level, readings)
	}
	return transitionBasal(level, readings)
}

// transitionIV moves the level on the two most recent readings: up when
// glucose stays above 150 without a fall of more than 60, down below 110,
// hold otherwise. The ceiling is level 5 even when the supplied table
// defines more IV levels; levels above 5 are unreachable via transition.
func transitionIV(level int, readings []float64) int {
	if len(readings) < 2 {
		return level
	}
	g0, g1 := readings[0], readings[1]

	if g0 > 150 && (g0 > g1 || g1-g0 <= 60) {
		return min(level+1, maxIVLevel)
	}
	if g0 < 110 {
		return max(level-1, 1)
	}
	return level
}

// transitionBasal counts across all five slots: two or more readings above
// 180 move up, any nonzero reading below 140 moves down, hold otherwise.
func transitionBasal(level int, readings []float64) int {
	if len(readings) < 2 {
		return level
	}

	above180, below140 := 0, 0
	for _, g := range readings {
		if g > 180 {
			above180++
		}
		if g > 0 && g < 140 {
			below140++
		}
	}

	if above180 >= 2 {
		return min(level+1, maxBasalLevel)
	}
	if below140 >= 1 {
		return max(level-1, 1)
	}
	return level
}

func kindOf(alg Algorithm) dosetable.Kind {
	if alg == AlgorithmIV {
		return dosetable.KindIV
	}
	return dosetable.KindBasal
}
