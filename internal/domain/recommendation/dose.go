package recommendation

import "github.com/glydose/glydose/internal/platform/dosetable"

const (
	fallbackIVRate    = 1.0
	fallbackBasalDose = 2
)

// ResolveDose looks up the dose for a level and glucose value, plus the
// qualitative action label. The policy is never to refuse a dose: a level
// missing from the table yields a hard-coded fallback, and a glucose value
// matching no declared range yields the first entry of the level's list.
func ResolveDose(alg Algorithm, level int, glucose float64, table *dosetable.Table) (float64, string) {
	dose := lookupDose(alg, level, glucose, table)
	if alg == AlgorithmIV {
		return dose, ivAction(dose)
	}
	return dose, basalAction(dose)
}

func lookupDose(alg Algorithm, level int, glucose float64, table *dosetable.Table) float64 {
	fallback := float64(fallbackBasalDose)
	if alg == AlgorithmIV {
		fallback = fallbackIVRate
	}

	entries, ok := table.Entries(kindOf(alg), level)
	if !ok {
		return fallback
	}
	for _, e := range entries {
		if e.Min <= glucose && glucose <= e.Max {
			return e.Dose
		}
	}
	if len(entries) > 0 {
		return entries[0].Dose
	}
	return fallback
}

// ivAction buckets an IV infusion rate (IU/hr) into an operator instruction.
func ivAction(rate float64) string {
	switch {
	case rate == 0:
		return "Turn off insulin"
	case rate <= 1:
		return "Maintain current rate"
	case rate >= 40:
		return "Maximum rate"
	default:
		return "Increase rate"
	}
}

// basalAction buckets a subcutaneous dose (IU). The IV and basal bucketings
// are independent protocols and must not be unified.
func basalAction(dose float64) string {
	switch {
	case dose == 0:
		return "No insulin"
	case dose <= 2:
		return "Low dose"
	case dose <= 6:
		return "Medium dose"
	case dose <= 12:
		return "High dose"
	case dose <= 20:
		return "Very high dose"
	default:
		return "Critical dose"
	}
}
