package recommendation

// SelectAlgorithm chooses the dosing algorithm family for a snapshot.
// First matching rule wins:
//
//  1. Dual inotropes force IV, unconditionally.
//  2. SC patients escalate to IV only on persistent severe hyperglycemia:
//     two or more of the five readings above 350.
//  3. IV patients de-escalate to basal-bolus only once the four most recent
//     readings are all within 150-180; otherwise they stay on IV.
func SelectAlgorithm(s *PatientSnapshot) Algorithm {
	if s.DualInotropes {
		return AlgorithmIV
	}

	if s.Route == RouteSC {
		high := 0
		for _, g := range s.Glucose {
			if g > 350 {
				high++
			}
		}
		if high >= 2 {
			return AlgorithmIV
		}
	} else if s.Route == RouteIV {
		if !allWithin(s.Glucose[:4], 150, 180) {
			return AlgorithmIV
		}
	}

	return AlgorithmBasal
}

func allWithin(readings []float64, min, max float64) bool {
	for _, g := range readings {
		if g < min || g > max {
			return false
		}
	}
	return true
}
