package recommendation

// NextCheckHours computes how long until the next glucose check. IV patients
// whose four most recent readings sit in 140-180 are checked every 2 hours,
// otherwise hourly. Subcutaneous patients are checked every 4 hours when
// fasting (NPO) and every 6 hours otherwise.
func NextCheckHours(s *PatientSnapshot, alg Algorithm) int {
	if alg == AlgorithmIV {
		if allWithin(s.Glucose[:4], 140, 180) {
			return 2
		}
		return 1
	}
	if s.Diet == DietNPO {
		return 4
	}
	return 6
}
