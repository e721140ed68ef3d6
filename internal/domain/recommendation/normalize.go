package recommendation

import "strconv"

// Field names accepted at the request boundary.
var (
	glucoseFields = [5]string{"GRBS1", "GRBS2", "GRBS3", "GRBS4", "GRBS5"}
	doseFields    = [4]string{"Insulin1", "Insulin2", "Insulin3", "Insulin4"}
)

// Normalize validates a raw request record and fills it into a canonical
// PatientSnapshot.
//
// Glucose and dose values are accepted either as individually named fields
// (GRBS1..GRBS5, Insulin1..Insulin4) or as arrays (GRBS, Insulin); arrays are
// padded with 0 and extra elements are ignored. The most recent glucose
// reading is the only mandatory field: its absence or a non-numeric value
// aborts the request. Everything else is defaulted and then independently
// coerced, so a malformed optional field degrades to a safe default instead
// of failing.
func Normalize(raw map[string]any) (*PatientSnapshot, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = v
	}

	if arr, ok := fields["GRBS"].([]any); ok {
		spreadArray(fields, arr, glucoseFields[:])
	}
	if arr, ok := fields["Insulin"].([]any); ok {
		spreadArray(fields, arr, doseFields[:])
	}

	g1, present := fields["GRBS1"]
	if !present {
		return nil, missingGlucose()
	}
	if _, ok := toNumber(g1); !ok {
		return nil, invalidGlucose(g1)
	}

	s := &PatientSnapshot{Route: RouteSC, Diet: DietOthers}

	for i, name := range glucoseFields {
		if v, ok := fields[name]; ok {
			s.Glucose[i], _ = toNumber(v)
		}
	}
	for i, name := range doseFields {
		if v, ok := fields[name]; ok {
			s.Doses[i], _ = toNumber(v)
		}
	}

	s.CKD, _ = fields["CKD"].(bool)
	s.DualInotropes, _ = fields["Dual inotropes"].(bool)

	if r, ok := fields["route"].(string); ok && Route(r) == RouteIV {
		s.Route = RouteIV
	}
	if d, ok := fields["diet_order"].(string); ok && DietOrder(d) == DietNPO {
		s.Diet = DietNPO
	}

	return s, nil
}

// spreadArray maps array elements onto positional field names, padding short
// arrays with 0 and ignoring elements beyond the field count.
func spreadArray(fields map[string]any, arr []any, names []string) {
	for i, name := range names {
		if i < len(arr) {
			fields[name] = arr[i]
		} else {
			fields[name] = 0.0
		}
	}
}

// toNumber coerces the numeric representations a JSON boundary can produce.
// Numeric strings count as numbers; booleans do not.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
