package recommendation

import "fmt"

// Route is the insulin administration route a patient is currently on.
type Route string

const (
	RouteIV Route = "iv"
	RouteSC Route = "sc"
)

// DietOrder captures the patient's current diet order. Only fasting (NPO)
// changes behavior; every other order is treated the same.
type DietOrder string

const (
	DietNPO    DietOrder = "NPO"
	DietOthers DietOrder = "others"
)

// Algorithm identifies which dosing algorithm family produced a result.
type Algorithm string

const (
	AlgorithmIV    Algorithm = "IV Infusion"
	AlgorithmBasal Algorithm = "Basal Bolus"
)

// PatientSnapshot is the canonical, fully defaulted input to the pipeline.
// It is produced only by Normalize; no loosely typed data crosses past it.
//
// Glucose holds up to 5 readings in mg/dL, index 0 most recent; a reading of
// exactly 0 means "not taken". Doses holds up to 4 prior insulin doses,
// index 0 most recent; 0 means "none recorded".
type PatientSnapshot struct {
	Glucose       [5]float64
	Doses         [4]float64
	CKD           bool // accepted but not used by any computation
	DualInotropes bool
	Route         Route
	Diet          DietOrder
}

// Recommendation is the sole output artifact, constructed once per request.
// Field names match the response boundary contract.
type Recommendation struct {
	Dose           float64   `json:"Suggested_insulin_dose"`
	RouteLabel     string    `json:"Suggested_route"`
	NextCheckHours int       `json:"next_grbs_after"`
	AlgorithmUsed  Algorithm `json:"algorithm_used"`
	Level          int       `json:"level"`
	Action         string    `json:"action"`
	Unit           string    `json:"unit"`
}

// ValidationErrorKind classifies the only two conditions that abort the
// pipeline before computation. Every other malformed field is coerced to a
// safe default instead.
type ValidationErrorKind string

const (
	MissingField ValidationErrorKind = "missing_field"
	InvalidValue ValidationErrorKind = "invalid_value"
)

// ValidationError reports a rejected request. The message is the single
// error string returned at the response boundary.
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingGlucose() *ValidationError {
	return &ValidationError{
		Kind:    MissingField,
		Field:   "GRBS1",
		Message: "Missing required field: GRBS (at least one GRBS value)",
	}
}

func invalidGlucose(v any) *ValidationError {
	return &ValidationError{
		Kind:    InvalidValue,
		Field:   "GRBS1",
		Message: fmt.Sprintf("Invalid GRBS value: %v", v),
	}
}
