package recommendation

import (
	"errors"
	"testing"
)

func TestNormalize_MissingGlucose(t *testing.T) {
	_, err := Normalize(map[string]any{"route": "sc"})
	if err == nil {
		t.Fatal("expected error when GRBS1 is absent")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Kind != MissingField {
		t.Errorf("expected MissingField, got %s", verr.Kind)
	}
}

func TestNormalize_NonNumericGlucose(t *testing.T) {
	_, err := Normalize(map[string]any{"GRBS1": "not-a-number"})
	if err == nil {
		t.Fatal("expected error for non-numeric GRBS1")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Kind != InvalidValue {
		t.Errorf("expected InvalidValue, got %s", verr.Kind)
	}
}

func TestNormalize_NumericString(t *testing.T) {
	s, err := Normalize(map[string]any{"GRBS1": "250"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Glucose[0] != 250 {
		t.Errorf("expected GRBS1 250, got %v", s.Glucose[0])
	}
}

func TestNormalize_Defaults(t *testing.T) {
	s, err := Normalize(map[string]any{"GRBS1": 200.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < 5; i++ {
		if s.Glucose[i] != 0 {
			t.Errorf("expected GRBS%d to default to 0, got %v", i+1, s.Glucose[i])
		}
	}
	for i := 0; i < 4; i++ {
		if s.Doses[i] != 0 {
			t.Errorf("expected Insulin%d to default to 0, got %v", i+1, s.Doses[i])
		}
	}
	if s.Route != RouteSC {
		t.Errorf("expected default route sc, got %s", s.Route)
	}
	if s.Diet != DietOthers {
		t.Errorf("expected default diet others, got %s", s.Diet)
	}
	if s.CKD || s.DualInotropes {
		t.Error("expected boolean flags to default to false")
	}
}

func TestNormalize_ArrayForm(t *testing.T) {
	s, err := Normalize(map[string]any{
		"GRBS":    []any{400.0, 420.0},
		"Insulin": []any{3.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [5]float64{400, 420, 0, 0, 0}
	if s.Glucose != want {
		t.Errorf("expected glucose %v, got %v", want, s.Glucose)
	}
	wantDoses := [4]float64{3, 0, 0, 0}
	if s.Doses != wantDoses {
		t.Errorf("expected doses %v, got %v", wantDoses, s.Doses)
	}
}

func TestNormalize_ArrayExtraElementsIgnored(t *testing.T) {
	s, err := Normalize(map[string]any{
		"GRBS": []any{100.0, 110.0, 120.0, 130.0, 140.0, 999.0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [5]float64{100, 110, 120, 130, 140}
	if s.Glucose != want {
		t.Errorf("expected glucose %v, got %v", want, s.Glucose)
	}
}

func TestNormalize_CoercesMalformedOptionalFields(t *testing.T) {
	s, err := Normalize(map[string]any{
		"GRBS1":          180.0,
		"GRBS2":          "bad",
		"Insulin1":       "worse",
		"CKD":            "yes",
		"Dual inotropes": 1.0,
		"route":          "intramuscular",
		"diet_order":     "keto",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Glucose[1] != 0 {
		t.Errorf("expected malformed GRBS2 coerced to 0, got %v", s.Glucose[1])
	}
	if s.Doses[0] != 0 {
		t.Errorf("expected malformed Insulin1 coerced to 0, got %v", s.Doses[0])
	}
	if s.CKD {
		t.Error("expected non-boolean CKD coerced to false")
	}
	if s.DualInotropes {
		t.Error("expected non-boolean dual inotropes coerced to false")
	}
	if s.Route != RouteSC {
		t.Errorf("expected unknown route coerced to sc, got %s", s.Route)
	}
	if s.Diet != DietOthers {
		t.Errorf("expected unknown diet coerced to others, got %s", s.Diet)
	}
}

func TestNormalize_ZeroGlucoseIsValid(t *testing.T) {
	s, err := Normalize(map[string]any{"GRBS1": 0.0})
	if err != nil {
		t.Fatalf("GRBS1 of 0 is numerically valid, got error: %v", err)
	}
	if s.Glucose[0] != 0 {
		t.Errorf("expected 0, got %v", s.Glucose[0])
	}
}
