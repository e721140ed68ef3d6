package recommendation

import (
	"github.com/rs/zerolog"

	"github.com/glydose/glydose/internal/platform/dosetable"
)

// Service runs the recommendation pipeline against the currently published
// dose table. The pipeline itself is a pure function of the snapshot and the
// table; the service adds diagnostic tracing and table access.
type Service struct {
	tables *dosetable.Holder
	logger zerolog.Logger
}

func NewService(tables *dosetable.Holder, logger zerolog.Logger) *Service {
	return &Service{tables: tables, logger: logger}
}

// Recommend normalizes a raw request and produces a recommendation. Any
// validation failure short-circuits before any algorithmic step runs; there
// are no retries and no partial results.
func (s *Service) Recommend(raw map[string]any) (*Recommendation, error) {
	snapshot, err := Normalize(raw)
	if err != nil {
		s.logger.Debug().Err(err).Msg("input validation failed")
		return nil, err
	}

	table := s.tables.Get()

	alg := SelectAlgorithm(snapshot)
	s.logger.Debug().
		Str("algorithm", string(alg)).
		Str("route", string(snapshot.Route)).
		Bool("dual_inotropes", snapshot.DualInotropes).
		Msg("algorithm selected")

	level, hasHistory := InitialLevel(snapshot, alg, table)
	s.logger.Debug().Int("level", level).Bool("history", hasHistory).Msg("starting level")

	if hasHistory {
		level = Transition(alg, level, snapshot.Glucose[:])
	}

	current := CurrentGlucose(snapshot, alg)
	dose, action := ResolveDose(alg, level, current, table)

	rec := &Recommendation{
		Dose:           dose,
		RouteLabel:     routeLabel(alg),
		NextCheckHours: NextCheckHours(snapshot, alg),
		AlgorithmUsed:  alg,
		Level:          level,
		Action:         action,
		Unit:           unitOf(alg),
	}

	s.logger.Debug().
		Float64("dose", rec.Dose).
		Int("level", rec.Level).
		Str("action", rec.Action).
		Int("next_check_hours", rec.NextCheckHours).
		Msg("recommendation produced")

	return rec, nil
}

func routeLabel(alg Algorithm) string {
	if alg == AlgorithmIV {
		return "iv"
	}
	return "subcutaneous"
}

func unitOf(alg Algorithm) string {
	if alg == AlgorithmIV {
		return "IU/hr"
	}
	return "IU"
}
