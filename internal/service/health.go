package service

import (
	"context"
	"math"

	"github.com/akulov/healthmate/internal/models"
)

// MetricsRepository defines the persistence operations required by
// HealthService. The bool result reports whether a value has been recorded.
type MetricsRepository interface {
	BMI(ctx context.Context) (float64, bool, error)
	SetBMI(ctx context.Context, v float64) error
	Steps(ctx context.Context) (int, bool, error)
	SetSteps(ctx context.Context, v int) error
	Sleep(ctx context.Context) (float64, bool, error)
	SetSleep(ctx context.Context, v float64) error
}

// Snapshot is the current metric state with the derived score. Nil metric
// fields mean no value has been recorded yet.
type Snapshot struct {
	BMI   *float64 `json:"bmi,omitempty"`
	Steps *int     `json:"steps,omitempty"`
	Sleep *float64 `json:"sleep,omitempty"`
	Score int      `json:"score"`
}

// Score derives the bounded health score from the three metrics.
// Each term contributes at most 1000 points and the total is capped at 3000.
// A NaN input marks a metric as missing and contributes 0.
func Score(bmi, steps, sleep float64) int {
	total := bmiTerm(bmi) + stepsTerm(steps) + sleepTerm(sleep)
	return int(math.Min(math.Round(total), 3000))
}

// bmiTerm gives 1000 inside the healthy range [18.5, 24.9] and otherwise
// decreases by 200 points per unit of distance from 22, floored at 200.
func bmiTerm(bmi float64) float64 {
	if math.IsNaN(bmi) {
		return 0
	}
	if bmi >= 18.5 && bmi <= 24.9 {
		return 1000
	}
	term := math.Max(1000-math.Abs(22-bmi)*200, 200)
	return math.Min(math.Round(term), 1000)
}

// stepsTerm gives 200 points per 1000 steps, capped at 1000.
func stepsTerm(steps float64) float64 {
	if math.IsNaN(steps) {
		return 0
	}
	return math.Min(math.Round(steps/1000)*200, 1000)
}

// sleepTerm gives the full 1000 above 7 hours and otherwise 100 points per
// hour, capped at 1000.
func sleepTerm(sleep float64) float64 {
	if math.IsNaN(sleep) {
		return 0
	}
	if sleep > 7 {
		return 1000
	}
	return math.Min(math.Round(sleep*100), 1000)
}

// HealthService records metrics and derives the health-score snapshot.
type HealthService struct {
	repo MetricsRepository
}

// NewHealthService constructs a HealthService using the provided repository.
func NewHealthService(repo MetricsRepository) *HealthService {
	return &HealthService{repo: repo}
}

// RecordBMI computes BMI from weight in kilograms and height in centimeters
// and stores it. Height must be positive or the call fails with
// models.ErrInvalidMetric.
func (s *HealthService) RecordBMI(ctx context.Context, weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, models.ErrInvalidMetric
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	if err := s.repo.SetBMI(ctx, bmi); err != nil {
		return 0, err
	}
	return bmi, nil
}

// RecordSteps stores the step count, which must be non-negative.
func (s *HealthService) RecordSteps(ctx context.Context, steps int) error {
	if steps < 0 {
		return models.ErrInvalidMetric
	}
	return s.repo.SetSteps(ctx, steps)
}

// RecordSleep stores the sleep hours, which must be within [0, 24].
func (s *HealthService) RecordSleep(ctx context.Context, hours float64) error {
	if hours < 0 || hours > 24 {
		return models.ErrInvalidMetric
	}
	return s.repo.SetSleep(ctx, hours)
}

// Snapshot reads the three metrics and derives the score. Metrics never
// recorded are nil in the snapshot and contribute 0 to the score.
func (s *HealthService) Snapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	bmi, sleep, steps := math.NaN(), math.NaN(), math.NaN()

	if v, ok, err := s.repo.BMI(ctx); err != nil {
		return Snapshot{}, err
	} else if ok {
		bmi = v
		snap.BMI = &v
	}
	if v, ok, err := s.repo.Steps(ctx); err != nil {
		return Snapshot{}, err
	} else if ok {
		steps = float64(v)
		snap.Steps = &v
	}
	if v, ok, err := s.repo.Sleep(ctx); err != nil {
		return Snapshot{}, err
	} else if ok {
		sleep = v
		snap.Sleep = &v
	}

	snap.Score = Score(bmi, steps, sleep)
	return snap, nil
}
