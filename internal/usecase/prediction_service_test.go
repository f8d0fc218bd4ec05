package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/footballhub/matchday/internal/domain/rating"
)

func approxEqual(got, want float64) bool {
	return math.Abs(got-want) < 0.051
}

func TestPredict_StrongHomeFavorite(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())
	prediction, err := svc.Predict(context.Background(), "Bayern Munich", "Werder Bremen")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if prediction.Winner != "Bayern Munich" {
		t.Fatalf("unexpected winner: %q", prediction.Winner)
	}
	if prediction.HomeWinPct <= prediction.AwayWinPct || prediction.HomeWinPct <= prediction.DrawPct {
		t.Fatalf("favorite must carry the highest probability: %+v", prediction)
	}
	if prediction.HomeStrength != 2700 {
		t.Fatalf("unexpected home strength: %v", prediction.HomeStrength)
	}

	sum := prediction.HomeWinPct + prediction.DrawPct + prediction.AwayWinPct
	if math.Abs(sum-100) > 0.3 {
		t.Fatalf("probabilities must sum to ~100, got %v", sum)
	}
}

func TestPredict_KnownPairingValues(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())
	prediction, err := svc.Predict(context.Background(), "Manchester City", "Arsenal")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if !approxEqual(prediction.HomeWinPct, 43.0) {
		t.Fatalf("unexpected home win pct: %v", prediction.HomeWinPct)
	}
	if !approxEqual(prediction.DrawPct, 25.0) {
		t.Fatalf("unexpected draw pct: %v", prediction.DrawPct)
	}
	if !approxEqual(prediction.AwayWinPct, 32.0) {
		t.Fatalf("unexpected away win pct: %v", prediction.AwayWinPct)
	}
	if prediction.Winner != "Manchester City" {
		t.Fatalf("unexpected winner: %q", prediction.Winner)
	}
	if prediction.Confidence != "Very Low" {
		t.Fatalf("unexpected confidence: %q", prediction.Confidence)
	}
}

func TestPredict_UnknownTeamsUseBaseStrength(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())
	prediction, err := svc.Predict(context.Background(), "Wrexham", "Salford City")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	if prediction.HomeStrength != rating.BaseStrength || prediction.AwayStrength != rating.BaseStrength {
		t.Fatalf("unknown teams must use base strength: %+v", prediction)
	}
	if prediction.HomeWinPct <= prediction.AwayWinPct {
		t.Fatalf("home advantage must tilt an even pairing: %+v", prediction)
	}
	if prediction.Winner != "Wrexham" {
		t.Fatalf("unexpected winner: %q", prediction.Winner)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())
	first, err := svc.Predict(context.Background(), "Real Madrid", "Barcelona")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	second, err := svc.Predict(context.Background(), "Real Madrid", "Barcelona")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if first != second {
		t.Fatalf("prediction must be deterministic:\n%+v\n%+v", first, second)
	}
}

func TestPredict_InputValidation(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(nil)

	if _, err := svc.Predict(context.Background(), "", "Arsenal"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank home team, got %v", err)
	}
	if _, err := svc.Predict(context.Background(), "Arsenal", "arsenal"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for identical sides, got %v", err)
	}
}

func TestPredictBatch_SkipsInvalidPairings(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())
	out := svc.PredictBatch(context.Background(), [][2]string{
		{"Arsenal", "Chelsea"},
		{"", "Chelsea"},
		{"Liverpool", "Everton"},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(out))
	}
}

func TestTeamStrength(t *testing.T) {
	t.Parallel()

	svc := NewPredictionService(rating.DefaultTable())

	value, known := svc.TeamStrength("Arsenal")
	if !known || value != 2620 {
		t.Fatalf("unexpected strength for Arsenal: %v known=%v", value, known)
	}
	value, known = svc.TeamStrength("Unknown FC")
	if known || value != rating.BaseStrength {
		t.Fatalf("unexpected strength for unknown team: %v known=%v", value, known)
	}
}

func TestConfidenceLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		probability float64
		want        string
	}{
		{75, "Very High"},
		{70, "Very High"},
		{65, "High"},
		{56, "Moderate"},
		{51, "Low"},
		{49, "Very Low"},
	}
	for _, tt := range tests {
		if got := confidenceLevel(tt.probability); got != tt.want {
			t.Fatalf("confidenceLevel(%v) = %q, want %q", tt.probability, got, tt.want)
		}
	}
}
