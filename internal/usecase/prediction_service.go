package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/footballhub/matchday/internal/domain/rating"
)

const (
	homeAdvantage = 0.03
	drawWeight    = 0.25
)

// Prediction is the outcome forecast for one pairing. Percentages are
// rounded to one decimal and sum to roughly 100.
type Prediction struct {
	HomeTeam     string
	AwayTeam     string
	HomeStrength float64
	AwayStrength float64
	HomeWinPct   float64
	DrawPct      float64
	AwayWinPct   float64
	Winner       string
	Confidence   string
}

type PredictionService struct {
	table *rating.Table
}

func NewPredictionService(table *rating.Table) *PredictionService {
	if table == nil {
		table = rating.DefaultTable()
	}
	return &PredictionService{table: table}
}

// Predict forecasts one pairing from the rating table. Unknown teams fall
// back to the base strength, so any pairing resolves.
func (s *PredictionService) Predict(ctx context.Context, homeTeam, awayTeam string) (Prediction, error) {
	_, span := startUsecaseSpan(ctx, "prediction.predict")
	defer span.End()

	homeTeam = strings.TrimSpace(homeTeam)
	awayTeam = strings.TrimSpace(awayTeam)
	if homeTeam == "" || awayTeam == "" {
		return Prediction{}, fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}
	if strings.EqualFold(homeTeam, awayTeam) {
		return Prediction{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	homeStrength := s.table.Strength(homeTeam)
	awayStrength := s.table.Strength(awayTeam)

	expectedHome := 1 / (1 + math.Pow(10, (awayStrength-homeStrength)/400))
	expectedAway := 1 - expectedHome
	expectedHome += homeAdvantage
	expectedAway -= homeAdvantage

	homeWin := expectedHome * (1 - drawWeight)
	awayWin := expectedAway * (1 - drawWeight)
	total := homeWin + awayWin + drawWeight

	homeWinPct := round1(homeWin / total * 100)
	awayWinPct := round1(awayWin / total * 100)
	drawPct := round1(drawWeight / total * 100)

	winner := "Draw"
	switch {
	case homeWinPct > awayWinPct && homeWinPct > drawPct:
		winner = homeTeam
	case awayWinPct > homeWinPct && awayWinPct > drawPct:
		winner = awayTeam
	}

	return Prediction{
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		HomeStrength: homeStrength,
		AwayStrength: awayStrength,
		HomeWinPct:   homeWinPct,
		DrawPct:      drawPct,
		AwayWinPct:   awayWinPct,
		Winner:       winner,
		Confidence:   confidenceLevel(math.Max(homeWinPct, math.Max(drawPct, awayWinPct))),
	}, nil
}

// PredictBatch forecasts several pairings. Invalid pairings are skipped so
// one bad entry does not sink the batch.
func (s *PredictionService) PredictBatch(ctx context.Context, pairings [][2]string) []Prediction {
	out := make([]Prediction, 0, len(pairings))
	for _, pairing := range pairings {
		prediction, err := s.Predict(ctx, pairing[0], pairing[1])
		if err != nil {
			continue
		}
		out = append(out, prediction)
	}
	return out
}

// TeamStrength exposes the rating lookup; known reports whether the team is
// curated or served the base strength.
func (s *PredictionService) TeamStrength(team string) (value float64, known bool) {
	team = strings.TrimSpace(team)
	return s.table.Strength(team), s.table.Known(team)
}

func confidenceLevel(probability float64) string {
	switch {
	case probability >= 70:
		return "Very High"
	case probability >= 60:
		return "High"
	case probability >= 55:
		return "Moderate"
	case probability >= 50:
		return "Low"
	default:
		return "Very Low"
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
