package rating

// BaseStrength is assigned to any team without a curated rating.
const BaseStrength = 2400

// Table maps team names to Elo-style strength ratings.
type Table struct {
	ratings map[string]float64
}

func NewTable(ratings map[string]float64) *Table {
	copied := make(map[string]float64, len(ratings))
	for name, value := range ratings {
		copied[name] = value
	}
	return &Table{ratings: copied}
}

// Strength returns the rating for a team, falling back to BaseStrength for
// teams outside the table. Lookup is exact; callers pass the normalized
// display name used across the ingestion pipeline.
func (t *Table) Strength(team string) float64 {
	if t == nil {
		return BaseStrength
	}
	if value, ok := t.ratings[team]; ok {
		return value
	}
	return BaseStrength
}

func (t *Table) Known(team string) bool {
	if t == nil {
		return false
	}
	_, ok := t.ratings[team]
	return ok
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ratings)
}

// DefaultTable holds curated ratings for the top five European leagues.
func DefaultTable() *Table {
	return NewTable(map[string]float64{
		// Premier League
		"Manchester City":   2650,
		"Arsenal":           2620,
		"Liverpool":         2600,
		"Chelsea":           2550,
		"Manchester United": 2520,
		"Tottenham":         2510,
		"Brighton":          2480,
		"Aston Villa":       2470,
		"Newcastle":         2450,
		"West Ham":          2420,

		// La Liga
		"Real Madrid":     2680,
		"Barcelona":       2640,
		"Atletico Madrid": 2580,
		"Sevilla":         2500,
		"Valencia":        2480,
		"Real Sociedad":   2460,
		"Villarreal":      2450,
		"Betis":           2420,

		// Serie A
		"Inter Milan": 2600,
		"AC Milan":    2570,
		"Juventus":    2550,
		"Napoli":      2540,
		"Lazio":       2480,
		"Roma":        2460,
		"Fiorentina":  2440,
		"Atalanta":    2430,

		// Bundesliga
		"Bayern Munich":       2700,
		"Borussia Dortmund":   2550,
		"RB Leipzig":          2520,
		"Bayer Leverkusen":    2500,
		"Schalke 04":          2420,
		"Eintracht Frankfurt": 2410,
		"Werder Bremen":       2390,

		// Ligue 1
		"Paris Saint-Germain": 2620,
		"Marseille":           2520,
		"Monaco":              2480,
		"Lyon":                2460,
		"Lille":               2450,
		"Nice":                2420,
		"Lens":                2410,
		"Rennes":              2400,
	})
}
