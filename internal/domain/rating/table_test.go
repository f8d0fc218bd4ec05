package rating

import "testing"

func TestTableStrength(t *testing.T) {
	table := DefaultTable()

	if got := table.Strength("Bayern Munich"); got != 2700 {
		t.Fatalf("unexpected rating for Bayern Munich: %v", got)
	}
	if got := table.Strength("Real Madrid"); got != 2680 {
		t.Fatalf("unexpected rating for Real Madrid: %v", got)
	}
	if got := table.Strength("Unknown FC"); got != BaseStrength {
		t.Fatalf("expected base strength for unknown team, got %v", got)
	}
}

func TestTableKnown(t *testing.T) {
	table := DefaultTable()

	if !table.Known("Arsenal") {
		t.Fatalf("expected Arsenal to be rated")
	}
	if table.Known("Unknown FC") {
		t.Fatalf("did not expect Unknown FC to be rated")
	}
}

func TestTableNilSafety(t *testing.T) {
	var table *Table

	if got := table.Strength("Arsenal"); got != BaseStrength {
		t.Fatalf("nil table should return base strength, got %v", got)
	}
	if table.Known("Arsenal") {
		t.Fatalf("nil table should know nothing")
	}
	if table.Len() != 0 {
		t.Fatalf("nil table should have zero length")
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	ratings := map[string]float64{"Ajax": 2500}
	table := NewTable(ratings)
	ratings["Ajax"] = 100

	if got := table.Strength("Ajax"); got != 2500 {
		t.Fatalf("table should not observe caller mutation, got %v", got)
	}
}
