package usecase

import "time"

const dateStampLayout = "20060102"

// BuildDateWindow returns the UTC date stamps (YYYYMMDD) covering
// trailingDays before the anchor through leadingDays after it, in
// chronological order with the anchor date in the middle.
func BuildDateWindow(now time.Time, trailingDays, leadingDays int) []string {
	if trailingDays < 0 {
		trailingDays = 0
	}
	if leadingDays < 0 {
		leadingDays = 0
	}

	anchor := now.UTC()
	out := make([]string, 0, trailingDays+leadingDays+1)
	for i := trailingDays; i >= 1; i-- {
		out = append(out, anchor.AddDate(0, 0, -i).Format(dateStampLayout))
	}
	out = append(out, anchor.Format(dateStampLayout))
	for i := 1; i <= leadingDays; i++ {
		out = append(out, anchor.AddDate(0, 0, i).Format(dateStampLayout))
	}
	return out
}
