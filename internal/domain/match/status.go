package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
)

// DefaultLiveWindow bounds the heuristic that promotes a scheduled match with
// scores to live. After kickoff plus this window the match is assumed over.
const DefaultLiveWindow = 2 * time.Hour

// StatusSignal carries the raw provider status fields a classification needs.
// KickoffParsed is false when the provider kickoff timestamp was malformed, in
// which case the time-window heuristic never fires.
type StatusSignal struct {
	Completed     bool
	TypeName      string
	State         string
	KickoffAt     time.Time
	KickoffParsed bool
	HomeScore     *int
	AwayScore     *int
}

// ClassifyStatus maps a provider status signal to one of the three match
// statuses. Finished markers are checked before live markers so type names
// like "STATUS_FINAL" are never misread through their "in" substring.
func ClassifyStatus(sig StatusSignal, now time.Time, liveWindow time.Duration) string {
	typeName := strings.ToLower(sig.TypeName)
	state := strings.ToLower(sig.State)

	if sig.Completed ||
		strings.Contains(typeName, "post") ||
		strings.Contains(typeName, "final") ||
		strings.Contains(typeName, "full") {
		return StatusFinished
	}

	if strings.Contains(typeName, "in") || typeName == "live" || state == "in" {
		return StatusLive
	}

	if liveWindow <= 0 {
		liveWindow = DefaultLiveWindow
	}
	if sig.KickoffParsed && sig.HomeScore != nil && sig.AwayScore != nil {
		if !now.Before(sig.KickoffAt) && now.Before(sig.KickoffAt.Add(liveWindow)) {
			return StatusLive
		}
	}

	return StatusScheduled
}
