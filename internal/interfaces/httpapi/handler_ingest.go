package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/footballhub/matchday/internal/usecase"
)

// RunIngestJob triggers a full scoreboard ingestion pass and reports the
// outcome. The scheduler runs the same pass periodically; this endpoint
// exists for operational reruns.
func (h *Handler) RunIngestJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunIngestJob")
	defer span.End()

	report, err := h.ingestService.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual ingest run failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestReportToDTO(ctx, report))
}

type ingestReportDTO struct {
	StartedAt    string `json:"startedAt"`
	FinishedAt   string `json:"finishedAt"`
	Competitions int    `json:"competitions"`
	Dates        int    `json:"dates"`
	TasksFailed  int    `json:"tasksFailed"`
	Fetched      int    `json:"fetched"`
	Skipped      int    `json:"skipped"`
	Inserted     int    `json:"inserted"`
	Updated      int    `json:"updated"`
	Degraded     bool   `json:"degraded"`
}

func ingestReportToDTO(ctx context.Context, v usecase.IngestReport) ingestReportDTO {
	_, span := startSpan(ctx, "httpapi.ingestReportToDTO")
	defer span.End()

	return ingestReportDTO{
		StartedAt:    v.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:   v.FinishedAt.UTC().Format(time.RFC3339),
		Competitions: v.Competitions,
		Dates:        v.Dates,
		TasksFailed:  v.TasksFailed,
		Fetched:      v.Fetched,
		Skipped:      v.Skipped,
		Inserted:     v.Inserted,
		Updated:      v.Updated,
		Degraded:     v.Degraded,
	}
}
