package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/system/db-status", handler.DBStatus)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/predictions", handler.PredictMatch)
	mux.HandleFunc("POST /v1/predictions/batch", handler.PredictMatchBatch)
	mux.HandleFunc("GET /v1/teams/{team}/strength", handler.GetTeamStrength)
	mux.HandleFunc("GET /v1/stats/topscorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/stats/table", handler.ListSeasonTable)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/ingest", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunIngestJob)))
	mux.Handle("POST /v1/internal/ingestion/player-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestPlayerSeasonStats)))
	mux.Handle("POST /v1/internal/ingestion/team-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTeamSeasonStats)))
}
