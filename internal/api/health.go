package api

import (
	"context"
	"net/http"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/entities"
)

// HealthCheckHandler handles GET /health/. One COUNT on representatives
// decides healthy or unhealthy.
func HealthCheckHandler(stats *repositories.StatisticsRepository, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		ctx, cancel := context.WithTimeout(r.Context(), constants.HealthProbeTimeout)
		defer cancel()

		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database reachable"
		_, err := stats.Probe(ctx)
		if err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		now := time.Now().UTC()
		resp := entities.HealthCheckResponse{
			Status:    string(constants.APIStatusHealthy),
			Service:   constants.ServiceName,
			Version:   constants.ServiceVersion,
			Timestamp: now,
			UpSince:   upSince.UTC(),
			Uptime:    now.Sub(upSince).Round(time.Second).String(),
			Services:  services,
		}

		if err != nil {
			resp.Status = string(constants.APIStatusUnhealthy)
			resp.Error = err.Error()
			common.RespondSuccess(w, initTime, resp, http.StatusInternalServerError)
			return
		}
		common.RespondSuccess(w, initTime, resp)
	}
}
