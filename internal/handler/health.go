package handler

import (
	"context"
	"net/http"

	"github.com/osse101/wheelbet/internal/logger"
	"github.com/osse101/wheelbet/internal/session"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// VersionResponse reports the running build
type VersionResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
}

// SnapshotReader returns the current session view
type SnapshotReader interface {
	Snapshot(ctx context.Context) (session.Snapshot, error)
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready while the game loop answers and the session is open
func HandleReadyz(reader SnapshotReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), SnapshotTimeout)
		defer cancel()

		snap, err := reader.Snapshot(ctx)
		if err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgSnapshotFailed,
			})
			return
		}
		if snap.State.Ended {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgSessionEnded,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleVersion returns the service name and version
func HandleVersion(service, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Service: service, Version: version})
	}
}
