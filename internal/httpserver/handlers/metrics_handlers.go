package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/store"
)

func AssetMetrics(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.AssetMetrics(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to compute asset metrics")
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func WorkOrderMetrics(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.WorkOrderMetrics(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to compute work order metrics")
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}

func MaintenanceMetrics(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := s.MaintenanceMetrics(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to compute maintenance metrics")
			return
		}
		respondJSON(w, http.StatusOK, m)
	}
}
