package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListAuditLogs(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs, err := s.ListAuditLogs(r.Context(), assetIDQuery(r))
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch audit logs")
			return
		}
		if logs == nil {
			logs = []models.AuditLog{}
		}
		respondJSON(w, http.StatusOK, logs)
	}
}
