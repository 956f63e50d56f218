package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

// assetIDQuery reads the optional ?assetId= filter; 0 means unfiltered.
func assetIDQuery(r *http.Request) int {
	id, err := strconv.Atoi(r.URL.Query().Get("assetId"))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func ListMaintenanceRecords(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.ListMaintenanceRecords(r.Context(), assetIDQuery(r))
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch maintenance records")
			return
		}
		if records == nil {
			records = []models.MaintenanceRecord{}
		}
		respondJSON(w, http.StatusOK, records)
	}
}

func GetMaintenanceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid maintenance record id")
			return
		}
		record, err := s.GetMaintenanceRecord(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch maintenance record")
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func CreateMaintenanceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.MaintenanceRecordInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		record, err := s.CreateMaintenanceRecord(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create maintenance record")
			return
		}
		respondJSON(w, http.StatusCreated, record)
	}
}

func UpdateMaintenanceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid maintenance record id")
			return
		}
		var patch models.MaintenanceRecordPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		record, err := s.UpdateMaintenanceRecord(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update maintenance record")
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func DeleteMaintenanceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid maintenance record id")
			return
		}
		deleted, err := s.DeleteMaintenanceRecord(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete maintenance record")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
