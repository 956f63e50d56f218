package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListComplianceRecords(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := s.ListComplianceRecords(r.Context(), assetIDQuery(r))
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch compliance records")
			return
		}
		if records == nil {
			records = []models.ComplianceRecord{}
		}
		respondJSON(w, http.StatusOK, records)
	}
}

func GetComplianceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid compliance record id")
			return
		}
		record, err := s.GetComplianceRecord(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch compliance record")
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func CreateComplianceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ComplianceRecordInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		record, err := s.CreateComplianceRecord(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create compliance record")
			return
		}
		respondJSON(w, http.StatusCreated, record)
	}
}

func UpdateComplianceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid compliance record id")
			return
		}
		var patch models.ComplianceRecordPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		record, err := s.UpdateComplianceRecord(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update compliance record")
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}

func DeleteComplianceRecord(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid compliance record id")
			return
		}
		deleted, err := s.DeleteComplianceRecord(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete compliance record")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
