package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListSpareParts(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts, err := s.ListSpareParts(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch spare parts")
			return
		}
		if parts == nil {
			parts = []models.SparePart{}
		}
		respondJSON(w, http.StatusOK, parts)
	}
}

func GetSparePart(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid spare part id")
			return
		}
		part, err := s.GetSparePart(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch spare part")
			return
		}
		respondJSON(w, http.StatusOK, part)
	}
}

func CreateSparePart(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.SparePartInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		part, err := s.CreateSparePart(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create spare part")
			return
		}
		respondJSON(w, http.StatusCreated, part)
	}
}

func UpdateSparePart(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid spare part id")
			return
		}
		var patch models.SparePartPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		part, err := s.UpdateSparePart(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update spare part")
			return
		}
		respondJSON(w, http.StatusOK, part)
	}
}

func DeleteSparePart(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid spare part id")
			return
		}
		deleted, err := s.DeleteSparePart(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete spare part")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
