package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListLocations(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locations, err := s.ListLocations(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch locations")
			return
		}
		if locations == nil {
			locations = []models.Location{}
		}
		respondJSON(w, http.StatusOK, locations)
	}
}

func GetLocation(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid location id")
			return
		}
		location, err := s.GetLocation(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch location")
			return
		}
		respondJSON(w, http.StatusOK, location)
	}
}

func CreateLocation(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.LocationInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		location, err := s.CreateLocation(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create location")
			return
		}
		respondJSON(w, http.StatusCreated, location)
	}
}

func UpdateLocation(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid location id")
			return
		}
		var patch models.LocationPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		location, err := s.UpdateLocation(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update location")
			return
		}
		respondJSON(w, http.StatusOK, location)
	}
}

func DeleteLocation(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid location id")
			return
		}
		deleted, err := s.DeleteLocation(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete location")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
