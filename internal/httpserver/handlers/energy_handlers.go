package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListEnergyConsumption(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readings, err := s.ListEnergyConsumption(r.Context(), assetIDQuery(r))
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch energy consumption")
			return
		}
		if readings == nil {
			readings = []models.EnergyConsumption{}
		}
		respondJSON(w, http.StatusOK, readings)
	}
}

func CreateEnergyConsumption(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.EnergyConsumptionInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		reading, err := s.CreateEnergyConsumption(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to record energy consumption")
			return
		}
		respondJSON(w, http.StatusCreated, reading)
	}
}
