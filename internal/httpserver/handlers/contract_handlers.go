package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListServiceContracts(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contracts, err := s.ListServiceContracts(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch service contracts")
			return
		}
		if contracts == nil {
			contracts = []models.ServiceContract{}
		}
		respondJSON(w, http.StatusOK, contracts)
	}
}

func GetServiceContract(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid service contract id")
			return
		}
		contract, err := s.GetServiceContract(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch service contract")
			return
		}
		respondJSON(w, http.StatusOK, contract)
	}
}

func CreateServiceContract(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.ServiceContractInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		contract, err := s.CreateServiceContract(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create service contract")
			return
		}
		respondJSON(w, http.StatusCreated, contract)
	}
}

func UpdateServiceContract(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid service contract id")
			return
		}
		var patch models.ServiceContractPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		contract, err := s.UpdateServiceContract(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update service contract")
			return
		}
		respondJSON(w, http.StatusOK, contract)
	}
}

func DeleteServiceContract(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid service contract id")
			return
		}
		deleted, err := s.DeleteServiceContract(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete service contract")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
