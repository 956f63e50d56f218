package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListVendors(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendors, err := s.ListVendors(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch vendors")
			return
		}
		if vendors == nil {
			vendors = []models.Vendor{}
		}
		respondJSON(w, http.StatusOK, vendors)
	}
}

func GetVendor(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid vendor id")
			return
		}
		vendor, err := s.GetVendor(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch vendor")
			return
		}
		respondJSON(w, http.StatusOK, vendor)
	}
}

func CreateVendor(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.VendorInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		vendor, err := s.CreateVendor(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create vendor")
			return
		}
		respondJSON(w, http.StatusCreated, vendor)
	}
}

func UpdateVendor(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid vendor id")
			return
		}
		var patch models.VendorPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		vendor, err := s.UpdateVendor(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update vendor")
			return
		}
		respondJSON(w, http.StatusOK, vendor)
	}
}

func DeleteVendor(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid vendor id")
			return
		}
		deleted, err := s.DeleteVendor(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete vendor")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
