package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

// ListAssets serves the asset collection. A search query takes precedence
// over field filters, matching the original dashboard contract.
func ListAssets(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var (
			assets []models.Asset
			err    error
		)
		switch {
		case q.Get("search") != "":
			assets, err = s.SearchAssets(r.Context(), q.Get("search"))
		default:
			assets, err = s.FilterAssets(r.Context(), store.AssetFilter{
				Category:   q.Get("category"),
				Status:     q.Get("status"),
				Location:   q.Get("location"),
				Department: q.Get("department"),
			})
		}
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch assets")
			return
		}
		if assets == nil {
			assets = []models.Asset{}
		}
		respondJSON(w, http.StatusOK, assets)
	}
}

func GetAsset(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid asset id")
			return
		}
		a, err := s.GetAsset(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch asset")
			return
		}
		respondJSON(w, http.StatusOK, a)
	}
}

func CreateAsset(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.AssetInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		a, err := s.CreateAsset(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create asset")
			return
		}
		lg.Infow("asset created", "id", a.ID, "assetId", a.AssetID)
		respondJSON(w, http.StatusCreated, a)
	}
}

func UpdateAsset(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid asset id")
			return
		}
		var patch models.AssetPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		a, err := s.UpdateAsset(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update asset")
			return
		}
		respondJSON(w, http.StatusOK, a)
	}
}

func DeleteAsset(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid asset id")
			return
		}
		deleted, err := s.DeleteAsset(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete asset")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		lg.Infow("asset deleted", "id", id)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GenerateAssetID proposes the next asset code. The route is registered
// before GET /api/assets/{id} so "generate-id" is never parsed as an id.
func GenerateAssetID(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID, err := s.ProposeAssetID(r.Context())
		if err != nil {
			respondStoreError(w, lg, err, "failed to generate asset id")
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"assetId": assetID})
	}
}
