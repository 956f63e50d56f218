package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

func ListWorkOrders(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := s.ListWorkOrders(r.Context(), assetIDQuery(r))
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch work orders")
			return
		}
		if orders == nil {
			orders = []models.WorkOrder{}
		}
		respondJSON(w, http.StatusOK, orders)
	}
}

func GetWorkOrder(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid work order id")
			return
		}
		order, err := s.GetWorkOrder(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to fetch work order")
			return
		}
		respondJSON(w, http.StatusOK, order)
	}
}

func CreateWorkOrder(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.WorkOrderInput
		if err := decodeJSON(r, &in); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		order, err := s.CreateWorkOrder(r.Context(), in)
		if err != nil {
			respondStoreError(w, lg, err, "failed to create work order")
			return
		}
		lg.Infow("work order created", "workOrderId", order.WorkOrderID)
		respondJSON(w, http.StatusCreated, order)
	}
}

func UpdateWorkOrder(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid work order id")
			return
		}
		var patch models.WorkOrderPatch
		if err := decodeJSON(r, &patch); err != nil {
			respondMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		order, err := s.UpdateWorkOrder(r.Context(), id, patch)
		if err != nil {
			respondStoreError(w, lg, err, "failed to update work order")
			return
		}
		respondJSON(w, http.StatusOK, order)
	}
}

func DeleteWorkOrder(s store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondMessage(w, http.StatusBadRequest, "invalid work order id")
			return
		}
		deleted, err := s.DeleteWorkOrder(r.Context(), id)
		if err != nil {
			respondStoreError(w, lg, err, "failed to delete work order")
			return
		}
		if !deleted {
			respondMessage(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
