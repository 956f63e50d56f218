package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"assetcore/internal/httpserver/handlers"
	"assetcore/internal/store"
)

func NewRouter(s store.Store, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, middleware.RealIP, middleware.Recoverer, middleware.Logger, instrument)

	r.Route("/api", func(api chi.Router) {
		api.Route("/assets", func(ar chi.Router) {
			ar.Get("/", handlers.ListAssets(s, lg))
			ar.Post("/", handlers.CreateAsset(s, lg))
			// registered before /{id} so "generate-id" never parses as one
			ar.Get("/generate-id", handlers.GenerateAssetID(s, lg))
			ar.Get("/{id}", handlers.GetAsset(s, lg))
			// updates accept partial payloads; PUT is kept as an alias
			// for clients still using the old verb
			ar.Patch("/{id}", handlers.UpdateAsset(s, lg))
			ar.Put("/{id}", handlers.UpdateAsset(s, lg))
			ar.Delete("/{id}", handlers.DeleteAsset(s, lg))
		})

		api.Route("/maintenance", func(mr chi.Router) {
			mr.Get("/", handlers.ListMaintenanceRecords(s, lg))
			mr.Post("/", handlers.CreateMaintenanceRecord(s, lg))
			mr.Get("/{id}", handlers.GetMaintenanceRecord(s, lg))
			mr.Patch("/{id}", handlers.UpdateMaintenanceRecord(s, lg))
			mr.Put("/{id}", handlers.UpdateMaintenanceRecord(s, lg))
			mr.Delete("/{id}", handlers.DeleteMaintenanceRecord(s, lg))
		})

		api.Route("/work-orders", func(wr chi.Router) {
			wr.Get("/", handlers.ListWorkOrders(s, lg))
			wr.Post("/", handlers.CreateWorkOrder(s, lg))
			wr.Get("/{id}", handlers.GetWorkOrder(s, lg))
			wr.Patch("/{id}", handlers.UpdateWorkOrder(s, lg))
			wr.Put("/{id}", handlers.UpdateWorkOrder(s, lg))
			wr.Delete("/{id}", handlers.DeleteWorkOrder(s, lg))
		})

		api.Route("/locations", func(lr chi.Router) {
			lr.Get("/", handlers.ListLocations(s, lg))
			lr.Post("/", handlers.CreateLocation(s, lg))
			lr.Get("/{id}", handlers.GetLocation(s, lg))
			lr.Patch("/{id}", handlers.UpdateLocation(s, lg))
			lr.Put("/{id}", handlers.UpdateLocation(s, lg))
			lr.Delete("/{id}", handlers.DeleteLocation(s, lg))
		})

		api.Route("/vendors", func(vr chi.Router) {
			vr.Get("/", handlers.ListVendors(s, lg))
			vr.Post("/", handlers.CreateVendor(s, lg))
			vr.Get("/{id}", handlers.GetVendor(s, lg))
			vr.Patch("/{id}", handlers.UpdateVendor(s, lg))
			vr.Put("/{id}", handlers.UpdateVendor(s, lg))
			vr.Delete("/{id}", handlers.DeleteVendor(s, lg))
		})

		api.Route("/service-contracts", func(cr chi.Router) {
			cr.Get("/", handlers.ListServiceContracts(s, lg))
			cr.Post("/", handlers.CreateServiceContract(s, lg))
			cr.Get("/{id}", handlers.GetServiceContract(s, lg))
			cr.Patch("/{id}", handlers.UpdateServiceContract(s, lg))
			cr.Put("/{id}", handlers.UpdateServiceContract(s, lg))
			cr.Delete("/{id}", handlers.DeleteServiceContract(s, lg))
		})

		api.Route("/spare-parts", func(pr chi.Router) {
			pr.Get("/", handlers.ListSpareParts(s, lg))
			pr.Post("/", handlers.CreateSparePart(s, lg))
			pr.Get("/{id}", handlers.GetSparePart(s, lg))
			pr.Patch("/{id}", handlers.UpdateSparePart(s, lg))
			pr.Put("/{id}", handlers.UpdateSparePart(s, lg))
			pr.Delete("/{id}", handlers.DeleteSparePart(s, lg))
		})

		api.Route("/compliance", func(cr chi.Router) {
			cr.Get("/", handlers.ListComplianceRecords(s, lg))
			cr.Post("/", handlers.CreateComplianceRecord(s, lg))
			cr.Get("/{id}", handlers.GetComplianceRecord(s, lg))
			cr.Patch("/{id}", handlers.UpdateComplianceRecord(s, lg))
			cr.Put("/{id}", handlers.UpdateComplianceRecord(s, lg))
			cr.Delete("/{id}", handlers.DeleteComplianceRecord(s, lg))
		})

		api.Get("/energy", handlers.ListEnergyConsumption(s, lg))
		api.Post("/energy", handlers.CreateEnergyConsumption(s, lg))

		api.Get("/audit-logs", handlers.ListAuditLogs(s, lg))

		api.Get("/metrics", handlers.AssetMetrics(s, lg))
		api.Get("/metrics/work-orders", handlers.WorkOrderMetrics(s, lg))
		api.Get("/metrics/maintenance", handlers.MaintenanceMetrics(s, lg))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}
