package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"assetcore/internal/models"
	"assetcore/internal/store"
)

var (
	assetScope       = []string{"/api/assets", "/api/metrics", "/api/audit-logs"}
	maintenanceScope = []string{"/api/maintenance", "/api/metrics"}
	workOrderScope   = []string{"/api/work-orders", "/api/metrics"}
)

// AssetQuery narrows an asset listing. Search wins over the field filters
// when both are set, matching the server's behaviour.
type AssetQuery struct {
	Search     string
	Category   string
	Status     string
	Location   string
	Department string
}

func (q AssetQuery) encode() string {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Department != "" {
		v.Set("department", q.Department)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func assetFilteredPath(resource string, assetID int) string {
	if assetID > 0 {
		return fmt.Sprintf("%s?assetId=%d", resource, assetID)
	}
	return resource
}

func (c *Client) Assets(ctx context.Context, q AssetQuery) ([]models.Asset, error) {
	return getJSON[[]models.Asset](ctx, c, "/api/assets"+q.encode())
}

func (c *Client) Asset(ctx context.Context, id int) (models.Asset, error) {
	return getJSON[models.Asset](ctx, c, fmt.Sprintf("/api/assets/%d", id))
}

func (c *Client) CreateAsset(ctx context.Context, in models.AssetInput) (models.Asset, error) {
	if err := in.Validate(); err != nil {
		return models.Asset{}, err
	}
	return writeJSON[models.Asset](ctx, c, http.MethodPost, "/api/assets", in, assetScope)
}

func (c *Client) UpdateAsset(ctx context.Context, id int, patch models.AssetPatch) (models.Asset, error) {
	return writeJSON[models.Asset](ctx, c, http.MethodPatch, fmt.Sprintf("/api/assets/%d", id), patch, assetScope)
}

func (c *Client) DeleteAsset(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/assets/%d", id), assetScope)
}

// GenerateAssetID asks the server for the next advisory asset id. The result
// is never cached so consecutive calls track server state.
func (c *Client) GenerateAssetID(ctx context.Context) (string, error) {
	out, err := writeJSON[struct {
		AssetID string `json:"assetId"`
	}](ctx, c, http.MethodGet, "/api/assets/generate-id", nil, nil)
	return out.AssetID, err
}

func (c *Client) MaintenanceRecords(ctx context.Context, assetID int) ([]models.MaintenanceRecord, error) {
	return getJSON[[]models.MaintenanceRecord](ctx, c, assetFilteredPath("/api/maintenance", assetID))
}

func (c *Client) MaintenanceRecord(ctx context.Context, id int) (models.MaintenanceRecord, error) {
	return getJSON[models.MaintenanceRecord](ctx, c, fmt.Sprintf("/api/maintenance/%d", id))
}

func (c *Client) CreateMaintenanceRecord(ctx context.Context, in models.MaintenanceRecordInput) (models.MaintenanceRecord, error) {
	if err := in.Validate(); err != nil {
		return models.MaintenanceRecord{}, err
	}
	return writeJSON[models.MaintenanceRecord](ctx, c, http.MethodPost, "/api/maintenance", in, maintenanceScope)
}

func (c *Client) UpdateMaintenanceRecord(ctx context.Context, id int, patch models.MaintenanceRecordPatch) (models.MaintenanceRecord, error) {
	return writeJSON[models.MaintenanceRecord](ctx, c, http.MethodPatch, fmt.Sprintf("/api/maintenance/%d", id), patch, maintenanceScope)
}

func (c *Client) DeleteMaintenanceRecord(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/maintenance/%d", id), maintenanceScope)
}

func (c *Client) WorkOrders(ctx context.Context, assetID int) ([]models.WorkOrder, error) {
	return getJSON[[]models.WorkOrder](ctx, c, assetFilteredPath("/api/work-orders", assetID))
}

func (c *Client) WorkOrder(ctx context.Context, id int) (models.WorkOrder, error) {
	return getJSON[models.WorkOrder](ctx, c, fmt.Sprintf("/api/work-orders/%d", id))
}

func (c *Client) CreateWorkOrder(ctx context.Context, in models.WorkOrderInput) (models.WorkOrder, error) {
	if err := in.Validate(); err != nil {
		return models.WorkOrder{}, err
	}
	return writeJSON[models.WorkOrder](ctx, c, http.MethodPost, "/api/work-orders", in, workOrderScope)
}

func (c *Client) UpdateWorkOrder(ctx context.Context, id int, patch models.WorkOrderPatch) (models.WorkOrder, error) {
	return writeJSON[models.WorkOrder](ctx, c, http.MethodPatch, fmt.Sprintf("/api/work-orders/%d", id), patch, workOrderScope)
}

func (c *Client) DeleteWorkOrder(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/work-orders/%d", id), workOrderScope)
}

func (c *Client) Locations(ctx context.Context) ([]models.Location, error) {
	return getJSON[[]models.Location](ctx, c, "/api/locations")
}

func (c *Client) Location(ctx context.Context, id int) (models.Location, error) {
	return getJSON[models.Location](ctx, c, fmt.Sprintf("/api/locations/%d", id))
}

func (c *Client) CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error) {
	if err := in.Validate(); err != nil {
		return models.Location{}, err
	}
	return writeJSON[models.Location](ctx, c, http.MethodPost, "/api/locations", in, []string{"/api/locations"})
}

func (c *Client) UpdateLocation(ctx context.Context, id int, patch models.LocationPatch) (models.Location, error) {
	return writeJSON[models.Location](ctx, c, http.MethodPatch, fmt.Sprintf("/api/locations/%d", id), patch, []string{"/api/locations"})
}

func (c *Client) DeleteLocation(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/locations/%d", id), []string{"/api/locations"})
}

func (c *Client) Vendors(ctx context.Context) ([]models.Vendor, error) {
	return getJSON[[]models.Vendor](ctx, c, "/api/vendors")
}

func (c *Client) Vendor(ctx context.Context, id int) (models.Vendor, error) {
	return getJSON[models.Vendor](ctx, c, fmt.Sprintf("/api/vendors/%d", id))
}

func (c *Client) CreateVendor(ctx context.Context, in models.VendorInput) (models.Vendor, error) {
	if err := in.Validate(); err != nil {
		return models.Vendor{}, err
	}
	return writeJSON[models.Vendor](ctx, c, http.MethodPost, "/api/vendors", in, []string{"/api/vendors"})
}

func (c *Client) UpdateVendor(ctx context.Context, id int, patch models.VendorPatch) (models.Vendor, error) {
	return writeJSON[models.Vendor](ctx, c, http.MethodPatch, fmt.Sprintf("/api/vendors/%d", id), patch, []string{"/api/vendors"})
}

func (c *Client) DeleteVendor(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/vendors/%d", id), []string{"/api/vendors"})
}

func (c *Client) ServiceContracts(ctx context.Context) ([]models.ServiceContract, error) {
	return getJSON[[]models.ServiceContract](ctx, c, "/api/service-contracts")
}

func (c *Client) ServiceContract(ctx context.Context, id int) (models.ServiceContract, error) {
	return getJSON[models.ServiceContract](ctx, c, fmt.Sprintf("/api/service-contracts/%d", id))
}

func (c *Client) CreateServiceContract(ctx context.Context, in models.ServiceContractInput) (models.ServiceContract, error) {
	if err := in.Validate(); err != nil {
		return models.ServiceContract{}, err
	}
	return writeJSON[models.ServiceContract](ctx, c, http.MethodPost, "/api/service-contracts", in, []string{"/api/service-contracts"})
}

func (c *Client) UpdateServiceContract(ctx context.Context, id int, patch models.ServiceContractPatch) (models.ServiceContract, error) {
	return writeJSON[models.ServiceContract](ctx, c, http.MethodPatch, fmt.Sprintf("/api/service-contracts/%d", id), patch, []string{"/api/service-contracts"})
}

func (c *Client) DeleteServiceContract(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/service-contracts/%d", id), []string{"/api/service-contracts"})
}

func (c *Client) SpareParts(ctx context.Context) ([]models.SparePart, error) {
	return getJSON[[]models.SparePart](ctx, c, "/api/spare-parts")
}

func (c *Client) SparePart(ctx context.Context, id int) (models.SparePart, error) {
	return getJSON[models.SparePart](ctx, c, fmt.Sprintf("/api/spare-parts/%d", id))
}

func (c *Client) CreateSparePart(ctx context.Context, in models.SparePartInput) (models.SparePart, error) {
	if err := in.Validate(); err != nil {
		return models.SparePart{}, err
	}
	return writeJSON[models.SparePart](ctx, c, http.MethodPost, "/api/spare-parts", in, []string{"/api/spare-parts"})
}

func (c *Client) UpdateSparePart(ctx context.Context, id int, patch models.SparePartPatch) (models.SparePart, error) {
	return writeJSON[models.SparePart](ctx, c, http.MethodPatch, fmt.Sprintf("/api/spare-parts/%d", id), patch, []string{"/api/spare-parts"})
}

func (c *Client) DeleteSparePart(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/spare-parts/%d", id), []string{"/api/spare-parts"})
}

func (c *Client) ComplianceRecords(ctx context.Context, assetID int) ([]models.ComplianceRecord, error) {
	return getJSON[[]models.ComplianceRecord](ctx, c, assetFilteredPath("/api/compliance", assetID))
}

func (c *Client) ComplianceRecord(ctx context.Context, id int) (models.ComplianceRecord, error) {
	return getJSON[models.ComplianceRecord](ctx, c, fmt.Sprintf("/api/compliance/%d", id))
}

func (c *Client) CreateComplianceRecord(ctx context.Context, in models.ComplianceRecordInput) (models.ComplianceRecord, error) {
	if err := in.Validate(); err != nil {
		return models.ComplianceRecord{}, err
	}
	return writeJSON[models.ComplianceRecord](ctx, c, http.MethodPost, "/api/compliance", in, []string{"/api/compliance"})
}

func (c *Client) UpdateComplianceRecord(ctx context.Context, id int, patch models.ComplianceRecordPatch) (models.ComplianceRecord, error) {
	return writeJSON[models.ComplianceRecord](ctx, c, http.MethodPatch, fmt.Sprintf("/api/compliance/%d", id), patch, []string{"/api/compliance"})
}

func (c *Client) DeleteComplianceRecord(ctx context.Context, id int) error {
	return c.deleteEntity(ctx, fmt.Sprintf("/api/compliance/%d", id), []string{"/api/compliance"})
}

func (c *Client) EnergyConsumption(ctx context.Context, assetID int) ([]models.EnergyConsumption, error) {
	return getJSON[[]models.EnergyConsumption](ctx, c, assetFilteredPath("/api/energy", assetID))
}

func (c *Client) CreateEnergyConsumption(ctx context.Context, in models.EnergyConsumptionInput) (models.EnergyConsumption, error) {
	if err := in.Validate(); err != nil {
		return models.EnergyConsumption{}, err
	}
	return writeJSON[models.EnergyConsumption](ctx, c, http.MethodPost, "/api/energy", in, []string{"/api/energy"})
}

func (c *Client) AuditLogs(ctx context.Context, assetID int) ([]models.AuditLog, error) {
	return getJSON[[]models.AuditLog](ctx, c, assetFilteredPath("/api/audit-logs", assetID))
}

func (c *Client) AssetMetrics(ctx context.Context) (store.AssetMetrics, error) {
	return getJSON[store.AssetMetrics](ctx, c, "/api/metrics")
}

func (c *Client) WorkOrderMetrics(ctx context.Context) (store.WorkOrderMetrics, error) {
	return getJSON[store.WorkOrderMetrics](ctx, c, "/api/metrics/work-orders")
}

func (c *Client) MaintenanceMetrics(ctx context.Context) (store.MaintenanceMetrics, error) {
	return getJSON[store.MaintenanceMetrics](ctx, c, "/api/metrics/maintenance")
}
