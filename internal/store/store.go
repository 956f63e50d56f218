package store

import (
	"context"
	"errors"
	"fmt"

	"assetcore/internal/models"
)

// ErrNotFound is returned when an id does not resolve to a row.
var ErrNotFound = errors.New("not found")

// ConflictError reports a collision on a declared-unique field, e.g. a
// duplicate asset code. It maps to a 400 at the handler boundary.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

type AssetMetrics struct {
	TotalAssets       int64 `json:"totalAssets"`
	ActiveAssets      int64 `json:"activeAssets"`
	MaintenanceAssets int64 `json:"maintenanceAssets"`
	RetiredAssets     int64 `json:"retiredAssets"`
}

type WorkOrderMetrics struct {
	TotalWorkOrders      int64 `json:"totalWorkOrders"`
	OpenWorkOrders       int64 `json:"openWorkOrders"`
	InProgressWorkOrders int64 `json:"inProgressWorkOrders"`
	CompletedWorkOrders  int64 `json:"completedWorkOrders"`
	OverdueWorkOrders    int64 `json:"overdueWorkOrders"`
}

type MaintenanceMetrics struct {
	TotalScheduled     int64 `json:"totalScheduled"`
	Upcoming           int64 `json:"upcoming"`
	Overdue            int64 `json:"overdue"`
	CompletedThisMonth int64 `json:"completedThisMonth"`
}

// AssetFilter holds the optional AND criteria for FilterAssets. Empty
// fields are wildcards.
type AssetFilter struct {
	Category   string
	Status     string
	Location   string
	Department string
}

func (f AssetFilter) Empty() bool {
	return f.Category == "" && f.Status == "" && f.Location == "" && f.Department == ""
}

// Store is the persistence contract. Two implementations exist, one backed
// by Postgres through GORM and one in-memory; the process picks exactly one
// at startup and never mixes them.
//
// Lists are ordered newest-created first. Create returns a ConflictError on
// unique-field collisions and the caller is expected to have validated the
// input first. Asset deletion is orphan-tolerant: dependent maintenance,
// work-order, compliance, energy, and audit rows keep their asset id and are
// neither cascaded nor guarded.
type Store interface {
	// Assets. Every successful create/update/delete appends exactly one
	// audit row atomically with the primary write.
	ListAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, id int) (*models.Asset, error)
	GetAssetByAssetID(ctx context.Context, assetID string) (*models.Asset, error)
	CreateAsset(ctx context.Context, in models.AssetInput) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id int, patch models.AssetPatch) (*models.Asset, error)
	DeleteAsset(ctx context.Context, id int) (bool, error)
	SearchAssets(ctx context.Context, query string) ([]models.Asset, error)
	FilterAssets(ctx context.Context, f AssetFilter) ([]models.Asset, error)
	// ProposeAssetID suggests the next AST-<year>-NNN code. Advisory only:
	// nothing is reserved, and a concurrent creation racing to the same
	// code loses via the conflict path at create time.
	ProposeAssetID(ctx context.Context) (string, error)

	// Maintenance records. assetID 0 means all.
	ListMaintenanceRecords(ctx context.Context, assetID int) ([]models.MaintenanceRecord, error)
	GetMaintenanceRecord(ctx context.Context, id int) (*models.MaintenanceRecord, error)
	CreateMaintenanceRecord(ctx context.Context, in models.MaintenanceRecordInput) (*models.MaintenanceRecord, error)
	UpdateMaintenanceRecord(ctx context.Context, id int, patch models.MaintenanceRecordPatch) (*models.MaintenanceRecord, error)
	DeleteMaintenanceRecord(ctx context.Context, id int) (bool, error)

	// Work orders. assetID 0 means all.
	ListWorkOrders(ctx context.Context, assetID int) ([]models.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id int) (*models.WorkOrder, error)
	CreateWorkOrder(ctx context.Context, in models.WorkOrderInput) (*models.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, id int, patch models.WorkOrderPatch) (*models.WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, id int) (bool, error)

	// Locations.
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id int) (*models.Location, error)
	CreateLocation(ctx context.Context, in models.LocationInput) (*models.Location, error)
	UpdateLocation(ctx context.Context, id int, patch models.LocationPatch) (*models.Location, error)
	DeleteLocation(ctx context.Context, id int) (bool, error)

	// Vendors.
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	GetVendor(ctx context.Context, id int) (*models.Vendor, error)
	CreateVendor(ctx context.Context, in models.VendorInput) (*models.Vendor, error)
	UpdateVendor(ctx context.Context, id int, patch models.VendorPatch) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, id int) (bool, error)

	// Service contracts.
	ListServiceContracts(ctx context.Context) ([]models.ServiceContract, error)
	GetServiceContract(ctx context.Context, id int) (*models.ServiceContract, error)
	CreateServiceContract(ctx context.Context, in models.ServiceContractInput) (*models.ServiceContract, error)
	UpdateServiceContract(ctx context.Context, id int, patch models.ServiceContractPatch) (*models.ServiceContract, error)
	DeleteServiceContract(ctx context.Context, id int) (bool, error)

	// Spare parts.
	ListSpareParts(ctx context.Context) ([]models.SparePart, error)
	GetSparePart(ctx context.Context, id int) (*models.SparePart, error)
	CreateSparePart(ctx context.Context, in models.SparePartInput) (*models.SparePart, error)
	UpdateSparePart(ctx context.Context, id int, patch models.SparePartPatch) (*models.SparePart, error)
	DeleteSparePart(ctx context.Context, id int) (bool, error)

	// Compliance records. assetID 0 means all.
	ListComplianceRecords(ctx context.Context, assetID int) ([]models.ComplianceRecord, error)
	GetComplianceRecord(ctx context.Context, id int) (*models.ComplianceRecord, error)
	CreateComplianceRecord(ctx context.Context, in models.ComplianceRecordInput) (*models.ComplianceRecord, error)
	UpdateComplianceRecord(ctx context.Context, id int, patch models.ComplianceRecordPatch) (*models.ComplianceRecord, error)
	DeleteComplianceRecord(ctx context.Context, id int) (bool, error)

	// Energy consumption: immutable observations, list and create only.
	ListEnergyConsumption(ctx context.Context, assetID int) ([]models.EnergyConsumption, error)
	CreateEnergyConsumption(ctx context.Context, in models.EnergyConsumptionInput) (*models.EnergyConsumption, error)

	// Audit logs: append-only, written as a side effect of asset writes.
	ListAuditLogs(ctx context.Context, assetID int) ([]models.AuditLog, error)

	// Aggregate metrics.
	AssetMetrics(ctx context.Context) (AssetMetrics, error)
	WorkOrderMetrics(ctx context.Context) (WorkOrderMetrics, error)
	MaintenanceMetrics(ctx context.Context) (MaintenanceMetrics, error)
}
