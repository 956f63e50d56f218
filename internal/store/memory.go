package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/datatypes"

	"assetcore/internal/models"
)

var (
	_ Store = (*DB)(nil)
	_ Store = (*Memory)(nil)
)

// Memory implements Store with maps and monotonically increasing counters.
// Every operation takes the one mutex, so the asset write and its audit
// append are atomic by construction.
type Memory struct {
	mu sync.RWMutex

	assets      map[int]models.Asset
	maintenance map[int]models.MaintenanceRecord
	workOrders  map[int]models.WorkOrder
	locations   map[int]models.Location
	vendors     map[int]models.Vendor
	contracts   map[int]models.ServiceContract
	spareParts  map[int]models.SparePart
	compliance  map[int]models.ComplianceRecord
	energy      map[int]models.EnergyConsumption
	auditLogs   []models.AuditLog

	nextAsset       int
	nextMaintenance int
	nextWorkOrder   int
	nextLocation    int
	nextVendor      int
	nextContract    int
	nextSparePart   int
	nextCompliance  int
	nextEnergy      int
	nextAudit       int64
}

func NewMemory() *Memory {
	return &Memory{
		assets:      map[int]models.Asset{},
		maintenance: map[int]models.MaintenanceRecord{},
		workOrders:  map[int]models.WorkOrder{},
		locations:   map[int]models.Location{},
		vendors:     map[int]models.Vendor{},
		contracts:   map[int]models.ServiceContract{},
		spareParts:  map[int]models.SparePart{},
		compliance:  map[int]models.ComplianceRecord{},
		energy:      map[int]models.EnergyConsumption{},
	}
}

// newestFirst sorts by creation time descending, id descending as the
// tiebreak so same-instant rows still come back insertion-last first.
func newestFirst[T any](items []T, createdAt func(T) time.Time, id func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := createdAt(items[i]), createdAt(items[j])
		if ci.Equal(cj) {
			return id(items[i]) > id(items[j])
		}
		return ci.After(cj)
	})
}

func (m *Memory) appendAuditLocked(assetID int, action string, payload any) error {
	changes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}
	m.nextAudit++
	id := assetID
	m.auditLogs = append(m.auditLogs, models.AuditLog{
		ID:          m.nextAudit,
		AssetID:     &id,
		Action:      action,
		Changes:     datatypes.JSON(changes),
		PerformedBy: models.AuditSystemActor,
		Timestamp:   time.Now(),
	})
	return nil
}

// Assets

func (m *Memory) ListAssets(ctx context.Context) ([]models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	newestFirst(out, func(a models.Asset) time.Time { return a.CreatedAt }, func(a models.Asset) int { return a.ID })
	return out, nil
}

func (m *Memory) GetAsset(ctx context.Context, id int) (*models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *Memory) GetAssetByAssetID(ctx context.Context, assetID string) (*models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.assets {
		if a.AssetID == assetID {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateAsset(ctx context.Context, in models.AssetInput) (*models.Asset, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assets {
		if a.AssetID == in.AssetID {
			return nil, &ConflictError{Field: "assetId", Value: in.AssetID}
		}
	}
	m.nextAsset++
	now := time.Now()
	a := models.Asset{
		ID:            m.nextAsset,
		AssetID:       in.AssetID,
		Name:          in.Name,
		Category:      in.Category,
		Status:        in.Status,
		Location:      in.Location,
		Department:    in.Department,
		Description:   in.Description,
		PurchaseDate:  in.PurchaseDate,
		PurchasePrice: in.PurchasePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := m.appendAuditLocked(a.ID, models.AuditActionCreated, in); err != nil {
		m.nextAsset--
		return nil, err
	}
	m.assets[a.ID] = a
	return &a, nil
}

func (m *Memory) UpdateAsset(ctx context.Context, id int, patch models.AssetPatch) (*models.Asset, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&a)
	if err := m.appendAuditLocked(id, models.AuditActionUpdated, patch); err != nil {
		return nil, err
	}
	m.assets[id] = a
	return &a, nil
}

func (m *Memory) DeleteAsset(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assets[id]
	if !ok {
		return false, nil
	}
	if err := m.appendAuditLocked(id, models.AuditActionDeleted, a); err != nil {
		return false, err
	}
	delete(m.assets, id)
	return true, nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

func (m *Memory) SearchAssets(ctx context.Context, query string) ([]models.Asset, error) {
	q := strings.ToLower(query)
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Asset
	for _, a := range m.assets {
		if containsFold(a.Name, q) || containsFold(a.AssetID, q) || containsFold(a.Category, q) ||
			containsFold(a.Location, q) ||
			(a.Department != nil && containsFold(*a.Department, q)) ||
			(a.Description != nil && containsFold(*a.Description, q)) {
			out = append(out, a)
		}
	}
	newestFirst(out, func(a models.Asset) time.Time { return a.CreatedAt }, func(a models.Asset) int { return a.ID })
	return out, nil
}

func (m *Memory) FilterAssets(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Asset
	for _, a := range m.assets {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Location != "" && a.Location != f.Location {
			continue
		}
		if f.Department != "" && (a.Department == nil || *a.Department != f.Department) {
			continue
		}
		out = append(out, a)
	}
	newestFirst(out, func(a models.Asset) time.Time { return a.CreatedAt }, func(a models.Asset) int { return a.ID })
	return out, nil
}

func (m *Memory) ProposeAssetID(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("AST-%d-", time.Now().Year())
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, a := range m.assets {
		if strings.HasPrefix(a.AssetID, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// Maintenance records

func (m *Memory) ListMaintenanceRecords(ctx context.Context, assetID int) ([]models.MaintenanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.MaintenanceRecord
	for _, r := range m.maintenance {
		if assetID > 0 && r.AssetID != assetID {
			continue
		}
		out = append(out, r)
	}
	newestFirst(out, func(r models.MaintenanceRecord) time.Time { return r.CreatedAt }, func(r models.MaintenanceRecord) int { return r.ID })
	return out, nil
}

func (m *Memory) GetMaintenanceRecord(ctx context.Context, id int) (*models.MaintenanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.maintenance[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *Memory) CreateMaintenanceRecord(ctx context.Context, in models.MaintenanceRecordInput) (*models.MaintenanceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextMaintenance++
	r := models.MaintenanceRecord{
		ID:            m.nextMaintenance,
		AssetID:       in.AssetID,
		Type:          in.Type,
		Description:   in.Description,
		ScheduledDate: in.ScheduledDate,
		CompletedDate: in.CompletedDate,
		Cost:          in.Cost,
		PerformedBy:   in.PerformedBy,
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}
	m.maintenance[r.ID] = r
	return &r, nil
}

func (m *Memory) UpdateMaintenanceRecord(ctx context.Context, id int, patch models.MaintenanceRecordPatch) (*models.MaintenanceRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.maintenance[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&r)
	m.maintenance[id] = r
	return &r, nil
}

func (m *Memory) DeleteMaintenanceRecord(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.maintenance[id]; !ok {
		return false, nil
	}
	delete(m.maintenance, id)
	return true, nil
}

// Work orders

func (m *Memory) ListWorkOrders(ctx context.Context, assetID int) ([]models.WorkOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.WorkOrder, 0, len(m.workOrders))
	for _, w := range m.workOrders {
		if assetID > 0 && w.AssetID != assetID {
			continue
		}
		out = append(out, w)
	}
	newestFirst(out, func(w models.WorkOrder) time.Time { return w.CreatedAt }, func(w models.WorkOrder) int { return w.ID })
	return out, nil
}

func (m *Memory) GetWorkOrder(ctx context.Context, id int) (*models.WorkOrder, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.workOrders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (m *Memory) CreateWorkOrder(ctx context.Context, in models.WorkOrderInput) (*models.WorkOrder, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.workOrders {
		if w.WorkOrderID == in.WorkOrderID {
			return nil, &ConflictError{Field: "workOrderId", Value: in.WorkOrderID}
		}
	}
	m.nextWorkOrder++
	now := time.Now()
	w := models.WorkOrder{
		ID:             m.nextWorkOrder,
		WorkOrderID:    in.WorkOrderID,
		AssetID:        in.AssetID,
		Title:          in.Title,
		Description:    in.Description,
		Type:           in.Type,
		Priority:       in.Priority,
		Status:         in.Status,
		AssignedTo:     in.AssignedTo,
		EstimatedHours: in.EstimatedHours,
		ActualHours:    in.ActualHours,
		ScheduledDate:  in.ScheduledDate,
		StartedDate:    in.StartedDate,
		CompletedDate:  in.CompletedDate,
		Cost:           in.Cost,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.workOrders[w.ID] = w
	return &w, nil
}

func (m *Memory) UpdateWorkOrder(ctx context.Context, id int, patch models.WorkOrderPatch) (*models.WorkOrder, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.workOrders[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&w)
	m.workOrders[id] = w
	return &w, nil
}

func (m *Memory) DeleteWorkOrder(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workOrders[id]; !ok {
		return false, nil
	}
	delete(m.workOrders, id)
	return true, nil
}

// Locations

func (m *Memory) ListLocations(ctx context.Context) ([]models.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Location, 0, len(m.locations))
	for _, l := range m.locations {
		out = append(out, l)
	}
	newestFirst(out, func(l models.Location) time.Time { return l.CreatedAt }, func(l models.Location) int { return l.ID })
	return out, nil
}

func (m *Memory) GetLocation(ctx context.Context, id int) (*models.Location, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.locations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (m *Memory) CreateLocation(ctx context.Context, in models.LocationInput) (*models.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.locations {
		if l.Code == in.Code {
			return nil, &ConflictError{Field: "code", Value: in.Code}
		}
	}
	m.nextLocation++
	now := time.Now()
	l := models.Location{
		ID:          m.nextLocation,
		Name:        in.Name,
		Code:        in.Code,
		Type:        in.Type,
		ParentID:    in.ParentID,
		Address:     in.Address,
		Description: in.Description,
		Capacity:    in.Capacity,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}
	m.locations[l.ID] = l
	return &l, nil
}

func (m *Memory) UpdateLocation(ctx context.Context, id int, patch models.LocationPatch) (*models.Location, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locations[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Code != nil && *patch.Code != l.Code {
		for _, other := range m.locations {
			if other.ID != id && other.Code == *patch.Code {
				return nil, &ConflictError{Field: "code", Value: *patch.Code}
			}
		}
	}
	patch.Apply(&l)
	m.locations[id] = l
	return &l, nil
}

func (m *Memory) DeleteLocation(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.locations[id]; !ok {
		return false, nil
	}
	delete(m.locations, id)
	return true, nil
}

// Vendors

func (m *Memory) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Vendor, 0, len(m.vendors))
	for _, v := range m.vendors {
		out = append(out, v)
	}
	newestFirst(out, func(v models.Vendor) time.Time { return v.CreatedAt }, func(v models.Vendor) int { return v.ID })
	return out, nil
}

func (m *Memory) GetVendor(ctx context.Context, id int) (*models.Vendor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &v, nil
}

func (m *Memory) CreateVendor(ctx context.Context, in models.VendorInput) (*models.Vendor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vendors {
		if v.Code == in.Code {
			return nil, &ConflictError{Field: "code", Value: in.Code}
		}
	}
	m.nextVendor++
	now := time.Now()
	v := models.Vendor{
		ID:            m.nextVendor,
		Name:          in.Name,
		Code:          in.Code,
		Type:          in.Type,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Specialties:   datatypes.NewJSONSlice(in.Specialties),
		Rating:        in.Rating,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	m.vendors[v.ID] = v
	return &v, nil
}

func (m *Memory) UpdateVendor(ctx context.Context, id int, patch models.VendorPatch) (*models.Vendor, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Code != nil && *patch.Code != v.Code {
		for _, other := range m.vendors {
			if other.ID != id && other.Code == *patch.Code {
				return nil, &ConflictError{Field: "code", Value: *patch.Code}
			}
		}
	}
	patch.Apply(&v)
	m.vendors[id] = v
	return &v, nil
}

func (m *Memory) DeleteVendor(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vendors[id]; !ok {
		return false, nil
	}
	delete(m.vendors, id)
	return true, nil
}

// Service contracts

func (m *Memory) ListServiceContracts(ctx context.Context) ([]models.ServiceContract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.ServiceContract, 0, len(m.contracts))
	for _, c := range m.contracts {
		out = append(out, c)
	}
	newestFirst(out, func(c models.ServiceContract) time.Time { return c.CreatedAt }, func(c models.ServiceContract) int { return c.ID })
	return out, nil
}

func (m *Memory) GetServiceContract(ctx context.Context, id int) (*models.ServiceContract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) CreateServiceContract(ctx context.Context, in models.ServiceContractInput) (*models.ServiceContract, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.contracts {
		if c.ContractNumber == in.ContractNumber {
			return nil, &ConflictError{Field: "contractNumber", Value: in.ContractNumber}
		}
	}
	m.nextContract++
	now := time.Now()
	c := models.ServiceContract{
		ID:                 m.nextContract,
		VendorID:           in.VendorID,
		ContractNumber:     in.ContractNumber,
		Name:               in.Name,
		StartDate:          in.StartDate,
		EndDate:            in.EndDate,
		Value:              in.Value,
		SLAResponseHours:   in.SLAResponseHours,
		SLAResolutionHours: in.SLAResolutionHours,
		Status:             in.Status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.contracts[c.ID] = c
	return &c, nil
}

func (m *Memory) UpdateServiceContract(ctx context.Context, id int, patch models.ServiceContractPatch) (*models.ServiceContract, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.ContractNumber != nil && *patch.ContractNumber != c.ContractNumber {
		for _, other := range m.contracts {
			if other.ID != id && other.ContractNumber == *patch.ContractNumber {
				return nil, &ConflictError{Field: "contractNumber", Value: *patch.ContractNumber}
			}
		}
	}
	patch.Apply(&c)
	m.contracts[id] = c
	return &c, nil
}

func (m *Memory) DeleteServiceContract(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contracts[id]; !ok {
		return false, nil
	}
	delete(m.contracts, id)
	return true, nil
}

// Spare parts

func (m *Memory) ListSpareParts(ctx context.Context) ([]models.SparePart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.SparePart, 0, len(m.spareParts))
	for _, p := range m.spareParts {
		out = append(out, p)
	}
	newestFirst(out, func(p models.SparePart) time.Time { return p.CreatedAt }, func(p models.SparePart) int { return p.ID })
	return out, nil
}

func (m *Memory) GetSparePart(ctx context.Context, id int) (*models.SparePart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.spareParts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) CreateSparePart(ctx context.Context, in models.SparePartInput) (*models.SparePart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.spareParts {
		if p.PartNumber == in.PartNumber {
			return nil, &ConflictError{Field: "partNumber", Value: in.PartNumber}
		}
	}
	m.nextSparePart++
	now := time.Now()
	p := models.SparePart{
		ID:            m.nextSparePart,
		PartNumber:    in.PartNumber,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Manufacturer:  in.Manufacturer,
		ModelNumber:   in.ModelNumber,
		UnitOfMeasure: in.UnitOfMeasure,
		UnitCost:      in.UnitCost,
		CurrentStock:  in.CurrentStock,
		MinimumStock:  in.MinimumStock,
		MaximumStock:  in.MaximumStock,
		ReorderPoint:  in.ReorderPoint,
		LocationID:    in.LocationID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.spareParts[p.ID] = p
	return &p, nil
}

func (m *Memory) UpdateSparePart(ctx context.Context, id int, patch models.SparePartPatch) (*models.SparePart, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.spareParts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.PartNumber != nil && *patch.PartNumber != p.PartNumber {
		for _, other := range m.spareParts {
			if other.ID != id && other.PartNumber == *patch.PartNumber {
				return nil, &ConflictError{Field: "partNumber", Value: *patch.PartNumber}
			}
		}
	}
	patch.Apply(&p)
	m.spareParts[id] = p
	return &p, nil
}

func (m *Memory) DeleteSparePart(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.spareParts[id]; !ok {
		return false, nil
	}
	delete(m.spareParts, id)
	return true, nil
}

// Compliance records

func (m *Memory) ListComplianceRecords(ctx context.Context, assetID int) ([]models.ComplianceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.ComplianceRecord
	for _, c := range m.compliance {
		if assetID > 0 && c.AssetID != assetID {
			continue
		}
		out = append(out, c)
	}
	newestFirst(out, func(c models.ComplianceRecord) time.Time { return c.CreatedAt }, func(c models.ComplianceRecord) int { return c.ID })
	return out, nil
}

func (m *Memory) GetComplianceRecord(ctx context.Context, id int) (*models.ComplianceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.compliance[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) CreateComplianceRecord(ctx context.Context, in models.ComplianceRecordInput) (*models.ComplianceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextCompliance++
	now := time.Now()
	c := models.ComplianceRecord{
		ID:                     m.nextCompliance,
		AssetID:                in.AssetID,
		RegulationType:         in.RegulationType,
		RegulationName:         in.RegulationName,
		RequirementDescription: in.RequirementDescription,
		ComplianceStatus:       in.ComplianceStatus,
		LastInspectionDate:     in.LastInspectionDate,
		NextInspectionDate:     in.NextInspectionDate,
		InspectorName:          in.InspectorName,
		CertificateNumber:      in.CertificateNumber,
		ExpiryDate:             in.ExpiryDate,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	m.compliance[c.ID] = c
	return &c, nil
}

func (m *Memory) UpdateComplianceRecord(ctx context.Context, id int, patch models.ComplianceRecordPatch) (*models.ComplianceRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.compliance[id]
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(&c)
	m.compliance[id] = c
	return &c, nil
}

func (m *Memory) DeleteComplianceRecord(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.compliance[id]; !ok {
		return false, nil
	}
	delete(m.compliance, id)
	return true, nil
}

// Energy consumption

func (m *Memory) ListEnergyConsumption(ctx context.Context, assetID int) ([]models.EnergyConsumption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.EnergyConsumption
	for _, e := range m.energy {
		if assetID > 0 && e.AssetID != assetID {
			continue
		}
		out = append(out, e)
	}
	newestFirst(out, func(e models.EnergyConsumption) time.Time { return e.MeasurementDate }, func(e models.EnergyConsumption) int { return e.ID })
	return out, nil
}

func (m *Memory) CreateEnergyConsumption(ctx context.Context, in models.EnergyConsumptionInput) (*models.EnergyConsumption, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextEnergy++
	e := models.EnergyConsumption{
		ID:              m.nextEnergy,
		AssetID:         in.AssetID,
		MeasurementDate: in.MeasurementDate,
		EnergyType:      in.EnergyType,
		Consumption:     in.Consumption,
		Unit:            in.Unit,
		Cost:            in.Cost,
		CarbonFootprint: in.CarbonFootprint,
		CreatedAt:       time.Now(),
	}
	m.energy[e.ID] = e
	return &e, nil
}

// Audit logs

func (m *Memory) ListAuditLogs(ctx context.Context, assetID int) ([]models.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.AuditLog, 0, len(m.auditLogs))
	for _, l := range m.auditLogs {
		if assetID > 0 && (l.AssetID == nil || *l.AssetID != assetID) {
			continue
		}
		out = append(out, l)
	}
	// Newest first; ids are monotonic so they are the stable ordering key.
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Metrics

func (m *Memory) AssetMetrics(ctx context.Context) (AssetMetrics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out AssetMetrics
	for _, a := range m.assets {
		out.TotalAssets++
		switch a.Status {
		case models.AssetStatusActive:
			out.ActiveAssets++
		case models.AssetStatusMaintenance:
			out.MaintenanceAssets++
		case models.AssetStatusRetired:
			out.RetiredAssets++
		}
	}
	return out, nil
}

func (m *Memory) WorkOrderMetrics(ctx context.Context) (WorkOrderMetrics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	var out WorkOrderMetrics
	for _, w := range m.workOrders {
		out.TotalWorkOrders++
		switch w.Status {
		case models.WorkOrderStatusOpen:
			out.OpenWorkOrders++
		case models.WorkOrderStatusInProgress:
			out.InProgressWorkOrders++
		case models.WorkOrderStatusCompleted:
			out.CompletedWorkOrders++
		}
		if w.ScheduledDate != nil && w.ScheduledDate.Before(now) && w.Status != models.WorkOrderStatusCompleted {
			out.OverdueWorkOrders++
		}
	}
	return out, nil
}

func (m *Memory) MaintenanceMetrics(ctx context.Context) (MaintenanceMetrics, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	var out MaintenanceMetrics
	for _, r := range m.maintenance {
		out.TotalScheduled++
		if r.ScheduledDate != nil && r.ScheduledDate.After(now) && r.Status == models.MaintenanceStatusScheduled {
			out.Upcoming++
		}
		if r.ScheduledDate != nil && r.ScheduledDate.Before(now) && r.Status != models.MaintenanceStatusCompleted {
			out.Overdue++
		}
		if r.Status == models.MaintenanceStatusCompleted && r.CompletedDate != nil &&
			r.CompletedDate.Month() == now.Month() && r.CompletedDate.Year() == now.Year() {
			out.CompletedThisMonth++
		}
	}
	return out, nil
}
