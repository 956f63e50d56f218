package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"assetcore/internal/models"
)

// DB is the relational Store implementation.
type DB struct {
	orm *gorm.DB
}

func NewDB(orm *gorm.DB) *DB {
	return &DB{orm: orm}
}

// Migrate creates or updates the schema for every entity.
func Migrate(orm *gorm.DB) error {
	return orm.AutoMigrate(
		&models.Asset{},
		&models.MaintenanceRecord{},
		&models.WorkOrder{},
		&models.Location{},
		&models.Vendor{},
		&models.ServiceContract{},
		&models.SparePart{},
		&models.ComplianceRecord{},
		&models.EnergyConsumption{},
		&models.AuditLog{},
	)
}

func auditRow(assetID int, action string, payload any) (*models.AuditLog, error) {
	changes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal audit payload: %w", err)
	}
	id := assetID
	return &models.AuditLog{
		AssetID:     &id,
		Action:      action,
		Changes:     datatypes.JSON(changes),
		PerformedBy: models.AuditSystemActor,
		Timestamp:   time.Now(),
	}, nil
}

// checkUnique returns a ConflictError when another row (excluding excludeID)
// already holds value in column.
func (s *DB) checkUnique(ctx context.Context, model any, column, field, value string, excludeID int) error {
	var count int64
	q := s.orm.WithContext(ctx).Model(model).Where(column+" = ?", value)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Field: field, Value: value}
	}
	return nil
}

// Assets

func (s *DB) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var out []models.Asset
	err := s.orm.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) GetAsset(ctx context.Context, id int) (*models.Asset, error) {
	var a models.Asset
	if err := s.orm.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *DB) GetAssetByAssetID(ctx context.Context, assetID string) (*models.Asset, error) {
	var a models.Asset
	if err := s.orm.WithContext(ctx).First(&a, "asset_id = ?", assetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *DB) CreateAsset(ctx context.Context, in models.AssetInput) (*models.Asset, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.Asset{}, "asset_id", "assetId", in.AssetID, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	a := models.Asset{
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
	err := s.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		log, err := auditRow(a.ID, models.AuditActionCreated, in)
		if err != nil {
			return err
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *DB) UpdateAsset(ctx context.Context, id int, patch models.AssetPatch) (*models.Asset, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	a, err := s.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(a)
	err = s.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(a).Error; err != nil {
			return err
		}
		log, err := auditRow(a.ID, models.AuditActionUpdated, patch)
		if err != nil {
			return err
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *DB) DeleteAsset(ctx context.Context, id int) (bool, error) {
	a, err := s.GetAsset(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	err = s.orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Asset{}, "id = ?", id).Error; err != nil {
			return err
		}
		log, err := auditRow(id, models.AuditActionDeleted, a)
		if err != nil {
			return err
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *DB) SearchAssets(ctx context.Context, query string) ([]models.Asset, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	var out []models.Asset
	err := s.orm.WithContext(ctx).Where(
		"LOWER(name) LIKE ? OR LOWER(asset_id) LIKE ? OR LOWER(category) LIKE ? OR LOWER(location) LIKE ? OR LOWER(department) LIKE ? OR LOWER(description) LIKE ?",
		pattern, pattern, pattern, pattern, pattern, pattern,
	).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) FilterAssets(ctx context.Context, f AssetFilter) ([]models.Asset, error) {
	q := s.orm.WithContext(ctx).Model(&models.Asset{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	var out []models.Asset
	err := q.Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) ProposeAssetID(ctx context.Context) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("AST-%d-", year)
	var count int64
	err := s.orm.WithContext(ctx).Model(&models.Asset{}).
		Where("asset_id LIKE ?", prefix+"%").Count(&count).Error
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// Maintenance records

func (s *DB) ListMaintenanceRecords(ctx context.Context, assetID int) ([]models.MaintenanceRecord, error) {
	q := s.orm.WithContext(ctx).Order("created_at desc")
	if assetID > 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	var out []models.MaintenanceRecord
	err := q.Find(&out).Error
	return out, err
}

func (s *DB) GetMaintenanceRecord(ctx context.Context, id int) (*models.MaintenanceRecord, error) {
	var m models.MaintenanceRecord
	if err := s.orm.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *DB) CreateMaintenanceRecord(ctx context.Context, in models.MaintenanceRecordInput) (*models.MaintenanceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m := models.MaintenanceRecord{
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
	if err := s.orm.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *DB) UpdateMaintenanceRecord(ctx context.Context, id int, patch models.MaintenanceRecordPatch) (*models.MaintenanceRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	m, err := s.GetMaintenanceRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	if err := s.orm.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *DB) DeleteMaintenanceRecord(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.MaintenanceRecord{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Work orders

func (s *DB) ListWorkOrders(ctx context.Context, assetID int) ([]models.WorkOrder, error) {
	q := s.orm.WithContext(ctx).Order("created_at desc")
	if assetID > 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	var out []models.WorkOrder
	err := q.Find(&out).Error
	return out, err
}

func (s *DB) GetWorkOrder(ctx context.Context, id int) (*models.WorkOrder, error) {
	var w models.WorkOrder
	if err := s.orm.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &w, nil
}

func (s *DB) CreateWorkOrder(ctx context.Context, in models.WorkOrderInput) (*models.WorkOrder, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.WorkOrder{}, "work_order_id", "workOrderId", in.WorkOrderID, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	w := models.WorkOrder{
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
	if err := s.orm.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *DB) UpdateWorkOrder(ctx context.Context, id int, patch models.WorkOrderPatch) (*models.WorkOrder, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	w, err := s.GetWorkOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(w)
	if err := s.orm.WithContext(ctx).Save(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func (s *DB) DeleteWorkOrder(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.WorkOrder{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Locations

func (s *DB) ListLocations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	err := s.orm.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) GetLocation(ctx context.Context, id int) (*models.Location, error) {
	var l models.Location
	if err := s.orm.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *DB) CreateLocation(ctx context.Context, in models.LocationInput) (*models.Location, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.Location{}, "code", "code", in.Code, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	l := models.Location{
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
	if err := s.orm.WithContext(ctx).Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *DB) UpdateLocation(ctx context.Context, id int, patch models.LocationPatch) (*models.Location, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	l, err := s.GetLocation(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Code != nil && *patch.Code != l.Code {
		if err := s.checkUnique(ctx, &models.Location{}, "code", "code", *patch.Code, id); err != nil {
			return nil, err
		}
	}
	patch.Apply(l)
	if err := s.orm.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (s *DB) DeleteLocation(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.Location{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Vendors

func (s *DB) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var out []models.Vendor
	err := s.orm.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) GetVendor(ctx context.Context, id int) (*models.Vendor, error) {
	var v models.Vendor
	if err := s.orm.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *DB) CreateVendor(ctx context.Context, in models.VendorInput) (*models.Vendor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.Vendor{}, "code", "code", in.Code, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	v := models.Vendor{
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
	if err := s.orm.WithContext(ctx).Create(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *DB) UpdateVendor(ctx context.Context, id int, patch models.VendorPatch) (*models.Vendor, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	v, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Code != nil && *patch.Code != v.Code {
		if err := s.checkUnique(ctx, &models.Vendor{}, "code", "code", *patch.Code, id); err != nil {
			return nil, err
		}
	}
	patch.Apply(v)
	if err := s.orm.WithContext(ctx).Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func (s *DB) DeleteVendor(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.Vendor{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Service contracts

func (s *DB) ListServiceContracts(ctx context.Context) ([]models.ServiceContract, error) {
	var out []models.ServiceContract
	err := s.orm.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) GetServiceContract(ctx context.Context, id int) (*models.ServiceContract, error) {
	var c models.ServiceContract
	if err := s.orm.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *DB) CreateServiceContract(ctx context.Context, in models.ServiceContractInput) (*models.ServiceContract, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.ServiceContract{}, "contract_number", "contractNumber", in.ContractNumber, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	c := models.ServiceContract{
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
	if err := s.orm.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DB) UpdateServiceContract(ctx context.Context, id int, patch models.ServiceContractPatch) (*models.ServiceContract, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	c, err := s.GetServiceContract(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.ContractNumber != nil && *patch.ContractNumber != c.ContractNumber {
		if err := s.checkUnique(ctx, &models.ServiceContract{}, "contract_number", "contractNumber", *patch.ContractNumber, id); err != nil {
			return nil, err
		}
	}
	patch.Apply(c)
	if err := s.orm.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DB) DeleteServiceContract(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.ServiceContract{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Spare parts

func (s *DB) ListSpareParts(ctx context.Context) ([]models.SparePart, error) {
	var out []models.SparePart
	err := s.orm.WithContext(ctx).Order("created_at desc").Find(&out).Error
	return out, err
}

func (s *DB) GetSparePart(ctx context.Context, id int) (*models.SparePart, error) {
	var p models.SparePart
	if err := s.orm.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *DB) CreateSparePart(ctx context.Context, in models.SparePartInput) (*models.SparePart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, &models.SparePart{}, "part_number", "partNumber", in.PartNumber, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	p := models.SparePart{
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
	if err := s.orm.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DB) UpdateSparePart(ctx context.Context, id int, patch models.SparePartPatch) (*models.SparePart, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	p, err := s.GetSparePart(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.PartNumber != nil && *patch.PartNumber != p.PartNumber {
		if err := s.checkUnique(ctx, &models.SparePart{}, "part_number", "partNumber", *patch.PartNumber, id); err != nil {
			return nil, err
		}
	}
	patch.Apply(p)
	if err := s.orm.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DB) DeleteSparePart(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.SparePart{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Compliance records

func (s *DB) ListComplianceRecords(ctx context.Context, assetID int) ([]models.ComplianceRecord, error) {
	q := s.orm.WithContext(ctx).Order("created_at desc")
	if assetID > 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	var out []models.ComplianceRecord
	err := q.Find(&out).Error
	return out, err
}

func (s *DB) GetComplianceRecord(ctx context.Context, id int) (*models.ComplianceRecord, error) {
	var c models.ComplianceRecord
	if err := s.orm.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *DB) CreateComplianceRecord(ctx context.Context, in models.ComplianceRecordInput) (*models.ComplianceRecord, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	c := models.ComplianceRecord{
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
	if err := s.orm.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *DB) UpdateComplianceRecord(ctx context.Context, id int, patch models.ComplianceRecordPatch) (*models.ComplianceRecord, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	c, err := s.GetComplianceRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := s.orm.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DB) DeleteComplianceRecord(ctx context.Context, id int) (bool, error) {
	res := s.orm.WithContext(ctx).Delete(&models.ComplianceRecord{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

// Energy consumption

func (s *DB) ListEnergyConsumption(ctx context.Context, assetID int) ([]models.EnergyConsumption, error) {
	q := s.orm.WithContext(ctx).Order("measurement_date desc")
	if assetID > 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	var out []models.EnergyConsumption
	err := q.Find(&out).Error
	return out, err
}

func (s *DB) CreateEnergyConsumption(ctx context.Context, in models.EnergyConsumptionInput) (*models.EnergyConsumption, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e := models.EnergyConsumption{
		AssetID:         in.AssetID,
		MeasurementDate: in.MeasurementDate,
		EnergyType:      in.EnergyType,
		Consumption:     in.Consumption,
		Unit:            in.Unit,
		Cost:            in.Cost,
		CarbonFootprint: in.CarbonFootprint,
		CreatedAt:       time.Now(),
	}
	if err := s.orm.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Audit logs

func (s *DB) ListAuditLogs(ctx context.Context, assetID int) ([]models.AuditLog, error) {
	q := s.orm.WithContext(ctx).Order("timestamp desc")
	if assetID > 0 {
		q = q.Where("asset_id = ?", assetID)
	}
	var out []models.AuditLog
	err := q.Find(&out).Error
	return out, err
}

// Metrics

func (s *DB) AssetMetrics(ctx context.Context) (AssetMetrics, error) {
	var m AssetMetrics
	orm := s.orm.WithContext(ctx).Model(&models.Asset{})
	if err := orm.Count(&m.TotalAssets).Error; err != nil {
		return m, err
	}
	counts := []struct {
		status string
		dest   *int64
	}{
		{models.AssetStatusActive, &m.ActiveAssets},
		{models.AssetStatusMaintenance, &m.MaintenanceAssets},
		{models.AssetStatusRetired, &m.RetiredAssets},
	}
	for _, c := range counts {
		if err := s.orm.WithContext(ctx).Model(&models.Asset{}).
			Where("status = ?", c.status).Count(c.dest).Error; err != nil {
			return m, err
		}
	}
	return m, nil
}

func (s *DB) WorkOrderMetrics(ctx context.Context) (WorkOrderMetrics, error) {
	var m WorkOrderMetrics
	model := func() *gorm.DB { return s.orm.WithContext(ctx).Model(&models.WorkOrder{}) }
	if err := model().Count(&m.TotalWorkOrders).Error; err != nil {
		return m, err
	}
	if err := model().Where("status = ?", models.WorkOrderStatusOpen).Count(&m.OpenWorkOrders).Error; err != nil {
		return m, err
	}
	if err := model().Where("status = ?", models.WorkOrderStatusInProgress).Count(&m.InProgressWorkOrders).Error; err != nil {
		return m, err
	}
	if err := model().Where("status = ?", models.WorkOrderStatusCompleted).Count(&m.CompletedWorkOrders).Error; err != nil {
		return m, err
	}
	err := model().Where("scheduled_date < ? AND status <> ?", time.Now(), models.WorkOrderStatusCompleted).
		Count(&m.OverdueWorkOrders).Error
	return m, err
}

func (s *DB) MaintenanceMetrics(ctx context.Context) (MaintenanceMetrics, error) {
	var m MaintenanceMetrics
	now := time.Now()
	model := func() *gorm.DB { return s.orm.WithContext(ctx).Model(&models.MaintenanceRecord{}) }
	if err := model().Count(&m.TotalScheduled).Error; err != nil {
		return m, err
	}
	if err := model().Where("scheduled_date > ? AND status = ?", now, models.MaintenanceStatusScheduled).
		Count(&m.Upcoming).Error; err != nil {
		return m, err
	}
	if err := model().Where("scheduled_date < ? AND status <> ?", now, models.MaintenanceStatusCompleted).
		Count(&m.Overdue).Error; err != nil {
		return m, err
	}
	err := model().Where(
		"status = ? AND EXTRACT(MONTH FROM completed_date) = ? AND EXTRACT(YEAR FROM completed_date) = ?",
		models.MaintenanceStatusCompleted, int(now.Month()), now.Year(),
	).Count(&m.CompletedThisMonth).Error
	return m, err
}
