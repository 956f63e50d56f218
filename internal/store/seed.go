package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"assetcore/internal/models"
)

func strp(s string) *string     { return &s }
func f64p(f float64) *float64   { return &f }
func intp(n int) *int           { return &n }
func date(s string) *time.Time  { t, _ := time.Parse("2006-01-02", s); return &t }

// Seed populates representative rows when the asset table is empty. It is an
// idempotent bootstrap, not a migration tool: a second call is a no-op.
func Seed(ctx context.Context, s Store, lg *zap.SugaredLogger) error {
	existing, err := s.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if len(existing) > 0 {
		lg.Infow("store already seeded, skipping")
		return nil
	}
	lg.Infow("seeding store with sample data")

	locations := []models.LocationInput{
		{Name: "Main Building", Code: "MB", Type: "building", Address: strp("123 Main Street, Business District"), Description: strp("Primary office building"), Capacity: intp(500)},
		{Name: "IT Department - Floor 3", Code: "IT-F3", Type: "department", Description: strp("Information Technology department on 3rd floor"), Capacity: intp(50)},
		{Name: "Warehouse A", Code: "WH-A", Type: "warehouse", Address: strp("456 Industrial Drive"), Description: strp("Main storage warehouse"), Capacity: intp(1000)},
	}
	locIDs := make([]int, 0, len(locations))
	for _, in := range locations {
		l, err := s.CreateLocation(ctx, in)
		if err != nil {
			return fmt.Errorf("seed location %s: %w", in.Code, err)
		}
		locIDs = append(locIDs, l.ID)
	}

	vendors := []models.VendorInput{
		{Name: "TechSupport Pro", Code: "TSP", Type: "contractor", ContactPerson: strp("John Smith"), Email: strp("john@techsupport.com"), Phone: strp("+1-555-0123"), Specialties: []string{"IT Equipment", "Network Maintenance"}, Rating: f64p(4.5)},
		{Name: "Office Solutions Inc", Code: "OSI", Type: "vendor", ContactPerson: strp("Sarah Johnson"), Email: strp("sarah@officesolutions.com"), Phone: strp("+1-555-0456"), Specialties: []string{"Furniture", "Office Supplies"}, Rating: f64p(4.2)},
	}
	for _, in := range vendors {
		if _, err := s.CreateVendor(ctx, in); err != nil {
			return fmt.Errorf("seed vendor %s: %w", in.Code, err)
		}
	}

	assets := []models.AssetInput{
		{AssetID: "AST-2025-001", Name: "Dell OptiPlex 7090", Category: "it-equipment", Status: "active", Location: "IT Department - Floor 3", Department: strp("Information Technology"), Description: strp("Desktop computer for software development"), PurchaseDate: date("2024-01-15"), PurchasePrice: f64p(1299.99)},
		{AssetID: "AST-2025-002", Name: "Conference Table", Category: "furniture", Status: "active", Location: "Meeting Room A", Department: strp("Administration"), Description: strp("8-person conference table with built-in power outlets"), PurchaseDate: date("2024-02-20"), PurchasePrice: f64p(2499.00)},
		{AssetID: "AST-2025-003", Name: "HP LaserJet Pro", Category: "it-equipment", Status: "maintenance", Location: "Print Center", Department: strp("Operations"), Description: strp("High-volume laser printer for office documents"), PurchaseDate: date("2023-11-10"), PurchasePrice: f64p(899.99)},
		{AssetID: "AST-2025-004", Name: "Ford Transit Van", Category: "vehicles", Status: "active", Location: "Parking Garage Level 1", Department: strp("Logistics"), Description: strp("Delivery van for equipment transport"), PurchaseDate: date("2023-08-05"), PurchasePrice: f64p(45000.00)},
		{AssetID: "AST-2025-005", Name: "Industrial Printer", Category: "machinery", Status: "retired", Location: "Warehouse Storage", Department: strp("Manufacturing"), Description: strp("Legacy printing equipment - end of life"), PurchaseDate: date("2020-03-15"), PurchasePrice: f64p(15000.00)},
	}
	assetIDs := make([]int, 0, len(assets))
	for _, in := range assets {
		a, err := s.CreateAsset(ctx, in)
		if err != nil {
			return fmt.Errorf("seed asset %s: %w", in.AssetID, err)
		}
		assetIDs = append(assetIDs, a.ID)
	}
	printer, van := assetIDs[2], assetIDs[3]

	workOrders := []models.WorkOrderInput{
		{WorkOrderID: "WO-2025-001", AssetID: printer, Title: "Preventive Maintenance - Printer", Description: strp("Replace toner cartridge and clean paper feed mechanism"), Type: "preventive", Priority: "high", Status: "in-progress", AssignedTo: strp("John Smith"), EstimatedHours: f64p(2.0), ScheduledDate: date("2025-01-15"), Cost: f64p(125.50)},
		{WorkOrderID: "WO-2025-002", AssetID: van, Title: "Routine Vehicle Service", Description: strp("Oil change and tire rotation"), Type: "preventive", Priority: "medium", Status: "completed", AssignedTo: strp("Mike Johnson"), EstimatedHours: f64p(1.5), ActualHours: f64p(1.25), ScheduledDate: date("2024-12-01"), CompletedDate: date("2024-12-01"), Cost: f64p(89.99)},
	}
	for _, in := range workOrders {
		if _, err := s.CreateWorkOrder(ctx, in); err != nil {
			return fmt.Errorf("seed work order %s: %w", in.WorkOrderID, err)
		}
	}

	maintenance := []models.MaintenanceRecordInput{
		{AssetID: printer, Type: "Preventive Maintenance", Description: strp("Replace toner cartridge and clean paper feed mechanism"), ScheduledDate: date("2025-01-15"), Status: "in-progress", Cost: f64p(125.50), PerformedBy: strp("IT Support Team")},
		{AssetID: van, Type: "Routine Service", Description: strp("Oil change and tire rotation"), ScheduledDate: date("2024-12-01"), CompletedDate: date("2024-12-01"), Status: "completed", Cost: f64p(89.99), PerformedBy: strp("Fleet Services")},
	}
	for _, in := range maintenance {
		if _, err := s.CreateMaintenanceRecord(ctx, in); err != nil {
			return fmt.Errorf("seed maintenance record: %w", err)
		}
	}

	spareParts := []models.SparePartInput{
		{PartNumber: "HP-TNR-CF400A", Name: "HP LaserJet Toner Cartridge", Description: strp("Black toner cartridge for HP LaserJet Pro series"), Category: "consumables", Manufacturer: strp("HP"), ModelNumber: strp("CF400A"), UnitOfMeasure: "piece", UnitCost: f64p(89.99), CurrentStock: 15, MinimumStock: 5, ReorderPoint: 8, LocationID: intp(locIDs[0])},
		{PartNumber: "FORD-OIL-5W30", Name: "Engine Oil 5W-30", Description: strp("Synthetic engine oil for Ford Transit"), Category: "fluids", Manufacturer: strp("Ford"), UnitOfMeasure: "liter", UnitCost: f64p(8.50), CurrentStock: 25, MinimumStock: 10, ReorderPoint: 15, LocationID: intp(locIDs[2])},
	}
	for _, in := range spareParts {
		if _, err := s.CreateSparePart(ctx, in); err != nil {
			return fmt.Errorf("seed spare part %s: %w", in.PartNumber, err)
		}
	}

	compliance := []models.ComplianceRecordInput{
		{AssetID: van, RegulationType: "DOT", RegulationName: "Vehicle Safety Inspection", RequirementDescription: strp("Annual safety inspection for commercial vehicles"), ComplianceStatus: "compliant", LastInspectionDate: date("2024-06-15"), NextInspectionDate: date("2025-06-15"), InspectorName: strp("City Motor Vehicle Department"), CertificateNumber: strp("DOT-2024-ABC123"), ExpiryDate: date("2025-06-15")},
		{AssetID: assetIDs[0], RegulationType: "ISO", RegulationName: "ISO 27001 IT Security", RequirementDescription: strp("Information security management compliance"), ComplianceStatus: "compliant", LastInspectionDate: date("2024-03-01"), NextInspectionDate: date("2025-03-01"), InspectorName: strp("IT Security Team")},
	}
	for _, in := range compliance {
		if _, err := s.CreateComplianceRecord(ctx, in); err != nil {
			return fmt.Errorf("seed compliance record: %w", err)
		}
	}

	lg.Infow("store seeded", "assets", len(assets))
	return nil
}
