package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"assetcore/internal/models"
)

func testAssetInput(assetID, name string) models.AssetInput {
	return models.AssetInput{
		AssetID:  assetID,
		Name:     name,
		Category: "it-equipment",
		Status:   models.AssetStatusActive,
		Location: "HQ",
	}
}

func TestMemoryCreateAndGetAsset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	created, err := m.CreateAsset(ctx, testAssetInput("AST-2025-100", "Laptop"))
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := m.GetAsset(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.AssetID, got.AssetID)

	byCode, err := m.GetAssetByAssetID(ctx, "AST-2025-100")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byCode.ID)

	_, err = m.GetAsset(ctx, created.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCreateAssetAudits(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.CreateAsset(ctx, testAssetInput("AST-2025-101", "Printer"))
	require.NoError(t, err)

	logs, err := m.ListAuditLogs(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionCreated, logs[0].Action)
	assert.Equal(t, models.AuditSystemActor, logs[0].PerformedBy)
	assert.Contains(t, string(logs[0].Changes), "AST-2025-101")
}

func TestMemoryCreateAssetConflictLeavesNoTrace(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.CreateAsset(ctx, testAssetInput("AST-2025-102", "First"))
	require.NoError(t, err)

	_, err = m.CreateAsset(ctx, testAssetInput("AST-2025-102", "Second"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "assetId", conflict.Field)
	assert.Equal(t, "AST-2025-102", conflict.Value)

	assets, err := m.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 1, "rejected create must not insert")

	logs, err := m.ListAuditLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1, "rejected create must not audit")
}

func TestMemoryCreateAssetRejectsInvalidInput(t *testing.T) {
	m := NewMemory()
	_, err := m.CreateAsset(context.Background(), models.AssetInput{Name: "no id"})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestMemoryUpdateAsset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.CreateAsset(ctx, testAssetInput("AST-2025-103", "Server"))
	require.NoError(t, err)

	status := models.AssetStatusMaintenance
	updated, err := m.UpdateAsset(ctx, a.ID, models.AssetPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.AssetStatusMaintenance, updated.Status)
	assert.Equal(t, "AST-2025-103", updated.AssetID)

	logs, err := m.ListAuditLogs(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUpdated, logs[0].Action, "newest audit row first")

	_, err = m.UpdateAsset(ctx, a.ID+99, models.AssetPatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDeleteAssetKeepsAuditAndOrphans(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.CreateAsset(ctx, testAssetInput("AST-2025-104", "Van"))
	require.NoError(t, err)
	_, err = m.CreateMaintenanceRecord(ctx, models.MaintenanceRecordInput{AssetID: a.ID, Type: "Oil Change"})
	require.NoError(t, err)

	deleted, err := m.DeleteAsset(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = m.DeleteAsset(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete is a no-op")

	// dependents survive with their asset id intact
	records, err := m.ListMaintenanceRecords(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	logs, err := m.ListAuditLogs(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionDeleted, logs[0].Action)
	assert.Contains(t, string(logs[0].Changes), "AST-2025-104", "delete audit carries the final snapshot")
}

func TestMemorySearchAssetsIsCaseInsensitive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := testAssetInput("AST-2025-105", "HP LaserJet Pro")
	in.Description = strp("High-volume office printer")
	_, err := m.CreateAsset(ctx, in)
	require.NoError(t, err)
	_, err = m.CreateAsset(ctx, testAssetInput("AST-2025-106", "Standing Desk"))
	require.NoError(t, err)

	for _, q := range []string{"laserjet", "LASERJET", "ast-2025-105", "office printer"} {
		found, err := m.SearchAssets(ctx, q)
		require.NoError(t, err)
		require.Len(t, found, 1, "query %q", q)
		assert.Equal(t, "HP LaserJet Pro", found[0].Name)
	}

	none, err := m.SearchAssets(ctx, "forklift")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryFilterAssetsANDSemantics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	active := testAssetInput("AST-2025-107", "Desktop")
	active.Department = strp("IT")
	_, err := m.CreateAsset(ctx, active)
	require.NoError(t, err)

	retired := testAssetInput("AST-2025-108", "Old Desktop")
	retired.Status = models.AssetStatusRetired
	retired.Department = strp("IT")
	_, err = m.CreateAsset(ctx, retired)
	require.NoError(t, err)

	both, err := m.FilterAssets(ctx, AssetFilter{Category: "it-equipment", Department: "IT"})
	require.NoError(t, err)
	assert.Len(t, both, 2)

	onlyActive, err := m.FilterAssets(ctx, AssetFilter{Category: "it-equipment", Status: models.AssetStatusActive})
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	assert.Equal(t, "AST-2025-107", onlyActive[0].AssetID)

	neither, err := m.FilterAssets(ctx, AssetFilter{Status: models.AssetStatusActive, Department: "Finance"})
	require.NoError(t, err)
	assert.Empty(t, neither)
}

func TestMemoryProposeAssetID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	year := time.Now().Year()

	id, err := m.ProposeAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("AST-%d-001", year), id)

	_, err = m.CreateAsset(ctx, testAssetInput(id, "First"))
	require.NoError(t, err)

	id, err = m.ProposeAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("AST-%d-002", year), id)

	// assets outside the current year's prefix do not advance the counter
	_, err = m.CreateAsset(ctx, testAssetInput("AST-1999-001", "Legacy"))
	require.NoError(t, err)
	id, err = m.ProposeAssetID(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("AST-%d-002", year), id)
}

func TestMemoryWorkOrderConflictOnWorkOrderID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := models.WorkOrderInput{WorkOrderID: "WO-2025-900", AssetID: 1, Title: "Fix it", Type: "corrective"}
	_, err := m.CreateWorkOrder(ctx, in)
	require.NoError(t, err)

	in.Title = "Fix it again"
	_, err = m.CreateWorkOrder(ctx, in)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "workOrderId", conflict.Field)
}

func TestMemoryListWorkOrdersFiltersByAsset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.CreateWorkOrder(ctx, models.WorkOrderInput{WorkOrderID: "WO-1", AssetID: 1, Title: "A", Type: "preventive"})
	require.NoError(t, err)
	_, err = m.CreateWorkOrder(ctx, models.WorkOrderInput{WorkOrderID: "WO-2", AssetID: 2, Title: "B", Type: "corrective"})
	require.NoError(t, err)

	all, err := m.ListWorkOrders(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := m.ListWorkOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "WO-2", one[0].WorkOrderID)
}

func TestMemoryAssetMetricsPartitionByStatus(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	statuses := []string{
		models.AssetStatusActive, models.AssetStatusActive,
		models.AssetStatusMaintenance,
		models.AssetStatusRetired,
	}
	for i, st := range statuses {
		in := testAssetInput(fmt.Sprintf("AST-2025-2%02d", i), fmt.Sprintf("Asset %d", i))
		in.Status = st
		_, err := m.CreateAsset(ctx, in)
		require.NoError(t, err)
	}

	metrics, err := m.AssetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), metrics.TotalAssets)
	assert.Equal(t, int64(2), metrics.ActiveAssets)
	assert.Equal(t, int64(1), metrics.MaintenanceAssets)
	assert.Equal(t, int64(1), metrics.RetiredAssets)
	assert.Equal(t, metrics.TotalAssets, metrics.ActiveAssets+metrics.MaintenanceAssets+metrics.RetiredAssets)
}

func TestMemoryWorkOrderMetrics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	past := time.Now().AddDate(0, 0, -7)
	future := time.Now().AddDate(0, 0, 7)

	orders := []models.WorkOrderInput{
		{WorkOrderID: "WO-10", AssetID: 1, Title: "open overdue", Type: "corrective", Status: "open", ScheduledDate: &past},
		{WorkOrderID: "WO-11", AssetID: 1, Title: "open future", Type: "corrective", Status: "open", ScheduledDate: &future},
		{WorkOrderID: "WO-12", AssetID: 1, Title: "running", Type: "preventive", Status: "in-progress"},
		{WorkOrderID: "WO-13", AssetID: 1, Title: "done", Type: "preventive", Status: "completed", ScheduledDate: &past},
	}
	for _, in := range orders {
		_, err := m.CreateWorkOrder(ctx, in)
		require.NoError(t, err)
	}

	metrics, err := m.WorkOrderMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), metrics.TotalWorkOrders)
	assert.Equal(t, int64(2), metrics.OpenWorkOrders)
	assert.Equal(t, int64(1), metrics.InProgressWorkOrders)
	assert.Equal(t, int64(1), metrics.CompletedWorkOrders)
	assert.Equal(t, int64(1), metrics.OverdueWorkOrders, "completed orders past their date are not overdue")
}

func TestMemoryMaintenanceMetrics(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	past := time.Now().AddDate(0, 0, -3)
	soon := time.Now().AddDate(0, 0, 3)
	thisMonth := time.Now()

	records := []models.MaintenanceRecordInput{
		{AssetID: 1, Type: "Overdue Check", Status: "scheduled", ScheduledDate: &past},
		{AssetID: 1, Type: "Upcoming Check", Status: "scheduled", ScheduledDate: &soon},
		{AssetID: 1, Type: "Done", Status: "completed", CompletedDate: &thisMonth},
	}
	for _, in := range records {
		_, err := m.CreateMaintenanceRecord(ctx, in)
		require.NoError(t, err)
	}

	metrics, err := m.MaintenanceMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.TotalScheduled, "total counts every record regardless of status")
	assert.Equal(t, int64(1), metrics.Upcoming)
	assert.Equal(t, int64(1), metrics.Overdue)
	assert.Equal(t, int64(1), metrics.CompletedThisMonth)
}

func TestMemoryListAssetsNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := m.CreateAsset(ctx, testAssetInput(fmt.Sprintf("AST-2025-3%02d", i), fmt.Sprintf("Asset %d", i)))
		require.NoError(t, err)
	}

	assets, err := m.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 3)
	assert.Equal(t, "AST-2025-302", assets[0].AssetID)
	assert.Equal(t, "AST-2025-300", assets[2].AssetID)
}

func TestSeedIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	lg := zap.NewNop().Sugar()

	require.NoError(t, Seed(ctx, m, lg))

	assets, err := m.ListAssets(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 5)

	locations, err := m.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 3)
	vendors, err := m.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
	orders, err := m.ListWorkOrders(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	parts, err := m.ListSpareParts(ctx)
	require.NoError(t, err)
	assert.Len(t, parts, 2)

	// seeded assets go through the normal create path and are audited
	logs, err := m.ListAuditLogs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 5)

	require.NoError(t, Seed(ctx, m, lg))
	assets, err = m.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 5, "second seed run must not duplicate rows")
}

func TestMemoryEnergyConsumptionAppendOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := models.EnergyConsumptionInput{
		AssetID:         7,
		MeasurementDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EnergyType:      "electricity",
		Consumption:     120.5,
		Unit:            "kWh",
	}
	created, err := m.CreateEnergyConsumption(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	all, err := m.ListEnergyConsumption(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	other, err := m.ListEnergyConsumption(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, other)
}
