package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestAssetInputValidate(t *testing.T) {
	in := AssetInput{
		AssetID:  "  AST-2025-010  ",
		Name:     "Test Laptop",
		Category: "it-equipment",
		Location: "HQ",
	}
	require.NoError(t, in.Validate())
	assert.Equal(t, "AST-2025-010", in.AssetID, "should trim surrounding whitespace")
	assert.Equal(t, AssetStatusActive, in.Status, "empty status should default to active")
}

func TestAssetInputValidateCollectsAllErrors(t *testing.T) {
	in := AssetInput{Category: "spaceships", Status: "broken"}
	err := in.Validate()
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "assetId")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "location")
}

func TestAssetInputValidateRejectsNegativePrice(t *testing.T) {
	price := -10.0
	in := AssetInput{AssetID: "A", Name: "N", Category: "furniture", Location: "L", PurchasePrice: &price}
	fields := fieldsOf(t, in.Validate())
	assert.Contains(t, fields, "purchasePrice")
}

func TestAssetPatchValidateChecksEnums(t *testing.T) {
	bad := "destroyed"
	p := AssetPatch{Status: &bad}
	fields := fieldsOf(t, p.Validate())
	assert.Contains(t, fields, "status")

	good := AssetStatusRetired
	p = AssetPatch{Status: &good}
	require.NoError(t, p.Validate())
}

func TestAssetPatchApply(t *testing.T) {
	a := Asset{ID: 1, AssetID: "AST-2025-001", Name: "Old", Status: AssetStatusActive}
	name := "New"
	status := AssetStatusMaintenance
	p := AssetPatch{Name: &name, Status: &status}
	require.NoError(t, p.Validate())
	p.Apply(&a)
	assert.Equal(t, "New", a.Name)
	assert.Equal(t, AssetStatusMaintenance, a.Status)
	assert.Equal(t, "AST-2025-001", a.AssetID, "asset id is immutable")
	assert.False(t, a.UpdatedAt.IsZero())
}

func TestWorkOrderInputDefaults(t *testing.T) {
	in := WorkOrderInput{WorkOrderID: "WO-1", AssetID: 1, Title: "Fix", Type: "corrective"}
	require.NoError(t, in.Validate())
	assert.Equal(t, "medium", in.Priority)
	assert.Equal(t, WorkOrderStatusOpen, in.Status)
}

func TestWorkOrderInputRejectsUnknownType(t *testing.T) {
	in := WorkOrderInput{WorkOrderID: "WO-1", AssetID: 1, Title: "Fix", Type: "cosmetic"}
	fields := fieldsOf(t, in.Validate())
	assert.Contains(t, fields, "type")
}

func TestMaintenanceRecordInputDefaultsStatus(t *testing.T) {
	in := MaintenanceRecordInput{AssetID: 3, Type: "Inspection"}
	require.NoError(t, in.Validate())
	assert.Equal(t, MaintenanceStatusScheduled, in.Status)
}

func TestEnergyConsumptionInputRequiresMeasurementDate(t *testing.T) {
	in := EnergyConsumptionInput{AssetID: 1, EnergyType: "electricity", Consumption: 12.5, Unit: "kWh"}
	fields := fieldsOf(t, in.Validate())
	assert.Contains(t, fields, "measurementDate")

	in.MeasurementDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, in.Validate())
}

func TestOptionalStringsAreTrimmedAndNilled(t *testing.T) {
	blank := "   "
	in := AssetInput{AssetID: "A", Name: "N", Category: "furniture", Location: "L", Department: &blank}
	require.NoError(t, in.Validate())
	assert.Nil(t, in.Department, "blank optional strings collapse to null")
}

func TestValidationErrorMessage(t *testing.T) {
	in := AssetInput{}
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assetId")
}
