package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusInProgress = "in-progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

var MaintenanceStatuses = []string{
	MaintenanceStatusScheduled,
	MaintenanceStatusInProgress,
	MaintenanceStatusCompleted,
	MaintenanceStatusCancelled,
}

type MaintenanceRecord struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID       int        `gorm:"index;not null" json:"assetId"`
	Type          string     `gorm:"size:100;not null" json:"type"`
	Description   *string    `json:"description"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Cost          *float64   `gorm:"type:numeric(10,2)" json:"cost"`
	PerformedBy   *string    `gorm:"size:255" json:"performedBy"`
	Status        string     `gorm:"size:50;not null;default:scheduled" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type MaintenanceRecordInput struct {
	AssetID       int        `json:"assetId"`
	Type          string     `json:"type"`
	Description   *string    `json:"description"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Cost          *float64   `json:"cost"`
	PerformedBy   *string    `json:"performedBy"`
	Status        string     `json:"status"`
}

func (in *MaintenanceRecordInput) Validate() error {
	v := &validator{}
	in.Type = strings.TrimSpace(in.Type)
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = MaintenanceStatusScheduled
	}
	if in.AssetID <= 0 {
		v.add("assetId", "is required")
	}
	v.require("type", in.Type)
	v.maxLen("type", in.Type, 100)
	v.oneOf("status", in.Status, MaintenanceStatuses)
	optStr(&in.Description, 0, "description", v)
	optStr(&in.PerformedBy, 255, "performedBy", v)
	v.nonNegative("cost", in.Cost)
	return v.err()
}

type MaintenanceRecordPatch struct {
	Type          *string    `json:"type"`
	Description   *string    `json:"description"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	CompletedDate *time.Time `json:"completedDate"`
	Cost          *float64   `json:"cost"`
	PerformedBy   *string    `json:"performedBy"`
	Status        *string    `json:"status"`
}

func (p *MaintenanceRecordPatch) Validate() error {
	v := &validator{}
	if p.Type != nil {
		*p.Type = strings.TrimSpace(*p.Type)
		v.require("type", *p.Type)
		v.maxLen("type", *p.Type, 100)
	}
	if p.Status != nil {
		*p.Status = strings.TrimSpace(*p.Status)
		v.require("status", *p.Status)
		v.oneOf("status", *p.Status, MaintenanceStatuses)
	}
	optStr(&p.Description, 0, "description", v)
	optStr(&p.PerformedBy, 255, "performedBy", v)
	v.nonNegative("cost", p.Cost)
	return v.err()
}

func (p *MaintenanceRecordPatch) Apply(m *MaintenanceRecord) {
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.ScheduledDate != nil {
		m.ScheduledDate = p.ScheduledDate
	}
	if p.CompletedDate != nil {
		m.CompletedDate = p.CompletedDate
	}
	if p.Cost != nil {
		m.Cost = p.Cost
	}
	if p.PerformedBy != nil {
		m.PerformedBy = p.PerformedBy
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}

const (
	WorkOrderStatusOpen       = "open"
	WorkOrderStatusAssigned   = "assigned"
	WorkOrderStatusInProgress = "in-progress"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"
)

var WorkOrderStatuses = []string{
	WorkOrderStatusOpen,
	WorkOrderStatusAssigned,
	WorkOrderStatusInProgress,
	WorkOrderStatusCompleted,
	WorkOrderStatusCancelled,
}

var WorkOrderTypes = []string{"preventive", "corrective", "emergency"}

var WorkOrderPriorities = []string{"low", "medium", "high", "critical"}

type WorkOrder struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	WorkOrderID    string     `gorm:"size:50;uniqueIndex;not null" json:"workOrderId"`
	AssetID        int        `gorm:"index;not null" json:"assetId"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    *string    `json:"description"`
	Type           string     `gorm:"size:50;not null" json:"type"`
	Priority       string     `gorm:"size:50;not null;default:medium" json:"priority"`
	Status         string     `gorm:"size:50;not null;default:open" json:"status"`
	AssignedTo     *string    `gorm:"size:255" json:"assignedTo"`
	EstimatedHours *float64   `gorm:"type:numeric(6,2)" json:"estimatedHours"`
	ActualHours    *float64   `gorm:"type:numeric(6,2)" json:"actualHours"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	StartedDate    *time.Time `json:"startedDate"`
	CompletedDate  *time.Time `json:"completedDate"`
	Cost           *float64   `gorm:"type:numeric(10,2)" json:"cost"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type WorkOrderInput struct {
	WorkOrderID    string     `json:"workOrderId"`
	AssetID        int        `json:"assetId"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	Type           string     `json:"type"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	AssignedTo     *string    `json:"assignedTo"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	StartedDate    *time.Time `json:"startedDate"`
	CompletedDate  *time.Time `json:"completedDate"`
	Cost           *float64   `json:"cost"`
}

func (in *WorkOrderInput) Validate() error {
	v := &validator{}
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.Title = strings.TrimSpace(in.Title)
	in.Type = strings.TrimSpace(in.Type)
	in.Priority = strings.TrimSpace(in.Priority)
	in.Status = strings.TrimSpace(in.Status)
	if in.Priority == "" {
		in.Priority = "medium"
	}
	if in.Status == "" {
		in.Status = WorkOrderStatusOpen
	}
	v.require("workOrderId", in.WorkOrderID)
	v.maxLen("workOrderId", in.WorkOrderID, 50)
	if in.AssetID <= 0 {
		v.add("assetId", "is required")
	}
	v.require("title", in.Title)
	v.maxLen("title", in.Title, 255)
	v.require("type", in.Type)
	v.oneOf("type", in.Type, WorkOrderTypes)
	v.oneOf("priority", in.Priority, WorkOrderPriorities)
	v.oneOf("status", in.Status, WorkOrderStatuses)
	optStr(&in.Description, 0, "description", v)
	optStr(&in.AssignedTo, 255, "assignedTo", v)
	v.nonNegative("estimatedHours", in.EstimatedHours)
	v.nonNegative("actualHours", in.ActualHours)
	v.nonNegative("cost", in.Cost)
	return v.err()
}

type WorkOrderPatch struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Type           *string    `json:"type"`
	Priority       *string    `json:"priority"`
	Status         *string    `json:"status"`
	AssignedTo     *string    `json:"assignedTo"`
	EstimatedHours *float64   `json:"estimatedHours"`
	ActualHours    *float64   `json:"actualHours"`
	ScheduledDate  *time.Time `json:"scheduledDate"`
	StartedDate    *time.Time `json:"startedDate"`
	CompletedDate  *time.Time `json:"completedDate"`
	Cost           *float64   `json:"cost"`
}

func (p *WorkOrderPatch) Validate() error {
	v := &validator{}
	if p.Title != nil {
		*p.Title = strings.TrimSpace(*p.Title)
		v.require("title", *p.Title)
		v.maxLen("title", *p.Title, 255)
	}
	if p.Type != nil {
		*p.Type = strings.TrimSpace(*p.Type)
		v.require("type", *p.Type)
		v.oneOf("type", *p.Type, WorkOrderTypes)
	}
	if p.Priority != nil {
		*p.Priority = strings.TrimSpace(*p.Priority)
		v.require("priority", *p.Priority)
		v.oneOf("priority", *p.Priority, WorkOrderPriorities)
	}
	if p.Status != nil {
		*p.Status = strings.TrimSpace(*p.Status)
		v.require("status", *p.Status)
		v.oneOf("status", *p.Status, WorkOrderStatuses)
	}
	optStr(&p.Description, 0, "description", v)
	optStr(&p.AssignedTo, 255, "assignedTo", v)
	v.nonNegative("estimatedHours", p.EstimatedHours)
	v.nonNegative("actualHours", p.ActualHours)
	v.nonNegative("cost", p.Cost)
	return v.err()
}

func (p *WorkOrderPatch) Apply(w *WorkOrder) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = p.Description
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Priority != nil {
		w.Priority = *p.Priority
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.AssignedTo != nil {
		w.AssignedTo = p.AssignedTo
	}
	if p.EstimatedHours != nil {
		w.EstimatedHours = p.EstimatedHours
	}
	if p.ActualHours != nil {
		w.ActualHours = p.ActualHours
	}
	if p.ScheduledDate != nil {
		w.ScheduledDate = p.ScheduledDate
	}
	if p.StartedDate != nil {
		w.StartedDate = p.StartedDate
	}
	if p.CompletedDate != nil {
		w.CompletedDate = p.CompletedDate
	}
	if p.Cost != nil {
		w.Cost = p.Cost
	}
	w.UpdatedAt = time.Now()
}

const (
	ComplianceStatusCompliant    = "compliant"
	ComplianceStatusNonCompliant = "non-compliant"
	ComplianceStatusPending      = "pending"
)

var ComplianceStatuses = []string{
	ComplianceStatusCompliant,
	ComplianceStatusNonCompliant,
	ComplianceStatusPending,
}

type ComplianceRecord struct {
	ID                     int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID                int        `gorm:"index;not null" json:"assetId"`
	RegulationType         string     `gorm:"size:100;not null" json:"regulationType"`
	RegulationName         string     `gorm:"size:255;not null" json:"regulationName"`
	RequirementDescription *string    `json:"requirementDescription"`
	ComplianceStatus       string     `gorm:"size:50;not null;default:pending" json:"complianceStatus"`
	LastInspectionDate     *time.Time `json:"lastInspectionDate"`
	NextInspectionDate     *time.Time `json:"nextInspectionDate"`
	InspectorName          *string    `gorm:"size:255" json:"inspectorName"`
	CertificateNumber      *string    `gorm:"size:100" json:"certificateNumber"`
	ExpiryDate             *time.Time `json:"expiryDate"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

type ComplianceRecordInput struct {
	AssetID                int        `json:"assetId"`
	RegulationType         string     `json:"regulationType"`
	RegulationName         string     `json:"regulationName"`
	RequirementDescription *string    `json:"requirementDescription"`
	ComplianceStatus       string     `json:"complianceStatus"`
	LastInspectionDate     *time.Time `json:"lastInspectionDate"`
	NextInspectionDate     *time.Time `json:"nextInspectionDate"`
	InspectorName          *string    `json:"inspectorName"`
	CertificateNumber      *string    `json:"certificateNumber"`
	ExpiryDate             *time.Time `json:"expiryDate"`
}

func (in *ComplianceRecordInput) Validate() error {
	v := &validator{}
	in.RegulationType = strings.TrimSpace(in.RegulationType)
	in.RegulationName = strings.TrimSpace(in.RegulationName)
	in.ComplianceStatus = strings.TrimSpace(in.ComplianceStatus)
	if in.ComplianceStatus == "" {
		in.ComplianceStatus = ComplianceStatusPending
	}
	if in.AssetID <= 0 {
		v.add("assetId", "is required")
	}
	v.require("regulationType", in.RegulationType)
	v.maxLen("regulationType", in.RegulationType, 100)
	v.require("regulationName", in.RegulationName)
	v.maxLen("regulationName", in.RegulationName, 255)
	v.oneOf("complianceStatus", in.ComplianceStatus, ComplianceStatuses)
	optStr(&in.RequirementDescription, 0, "requirementDescription", v)
	optStr(&in.InspectorName, 255, "inspectorName", v)
	optStr(&in.CertificateNumber, 100, "certificateNumber", v)
	return v.err()
}

type ComplianceRecordPatch struct {
	RegulationType         *string    `json:"regulationType"`
	RegulationName         *string    `json:"regulationName"`
	RequirementDescription *string    `json:"requirementDescription"`
	ComplianceStatus       *string    `json:"complianceStatus"`
	LastInspectionDate     *time.Time `json:"lastInspectionDate"`
	NextInspectionDate     *time.Time `json:"nextInspectionDate"`
	InspectorName          *string    `json:"inspectorName"`
	CertificateNumber      *string    `json:"certificateNumber"`
	ExpiryDate             *time.Time `json:"expiryDate"`
}

func (p *ComplianceRecordPatch) Validate() error {
	v := &validator{}
	if p.RegulationType != nil {
		*p.RegulationType = strings.TrimSpace(*p.RegulationType)
		v.require("regulationType", *p.RegulationType)
		v.maxLen("regulationType", *p.RegulationType, 100)
	}
	if p.RegulationName != nil {
		*p.RegulationName = strings.TrimSpace(*p.RegulationName)
		v.require("regulationName", *p.RegulationName)
		v.maxLen("regulationName", *p.RegulationName, 255)
	}
	if p.ComplianceStatus != nil {
		*p.ComplianceStatus = strings.TrimSpace(*p.ComplianceStatus)
		v.require("complianceStatus", *p.ComplianceStatus)
		v.oneOf("complianceStatus", *p.ComplianceStatus, ComplianceStatuses)
	}
	optStr(&p.RequirementDescription, 0, "requirementDescription", v)
	optStr(&p.InspectorName, 255, "inspectorName", v)
	optStr(&p.CertificateNumber, 100, "certificateNumber", v)
	return v.err()
}

func (p *ComplianceRecordPatch) Apply(c *ComplianceRecord) {
	if p.RegulationType != nil {
		c.RegulationType = *p.RegulationType
	}
	if p.RegulationName != nil {
		c.RegulationName = *p.RegulationName
	}
	if p.RequirementDescription != nil {
		c.RequirementDescription = p.RequirementDescription
	}
	if p.ComplianceStatus != nil {
		c.ComplianceStatus = *p.ComplianceStatus
	}
	if p.LastInspectionDate != nil {
		c.LastInspectionDate = p.LastInspectionDate
	}
	if p.NextInspectionDate != nil {
		c.NextInspectionDate = p.NextInspectionDate
	}
	if p.InspectorName != nil {
		c.InspectorName = p.InspectorName
	}
	if p.CertificateNumber != nil {
		c.CertificateNumber = p.CertificateNumber
	}
	if p.ExpiryDate != nil {
		c.ExpiryDate = p.ExpiryDate
	}
	c.UpdatedAt = time.Now()
}

// EnergyConsumption rows are immutable observations; there is no patch shape.
type EnergyConsumption struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID         int       `gorm:"index;not null" json:"assetId"`
	MeasurementDate time.Time `gorm:"not null" json:"measurementDate"`
	EnergyType      string    `gorm:"size:50;not null" json:"energyType"`
	Consumption     float64   `gorm:"type:numeric(12,3);not null" json:"consumption"`
	Unit            string    `gorm:"size:20;not null" json:"unit"`
	Cost            *float64  `gorm:"type:numeric(10,2)" json:"cost"`
	CarbonFootprint *float64  `gorm:"type:numeric(10,3)" json:"carbonFootprint"`
	CreatedAt       time.Time `json:"createdAt"`
}

type EnergyConsumptionInput struct {
	AssetID         int       `json:"assetId"`
	MeasurementDate time.Time `json:"measurementDate"`
	EnergyType      string    `json:"energyType"`
	Consumption     float64   `json:"consumption"`
	Unit            string    `json:"unit"`
	Cost            *float64  `json:"cost"`
	CarbonFootprint *float64  `json:"carbonFootprint"`
}

func (in *EnergyConsumptionInput) Validate() error {
	v := &validator{}
	in.EnergyType = strings.TrimSpace(in.EnergyType)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.AssetID <= 0 {
		v.add("assetId", "is required")
	}
	if in.MeasurementDate.IsZero() {
		v.add("measurementDate", "is required")
	}
	v.require("energyType", in.EnergyType)
	v.maxLen("energyType", in.EnergyType, 50)
	if in.Consumption < 0 {
		v.add("consumption", "must not be negative")
	}
	v.require("unit", in.Unit)
	v.maxLen("unit", in.Unit, 20)
	v.nonNegative("cost", in.Cost)
	v.nonNegative("carbonFootprint", in.CarbonFootprint)
	return v.err()
}

// Audit actions recorded against assets.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// AuditSystemActor attributes audit rows; the system has no
// authenticated-user concept.
const AuditSystemActor = "System"

// AuditLog is append-only: rows are never updated or deleted, and AssetID
// keeps the id of an asset even after that asset is removed.
type AuditLog struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID     *int           `gorm:"index" json:"assetId"`
	Action      string         `gorm:"size:100;not null" json:"action"`
	Changes     datatypes.JSON `json:"changes"`
	PerformedBy string         `gorm:"size:255;not null" json:"performedBy"`
	Timestamp   time.Time      `gorm:"autoCreateTime" json:"timestamp"`
}
