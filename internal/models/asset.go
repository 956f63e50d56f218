package models

import (
	"strings"
	"time"
)

// Asset lifecycle statuses. Status fields are stored as plain strings and
// membership is checked on every write path, including partial updates.
const (
	AssetStatusActive      = "active"
	AssetStatusMaintenance = "maintenance"
	AssetStatusRetired     = "retired"
)

var AssetStatuses = []string{AssetStatusActive, AssetStatusMaintenance, AssetStatusRetired}

var AssetCategories = []string{"it-equipment", "furniture", "vehicles", "machinery", "office-supplies"}

type Asset struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID       string     `gorm:"size:50;uniqueIndex;not null" json:"assetId"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Category      string     `gorm:"size:100;not null" json:"category"`
	Status        string     `gorm:"size:50;not null;default:active" json:"status"`
	Location      string     `gorm:"size:255;not null" json:"location"`
	Department    *string    `gorm:"size:100" json:"department"`
	Description   *string    `json:"description"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	PurchasePrice *float64   `gorm:"type:numeric(12,2)" json:"purchasePrice"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AssetInput is the insertable shape: everything the caller provides,
// excluding the surrogate id and timestamps.
type AssetInput struct {
	AssetID       string     `json:"assetId"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	Location      string     `json:"location"`
	Department    *string    `json:"department"`
	Description   *string    `json:"description"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	PurchasePrice *float64   `json:"purchasePrice"`
}

func (in *AssetInput) Validate() error {
	v := &validator{}
	in.AssetID = strings.TrimSpace(in.AssetID)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Status = strings.TrimSpace(in.Status)
	in.Location = strings.TrimSpace(in.Location)
	if in.Status == "" {
		in.Status = AssetStatusActive
	}
	v.require("assetId", in.AssetID)
	v.maxLen("assetId", in.AssetID, 50)
	v.require("name", in.Name)
	v.maxLen("name", in.Name, 255)
	v.require("category", in.Category)
	v.oneOf("category", in.Category, AssetCategories)
	v.oneOf("status", in.Status, AssetStatuses)
	v.require("location", in.Location)
	v.maxLen("location", in.Location, 255)
	optStr(&in.Department, 100, "department", v)
	optStr(&in.Description, 0, "description", v)
	v.nonNegative("purchasePrice", in.PurchasePrice)
	return v.err()
}

// AssetPatch is the partial-update shape. The asset code is immutable after
// creation and is deliberately absent here.
type AssetPatch struct {
	Name          *string    `json:"name"`
	Category      *string    `json:"category"`
	Status        *string    `json:"status"`
	Location      *string    `json:"location"`
	Department    *string    `json:"department"`
	Description   *string    `json:"description"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	PurchasePrice *float64   `json:"purchasePrice"`
}

func (p *AssetPatch) Validate() error {
	v := &validator{}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		v.require("name", *p.Name)
		v.maxLen("name", *p.Name, 255)
	}
	if p.Category != nil {
		*p.Category = strings.TrimSpace(*p.Category)
		v.require("category", *p.Category)
		v.oneOf("category", *p.Category, AssetCategories)
	}
	if p.Status != nil {
		*p.Status = strings.TrimSpace(*p.Status)
		v.require("status", *p.Status)
		v.oneOf("status", *p.Status, AssetStatuses)
	}
	if p.Location != nil {
		*p.Location = strings.TrimSpace(*p.Location)
		v.require("location", *p.Location)
		v.maxLen("location", *p.Location, 255)
	}
	optStr(&p.Department, 100, "department", v)
	optStr(&p.Description, 0, "description", v)
	v.nonNegative("purchasePrice", p.PurchasePrice)
	return v.err()
}

// Apply copies the provided fields onto the asset and bumps UpdatedAt.
func (p *AssetPatch) Apply(a *Asset) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Department != nil {
		a.Department = p.Department
	}
	if p.Description != nil {
		a.Description = p.Description
	}
	if p.PurchaseDate != nil {
		a.PurchaseDate = p.PurchaseDate
	}
	if p.PurchasePrice != nil {
		a.PurchasePrice = p.PurchasePrice
	}
	a.UpdatedAt = time.Now()
}
