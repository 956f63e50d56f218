package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Supporting entities: locations, vendors, service contracts, spare parts.
// None of them reference assets; spare parts may reference a location and
// contracts reference a vendor.

type Location struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Code        string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Type        string    `gorm:"size:100;not null" json:"type"`
	ParentID    *int      `gorm:"index" json:"parentId"`
	Address     *string   `json:"address"`
	Description *string   `json:"description"`
	Capacity    *int      `json:"capacity"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LocationInput struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Type        string  `json:"type"`
	ParentID    *int    `json:"parentId"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	IsActive    *bool   `json:"isActive"`
}

func (in *LocationInput) Validate() error {
	v := &validator{}
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	in.Type = strings.TrimSpace(in.Type)
	v.require("name", in.Name)
	v.maxLen("name", in.Name, 255)
	v.require("code", in.Code)
	v.maxLen("code", in.Code, 50)
	v.require("type", in.Type)
	v.maxLen("type", in.Type, 100)
	optStr(&in.Address, 0, "address", v)
	optStr(&in.Description, 0, "description", v)
	v.nonNegativeInt("capacity", in.Capacity)
	return v.err()
}

type LocationPatch struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Type        *string `json:"type"`
	ParentID    *int    `json:"parentId"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	IsActive    *bool   `json:"isActive"`
}

func (p *LocationPatch) Validate() error {
	v := &validator{}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		v.require("name", *p.Name)
		v.maxLen("name", *p.Name, 255)
	}
	if p.Code != nil {
		*p.Code = strings.TrimSpace(*p.Code)
		v.require("code", *p.Code)
		v.maxLen("code", *p.Code, 50)
	}
	if p.Type != nil {
		*p.Type = strings.TrimSpace(*p.Type)
		v.require("type", *p.Type)
		v.maxLen("type", *p.Type, 100)
	}
	optStr(&p.Address, 0, "address", v)
	optStr(&p.Description, 0, "description", v)
	v.nonNegativeInt("capacity", p.Capacity)
	return v.err()
}

func (p *LocationPatch) Apply(l *Location) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Code != nil {
		l.Code = *p.Code
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.ParentID != nil {
		l.ParentID = p.ParentID
	}
	if p.Address != nil {
		l.Address = p.Address
	}
	if p.Description != nil {
		l.Description = p.Description
	}
	if p.Capacity != nil {
		l.Capacity = p.Capacity
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	l.UpdatedAt = time.Now()
}

type Vendor struct {
	ID            int                         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string                      `gorm:"size:255;not null" json:"name"`
	Code          string                      `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Type          string                      `gorm:"size:100;not null" json:"type"`
	ContactPerson *string                     `gorm:"size:255" json:"contactPerson"`
	Email         *string                     `gorm:"size:255" json:"email"`
	Phone         *string                     `gorm:"size:50" json:"phone"`
	Address       *string                     `json:"address"`
	Specialties   datatypes.JSONSlice[string] `json:"specialties"`
	Rating        *float64                    `gorm:"type:numeric(3,2)" json:"rating"`
	IsActive      bool                        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

type VendorInput struct {
	Name          string   `json:"name"`
	Code          string   `json:"code"`
	Type          string   `json:"type"`
	ContactPerson *string  `json:"contactPerson"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	Specialties   []string `json:"specialties"`
	Rating        *float64 `json:"rating"`
	IsActive      *bool    `json:"isActive"`
}

func (in *VendorInput) Validate() error {
	v := &validator{}
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)
	in.Type = strings.TrimSpace(in.Type)
	v.require("name", in.Name)
	v.maxLen("name", in.Name, 255)
	v.require("code", in.Code)
	v.maxLen("code", in.Code, 50)
	v.require("type", in.Type)
	v.maxLen("type", in.Type, 100)
	optStr(&in.ContactPerson, 255, "contactPerson", v)
	optStr(&in.Email, 255, "email", v)
	optStr(&in.Phone, 50, "phone", v)
	optStr(&in.Address, 0, "address", v)
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		v.add("rating", "must be between 0 and 5")
	}
	return v.err()
}

type VendorPatch struct {
	Name          *string   `json:"name"`
	Code          *string   `json:"code"`
	Type          *string   `json:"type"`
	ContactPerson *string   `json:"contactPerson"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	Address       *string   `json:"address"`
	Specialties   *[]string `json:"specialties"`
	Rating        *float64  `json:"rating"`
	IsActive      *bool     `json:"isActive"`
}

func (p *VendorPatch) Validate() error {
	v := &validator{}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		v.require("name", *p.Name)
		v.maxLen("name", *p.Name, 255)
	}
	if p.Code != nil {
		*p.Code = strings.TrimSpace(*p.Code)
		v.require("code", *p.Code)
		v.maxLen("code", *p.Code, 50)
	}
	if p.Type != nil {
		*p.Type = strings.TrimSpace(*p.Type)
		v.require("type", *p.Type)
		v.maxLen("type", *p.Type, 100)
	}
	optStr(&p.ContactPerson, 255, "contactPerson", v)
	optStr(&p.Email, 255, "email", v)
	optStr(&p.Phone, 50, "phone", v)
	optStr(&p.Address, 0, "address", v)
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		v.add("rating", "must be between 0 and 5")
	}
	return v.err()
}

func (p *VendorPatch) Apply(vd *Vendor) {
	if p.Name != nil {
		vd.Name = *p.Name
	}
	if p.Code != nil {
		vd.Code = *p.Code
	}
	if p.Type != nil {
		vd.Type = *p.Type
	}
	if p.ContactPerson != nil {
		vd.ContactPerson = p.ContactPerson
	}
	if p.Email != nil {
		vd.Email = p.Email
	}
	if p.Phone != nil {
		vd.Phone = p.Phone
	}
	if p.Address != nil {
		vd.Address = p.Address
	}
	if p.Specialties != nil {
		vd.Specialties = datatypes.NewJSONSlice(*p.Specialties)
	}
	if p.Rating != nil {
		vd.Rating = p.Rating
	}
	if p.IsActive != nil {
		vd.IsActive = *p.IsActive
	}
	vd.UpdatedAt = time.Now()
}

var ContractStatuses = []string{"active", "expired", "terminated"}

type ServiceContract struct {
	ID                 int        `gorm:"primaryKey;autoIncrement" json:"id"`
	VendorID           int        `gorm:"index;not null" json:"vendorId"`
	ContractNumber     string     `gorm:"size:100;uniqueIndex;not null" json:"contractNumber"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Value              *float64   `gorm:"type:numeric(12,2)" json:"value"`
	SLAResponseHours   *float64   `gorm:"type:numeric(6,2)" json:"slaResponseHours"`
	SLAResolutionHours *float64   `gorm:"type:numeric(6,2)" json:"slaResolutionHours"`
	Status             string     `gorm:"size:50;not null;default:active" json:"status"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ServiceContractInput struct {
	VendorID           int        `json:"vendorId"`
	ContractNumber     string     `json:"contractNumber"`
	Name               string     `json:"name"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Value              *float64   `json:"value"`
	SLAResponseHours   *float64   `json:"slaResponseHours"`
	SLAResolutionHours *float64   `json:"slaResolutionHours"`
	Status             string     `json:"status"`
}

func (in *ServiceContractInput) Validate() error {
	v := &validator{}
	in.ContractNumber = strings.TrimSpace(in.ContractNumber)
	in.Name = strings.TrimSpace(in.Name)
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = "active"
	}
	if in.VendorID <= 0 {
		v.add("vendorId", "is required")
	}
	v.require("contractNumber", in.ContractNumber)
	v.maxLen("contractNumber", in.ContractNumber, 100)
	v.require("name", in.Name)
	v.maxLen("name", in.Name, 255)
	v.oneOf("status", in.Status, ContractStatuses)
	v.nonNegative("value", in.Value)
	v.nonNegative("slaResponseHours", in.SLAResponseHours)
	v.nonNegative("slaResolutionHours", in.SLAResolutionHours)
	return v.err()
}

type ServiceContractPatch struct {
	ContractNumber     *string    `json:"contractNumber"`
	Name               *string    `json:"name"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Value              *float64   `json:"value"`
	SLAResponseHours   *float64   `json:"slaResponseHours"`
	SLAResolutionHours *float64   `json:"slaResolutionHours"`
	Status             *string    `json:"status"`
}

func (p *ServiceContractPatch) Validate() error {
	v := &validator{}
	if p.ContractNumber != nil {
		*p.ContractNumber = strings.TrimSpace(*p.ContractNumber)
		v.require("contractNumber", *p.ContractNumber)
		v.maxLen("contractNumber", *p.ContractNumber, 100)
	}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		v.require("name", *p.Name)
		v.maxLen("name", *p.Name, 255)
	}
	if p.Status != nil {
		*p.Status = strings.TrimSpace(*p.Status)
		v.require("status", *p.Status)
		v.oneOf("status", *p.Status, ContractStatuses)
	}
	v.nonNegative("value", p.Value)
	v.nonNegative("slaResponseHours", p.SLAResponseHours)
	v.nonNegative("slaResolutionHours", p.SLAResolutionHours)
	return v.err()
}

func (p *ServiceContractPatch) Apply(c *ServiceContract) {
	if p.ContractNumber != nil {
		c.ContractNumber = *p.ContractNumber
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.StartDate != nil {
		c.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = p.EndDate
	}
	if p.Value != nil {
		c.Value = p.Value
	}
	if p.SLAResponseHours != nil {
		c.SLAResponseHours = p.SLAResponseHours
	}
	if p.SLAResolutionHours != nil {
		c.SLAResolutionHours = p.SLAResolutionHours
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	c.UpdatedAt = time.Now()
}

type SparePart struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PartNumber    string    `gorm:"size:100;uniqueIndex;not null" json:"partNumber"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Description   *string   `json:"description"`
	Category      string    `gorm:"size:100;not null" json:"category"`
	Manufacturer  *string   `gorm:"size:255" json:"manufacturer"`
	ModelNumber   *string   `gorm:"size:100" json:"modelNumber"`
	UnitOfMeasure string    `gorm:"size:50;not null" json:"unitOfMeasure"`
	UnitCost      *float64  `gorm:"type:numeric(10,2)" json:"unitCost"`
	CurrentStock  int       `gorm:"not null;default:0" json:"currentStock"`
	MinimumStock  int       `gorm:"not null;default:0" json:"minimumStock"`
	MaximumStock  *int      `json:"maximumStock"`
	ReorderPoint  int       `gorm:"not null;default:0" json:"reorderPoint"`
	LocationID    *int      `gorm:"index" json:"locationId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type SparePartInput struct {
	PartNumber    string   `json:"partNumber"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Category      string   `json:"category"`
	Manufacturer  *string  `json:"manufacturer"`
	ModelNumber   *string  `json:"modelNumber"`
	UnitOfMeasure string   `json:"unitOfMeasure"`
	UnitCost      *float64 `json:"unitCost"`
	CurrentStock  int      `json:"currentStock"`
	MinimumStock  int      `json:"minimumStock"`
	MaximumStock  *int     `json:"maximumStock"`
	ReorderPoint  int      `json:"reorderPoint"`
	LocationID    *int     `json:"locationId"`
}

func (in *SparePartInput) Validate() error {
	v := &validator{}
	in.PartNumber = strings.TrimSpace(in.PartNumber)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.UnitOfMeasure = strings.TrimSpace(in.UnitOfMeasure)
	v.require("partNumber", in.PartNumber)
	v.maxLen("partNumber", in.PartNumber, 100)
	v.require("name", in.Name)
	v.maxLen("name", in.Name, 255)
	v.require("category", in.Category)
	v.maxLen("category", in.Category, 100)
	v.require("unitOfMeasure", in.UnitOfMeasure)
	v.maxLen("unitOfMeasure", in.UnitOfMeasure, 50)
	optStr(&in.Description, 0, "description", v)
	optStr(&in.Manufacturer, 255, "manufacturer", v)
	optStr(&in.ModelNumber, 100, "modelNumber", v)
	v.nonNegative("unitCost", in.UnitCost)
	if in.CurrentStock < 0 {
		v.add("currentStock", "must not be negative")
	}
	if in.MinimumStock < 0 {
		v.add("minimumStock", "must not be negative")
	}
	v.nonNegativeInt("maximumStock", in.MaximumStock)
	if in.ReorderPoint < 0 {
		v.add("reorderPoint", "must not be negative")
	}
	return v.err()
}

type SparePartPatch struct {
	PartNumber    *string  `json:"partNumber"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Manufacturer  *string  `json:"manufacturer"`
	ModelNumber   *string  `json:"modelNumber"`
	UnitOfMeasure *string  `json:"unitOfMeasure"`
	UnitCost      *float64 `json:"unitCost"`
	CurrentStock  *int     `json:"currentStock"`
	MinimumStock  *int     `json:"minimumStock"`
	MaximumStock  *int     `json:"maximumStock"`
	ReorderPoint  *int     `json:"reorderPoint"`
	LocationID    *int     `json:"locationId"`
}

func (p *SparePartPatch) Validate() error {
	v := &validator{}
	if p.PartNumber != nil {
		*p.PartNumber = strings.TrimSpace(*p.PartNumber)
		v.require("partNumber", *p.PartNumber)
		v.maxLen("partNumber", *p.PartNumber, 100)
	}
	if p.Name != nil {
		*p.Name = strings.TrimSpace(*p.Name)
		v.require("name", *p.Name)
		v.maxLen("name", *p.Name, 255)
	}
	if p.Category != nil {
		*p.Category = strings.TrimSpace(*p.Category)
		v.require("category", *p.Category)
		v.maxLen("category", *p.Category, 100)
	}
	if p.UnitOfMeasure != nil {
		*p.UnitOfMeasure = strings.TrimSpace(*p.UnitOfMeasure)
		v.require("unitOfMeasure", *p.UnitOfMeasure)
		v.maxLen("unitOfMeasure", *p.UnitOfMeasure, 50)
	}
	optStr(&p.Description, 0, "description", v)
	optStr(&p.Manufacturer, 255, "manufacturer", v)
	optStr(&p.ModelNumber, 100, "modelNumber", v)
	v.nonNegative("unitCost", p.UnitCost)
	v.nonNegativeInt("currentStock", p.CurrentStock)
	v.nonNegativeInt("minimumStock", p.MinimumStock)
	v.nonNegativeInt("maximumStock", p.MaximumStock)
	v.nonNegativeInt("reorderPoint", p.ReorderPoint)
	return v.err()
}

func (p *SparePartPatch) Apply(s *SparePart) {
	if p.PartNumber != nil {
		s.PartNumber = *p.PartNumber
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Manufacturer != nil {
		s.Manufacturer = p.Manufacturer
	}
	if p.ModelNumber != nil {
		s.ModelNumber = p.ModelNumber
	}
	if p.UnitOfMeasure != nil {
		s.UnitOfMeasure = *p.UnitOfMeasure
	}
	if p.UnitCost != nil {
		s.UnitCost = p.UnitCost
	}
	if p.CurrentStock != nil {
		s.CurrentStock = *p.CurrentStock
	}
	if p.MinimumStock != nil {
		s.MinimumStock = *p.MinimumStock
	}
	if p.MaximumStock != nil {
		s.MaximumStock = p.MaximumStock
	}
	if p.ReorderPoint != nil {
		s.ReorderPoint = *p.ReorderPoint
	}
	if p.LocationID != nil {
		s.LocationID = p.LocationID
	}
	s.UpdatedAt = time.Now()
}
