package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Organization owns products and services that campaigns can focus on
type Organization struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(50)" example:"org1"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null" example:"TechFlow Solutions"`
	Industry    string    `json:"industry" gorm:"type:varchar(100);not null" example:"Technology"`
	Description string    `json:"description" gorm:"type:text" example:"Leading technology solutions provider"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Organization) TableName() string {
	return "organizations"
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// Product is a catalog item of an organization
type Product struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(50)" example:"prod1"`
	OrganizationID string         `json:"organization_id" gorm:"type:varchar(50);index" example:"org1"`
	Name           string         `json:"name" gorm:"type:varchar(255);not null" example:"Smart Analytics Dashboard"`
	Description    string         `json:"description" gorm:"type:text"`
	Price          float64        `json:"price" gorm:"type:decimal(10,2)" example:"15000"`
	Category       string         `json:"category" gorm:"type:varchar(100)" example:"Software"`
	TargetAudience string         `json:"target_audience" gorm:"type:varchar(255)" example:"SME Business Owners"`
	Features       pq.StringArray `json:"features" gorm:"type:text[]" swaggertype:"array,string"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// Service is a sellable service of an organization
type Service struct {
	ID             string         `json:"id" gorm:"primaryKey;type:varchar(50)" example:"serv1"`
	OrganizationID string         `json:"organization_id" gorm:"type:varchar(50);index" example:"org1"`
	Name           string         `json:"name" gorm:"type:varchar(255);not null" example:"IT Consulting"`
	Description    string         `json:"description" gorm:"type:text"`
	Price          float64        `json:"price" gorm:"type:decimal(10,2)" example:"5000"`
	Duration       string         `json:"duration" gorm:"type:varchar(100)" example:"1 month"`
	TargetAudience string         `json:"target_audience" gorm:"type:varchar(255)"`
	Features       pq.StringArray `json:"features" gorm:"type:text[]" swaggertype:"array,string"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	ID          string `json:"id,omitempty" example:"org6"`
	Name        string `json:"name" binding:"required" example:"Green Café"`
	Industry    string `json:"industry" binding:"required" example:"Food & Beverage"`
	Description string `json:"description" example:"Sustainable coffee and healthy food"`
}

// CreateProductRequest represents the request to create a product
type CreateProductRequest struct {
	ID             string   `json:"id,omitempty"`
	OrganizationID string   `json:"organization_id" binding:"required" example:"org2"`
	Name           string   `json:"name" binding:"required" example:"Organic Coffee Blend"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"gte=0" example:"450"`
	Category       string   `json:"category" example:"Beverage"`
	TargetAudience string   `json:"target_audience"`
	Features       []string `json:"features"`
}

// CreateServiceRequest represents the request to create a service
type CreateServiceRequest struct {
	ID             string   `json:"id,omitempty"`
	OrganizationID string   `json:"organization_id" binding:"required" example:"org3"`
	Name           string   `json:"name" binding:"required" example:"Online Tutoring"`
	Description    string   `json:"description"`
	Price          float64  `json:"price" binding:"gte=0" example:"1500"`
	Duration       string   `json:"duration" example:"1 month"`
	TargetAudience string   `json:"target_audience"`
	Features       []string `json:"features"`
}
