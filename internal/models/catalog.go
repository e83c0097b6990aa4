package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is the legacy flat category list jobs may reference instead of a sub-service.
type Category struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
}

func (c *Category) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Service struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Slug        string       `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SubServices []SubService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"subServices,omitempty"`
}

func (s *Service) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SubService is the smallest bookable unit of the catalog.
type SubService struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	ServiceID   string  `gorm:"size:36;not null;uniqueIndex:idx_sub_service_slug" json:"serviceId"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Slug        string  `gorm:"size:100;not null;uniqueIndex:idx_sub_service_slug" json:"slug"`
	Description *string `gorm:"size:500" json:"description"`

	Service       *Service       `json:"service,omitempty"`
	PricingConfig *PricingConfig `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pricingConfig"`
}

func (s *SubService) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type SizeOption struct {
	Size  string `json:"size"`
	Price int    `json:"price"`
}

type PricedOption struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PricingConfig belongs to exactly one SubService.
type PricingConfig struct {
	ID               string                 `gorm:"primaryKey;size:36" json:"id"`
	SubServiceID     string                 `gorm:"size:36;uniqueIndex;not null" json:"subServiceId"`
	BasePrice        *int                   `json:"basePrice"`
	SizeOptions      JSONList[SizeOption]   `json:"sizeOptions"`
	EquipmentOptions JSONList[PricedOption] `json:"equipmentOptions"`
	Addons           JSONList[PricedOption] `json:"addons"`
}

func (p *PricingConfig) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
