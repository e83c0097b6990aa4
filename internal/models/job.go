package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	CategoryID   *string     `gorm:"size:36;index" json:"categoryId"`
	Category     *Category   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
	SubServiceID *string     `gorm:"size:36;index" json:"subServiceId"`
	SubService   *SubService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"subService,omitempty"`

	CustomerID string  `gorm:"size:36;not null;index" json:"customerId"`
	Customer   *User   `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProviderID *string `gorm:"size:36;index" json:"providerId"`
	Provider   *User   `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status       string     `gorm:"size:20;default:'PENDING'" json:"status"`
	ScheduledAt  *time.Time `json:"scheduledAt"`
	LocationText *string    `gorm:"size:255" json:"locationText"`

	SelectedSize      *string          `gorm:"size:100" json:"selectedSize"`
	SelectedEquipment JSONList[string] `json:"selectedEquipment"`
	SelectedAddons    JSONList[string] `json:"selectedAddons"`
	EstimatedPriceQAR *int             `json:"estimatedPriceQAR"`

	Bids    []Bid      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bids,omitempty"`
	Payment *Payment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payment,omitempty"`
	Review  *Review    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"review,omitempty"`
	Photos  []JobPhoto `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

type Review struct {
	ID      string  `gorm:"primaryKey;size:36" json:"id"`
	JobID   string  `gorm:"size:36;uniqueIndex;not null" json:"jobId"`
	Rating  int     `gorm:"not null" json:"rating"`
	Comment *string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type JobPhoto struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	JobID string `gorm:"size:36;not null;index" json:"jobId"`
	Key   string `gorm:"size:255;not null" json:"key"`
	URL   string `gorm:"size:500;not null" json:"url"`

	CreatedAt time.Time `json:"createdAt"`
}

func (p *JobPhoto) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
