package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Bid struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	JobID      string  `gorm:"size:36;not null;index" json:"jobId"`
	ProviderID string  `gorm:"size:36;not null;index" json:"providerId"`
	Provider   *User   `gorm:"foreignKey:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AmountQAR  int     `gorm:"not null" json:"amountQAR"`
	Message    *string `gorm:"type:text" json:"message"`
	Status     string  `gorm:"size:20;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Bid) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
