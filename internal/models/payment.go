package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	JobID     string `gorm:"size:36;uniqueIndex;not null" json:"jobId"`
	Provider  string `gorm:"size:30;not null" json:"provider"`
	IntentID  string `gorm:"size:255;index;not null" json:"intentId"`
	AmountQAR int    `gorm:"not null" json:"amountQAR"`
	Status    string `gorm:"size:20;default:'PENDING'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
