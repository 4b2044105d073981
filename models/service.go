package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is one catalog entry on the services page.
type Service struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string         `gorm:"size:150;not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description,omitempty"`
	Icon          string         `gorm:"size:100" json:"icon,omitempty"`
	StartingPrice float64        `gorm:"type:decimal(10,2)" json:"startingPrice,omitempty"`
	Features      datatypes.JSON `gorm:"type:jsonb" json:"features"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
