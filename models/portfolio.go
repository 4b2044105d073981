package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Portfolio is one published album on the public site.
type Portfolio struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:200;uniqueIndex" json:"slug"`
	Category    string         `gorm:"size:100;not null;index" json:"category"`
	CoverImage  string         `gorm:"size:500" json:"coverImage"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	ClientName  string         `gorm:"size:200" json:"clientName,omitempty"`
	EventDate   string         `gorm:"size:50" json:"eventDate,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Featured    bool           `gorm:"default:false;index" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
