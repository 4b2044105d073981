package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuotationStatus string

const (
	QuotationStatusNew       QuotationStatus = "New"
	QuotationStatusContacted QuotationStatus = "Contacted"
	QuotationStatusClosed    QuotationStatus = "Closed"
)

// ValidQuotationStatus reports whether s is one of the three statuses a
// quotation may carry. Anything else is rejected at the API boundary.
func ValidQuotationStatus(s QuotationStatus) bool {
	switch s {
	case QuotationStatusNew, QuotationStatusContacted, QuotationStatusClosed:
		return true
	}
	return false
}

// Quotation is one submitted consultation request. Name and phone are the
// only required fields; status is the only field mutable after creation.
type Quotation struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string          `gorm:"size:200;not null" json:"name"`
	Email             string          `gorm:"size:150" json:"email,omitempty"`
	Phone             string          `gorm:"size:20;not null" json:"phone"`
	City              string          `gorm:"size:100" json:"city,omitempty"`
	EventType         string          `gorm:"size:100" json:"eventType,omitempty"`
	EventDate         string          `gorm:"size:100" json:"eventDate,omitempty"`
	Venue             string          `gorm:"size:300" json:"venue,omitempty"`
	GuestCount        string          `gorm:"size:50" json:"guestCount,omitempty"`
	Functions         string          `gorm:"type:text" json:"functions,omitempty"`
	ServicesRequested datatypes.JSON  `gorm:"type:jsonb" json:"servicesRequested,omitempty"`
	Budget            string          `gorm:"size:100" json:"budget,omitempty"`
	Requirements      string          `gorm:"type:text" json:"requirements,omitempty"`
	Status            QuotationStatus `gorm:"size:20;not null;default:New;index" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Status == "" {
		q.Status = QuotationStatusNew
	}
	return
}

// ServiceNames decodes the servicesRequested JSON column into a string slice.
func (q *Quotation) ServiceNames() []string {
	if len(q.ServicesRequested) == 0 {
		return nil
	}
	var names []string
	if err := json.Unmarshal(q.ServicesRequested, &names); err != nil {
		return nil
	}
	return names
}
