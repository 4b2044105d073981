package quote

import "strings"

// Payload is the wire shape POSTed to /api/quotations.
type Payload struct {
	Name              string   `json:"name"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone"`
	City              string   `json:"city,omitempty"`
	EventType         string   `json:"eventType,omitempty"`
	EventDate         string   `json:"eventDate,omitempty"`
	Venue             string   `json:"venue,omitempty"`
	GuestCount        string   `json:"guestCount,omitempty"`
	Functions         string   `json:"functions,omitempty"`
	ServicesRequested []string `json:"servicesRequested,omitempty"`
	Budget            string   `json:"budget,omitempty"`
	Requirements      string   `json:"requirements,omitempty"`
}

// BuildPayload serializes a draft for submission:
//   - eventDate collapses to "start to end" only for weddings with an end date
//   - wedding functions collapse to one comma-joined string, weddings only
//   - servicesRequested is omitted entirely when nothing was selected
func BuildPayload(d Draft) Payload {
	p := Payload{
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		City:         d.City,
		EventType:    d.EventType,
		EventDate:    d.EventDate,
		Venue:        d.Venue,
		GuestCount:   d.GuestCount,
		Budget:       d.Budget,
		Requirements: d.Requirements,
	}

	if d.EventType == EventTypeWedding {
		if d.EventEndDate != "" {
			p.EventDate = d.EventDate + " to " + d.EventEndDate
		}
		if len(d.WeddingFunctions) > 0 {
			p.Functions = strings.Join(d.WeddingFunctions, ", ")
		}
	}

	if len(d.Services) > 0 {
		p.ServicesRequested = append([]string(nil), d.Services...)
	}

	return p
}
