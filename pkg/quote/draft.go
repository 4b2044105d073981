// Package quote implements the multi-step quotation flow: a draft store,
// the step-gate validator, the submission client, and the PDF document
// generator. A Store holds exactly one in-progress draft and is owned by
// the form controller driving it, one logical writer per session.
package quote

// Draft is the in-progress, unsaved quotation form state.
type Draft struct {
	// Step 1: identity
	Name  string
	Email string
	Phone string
	City  string

	// Steps 2-3: event
	EventType        string
	EventDate        string
	EventEndDate     string // only meaningful for weddings
	Venue            string
	GuestCount       string
	WeddingFunctions []string // only meaningful for weddings

	// Step 4: commercial
	Services     []string
	Budget       string
	Requirements string
}

// EventTypeWedding unlocks the end-date and functions fields.
const EventTypeWedding = "Wedding"

// Store holds one mutable draft plus the current step index [1,4].
// Setters overwrite unconditionally; validation happens only at the step
// gate, and step range is the caller's concern.
type Store struct {
	draft Draft
	step  int
}

func NewStore() *Store {
	return &Store{step: 1}
}

// Draft returns a snapshot of the current draft. Slices are copied so a
// later setter call can't mutate a snapshot already handed out.
func (s *Store) Draft() Draft {
	d := s.draft
	d.WeddingFunctions = append([]string(nil), s.draft.WeddingFunctions...)
	d.Services = append([]string(nil), s.draft.Services...)
	return d
}

func (s *Store) Step() int { return s.step }

func (s *Store) SetStep(n int) { s.step = n }

// Reset replaces the draft with the empty default and returns to step 1.
func (s *Store) Reset() {
	s.draft = Draft{}
	s.step = 1
}

func (s *Store) SetName(v string)  { s.draft.Name = v }
func (s *Store) SetEmail(v string) { s.draft.Email = v }

// SetPhone strips non-digit characters and caps the value at 10 digits,
// the same input-time normalization the form field applies. The validator
// then only has to reject on length.
func (s *Store) SetPhone(v string) {
	digits := make([]byte, 0, len(v))
	for i := 0; i < len(v) && len(digits) < 10; i++ {
		if v[i] >= '0' && v[i] <= '9' {
			digits = append(digits, v[i])
		}
	}
	s.draft.Phone = string(digits)
}

func (s *Store) SetCity(v string)         { s.draft.City = v }
func (s *Store) SetEventType(v string)    { s.draft.EventType = v }
func (s *Store) SetEventDate(v string)    { s.draft.EventDate = v }
func (s *Store) SetEventEndDate(v string) { s.draft.EventEndDate = v }
func (s *Store) SetVenue(v string)        { s.draft.Venue = v }
func (s *Store) SetGuestCount(v string)   { s.draft.GuestCount = v }
func (s *Store) SetBudget(v string)       { s.draft.Budget = v }
func (s *Store) SetRequirements(v string) { s.draft.Requirements = v }

func (s *Store) SetWeddingFunctions(v []string) {
	s.draft.WeddingFunctions = append([]string(nil), v...)
}

func (s *Store) SetServices(v []string) {
	s.draft.Services = append([]string(nil), v...)
}
