package quote

import "strings"

// ValidateStep decides whether advancing away from step is permitted and
// returns a field→message map for display. It never mutates the store.
//
// Only step 1 gates navigation. Later-step fields may be filled in any
// order; nothing blocks steps 2-4.
func ValidateStep(d Draft, step int) (bool, map[string]string) {
	errs := map[string]string{}

	if step == 1 {
		if d.Name == "" {
			errs["name"] = "Name is required"
		}

		if d.Phone == "" {
			errs["phone"] = "Mobile number is required"
		} else if len(d.Phone) != 10 {
			// Non-digits are stripped at input time, so length is the
			// only check left to make here.
			errs["phone"] = "Mobile number must be exactly 10 digits"
		}

		if d.Email == "" {
			errs["email"] = "Email address is required"
		} else if !strings.Contains(d.Email, "@") || !strings.Contains(d.Email, ".") {
			// Deliberately loose: a substring check, not RFC validation.
			errs["email"] = "Please enter a valid email address with @ and ."
		}
	}

	return len(errs) == 0, errs
}
