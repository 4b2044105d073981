package quote

import "testing"

func TestValidateStepOne(t *testing.T) {
	valid := Draft{Name: "Asha Patel", Phone: "9876543210", Email: "asha@example.com"}

	tests := []struct {
		name     string
		mutate   func(d *Draft)
		ok       bool
		errField string
	}{
		{"complete draft passes", func(d *Draft) {}, true, ""},
		{"missing name blocks", func(d *Draft) { d.Name = "" }, false, "name"},
		{"missing phone blocks", func(d *Draft) { d.Phone = "" }, false, "phone"},
		{"nine digit phone blocks", func(d *Draft) { d.Phone = "987654321" }, false, "phone"},
		{"eleven digit phone blocks", func(d *Draft) { d.Phone = "98765432101" }, false, "phone"},
		{"missing email blocks", func(d *Draft) { d.Email = "" }, false, "email"},
		{"email without dot blocks", func(d *Draft) { d.Email = "test@test" }, false, "email"},
		{"email without at blocks", func(d *Draft) { d.Email = "test.test" }, false, "email"},

		// Accepted looseness: the check is substring presence of "@" and
		// ".", not RFC validation. "test@.com" is malformed but passes.
		{"malformed email with at and dot passes", func(d *Draft) { d.Email = "test@.com" }, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			ok, errs := ValidateStep(d, 1)
			if ok != tt.ok {
				t.Fatalf("ValidateStep(step 1) ok = %v, expected %v (errs=%v)", ok, tt.ok, errs)
			}
			if tt.errField != "" {
				if _, present := errs[tt.errField]; !present {
					t.Errorf("expected error key %q, got %v", tt.errField, errs)
				}
			}
			if tt.ok && len(errs) != 0 {
				t.Errorf("expected empty error map, got %v", errs)
			}
		})
	}
}

func TestValidateLaterStepsNeverBlock(t *testing.T) {
	// Steps 2-4 have no gate: even a completely empty draft advances.
	for step := 2; step <= 4; step++ {
		ok, errs := ValidateStep(Draft{}, step)
		if !ok || len(errs) != 0 {
			t.Errorf("step %d: expected no gating, got ok=%v errs=%v", step, ok, errs)
		}
	}
}

func TestValidateDoesNotRequireWeddingFunctions(t *testing.T) {
	// The form marks wedding functions as required but nothing enforces
	// it; the selection stays decorative.
	d := Draft{Name: "A", Phone: "9876543210", Email: "a@b.c", EventType: EventTypeWedding}
	if ok, errs := ValidateStep(d, 3); !ok {
		t.Fatalf("wedding draft without functions should advance, got %v", errs)
	}
}
