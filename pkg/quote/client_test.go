package quote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quotations" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var p Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if p.Name != "Asha" {
			t.Errorf("name = %q", p.Name)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": "abc-123", "name": p.Name, "status": "New"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	rec, err := c.Submit(context.Background(), Payload{Name: "Asha", Phone: "9876543210"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.ID != "abc-123" || rec.Status != "New" {
		t.Errorf("record = %+v", rec)
	}
}

func TestClientSubmitServerErrorIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "db down"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Submit(context.Background(), Payload{Name: "Asha", Phone: "9876543210"})

	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		t.Fatalf("expected *SubmitError, got %T: %v", err, err)
	}
	if submitErr.StatusCode != http.StatusInternalServerError || submitErr.Message != "db down" {
		t.Errorf("submitErr = %+v", submitErr)
	}
}

func TestClientHasNoDuplicateProtection(t *testing.T) {
	// Documents a known gap: a duplicate click produces a duplicate
	// record. Two Submit calls are two independent POSTs.
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "x"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p := Payload{Name: "Asha", Phone: "9876543210"}
	if _, err := c.Submit(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Submit(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if hits != 2 {
		t.Errorf("expected 2 server-side records, got %d", hits)
	}
}
