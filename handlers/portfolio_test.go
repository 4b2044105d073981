package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"p9e.in/pixcel/models"
)

func portfolioRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/portfolio", GetAllPortfolios).Methods("GET")
	r.HandleFunc("/api/portfolio", CreatePortfolio).Methods("POST")
	r.HandleFunc("/api/portfolio/slug/{slug}", GetPortfolioBySlug).Methods("GET")
	r.HandleFunc("/api/portfolio/{id}", GetPortfolio).Methods("GET")
	r.HandleFunc("/api/portfolio/{id}", UpdatePortfolio).Methods("PUT")
	r.HandleFunc("/api/portfolio/{id}", DeletePortfolio).Methods("DELETE")
	return r
}

func seedPortfolio(t *testing.T, db *gorm.DB, title, category string, featured bool) models.Portfolio {
	t.Helper()
	p := models.Portfolio{Title: title, Slug: title, Category: category, Featured: featured, Images: models.JSONList(nil)}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed portfolio: %v", err)
	}
	return p
}

func TestCreatePortfolioGeneratesSlug(t *testing.T) {
	setupTestDB(t)
	r := portfolioRouter()

	body := `{"title":"Asha & Rohan Wedding!","category":"wedding","clientName":"Asha Patel"}`
	w := doJSON(t, r, http.MethodPost, "/api/portfolio", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Data models.Portfolio `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Slug != "asha-rohan-wedding" {
		t.Errorf("slug = %q", resp.Data.Slug)
	}

	// The generated slug must resolve.
	w = doJSON(t, r, http.MethodGet, "/api/portfolio/slug/asha-rohan-wedding", "")
	if w.Code != http.StatusOK {
		t.Errorf("slug lookup: expected 200 got %d", w.Code)
	}
}

func TestCreatePortfolioRequiresTitleAndCategory(t *testing.T) {
	setupTestDB(t)
	r := portfolioRouter()

	for _, body := range []string{`{"category":"wedding"}`, `{"title":"Solo"}`} {
		w := doJSON(t, r, http.MethodPost, "/api/portfolio", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400 got %d", body, w.Code)
		}
	}
}

func TestGetAllPortfoliosFilters(t *testing.T) {
	db := setupTestDB(t)
	r := portfolioRouter()

	seedPortfolio(t, db, "wedding-one", "wedding", true)
	seedPortfolio(t, db, "wedding-two", "wedding", false)
	seedPortfolio(t, db, "birthday-one", "birthday", true)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no filter", "", 3},
		{"by category", "?category=wedding", 2},
		{"featured only", "?featured=true", 2},
		{"combined", "?category=wedding&featured=true", 1},
		{"featured false not a filter", "?featured=false", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/api/portfolio"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d", w.Code)
			}
			var resp struct {
				Count int `json:"count"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Count != tt.want {
				t.Errorf("count = %d, want %d", resp.Count, tt.want)
			}
		})
	}
}

func TestUpdateAndDeletePortfolio(t *testing.T) {
	db := setupTestDB(t)
	r := portfolioRouter()
	p := seedPortfolio(t, db, "original", "wedding", false)

	w := doJSON(t, r, http.MethodPut, "/api/portfolio/"+p.ID.String(), `{"title":"Renamed","category":"wedding","featured":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var stored models.Portfolio
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Title != "Renamed" || !stored.Featured {
		t.Errorf("stored = %+v", stored)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/portfolio/"+p.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/portfolio/"+p.ID.String(), "")
	if w.Code != http.StatusNotFound {
		t.Errorf("after delete: expected 404 got %d", w.Code)
	}
}
