package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/models"
	"p9e.in/pixcel/utils"
)

// GetAllPortfolios lists albums, optionally filtered by category and featured
func GetAllPortfolios(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Portfolio{}).Order("created_at DESC")

	if category := r.URL.Query().Get("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if r.URL.Query().Get("featured") == "true" {
		q = q.Where("featured = ?", true)
	}

	var items []models.Portfolio
	if err := q.Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(w, len(items), items)
}

func GetPortfolio(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Portfolio
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	respondData(w, http.StatusOK, item)
}

func GetPortfolioBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var item models.Portfolio
	if err := config.DB.Where("slug = ?", slug).First(&item).Error; err != nil {
		respondError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	respondData(w, http.StatusOK, item)
}

func CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var item models.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if item.Title == "" || item.Category == "" {
		respondError(w, http.StatusBadRequest, "Title and category are required")
		return
	}
	if item.Slug == "" {
		item.Slug = utils.Slugify(item.Title)
	}
	if len(item.Images) == 0 {
		item.Images = models.JSONList(nil)
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, item)
}

func UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Portfolio
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := config.DB.Save(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, item)
}

func DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Portfolio{}, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	respondMessage(w, "Portfolio deleted successfully")
}
