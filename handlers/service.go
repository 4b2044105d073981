package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/models"
)

func GetAllServices(w http.ResponseWriter, r *http.Request) {
	var items []models.Service
	if err := config.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(w, len(items), items)
}

func GetService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Service
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Service not found")
		return
	}
	respondData(w, http.StatusOK, item)
}

func CreateService(w http.ResponseWriter, r *http.Request) {
	var item models.Service
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if item.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if len(item.Features) == 0 {
		item.Features = models.JSONList(nil)
	}
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusCreated, item)
}

func UpdateService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Service
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Service not found")
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

func DeleteService(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Service not found")
		return
	}
	respondMessage(w, "Service deleted successfully")
}
