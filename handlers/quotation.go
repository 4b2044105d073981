package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/models"
	"p9e.in/pixcel/pkg/quote"
)

// CreateQuotation accepts a public submission from the quote form.
// Name and phone are the only required fields; everything else is
// whatever the form collected.
func CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var item models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if item.Name == "" || item.Phone == "" {
		respondError(w, http.StatusBadRequest, "Name and phone are required")
		return
	}
	item.Status = models.QuotationStatusNew
	if err := config.DB.Create(&item).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondCreated(w, "Quotation request successfully submitted.", item)
}

// GetAllQuotations lists submissions newest-first, optionally filtered by status
func GetAllQuotations(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Quotation{}).Order("created_at DESC")

	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var items []models.Quotation
	if err := q.Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondList(w, len(items), items)
}

func GetQuotation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Quotation
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quotation not found")
		return
	}
	respondData(w, http.StatusOK, item)
}

type statusUpdateReq struct {
	Status models.QuotationStatus `json:"status"`
}

// UpdateQuotationStatus moves a quotation through New → Contacted → Closed.
// Status is the only mutable field on a persisted quotation.
func UpdateQuotationStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Quotation
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	var req statusUpdateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !models.ValidQuotationStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid status value")
		return
	}

	if err := config.DB.Model(&item).Update("status", req.Status).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondData(w, http.StatusOK, item)
}

func DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Delete(&models.Quotation{}, "id = ?", id)
	if result.Error != nil {
		respondError(w, http.StatusInternalServerError, result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		respondError(w, http.StatusNotFound, "Quotation not found")
		return
	}
	respondMessage(w, "Quotation deleted successfully")
}

// DownloadQuotationPDF renders the same summary document the quote form
// produces locally, from the persisted record instead of a draft.
func DownloadQuotationPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var item models.Quotation
	if err := config.DB.First(&item, "id = ?", id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Quotation not found")
		return
	}

	doc := quote.Document{
		Name:         item.Name,
		Email:        item.Email,
		Phone:        item.Phone,
		City:         item.City,
		EventType:    item.EventType,
		EventDate:    item.EventDate,
		GuestCount:   item.GuestCount,
		Venue:        item.Venue,
		Functions:    item.Functions,
		Services:     item.ServiceNames(),
		Budget:       item.Budget,
		Requirements: item.Requirements,
	}

	pdfBytes, err := quote.RenderPDF(doc)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	filename := quote.DocumentFilename(item.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
