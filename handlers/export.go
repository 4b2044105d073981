package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/models"
	"p9e.in/pixcel/utils"
)

// ExportQuotationsToExcel exports quotations to Excel format for the
// admin dashboard, honoring the same optional status filter as the list.
func ExportQuotationsToExcel(w http.ResponseWriter, r *http.Request) {
	q := config.DB.Model(&models.Quotation{}).Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var items []models.Quotation
	if err := q.Find(&items).Error; err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	excelFile, err := createQuotationWorkbook(items)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to write Excel file")
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", utils.SanitizeFilename("quotations"), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

var quotationExportHeaders = []string{
	"Name", "Email", "Phone", "City", "Event Type", "Event Date",
	"Venue", "Guests", "Functions", "Services", "Budget", "Status", "Received",
}

func createQuotationWorkbook(items []models.Quotation) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Quotations"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Title row
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Pixcel Studio — Quotation Requests")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	// Header row (row 4)
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#C8A24D"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for colIdx, header := range quotationExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheetName, col, col, 20)
	}

	// Data rows
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	for rowIdx, item := range items {
		values := []any{
			item.Name,
			item.Email,
			item.Phone,
			item.City,
			item.EventType,
			item.EventDate,
			item.Venue,
			item.GuestCount,
			item.Functions,
			strings.Join(item.ServiceNames(), ", "),
			item.Budget,
			string(item.Status),
			item.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	return f, nil
}
