package quote

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Document is the data a rendered quotation needs. Both a client-side
// Draft and a persisted record map into it.
type Document struct {
	Name         string
	Email        string
	Phone        string
	City         string
	EventType    string
	EventDate    string
	EventEndDate string
	GuestCount   string
	Venue        string
	Functions    string
	Services     []string
	Budget       string
	Requirements string
}

// DocumentFromDraft maps the form state onto the renderable document.
func DocumentFromDraft(d Draft) Document {
	doc := Document{
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		City:         d.City,
		EventType:    d.EventType,
		EventDate:    d.EventDate,
		EventEndDate: d.EventEndDate,
		GuestCount:   d.GuestCount,
		Venue:        d.Venue,
		Services:     append([]string(nil), d.Services...),
		Budget:       d.Budget,
		Requirements: d.Requirements,
	}
	if d.EventType == EventTypeWedding && len(d.WeddingFunctions) > 0 {
		doc.Functions = strings.Join(d.WeddingFunctions, ", ")
	}
	return doc
}

// NewReference generates the cosmetic reference id printed on the
// document: fixed prefix plus a random 5-digit number. Not unique, never
// reconciled with the server-assigned record id.
func NewReference() string {
	return fmt.Sprintf("PXC-%d", 10000+rand.Intn(90000))
}

// DocumentFilename names the saved file from a sanitized client name.
func DocumentFilename(name string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = "Summary"
	}
	return "PIXEL_STUDIO_Quote_" + base + ".pdf"
}

// Layout constants, A4 portrait in millimetres.
const (
	marginX      = 20.0
	headerBandH  = 45.0
	infoCardH    = 42.0
	budgetBoxW   = 75.0
	budgetBoxH   = 28.0
	tableRowH    = 12.0
	footerBlockH = 35.0
)

type rgb struct{ r, g, b int }

var (
	primaryDark   = rgb{17, 17, 17}
	accentGold    = rgb{200, 162, 77}
	bgLightGray   = rgb{247, 247, 247}
	textGray      = rgb{100, 100, 100}
	textLightGray = rgb{160, 160, 160}
)

// RenderPDF deterministically renders the fixed-layout summary document.
// It depends on nothing but the document itself; network state never
// reaches this path.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pageWidth, pageHeight := pdf.GetPageSize()

	renderHeader(pdf, pageWidth)
	yPos := 60.0

	yPos = renderInfoCards(pdf, doc, yPos, pageWidth)
	yPos = renderFunctionsLine(pdf, doc, yPos)
	yPos = renderServicesTable(pdf, doc, yPos, pageWidth, pageHeight)

	// Page break before the budget block when the cursor is near the bottom
	if yPos > pageHeight-80 {
		pdf.AddPage()
		yPos = 25
	}
	yPos = renderBudgetBlock(pdf, doc, yPos, pageWidth)

	renderTermsFooter(pdf, yPos, pageWidth, pageHeight)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quotation pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateFile renders the document and saves it into dir under the
// client-name-derived filename, returning the written path.
func GenerateFile(doc Document, dir string) (string, error) {
	data, err := RenderPDF(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, DocumentFilename(doc.Name))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save quotation pdf: %w", err)
	}
	return path, nil
}

func setColor(pdf *gofpdf.Fpdf, c rgb)     { pdf.SetTextColor(c.r, c.g, c.b) }
func setFill(pdf *gofpdf.Fpdf, c rgb)      { pdf.SetFillColor(c.r, c.g, c.b) }
func setDraw(pdf *gofpdf.Fpdf, c rgb)      { pdf.SetDrawColor(c.r, c.g, c.b) }
func rightX(pdf *gofpdf.Fpdf, x float64, s string) float64 {
	return x - pdf.GetStringWidth(s)
}

func renderHeader(pdf *gofpdf.Fpdf, pageWidth float64) {
	// Background strip
	setFill(pdf, primaryDark)
	pdf.Rect(0, 0, pageWidth, headerBandH, "F")

	// Left: studio name and tagline
	setColor(pdf, accentGold)
	pdf.SetFont("Times", "B", 26)
	pdf.Text(marginX, 22, "PIXEL STUDIO")

	pdf.SetTextColor(220, 220, 220)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(marginX, 30, "Cinematic Stories Crafted for Every Celebration")

	// Right: document info
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 14)
	title := "QUOTATION ESTIMATE"
	pdf.Text(rightX(pdf, pageWidth-marginX, title), 20, title)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(180, 180, 180)
	dateLine := "DATE: " + strings.ToUpper(time.Now().Format("02 Jan 2006"))
	refLine := "REF ID: " + NewReference()
	pdf.Text(rightX(pdf, pageWidth-marginX, dateLine), 28, dateLine)
	pdf.Text(rightX(pdf, pageWidth-marginX, refLine), 33, refLine)

	// Separation line
	setDraw(pdf, accentGold)
	pdf.SetLineWidth(0.5)
	pdf.Line(0, headerBandH, pageWidth, headerBandH)
}

func truncate(s string, max, cut int, ellipsis string) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:cut]) + ellipsis
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func renderInfoCards(pdf *gofpdf.Fpdf, doc Document, yPos, pageWidth float64) float64 {
	colWidth := (pageWidth - marginX*2 - 10) / 2

	drawCard := func(x float64) {
		setFill(pdf, bgLightGray)
		pdf.Rect(x, yPos, colWidth, infoCardH, "F")
		setDraw(pdf, accentGold)
		pdf.SetLineWidth(1)
		pdf.Line(x, yPos, x+colWidth, yPos)
	}

	// Left card: client info
	drawCard(marginX)
	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(marginX+6, yPos+8, "BILL TO / CLIENT INFO")

	pdf.SetFont("Helvetica", "", 10)
	setColor(pdf, textLightGray)
	labels := []string{"Name:", "Email:", "Phone:", "City:"}
	for i, label := range labels {
		pdf.Text(marginX+6, yPos+16+float64(i*7), label)
	}

	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 10)
	values := []string{
		orDefault(doc.Name, "N/A"),
		orDefault(doc.Email, "N/A"),
		orDefault(doc.Phone, "N/A"),
		orDefault(doc.City, "N/A"),
	}
	for i, value := range values {
		pdf.Text(marginX+22, yPos+16+float64(i*7), value)
	}

	// Right card: event details
	col2X := marginX + colWidth + 10
	drawCard(col2X)
	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(col2X+6, yPos+8, "EVENT DETAILS")

	pdf.SetFont("Helvetica", "", 10)
	setColor(pdf, textLightGray)
	eventLabels := []string{"Event Type:", "Event Date:", "Guests:", "Venue:"}
	for i, label := range eventLabels {
		pdf.Text(col2X+6, yPos+16+float64(i*7), label)
	}

	displayDate := doc.EventDate
	if doc.EventType == EventTypeWedding && doc.EventEndDate != "" {
		displayDate = doc.EventDate + " - " + doc.EventEndDate
	}
	eventValues := []string{
		orDefault(doc.EventType, "N/A"),
		truncate(orDefault(displayDate, "TBD"), 20, 18, ".."),
		orDefault(doc.GuestCount, "TBD"),
		truncate(orDefault(doc.Venue, "N/A"), 25, 22, "..."),
	}
	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 10)
	for i, value := range eventValues {
		pdf.Text(col2X+30, yPos+16+float64(i*7), value)
	}

	return yPos + 58
}

func renderFunctionsLine(pdf *gofpdf.Fpdf, doc Document, yPos float64) float64 {
	if doc.EventType != EventTypeWedding || doc.Functions == "" {
		return yPos
	}
	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(marginX, yPos-8, "Functions Covered:")

	pdf.SetFont("Helvetica", "", 9)
	setColor(pdf, textGray)
	pdf.Text(marginX+35, yPos-8, doc.Functions)
	return yPos + 5
}

func renderServicesTable(pdf *gofpdf.Fpdf, doc Document, yPos, pageWidth, pageHeight float64) float64 {
	setColor(pdf, primaryDark)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(marginX, yPos, "REQUESTED SERVICES")
	yPos += 6

	contentW := pageWidth - marginX*2
	numW, statusW := 15.0, 45.0
	descW := contentW - numW - statusW

	drawHeaderRow := func(y float64) float64 {
		setFill(pdf, accentGold)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetXY(marginX, y)
		pdf.CellFormat(numW, tableRowH, "#", "", 0, "L", true, 0, "")
		pdf.CellFormat(descW, tableRowH, "SERVICE DESCRIPTION", "", 0, "L", true, 0, "")
		pdf.CellFormat(statusW, tableRowH, "STATUS", "", 1, "L", true, 0, "")
		return y + tableRowH
	}

	type row struct{ num, desc, status string }
	var rows []row
	if len(doc.Services) > 0 {
		for i, svc := range doc.Services {
			rows = append(rows, row{fmt.Sprintf("%02d", i+1), svc, "Premium Coverage"})
		}
	} else {
		rows = append(rows, row{"01", "No specific services selected", "-"})
	}

	yPos = drawHeaderRow(yPos)
	for i, rw := range rows {
		// Paginate before a row would cross the bottom margin
		if yPos+tableRowH > pageHeight-25 {
			pdf.AddPage()
			yPos = drawHeaderRow(25)
		}

		fill := i%2 == 1 // subtle zebra stripes
		if fill {
			pdf.SetFillColor(250, 250, 250)
		}
		pdf.SetXY(marginX, yPos)
		setColor(pdf, accentGold)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(numW, tableRowH, rw.num, "", 0, "L", fill, 0, "")
		setColor(pdf, primaryDark)
		pdf.CellFormat(descW, tableRowH, rw.desc, "", 0, "L", fill, 0, "")
		setColor(pdf, textGray)
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(statusW, tableRowH, rw.status, "", 1, "R", fill, 0, "")

		// Subtle bottom border under each row
		pdf.SetDrawColor(230, 230, 230)
		pdf.SetLineWidth(0.1)
		pdf.Line(marginX, yPos+tableRowH, marginX+contentW, yPos+tableRowH)
		yPos += tableRowH
	}

	return yPos + 15
}

func renderBudgetBlock(pdf *gofpdf.Fpdf, doc Document, yPos, pageWidth float64) float64 {
	colWidth := (pageWidth - marginX*2 - 10) / 2

	// Requirements text, left of the budget card
	if doc.Requirements != "" {
		setColor(pdf, primaryDark)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(marginX, yPos+6, "Special Requirements / Vision:")

		pdf.SetFont("Helvetica", "", 9)
		setColor(pdf, textGray)
		lines := pdf.SplitLines([]byte(doc.Requirements), colWidth)
		for i, line := range lines {
			pdf.Text(marginX, yPos+12+float64(i*4), string(line))
		}
	}

	// Budget card, right aligned
	budgetBoxX := pageWidth - marginX - budgetBoxW
	setFill(pdf, bgLightGray)
	pdf.Rect(budgetBoxX, yPos, budgetBoxW, budgetBoxH, "F")

	setDraw(pdf, accentGold)
	pdf.SetLineWidth(1.5)
	pdf.Line(budgetBoxX, yPos, budgetBoxX, yPos+budgetBoxH)

	pdf.SetFont("Helvetica", "B", 9)
	setColor(pdf, textGray)
	pdf.Text(budgetBoxX+8, yPos+10, "ESTIMATED BUDGET RANGE")

	pdf.SetFont("Helvetica", "B", 16)
	setColor(pdf, primaryDark)
	pdf.Text(budgetBoxX+8, yPos+20, orDefault(doc.Budget, "To Be Discussed"))

	return yPos + 45
}

var quotationTerms = []string{
	"1. This is a preliminary estimate strictly based on the provided requirements. The final quotation may vary after consultation.",
	"2. Please mention Quote Ref ID in all future correspondence. Prices are valid for 15 days from the date of issue.",
	"3. Travel, accommodation, and venue-specific shooting fees (if applicable) are not included unless explicitly stated.",
}

func renderTermsFooter(pdf *gofpdf.Fpdf, yPos, pageWidth, pageHeight float64) {
	// Stick the footer to the bottom when there is room, else print in place
	footerY := pageHeight - footerBlockH
	if yPos > pageHeight-50 {
		footerY = yPos + 10
	}
	if footerY > pageHeight-15 {
		pdf.AddPage()
		footerY = 25
	}

	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginX, footerY-5, pageWidth-marginX, footerY-5)

	pdf.SetFont("Helvetica", "B", 9)
	setColor(pdf, primaryDark)
	pdf.Text(marginX, footerY, "TERMS & CONDITIONS")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	for i, term := range quotationTerms {
		pdf.Text(marginX, footerY+6+float64(i*5), term)
	}
}
