package quote

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func sampleDocument() Document {
	return Document{
		Name:         "Asha Patel",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		City:         "Ahmedabad",
		EventType:    EventTypeWedding,
		EventDate:    "2025-10-01",
		EventEndDate: "2025-10-03",
		GuestCount:   "400",
		Venue:        "Taj Skyline",
		Functions:    "Mehendi, Garba / Sangeet, Wedding Ceremony",
		Services:     []string{"Photography", "Cinematic Video", "Drone"},
		Budget:       "₹1,00,000 - ₹3,00,000",
		Requirements: "Sunset couple shoot at the lakefront before the reception begins.",
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	data, err := RenderPDF(sampleDocument())
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:8])
	}
	if len(data) < 1000 {
		t.Errorf("suspiciously small document: %d bytes", len(data))
	}
}

func TestRenderPDFIgnoresNetworkStateEntirely(t *testing.T) {
	// Rendering takes only the document; an empty one still renders with
	// placeholder rows.
	data, err := RenderPDF(Document{})
	if err != nil {
		t.Fatalf("RenderPDF(empty): %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty document produced no output")
	}
}

func TestRenderPDFPaginatesLongServiceLists(t *testing.T) {
	doc := sampleDocument()
	doc.Services = nil
	for i := 0; i < 40; i++ {
		doc.Services = append(doc.Services, "Extended Coverage Block")
	}
	long, err := RenderPDF(doc)
	if err != nil {
		t.Fatal(err)
	}
	short, err := RenderPDF(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	// A 40-row table crosses the near-bottom threshold and must start a
	// new page; page count shows up in the /Type /Page object count.
	if pages(long) <= pages(short) {
		t.Errorf("expected more pages for long table: long=%d short=%d", pages(long), pages(short))
	}
}

func pages(pdf []byte) int {
	return bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
}

func TestGenerateFileWritesSanitizedName(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDocument()
	doc.Name = "Asha  Mehta Patel"

	path, err := GenerateFile(doc, dir)
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	if filepath.Base(path) != "PIXEL_STUDIO_Quote_Asha_Mehta_Patel.pdf" {
		t.Errorf("filename = %q", filepath.Base(path))
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("file missing or empty: %v", err)
	}
}

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become underscores", "Asha Patel", "PIXEL_STUDIO_Quote_Asha_Patel.pdf"},
		{"runs of whitespace collapse", "Asha \t Patel", "PIXEL_STUDIO_Quote_Asha_Patel.pdf"},
		{"empty name falls back", "", "PIXEL_STUDIO_Quote_Summary.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocumentFilename(tt.in); got != tt.want {
				t.Errorf("DocumentFilename(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewReferenceFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		ref := NewReference()
		if !strings.HasPrefix(ref, "PXC-") || len(ref) != 9 {
			t.Fatalf("reference %q does not match PXC-NNNNN", ref)
		}
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short stays whole", "Taj Skyline", "Taj Skyline"},
		{"long ascii cut", "The Grand Imperial Palace Gardens", "The Grand Imperial Pal..."},
		{"multibyte under rune limit", "होटल ताज स्काईलाइन अहमदाबाद", "होटल ताज स्काईलाइन अहम..."},
		{"multibyte bytes exceed but runes fit", "ताज स्काईलाइन", "ताज स्काईलाइन"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, 25, 22, "...")
			if got != tt.want {
				t.Errorf("truncate(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q) produced invalid UTF-8: %q", tt.in, got)
			}
		})
	}
}
