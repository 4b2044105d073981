package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"p9e.in/pixcel/utils"
)

const (
	uploadDir = "./uploads" // Local directory for file storage
)

// UploadImageLocal handles image uploads to the local filesystem instead of R2
func UploadImageLocal(w http.ResponseWriter, r *http.Request) {
	// Ensure upload directory exists
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create upload directory: "+err.Error())
		return
	}

	// Parse the multipart form (max 50MB)
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field: "+err.Error())
		return
	}
	defer file.Close()

	// Timestamp prefix avoids collisions between same-named uploads
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("%s-%s", timestamp, utils.SanitizeFilename(header.Filename))
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create file: "+err.Error())
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save file: "+err.Error())
		return
	}

	url := fmt.Sprintf("/uploads/%s", filename)
	respondData(w, http.StatusCreated, map[string]string{"url": url})
}
