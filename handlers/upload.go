package handlers

import (
	"net/http"

	"p9e.in/pixcel/utils"
)

// UploadImageHandler routes to the appropriate upload handler based on
// environment: Cloudflare R2 when configured, local disk otherwise.
func UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if utils.R2Configured() {
		UploadImageR2(w, r)
	} else {
		UploadImageLocal(w, r)
	}
}

// UploadImageR2 stores the posted image in the studio's R2 bucket and
// returns its public URL for use as a portfolio cover or gallery image.
func UploadImageR2(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(50 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	_, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file field: "+err.Error())
		return
	}

	album := r.FormValue("album")
	if album == "" {
		album = "misc"
	}

	client, err := utils.NewR2Client(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	url, err := client.UploadImageToR2(r.Context(), utils.Slugify(album), header)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, http.StatusCreated, map[string]string{"url": url})
}
