package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lovesync-backend/internal/imageenc"
	"lovesync-backend/internal/middleware"
	"lovesync-backend/internal/services"
)

// AlbumHandler handles shared-album HTTP requests
type AlbumHandler struct {
	albumService *services.AlbumService
}

// NewAlbumHandler creates a new album handler
func NewAlbumHandler(albumService *services.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// GetAlbum handles GET /api/v1/album — photos grouped into folders
func (h *AlbumHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	folders, err := h.albumService.Folders(r.Context(), sc.Session.Code)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to load album")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, folders)
}

// UploadPhotos handles POST /api/v1/album/photos as multipart form data
// with one or more "photos" files and an optional "album" folder name.
func (h *AlbumHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	if err := r.ParseMultipartForm(4 * imageenc.MaxImageBytes); err != nil {
		respondError(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}
	albumName := r.FormValue("album")

	var files [][]byte
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["photos"] {
			file, err := header.Open()
			if err != nil {
				respondError(w, "Failed to read photo", http.StatusBadRequest)
				return
			}
			data, err := io.ReadAll(io.LimitReader(file, imageenc.MaxImageBytes+1))
			file.Close()
			if err != nil {
				respondError(w, "Failed to read photo", http.StatusBadRequest)
				return
			}
			files = append(files, data)
		}
	}

	added, err := h.albumService.AddPhotos(r.Context(), sc, files, albumName)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to upload photos")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// DeletePhoto handles DELETE /api/v1/album/photos/{photo_id}
func (h *AlbumHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	photoID := chi.URLParam(r, "photo_id")

	if err := h.albumService.DeletePhoto(r.Context(), sc.Session.Code, photoID); err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("photo_id", photoID).
			Msg("Failed to delete photo")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
