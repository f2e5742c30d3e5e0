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

// PostHandler handles memory-feed HTTP requests
type PostHandler struct {
	feedService *services.FeedService
}

// NewPostHandler creates a new post handler
func NewPostHandler(feedService *services.FeedService) *PostHandler {
	return &PostHandler{feedService: feedService}
}

// GetPosts handles GET /api/v1/posts
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	posts, err := h.feedService.Posts(r.Context(), sc.Session.Code)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to load posts")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

// CreatePost handles POST /api/v1/posts as multipart form data with a
// "content" field and an optional "image" file.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())

	if err := r.ParseMultipartForm(imageenc.MaxImageBytes); err != nil {
		respondError(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}
	content := r.FormValue("content")

	var image []byte
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		image, err = io.ReadAll(io.LimitReader(file, imageenc.MaxImageBytes+1))
		if err != nil {
			respondError(w, "Failed to read image", http.StatusBadRequest)
			return
		}
	}

	post, err := h.feedService.AddPost(r.Context(), sc, content, image)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Msg("Failed to create post")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, post)
}

// LikePost handles POST /api/v1/posts/{post_id}/like
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	postID := chi.URLParam(r, "post_id")

	post, err := h.feedService.LikePost(r.Context(), sc.Session.Code, postID)
	if err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("post_id", postID).
			Msg("Failed to like post")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /api/v1/posts/{post_id}
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	sc := middleware.GetSessionContext(r.Context())
	postID := chi.URLParam(r, "post_id")

	if err := h.feedService.DeletePost(r.Context(), sc.Session.Code, postID); err != nil {
		log.Error().
			Err(err).
			Str("session_code", sc.Session.Code).
			Str("post_id", postID).
			Msg("Failed to delete post")
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
