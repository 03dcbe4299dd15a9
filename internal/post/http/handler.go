package http

import (
	"net/http"
	"strconv"

	commonhttp "github.com/AlibekovAA/feedboard/backend/internal/common/http"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	"github.com/AlibekovAA/feedboard/backend/internal/post/domain"
	"github.com/AlibekovAA/feedboard/backend/internal/post/repository"
)

type Handler struct {
	repo repository.Repository
	log  *logger.Logger
}

func NewHandler(repo repository.Repository, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

type postEnvelope struct {
	Post *domain.Post `json:"post,omitempty"`
}

// List handles GET /posts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	commonhttp.WriteJSON(w, http.StatusOK, h.repo.List())
}

// Get handles GET /posts/{id}. A missing or non-numeric ID yields an empty
// envelope with status 200; the frontend checks the "post" key, not the
// status code.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		commonhttp.WriteJSON(w, http.StatusOK, postEnvelope{})
		return
	}

	post, ok := h.repo.FindByID(id)
	if !ok {
		commonhttp.WriteJSON(w, http.StatusOK, postEnvelope{})
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, postEnvelope{Post: &post})
}

// Create handles POST /posts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields domain.Fields
	if err := commonhttp.DecodeJSON(r, &fields); err != nil {
		h.log.Warnf("create post failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	post := h.repo.Create(fields)
	h.log.Debugf("post %d created", post.ID)
	w.WriteHeader(http.StatusNoContent)
}

// Update handles PUT /posts/{id}. Updating a nonexistent ID still returns
// 204: soft success is part of the API contract.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var fields domain.Fields
	if err := commonhttp.DecodeJSON(r, &fields); err != nil {
		h.log.Warnf("update post failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if id, err := strconv.ParseInt(r.PathValue("id"), 10, 64); err == nil {
		h.repo.Replace(id, fields)
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /posts/{id}. Soft success, same as Update.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, err := strconv.ParseInt(r.PathValue("id"), 10, 64); err == nil {
		h.repo.Delete(id)
	}
	w.WriteHeader(http.StatusNoContent)
}
