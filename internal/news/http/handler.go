package http

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/feedboard/backend/internal/common/errors"
	commonhttp "github.com/AlibekovAA/feedboard/backend/internal/common/http"
	"github.com/AlibekovAA/feedboard/backend/internal/common/logger"
	"github.com/AlibekovAA/feedboard/backend/internal/news/catalog"
)

type Handler struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

func NewHandler(cat *catalog.Catalog, log *logger.Logger) *Handler {
	return &Handler{catalog: cat, log: log}
}

// List handles GET /private/news.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	commonhttp.WriteJSON(w, http.StatusOK, h.catalog.List())
}

// Get handles GET /private/news/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.FindByID(r.PathValue("id"))
	if !ok {
		commonhttp.HandleError(w, r, commonerrors.ErrNewsNotFound, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, item)
}
