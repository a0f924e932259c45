package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pattern-keeper/internal/logger"
	"github.com/MKhiriev/go-pattern-keeper/internal/utils"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeDocumentRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.createDocument", err)
		return
	}

	doc, err := h.services.DocumentService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "*Handler.createDocument", err)
		return
	}

	log.Debug().Str("document_id", doc.ID).Msg("document created")
	_, _ = utils.WriteJSON(w, doc, http.StatusCreated)
}

func (h *Handler) updateDocument(w http.ResponseWriter, r *http.Request) {
	req, err := decodeDocumentRequest(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	doc, err := h.services.DocumentService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, "*Handler.updateDocument", err)
		return
	}

	_, _ = utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DocumentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, "*Handler.deleteDocument", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.services.DocumentService.List(r.Context())
	if err != nil {
		h.writeError(w, r, "*Handler.listDocuments", err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}

	_, _ = utils.WriteJSON(w, models.DocumentListResponse{Documents: docs}, http.StatusOK)
}

func decodeDocumentRequest(r *http.Request) (models.DocumentRequest, error) {
	var req models.DocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.DocumentRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return req, nil
}

// writeError logs err and answers with the status mapped from it.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, msg := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Send()

	utils.WriteError(w, msg, status)
}
