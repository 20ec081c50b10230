package api

import (
	"net/http"

	"fieldtrack/internal/domain"
)

type emailRequest struct {
	Email string `json:"email"`
}

func (h *Handler) listClientEmails(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clientID, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	page := pageFromQuery(r)
	emails, total, err := h.emails.List(r.Context(), p, clientID, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(emailsToAPI(emails), total, page))
}

func (h *Handler) createClientEmail(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clientID, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req emailRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e, err := h.emails.Create(r.Context(), p, clientID, &domain.CreateClientEmailRequest{Email: req.Email})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, emailToAPI(e))
}

func (h *Handler) getClientEmail(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clientID, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	emailID, err := idParam(r, "emailID")
	if err != nil {
		writeError(w, err)
		return
	}
	e, err := h.emails.Get(r.Context(), p, clientID, emailID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emailToAPI(e))
}

func (h *Handler) updateClientEmail(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clientID, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	emailID, err := idParam(r, "emailID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req emailRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e, err := h.emails.Update(r.Context(), p, clientID, emailID, &domain.CreateClientEmailRequest{Email: req.Email})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emailToAPI(e))
}

func (h *Handler) deleteClientEmail(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	clientID, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	emailID, err := idParam(r, "emailID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.emails.Delete(r.Context(), p, clientID, emailID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
