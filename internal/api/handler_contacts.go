package api

import (
	"net/http"

	"fieldtrack/internal/domain"
)

type createContactRequest struct {
	ClientID int64  `json:"client_id,omitempty"`
	Name     string `json:"name"`
	JobTitle string `json:"job_title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp bool   `json:"whatsapp,omitempty"`
	Active   *bool  `json:"active,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type updateContactRequest struct {
	Name     *string `json:"name,omitempty"`
	JobTitle *string `json:"job_title,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	WhatsApp *bool   `json:"whatsapp,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r createContactRequest) toDomain(clientID int64) *domain.CreateContactRequest {
	if clientID == 0 {
		clientID = r.ClientID
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &domain.CreateContactRequest{
		ClientID: clientID,
		Name:     r.Name,
		JobTitle: r.JobTitle,
		Email:    r.Email,
		Phone:    r.Phone,
		WhatsApp: r.WhatsApp,
		Active:   active,
		Notes:    r.Notes,
	}
}

func (r updateContactRequest) toDomain() *domain.UpdateContactRequest {
	return &domain.UpdateContactRequest{
		Name:     r.Name,
		JobTitle: r.JobTitle,
		Email:    r.Email,
		Phone:    r.Phone,
		WhatsApp: r.WhatsApp,
		Active:   r.Active,
		Notes:    r.Notes,
	}
}

// --- scoped surface: /clients/{clientID}/contacts ---

func (h *Handler) listClientContacts(w http.ResponseWriter, r *http.Request) {
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
	contacts, total, err := h.contacts.ListForClient(r.Context(), p, clientID, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(contactsToAPI(contacts), total, page))
}

func (h *Handler) createClientContact(w http.ResponseWriter, r *http.Request) {
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
	var req createContactRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.Create(r.Context(), p, req.toDomain(clientID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contactToAPI(c))
}

func (h *Handler) getClientContact(w http.ResponseWriter, r *http.Request) {
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
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.GetScoped(r.Context(), p, clientID, contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToAPI(c))
}

func (h *Handler) updateClientContact(w http.ResponseWriter, r *http.Request) {
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
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateContactRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.UpdateScoped(r.Context(), p, clientID, contactID, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToAPI(c))
}

func (h *Handler) linkContact(w http.ResponseWriter, r *http.Request) {
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
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.contacts.Link(r.Context(), p, clientID, contactID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlinkContact(w http.ResponseWriter, r *http.Request) {
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
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.contacts.Unlink(r.Context(), p, clientID, contactID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- global surface: /contacts ---

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page := pageFromQuery(r)
	contacts, total, err := h.contacts.List(r.Context(), p, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(contactsToAPI(contacts), total, page))
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createContactRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.Create(r.Context(), p, req.toDomain(0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contactToAPI(c))
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.Get(r.Context(), p, contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToAPI(c))
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateContactRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := h.contacts.Update(r.Context(), p, contactID, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contactToAPI(c))
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.contacts.Delete(r.Context(), p, contactID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listContactClients(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	contactID, err := idParam(r, "contactID")
	if err != nil {
		writeError(w, err)
		return
	}
	clients, err := h.contacts.ClientsOf(r.Context(), p, contactID)
	if err != nil {
		writeError(w, err)
		return
	}
	out := clientsToAPI(clients)
	if out == nil {
		out = []Client{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}
