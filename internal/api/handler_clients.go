package api

import (
	"net/http"
	"time"

	"fieldtrack/internal/domain"
)

type createClientRequest struct {
	Name         string     `json:"name"`
	LegalName    string     `json:"legal_name,omitempty"`
	TaxID        string     `json:"tax_id,omitempty"`
	Website      string     `json:"website,omitempty"`
	Address      string     `json:"address,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	ZipCode      string     `json:"zip_code,omitempty"`
	Region       string     `json:"region,omitempty"`
	Headquarters bool       `json:"headquarters,omitempty"`
	Active       *bool      `json:"active,omitempty"`
	HasContract  bool       `json:"has_contract,omitempty"`
	ContractDate *time.Time `json:"contract_date,omitempty"`
	MinimumHours string     `json:"minimum_hours,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type updateClientRequest struct {
	Name         *string    `json:"name,omitempty"`
	LegalName    *string    `json:"legal_name,omitempty"`
	TaxID        *string    `json:"tax_id,omitempty"`
	Website      *string    `json:"website,omitempty"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	ZipCode      *string    `json:"zip_code,omitempty"`
	Region       *string    `json:"region,omitempty"`
	Headquarters *bool      `json:"headquarters,omitempty"`
	Active       *bool      `json:"active,omitempty"`
	HasContract  *bool      `json:"has_contract,omitempty"`
	ContractDate *time.Time `json:"contract_date,omitempty"`
	MinimumHours *string    `json:"minimum_hours,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page := pageFromQuery(r)
	clients, total, err := h.clients.List(r.Context(), p, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(clientsToAPI(clients), total, page))
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createClientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	c, err := h.clients.Create(r.Context(), p, &domain.CreateClientRequest{
		Name:         req.Name,
		LegalName:    req.LegalName,
		TaxID:        req.TaxID,
		Website:      req.Website,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Region:       req.Region,
		Headquarters: req.Headquarters,
		Active:       active,
		HasContract:  req.HasContract,
		ContractDate: req.ContractDate,
		MinimumHours: req.MinimumHours,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, clientToAPI(c))
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := h.clients.Get(r.Context(), p, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientToAPI(c))
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateClientRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	c, err := h.clients.Update(r.Context(), p, id, &domain.UpdateClientRequest{
		Name:         req.Name,
		LegalName:    req.LegalName,
		TaxID:        req.TaxID,
		Website:      req.Website,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Region:       req.Region,
		Headquarters: req.Headquarters,
		Active:       req.Active,
		HasContract:  req.HasContract,
		ContractDate: req.ContractDate,
		MinimumHours: req.MinimumHours,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientToAPI(c))
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := idParam(r, "clientID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.clients.Delete(r.Context(), p, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
