package api

import (
	"net/http"
	"time"

	"fieldtrack/internal/domain"
)

type createRecordRequest struct {
	ClientID      int64     `json:"client_id,omitempty"`
	ContactID     int64     `json:"contact_id"`
	Status        string    `json:"status,omitempty"`
	Travel        bool      `json:"travel,omitempty"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	Duration      string    `json:"duration,omitempty"`
	Origin        string    `json:"origin,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	InternalNotes string    `json:"internal_notes,omitempty"`
	KmOut         float64   `json:"km_out,omitempty"`
	KmBack        float64   `json:"km_back,omitempty"`
	TollCost      float64   `json:"toll_cost,omitempty"`
	Activities    string    `json:"activities,omitempty"`
	Tasks         string    `json:"tasks,omitempty"`
	Pending       string    `json:"pending,omitempty"`
}

type updateRecordRequest struct {
	ContactID     *int64     `json:"contact_id,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Travel        *bool      `json:"travel,omitempty"`
	EntryTime     *time.Time `json:"entry_time,omitempty"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	Origin        *string    `json:"origin,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	InternalNotes *string    `json:"internal_notes,omitempty"`
	KmOut         *float64   `json:"km_out,omitempty"`
	KmBack        *float64   `json:"km_back,omitempty"`
	TollCost      *float64   `json:"toll_cost,omitempty"`
	Activities    *string    `json:"activities,omitempty"`
	Tasks         *string    `json:"tasks,omitempty"`
	Pending       *string    `json:"pending,omitempty"`
}

func (r createRecordRequest) toDomain(clientID int64) *domain.CreateServiceRecordRequest {
	if clientID == 0 {
		clientID = r.ClientID
	}
	return &domain.CreateServiceRecordRequest{
		ClientID:      clientID,
		ContactID:     r.ContactID,
		Status:        r.Status,
		Travel:        r.Travel,
		EntryTime:     r.EntryTime,
		ExitTime:      r.ExitTime,
		Duration:      r.Duration,
		Origin:        r.Origin,
		Notes:         r.Notes,
		InternalNotes: r.InternalNotes,
		KmOut:         r.KmOut,
		KmBack:        r.KmBack,
		TollCost:      r.TollCost,
		Activities:    r.Activities,
		Tasks:         r.Tasks,
		Pending:       r.Pending,
	}
}

func (r updateRecordRequest) toDomain() *domain.UpdateServiceRecordRequest {
	return &domain.UpdateServiceRecordRequest{
		ContactID:     r.ContactID,
		Status:        r.Status,
		Travel:        r.Travel,
		EntryTime:     r.EntryTime,
		ExitTime:      r.ExitTime,
		Origin:        r.Origin,
		Notes:         r.Notes,
		InternalNotes: r.InternalNotes,
		KmOut:         r.KmOut,
		KmBack:        r.KmBack,
		TollCost:      r.TollCost,
		Activities:    r.Activities,
		Tasks:         r.Tasks,
		Pending:       r.Pending,
	}
}

// --- scoped surface: /clients/{clientID}/records ---

func (h *Handler) listClientRecords(w http.ResponseWriter, r *http.Request) {
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
	records, total, err := h.records.ListForClient(r.Context(), p, clientID, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(recordsToAPI(records), total, page))
}

func (h *Handler) createClientRecord(w http.ResponseWriter, r *http.Request) {
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
	var req createRecordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.records.Create(r.Context(), p, req.toDomain(clientID))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordToAPI(rec))
}

// scopedRecord loads a record addressed through a client and checks it
// actually belongs to that client.
func (h *Handler) scopedRecord(r *http.Request, p domain.Principal) (*domain.ServiceRecord, error) {
	clientID, err := idParam(r, "clientID")
	if err != nil {
		return nil, err
	}
	recordID, err := idParam(r, "recordID")
	if err != nil {
		return nil, err
	}
	rec, err := h.records.Get(r.Context(), p, recordID)
	if err != nil {
		return nil, err
	}
	if rec.ClientID != clientID {
		return nil, domain.ErrNotFound("service record %d not found", recordID)
	}
	return rec, nil
}

func (h *Handler) getClientRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.scopedRecord(r, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToAPI(rec))
}

func (h *Handler) updateClientRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.scopedRecord(r, p)
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateRecordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	updated, err := h.records.Update(r.Context(), p, rec.ID, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToAPI(updated))
}

func (h *Handler) deleteClientRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.scopedRecord(r, p)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.records.Delete(r.Context(), p, rec.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- global surface: /records ---

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page := pageFromQuery(r)
	records, total, err := h.records.List(r.Context(), p, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newListResponse(recordsToAPI(records), total, page))
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req createRecordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.records.Create(r.Context(), p, req.toDomain(0))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, recordToAPI(rec))
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	recordID, err := idParam(r, "recordID")
	if err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.records.Get(r.Context(), p, recordID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToAPI(rec))
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	recordID, err := idParam(r, "recordID")
	if err != nil {
		writeError(w, err)
		return
	}
	var req updateRecordRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.records.Update(r.Context(), p, recordID, req.toDomain())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordToAPI(rec))
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, err)
		return
	}
	recordID, err := idParam(r, "recordID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.records.Delete(r.Context(), p, recordID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
