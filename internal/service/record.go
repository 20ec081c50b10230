package service

import (
	"context"
	"log/slog"

	"fieldtrack/internal/domain"
)

// RecordService is the gateway for service records. Creation is the bootstrap
// path of the access model: it requires the client to exist but not a prior
// grant, because the record being created is what grants access.
type RecordService struct {
	records  domain.RecordRepository
	clients  domain.ClientRepository
	contacts domain.ContactRepository
	access   *AccessService
	logger   *slog.Logger
}

func NewRecordService(records domain.RecordRepository, clients domain.ClientRepository,
	contacts domain.ContactRepository, access *AccessService, logger *slog.Logger) *RecordService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordService{records: records, clients: clients, contacts: contacts, access: access, logger: logger}
}

// Create files a visit report for the acting principal. The duration is
// computed from the entry/exit pair when the caller did not supply one; the
// strict exit-after-entry ordering is enforced either way.
func (s *RecordService) Create(ctx context.Context, p domain.Principal, req *domain.CreateServiceRecordRequest) (*domain.ServiceRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.clients.Exists(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidReference("client %d does not exist", req.ClientID)
	}

	linked, err := s.contacts.IsLinked(ctx, req.ClientID, req.ContactID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, domain.ErrNotFound("contact %d is not linked to client %d", req.ContactID, req.ClientID)
	}

	duration := req.Duration
	if duration == "" {
		duration, err = domain.ComputeDuration(req.EntryTime, req.ExitTime)
		if err != nil {
			return nil, err
		}
	}

	rec := &domain.ServiceRecord{
		UserID:        p.UserID,
		ClientID:      req.ClientID,
		ContactID:     req.ContactID,
		Status:        req.Status,
		Travel:        req.Travel,
		EntryTime:     req.EntryTime,
		ExitTime:      req.ExitTime,
		Duration:      duration,
		Origin:        req.Origin,
		Notes:         req.Notes,
		InternalNotes: req.InternalNotes,
		KmOut:         req.KmOut,
		KmBack:        req.KmBack,
		TollCost:      req.TollCost,
		Activities:    req.Activities,
		Tasks:         req.Tasks,
		Pending:       req.Pending,
	}
	created, err := s.records.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "service record created",
		"record_id", created.ID, "client_id", created.ClientID, "user_id", p.UserID)
	return created, nil
}

// Get returns one record if the caller may see its client.
func (s *RecordService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.ServiceRecord, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.access.CanAccessClient(ctx, p, rec.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("service record %d not found", id)
	}
	return rec, nil
}

// Update merges a partial update into the record. When either timestamp
// changes, the duration is recomputed from the merged entry/exit pair.
func (s *RecordService) Update(ctx context.Context, p domain.Principal, id int64, req *domain.UpdateServiceRecordRequest) (*domain.ServiceRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	rec, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if req.ContactID != nil && *req.ContactID != rec.ContactID {
		linked, err := s.contacts.IsLinked(ctx, rec.ClientID, *req.ContactID)
		if err != nil {
			return nil, err
		}
		if !linked {
			return nil, domain.ErrNotFound("contact %d is not linked to client %d", *req.ContactID, rec.ClientID)
		}
	}

	req.Apply(rec)

	if req.TouchesTimes() {
		duration, err := domain.ComputeDuration(rec.EntryTime, rec.ExitTime)
		if err != nil {
			return nil, err
		}
		rec.Duration = duration
	}

	return s.records.Update(ctx, rec)
}

// Delete removes one record if the caller may see its client.
func (s *RecordService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.Get(ctx, p, id); err != nil {
		return err
	}
	return s.records.Delete(ctx, id)
}

// List returns the caller's own records; admins get everyone's.
func (s *RecordService) List(ctx context.Context, p domain.Principal, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	if s.access.IsAdmin(p) {
		return s.records.List(ctx, page)
	}
	return s.records.ListByUser(ctx, p.UserID, page)
}

// ListForClient returns all records filed against one accessible client.
func (s *RecordService) ListForClient(ctx context.Context, p domain.Principal, clientID int64, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, 0, err
	}
	return s.records.ListByClient(ctx, clientID, page)
}
