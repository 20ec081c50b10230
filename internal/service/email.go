package service

import (
	"context"

	"fieldtrack/internal/domain"
)

// EmailService is the gateway for the client email sub-resource. Every
// operation is addressed through a client and gated on access to it.
type EmailService struct {
	emails domain.EmailRepository
	access *AccessService
}

func NewEmailService(emails domain.EmailRepository, access *AccessService) *EmailService {
	return &EmailService{emails: emails, access: access}
}

func (s *EmailService) Create(ctx context.Context, p domain.Principal, clientID int64, req *domain.CreateClientEmailRequest) (*domain.ClientEmail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, err
	}
	return s.emails.Create(ctx, &domain.ClientEmail{ClientID: clientID, Email: req.Email})
}

func (s *EmailService) List(ctx context.Context, p domain.Principal, clientID int64, page domain.PageRequest) ([]domain.ClientEmail, int64, error) {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, 0, err
	}
	return s.emails.ListByClient(ctx, clientID, page)
}

func (s *EmailService) Get(ctx context.Context, p domain.Principal, clientID, emailID int64) (*domain.ClientEmail, error) {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, err
	}
	return s.getOwned(ctx, clientID, emailID)
}

func (s *EmailService) Update(ctx context.Context, p domain.Principal, clientID, emailID int64, req *domain.CreateClientEmailRequest) (*domain.ClientEmail, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, err
	}
	e, err := s.getOwned(ctx, clientID, emailID)
	if err != nil {
		return nil, err
	}
	e.Email = req.Email
	return s.emails.Update(ctx, e)
}

func (s *EmailService) Delete(ctx context.Context, p domain.Principal, clientID, emailID int64) error {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return err
	}
	if _, err := s.getOwned(ctx, clientID, emailID); err != nil {
		return err
	}
	return s.emails.Delete(ctx, emailID)
}

// getOwned loads the email and checks it belongs to the addressed client, so
// an email cannot be reached through someone else's client ID.
func (s *EmailService) getOwned(ctx context.Context, clientID, emailID int64) (*domain.ClientEmail, error) {
	e, err := s.emails.GetByID(ctx, emailID)
	if err != nil {
		return nil, err
	}
	if e.ClientID != clientID {
		return nil, domain.ErrNotFound("client email %d not found", emailID)
	}
	return e, nil
}
