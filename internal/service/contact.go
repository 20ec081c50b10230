package service

import (
	"context"
	"log/slog"

	"fieldtrack/internal/domain"
)

// ContactService is the gateway for contact CRUD and the client-contact link
// table. Scoped operations are addressed through a client; global operations
// are the legacy surface addressed by contact ID alone.
type ContactService struct {
	contacts domain.ContactRepository
	access   *AccessService
	logger   *slog.Logger
}

func NewContactService(contacts domain.ContactRepository, access *AccessService, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{contacts: contacts, access: access, logger: logger}
}

// Create inserts a contact linked to req.ClientID. The client must be
// accessible to the caller.
func (s *ContactService) Create(ctx context.Context, p domain.Principal, req *domain.CreateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.access.RequireClient(ctx, p, req.ClientID); err != nil {
		return nil, err
	}
	c := &domain.Contact{
		Name:     req.Name,
		JobTitle: req.JobTitle,
		Email:    req.Email,
		Phone:    req.Phone,
		WhatsApp: req.WhatsApp,
		Active:   req.Active,
		Notes:    req.Notes,
	}
	return s.contacts.Create(ctx, c, req.ClientID)
}

// ListForClient returns the contacts linked to one accessible client.
func (s *ContactService) ListForClient(ctx context.Context, p domain.Principal, clientID int64, page domain.PageRequest) ([]domain.Contact, int64, error) {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return nil, 0, err
	}
	return s.contacts.ListByClient(ctx, clientID, page)
}

// List returns every contact reachable through the caller's accessible
// clients. Admins see the full directory.
func (s *ContactService) List(ctx context.Context, p domain.Principal, page domain.PageRequest) ([]domain.Contact, int64, error) {
	if s.access.IsAdmin(p) {
		return s.contacts.List(ctx, page)
	}
	ids, err := s.access.ListAccessibleClientIDs(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return s.contacts.ListByClients(ctx, ids, page)
}

// GetScoped returns one contact addressed through a client. The pair must be
// linked; an unlinked pair reads as NotFound.
func (s *ContactService) GetScoped(ctx context.Context, p domain.Principal, clientID, contactID int64) (*domain.Contact, error) {
	if err := s.requireLinked(ctx, p, clientID, contactID); err != nil {
		return nil, err
	}
	return s.contacts.GetByID(ctx, contactID)
}

// UpdateScoped updates one contact addressed through a client.
func (s *ContactService) UpdateScoped(ctx context.Context, p domain.Principal, clientID, contactID int64, req *domain.UpdateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireLinked(ctx, p, clientID, contactID); err != nil {
		return nil, err
	}
	c, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	return s.contacts.Update(ctx, c)
}

// Link associates an existing contact with an accessible client. Repeating an
// existing association is a no-op.
func (s *ContactService) Link(ctx context.Context, p domain.Principal, clientID, contactID int64) error {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return err
	}
	return s.contacts.Link(ctx, clientID, contactID)
}

// Unlink removes one association. A contact left without links is deleted.
func (s *ContactService) Unlink(ctx context.Context, p domain.Principal, clientID, contactID int64) error {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return err
	}
	return s.contacts.Unlink(ctx, clientID, contactID)
}

// Get returns one contact by ID alone. The caller needs access to at least
// one of the contact's linked clients.
func (s *ContactService) Get(ctx context.Context, p domain.Principal, contactID int64) (*domain.Contact, error) {
	if err := s.requireContact(ctx, p, contactID); err != nil {
		return nil, err
	}
	return s.contacts.GetByID(ctx, contactID)
}

// Update updates one contact by ID alone.
func (s *ContactService) Update(ctx context.Context, p domain.Principal, contactID int64, req *domain.UpdateContactRequest) (*domain.Contact, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireContact(ctx, p, contactID); err != nil {
		return nil, err
	}
	c, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	return s.contacts.Update(ctx, c)
}

// Delete removes a contact and all of its links, regardless of how many
// clients it was attached to. This is deliberately broader than Unlink.
func (s *ContactService) Delete(ctx context.Context, p domain.Principal, contactID int64) error {
	if contactID == domain.SystemContactID {
		return domain.ErrValidation("the system contact cannot be deleted")
	}
	if err := s.requireContact(ctx, p, contactID); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, contactID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "contact deleted", "contact_id", contactID, "user_id", p.UserID)
	return nil
}

// ClientsOf returns the contact's linked clients visible to the caller.
func (s *ContactService) ClientsOf(ctx context.Context, p domain.Principal, contactID int64) ([]domain.Client, error) {
	if err := s.requireContact(ctx, p, contactID); err != nil {
		return nil, err
	}
	return s.access.VisibleClientsForContact(ctx, p, contactID)
}

func (s *ContactService) requireLinked(ctx context.Context, p domain.Principal, clientID, contactID int64) error {
	if _, err := s.access.RequireClient(ctx, p, clientID); err != nil {
		return err
	}
	linked, err := s.contacts.IsLinked(ctx, clientID, contactID)
	if err != nil {
		return err
	}
	if !linked {
		return domain.ErrNotFound("contact %d not found", contactID)
	}
	return nil
}

func (s *ContactService) requireContact(ctx context.Context, p domain.Principal, contactID int64) error {
	ok, err := s.access.CanAccessContact(ctx, p, contactID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("contact %d not found", contactID)
	}
	return nil
}
