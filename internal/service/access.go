// Package service implements business logic over the domain repositories.
// Every operation takes the acting principal explicitly; nothing in this
// package reads identity out of a context.
package service

import (
	"context"

	"fieldtrack/internal/domain"
)

// AccessService resolves which clients a principal may see. A standard user
// is granted access to a client by having at least one service record for it;
// admins see everything. Access denial surfaces as NotFound so callers cannot
// probe which client IDs exist.
type AccessService struct {
	clients  domain.ClientRepository
	contacts domain.ContactRepository
	records  domain.RecordRepository
}

func NewAccessService(clients domain.ClientRepository, contacts domain.ContactRepository, records domain.RecordRepository) *AccessService {
	return &AccessService{clients: clients, contacts: contacts, records: records}
}

// IsAdmin is the only place a role value is compared.
func (s *AccessService) IsAdmin(p domain.Principal) bool {
	return p.Role == domain.RoleAdmin
}

// ListAccessibleClientIDs returns every client ID the principal may see. An
// empty result is a valid state, not an error.
func (s *AccessService) ListAccessibleClientIDs(ctx context.Context, p domain.Principal) ([]int64, error) {
	if s.IsAdmin(p) {
		return s.clients.ListIDs(ctx)
	}
	return s.records.DistinctClientIDsByUser(ctx, p.UserID)
}

// CanAccessClient reports whether the principal may see the given client.
func (s *AccessService) CanAccessClient(ctx context.Context, p domain.Principal, clientID int64) (bool, error) {
	if s.IsAdmin(p) {
		return true, nil
	}
	ids, err := s.records.DistinctClientIDsByUser(ctx, p.UserID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == clientID {
			return true, nil
		}
	}
	return false, nil
}

// RequireClient loads the client if the principal may see it. An absent
// client and a denied client produce the same NotFoundError.
func (s *AccessService) RequireClient(ctx context.Context, p domain.Principal, clientID int64) (*domain.Client, error) {
	ok, err := s.CanAccessClient(ctx, p, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound("client %d not found", clientID)
	}
	return s.clients.GetByID(ctx, clientID)
}

// CanAccessContact reports whether the contact is linked to at least one
// client the principal may see.
func (s *AccessService) CanAccessContact(ctx context.Context, p domain.Principal, contactID int64) (bool, error) {
	if s.IsAdmin(p) {
		return true, nil
	}
	linked, err := s.contacts.ClientIDsOf(ctx, contactID)
	if err != nil {
		return false, err
	}
	accessible, err := s.records.DistinctClientIDsByUser(ctx, p.UserID)
	if err != nil {
		return false, err
	}
	granted := make(map[int64]bool, len(accessible))
	for _, id := range accessible {
		granted[id] = true
	}
	for _, id := range linked {
		if granted[id] {
			return true, nil
		}
	}
	return false, nil
}

// VisibleClientsForContact returns the contact's linked clients intersected
// with the principal's accessible set.
func (s *AccessService) VisibleClientsForContact(ctx context.Context, p domain.Principal, contactID int64) ([]domain.Client, error) {
	linked, err := s.contacts.ClientIDsOf(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if len(linked) == 0 {
		return nil, nil
	}
	if s.IsAdmin(p) {
		clients, _, err := s.clients.ListByIDs(ctx, linked, domain.PageRequest{MaxResults: domain.MaxMaxResults})
		return clients, err
	}

	accessible, err := s.records.DistinctClientIDsByUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	granted := make(map[int64]bool, len(accessible))
	for _, id := range accessible {
		granted[id] = true
	}
	var visible []int64
	for _, id := range linked {
		if granted[id] {
			visible = append(visible, id)
		}
	}
	if len(visible) == 0 {
		return nil, nil
	}
	clients, _, err := s.clients.ListByIDs(ctx, visible, domain.PageRequest{MaxResults: domain.MaxMaxResults})
	return clients, err
}
