package service

import (
	"context"
	"log/slog"

	"fieldtrack/internal/domain"
)

// ClientService is the gateway for client CRUD. Reads and writes on an
// existing client go through the access resolver first.
type ClientService struct {
	clients domain.ClientRepository
	access  *AccessService
	logger  *slog.Logger
}

func NewClientService(clients domain.ClientRepository, access *AccessService, logger *slog.Logger) *ClientService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientService{clients: clients, access: access, logger: logger}
}

// Create is open to any authenticated principal. The repository files a
// bootstrap service record so the creator can see the client afterwards.
func (s *ClientService) Create(ctx context.Context, p domain.Principal, req *domain.CreateClientRequest) (*domain.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := &domain.Client{
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
	}
	created, err := s.clients.Create(ctx, c, p.UserID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "client created", "client_id", created.ID, "user_id", p.UserID)
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Client, error) {
	return s.access.RequireClient(ctx, p, id)
}

func (s *ClientService) List(ctx context.Context, p domain.Principal, page domain.PageRequest) ([]domain.Client, int64, error) {
	if s.access.IsAdmin(p) {
		return s.clients.List(ctx, page)
	}
	ids, err := s.access.ListAccessibleClientIDs(ctx, p)
	if err != nil {
		return nil, 0, err
	}
	return s.clients.ListByIDs(ctx, ids, page)
}

func (s *ClientService) Update(ctx context.Context, p domain.Principal, id int64, req *domain.UpdateClientRequest) (*domain.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c, err := s.access.RequireClient(ctx, p, id)
	if err != nil {
		return nil, err
	}
	req.Apply(c)
	return s.clients.Update(ctx, c)
}

// Delete cascades through links, orphaned contacts, emails, and service
// records in a single transaction.
func (s *ClientService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if _, err := s.access.RequireClient(ctx, p, id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "client deleted", "client_id", id, "user_id", p.UserID)
	return nil
}
