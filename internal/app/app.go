// Package app provides application-level wiring for the fieldtrack service.
package app

import (
	"database/sql"
	"log/slog"

	"fieldtrack/internal/api"
	"fieldtrack/internal/config"
	"fieldtrack/internal/db/repository"
	"fieldtrack/internal/service"
)

// Deps holds the external dependencies that main() must provide: database
// handles, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// App holds the fully-wired application: services, the API handler, and the
// repositories the router setup needs for auth.
type App struct {
	Auth     *service.AuthService
	Access   *service.AccessService
	Clients  *service.ClientService
	Contacts *service.ContactService
	Records  *service.RecordService
	Emails   *service.EmailService
	Handler  *api.Handler
	Users    *repository.UserRepo
}

// New wires all repositories and services from the provided deps.
// Repositories that write share the single-connection write pool; list-only
// repositories could use the read pool, but access checks and listings are
// interleaved with writes here, so everything reads its own writes.
func New(deps Deps) *App {
	userRepo := repository.NewUserRepo(deps.WriteDB)
	clientRepo := repository.NewClientRepo(deps.WriteDB)
	contactRepo := repository.NewContactRepo(deps.WriteDB)
	recordRepo := repository.NewRecordRepo(deps.WriteDB)
	emailRepo := repository.NewEmailRepo(deps.WriteDB)

	access := service.NewAccessService(clientRepo, contactRepo, recordRepo)
	auth := service.NewAuthService(userRepo, deps.Cfg.Auth.JWTSecret, deps.Cfg.Auth.TokenTTL)
	clients := service.NewClientService(clientRepo, access, deps.Logger.With("component", "clients"))
	contacts := service.NewContactService(contactRepo, access, deps.Logger.With("component", "contacts"))
	records := service.NewRecordService(recordRepo, clientRepo, contactRepo, access, deps.Logger.With("component", "records"))
	emails := service.NewEmailService(emailRepo, access)

	return &App{
		Auth:     auth,
		Access:   access,
		Clients:  clients,
		Contacts: contacts,
		Records:  records,
		Emails:   emails,
		Handler:  api.NewHandler(auth, clients, contacts, records, emails),
		Users:    userRepo,
	}
}
