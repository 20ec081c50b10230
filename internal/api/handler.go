// Package api exposes the HTTP surface of the platform on a chi router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fieldtrack/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	auth     *service.AuthService
	clients  *service.ClientService
	contacts *service.ContactService
	records  *service.RecordService
	emails   *service.EmailService
}

func NewHandler(auth *service.AuthService, clients *service.ClientService,
	contacts *service.ContactService, records *service.RecordService,
	emails *service.EmailService) *Handler {
	return &Handler{auth: auth, clients: clients, contacts: contacts, records: records, emails: emails}
}

// PublicRoutes mounts the endpoints that work without a token.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/auth/signup", h.signup)
	r.Post("/auth/signin", h.signin)
}

// Routes mounts the authenticated endpoints. The caller wraps this group in
// the auth middleware so every handler below can assume a principal.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/auth/me", h.me)

	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.listClients)
		r.Post("/", h.createClient)
		r.Route("/{clientID}", func(r chi.Router) {
			r.Get("/", h.getClient)
			r.Patch("/", h.updateClient)
			r.Delete("/", h.deleteClient)

			r.Get("/contacts", h.listClientContacts)
			r.Post("/contacts", h.createClientContact)
			r.Route("/contacts/{contactID}", func(r chi.Router) {
				r.Get("/", h.getClientContact)
				r.Patch("/", h.updateClientContact)
				r.Post("/", h.linkContact)
				r.Delete("/", h.unlinkContact)
			})

			r.Get("/emails", h.listClientEmails)
			r.Post("/emails", h.createClientEmail)
			r.Route("/emails/{emailID}", func(r chi.Router) {
				r.Get("/", h.getClientEmail)
				r.Patch("/", h.updateClientEmail)
				r.Delete("/", h.deleteClientEmail)
			})

			r.Get("/records", h.listClientRecords)
			r.Post("/records", h.createClientRecord)
			r.Route("/records/{recordID}", func(r chi.Router) {
				r.Get("/", h.getClientRecord)
				r.Patch("/", h.updateClientRecord)
				r.Delete("/", h.deleteClientRecord)
			})
		})
	})

	// Legacy alias kept for clients of the original API.
	r.Get("/clientes", h.listClients)

	// Global contact surface: addressed by contact ID alone.
	r.Route("/contacts", func(r chi.Router) {
		r.Get("/", h.listContacts)
		r.Post("/", h.createContact)
		r.Route("/{contactID}", func(r chi.Router) {
			r.Get("/", h.getContact)
			r.Patch("/", h.updateContact)
			r.Delete("/", h.deleteContact)
			r.Get("/clients", h.listContactClients)
		})
	})

	// Global record surface.
	r.Route("/records", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.Post("/", h.createRecord)
		r.Route("/{recordID}", func(r chi.Router) {
			r.Get("/", h.getRecord)
			r.Patch("/", h.updateRecord)
			r.Delete("/", h.deleteRecord)
		})
	})
}
