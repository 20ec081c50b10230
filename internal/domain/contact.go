package domain

import (
	"strings"
	"time"
)

// SystemContactID is the migration-seeded contact used for bootstrap service
// records created alongside a new client. It is linked to every client that
// needs it and is never deleted by orphan cleanup.
const SystemContactID int64 = 1

// Contact is a person reachable at one or more clients. The client
// association lives in a separate link table; a contact left with zero links
// is removed.
type Contact struct {
	ID        int64
	Name      string
	JobTitle  string
	Email     string
	Phone     string
	WhatsApp  bool
	Active    bool
	Notes     string
	CreatedAt time.Time
}

// CreateContactRequest holds parameters for creating a contact. ClientID names
// the client the new contact is linked to; it is filled from the URL on scoped
// routes and must be present in the body on the global route.
type CreateContactRequest struct {
	ClientID int64
	Name     string
	JobTitle string
	Email    string
	Phone    string
	WhatsApp bool
	Active   bool
	Notes    string
}

// Validate checks that the request is well-formed.
func (r *CreateContactRequest) Validate() error {
	if r.ClientID <= 0 {
		return ErrInvalidReference("client id is required to create a contact")
	}
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("contact name is required")
	}
	return nil
}

// UpdateContactRequest holds a partial update. Nil fields are left unchanged.
type UpdateContactRequest struct {
	Name     *string
	JobTitle *string
	Email    *string
	Phone    *string
	WhatsApp *bool
	Active   *bool
	Notes    *string
}

// Validate checks that the request is well-formed.
func (r *UpdateContactRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrValidation("contact name cannot be empty")
	}
	return nil
}

// Apply merges the update into an existing contact.
func (r *UpdateContactRequest) Apply(c *Contact) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.JobTitle != nil {
		c.JobTitle = *r.JobTitle
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Phone != nil {
		c.Phone = *r.Phone
	}
	if r.WhatsApp != nil {
		c.WhatsApp = *r.WhatsApp
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}
