package domain

import (
	"strings"
	"time"
)

// Client is a serviced customer. Clients carry no owner column: visibility is
// derived from service records (see AccessService).
type Client struct {
	ID           int64
	Name         string
	LegalName    string
	TaxID        string
	Website      string
	Address      string
	City         string
	State        string
	ZipCode      string
	Region       string
	Headquarters bool
	Active       bool
	HasContract  bool
	ContractDate *time.Time
	MinimumHours string // contracted monthly minimum, HH:MM:SS
	Notes        string
	CreatedAt    time.Time
}

// CreateClientRequest holds parameters for creating a new client.
type CreateClientRequest struct {
	Name         string
	LegalName    string
	TaxID        string
	Website      string
	Address      string
	City         string
	State        string
	ZipCode      string
	Region       string
	Headquarters bool
	Active       bool
	HasContract  bool
	ContractDate *time.Time
	MinimumHours string
	Notes        string
}

// Validate checks that the request is well-formed.
func (r *CreateClientRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("client name is required")
	}
	if r.MinimumHours != "" {
		if _, err := ParseClock(r.MinimumHours); err != nil {
			return err
		}
	}
	return nil
}

// UpdateClientRequest holds a partial update. Nil fields are left unchanged.
type UpdateClientRequest struct {
	Name         *string
	LegalName    *string
	TaxID        *string
	Website      *string
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Region       *string
	Headquarters *bool
	Active       *bool
	HasContract  *bool
	ContractDate *time.Time
	MinimumHours *string
	Notes        *string
}

// Validate checks that the request is well-formed.
func (r *UpdateClientRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrValidation("client name cannot be empty")
	}
	if r.MinimumHours != nil && *r.MinimumHours != "" {
		if _, err := ParseClock(*r.MinimumHours); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the update into an existing client.
func (r *UpdateClientRequest) Apply(c *Client) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.LegalName != nil {
		c.LegalName = *r.LegalName
	}
	if r.TaxID != nil {
		c.TaxID = *r.TaxID
	}
	if r.Website != nil {
		c.Website = *r.Website
	}
	if r.Address != nil {
		c.Address = *r.Address
	}
	if r.City != nil {
		c.City = *r.City
	}
	if r.State != nil {
		c.State = *r.State
	}
	if r.ZipCode != nil {
		c.ZipCode = *r.ZipCode
	}
	if r.Region != nil {
		c.Region = *r.Region
	}
	if r.Headquarters != nil {
		c.Headquarters = *r.Headquarters
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	if r.HasContract != nil {
		c.HasContract = *r.HasContract
	}
	if r.ContractDate != nil {
		c.ContractDate = r.ContractDate
	}
	if r.MinimumHours != nil {
		c.MinimumHours = *r.MinimumHours
	}
	if r.Notes != nil {
		c.Notes = *r.Notes
	}
}

// ClientEmail is a contact email attached directly to a client, separate from
// the contact directory.
type ClientEmail struct {
	ID        int64
	ClientID  int64
	Email     string
	CreatedAt time.Time
}

// CreateClientEmailRequest holds parameters for attaching an email to a client.
type CreateClientEmailRequest struct {
	Email string
}

// Validate checks that the request is well-formed.
func (r *CreateClientEmailRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrValidation("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return ErrValidation("email %q is not valid", r.Email)
	}
	return nil
}
