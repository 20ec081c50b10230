package api

import (
	"time"

	"fieldtrack/internal/domain"
)

// Wire representations. Field names follow the JSON casing of the public API.

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	LegalName    string     `json:"legal_name,omitempty"`
	TaxID        string     `json:"tax_id,omitempty"`
	Website      string     `json:"website,omitempty"`
	Address      string     `json:"address,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	ZipCode      string     `json:"zip_code,omitempty"`
	Region       string     `json:"region,omitempty"`
	Headquarters bool       `json:"headquarters"`
	Active       bool       `json:"active"`
	HasContract  bool       `json:"has_contract"`
	ContractDate *time.Time `json:"contract_date,omitempty"`
	MinimumHours string     `json:"minimum_hours,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	JobTitle  string    `json:"job_title,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	WhatsApp  bool      `json:"whatsapp"`
	Active    bool      `json:"active"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientEmail struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceRecord struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	ClientID      int64     `json:"client_id"`
	ContactID     int64     `json:"contact_id,omitempty"`
	Status        string    `json:"status"`
	Travel        bool      `json:"travel"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	Duration      string    `json:"duration"`
	Origin        string    `json:"origin,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	InternalNotes string    `json:"internal_notes,omitempty"`
	KmOut         float64   `json:"km_out,omitempty"`
	KmBack        float64   `json:"km_back,omitempty"`
	TollCost      float64   `json:"toll_cost,omitempty"`
	Activities    string    `json:"activities,omitempty"`
	Tasks         string    `json:"tasks,omitempty"`
	Pending       string    `json:"pending,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func userToAPI(u *domain.User) User {
	return User{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

func clientToAPI(c *domain.Client) Client {
	return Client{
		ID:           c.ID,
		Name:         c.Name,
		LegalName:    c.LegalName,
		TaxID:        c.TaxID,
		Website:      c.Website,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		ZipCode:      c.ZipCode,
		Region:       c.Region,
		Headquarters: c.Headquarters,
		Active:       c.Active,
		HasContract:  c.HasContract,
		ContractDate: c.ContractDate,
		MinimumHours: c.MinimumHours,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
	}
}

func clientsToAPI(clients []domain.Client) []Client {
	out := make([]Client, len(clients))
	for i := range clients {
		out[i] = clientToAPI(&clients[i])
	}
	return out
}

func contactToAPI(c *domain.Contact) Contact {
	return Contact{
		ID:        c.ID,
		Name:      c.Name,
		JobTitle:  c.JobTitle,
		Email:     c.Email,
		Phone:     c.Phone,
		WhatsApp:  c.WhatsApp,
		Active:    c.Active,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func contactsToAPI(contacts []domain.Contact) []Contact {
	out := make([]Contact, len(contacts))
	for i := range contacts {
		out[i] = contactToAPI(&contacts[i])
	}
	return out
}

func emailToAPI(e *domain.ClientEmail) ClientEmail {
	return ClientEmail{ID: e.ID, ClientID: e.ClientID, Email: e.Email, CreatedAt: e.CreatedAt}
}

func emailsToAPI(emails []domain.ClientEmail) []ClientEmail {
	out := make([]ClientEmail, len(emails))
	for i := range emails {
		out[i] = emailToAPI(&emails[i])
	}
	return out
}

func recordToAPI(r *domain.ServiceRecord) ServiceRecord {
	return ServiceRecord{
		ID:            r.ID,
		UserID:        r.UserID,
		ClientID:      r.ClientID,
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
		CreatedAt:     r.CreatedAt,
	}
}

func recordsToAPI(records []domain.ServiceRecord) []ServiceRecord {
	out := make([]ServiceRecord, len(records))
	for i := range records {
		out[i] = recordToAPI(&records[i])
	}
	return out
}
