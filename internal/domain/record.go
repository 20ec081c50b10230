package domain

import (
	"strings"
	"time"
)

// ServiceRecord is a visit report: one user attending one client, reached via
// one contact, between an entry and an exit time. Records double as access
// grants: their existence is what lets a standard user see a client.
type ServiceRecord struct {
	ID            int64
	UserID        int64
	ClientID      int64
	ContactID     int64 // zero when the referenced contact has been removed
	Status        string
	Travel        bool
	EntryTime     time.Time
	ExitTime      time.Time
	Duration      string // HH:MM:SS, derived from entry/exit
	Origin        string
	Notes         string
	InternalNotes string
	KmOut         float64
	KmBack        float64
	TollCost      float64
	Activities    string
	Tasks         string
	Pending       string
	CreatedAt     time.Time
}

// CreateServiceRecordRequest holds parameters for filing a visit report.
// ClientID is filled from the URL on scoped routes and must be present in the
// body on the global route; ContactID is always required.
type CreateServiceRecordRequest struct {
	ClientID      int64
	ContactID     int64
	Status        string
	Travel        bool
	EntryTime     time.Time
	ExitTime      time.Time
	Duration      string // optional; recomputed from entry/exit when empty
	Origin        string
	Notes         string
	InternalNotes string
	KmOut         float64
	KmBack        float64
	TollCost      float64
	Activities    string
	Tasks         string
	Pending       string
}

// Validate checks that the request is well-formed. The entry/exit ordering is
// always enforced here, even when the caller supplied a duration of its own.
func (r *CreateServiceRecordRequest) Validate() error {
	if r.ClientID <= 0 {
		return ErrInvalidReference("client id is required to create a service record")
	}
	if r.ContactID <= 0 {
		return ErrInvalidReference("contact id is required to create a service record")
	}
	if r.EntryTime.IsZero() || r.ExitTime.IsZero() {
		return ErrValidation("entry and exit times are required")
	}
	if !r.ExitTime.After(r.EntryTime) {
		return ErrInvalidTimeRange("exit time must be after entry time")
	}
	if r.Duration != "" {
		if _, err := ParseClock(r.Duration); err != nil {
			return err
		}
	}
	if strings.TrimSpace(r.Status) == "" {
		r.Status = "open"
	}
	return nil
}

// UpdateServiceRecordRequest holds a partial update. Nil fields are left
// unchanged. When either timestamp changes, the duration is recomputed from
// the merged entry/exit pair.
type UpdateServiceRecordRequest struct {
	ContactID     *int64
	Status        *string
	Travel        *bool
	EntryTime     *time.Time
	ExitTime      *time.Time
	Origin        *string
	Notes         *string
	InternalNotes *string
	KmOut         *float64
	KmBack        *float64
	TollCost      *float64
	Activities    *string
	Tasks         *string
	Pending       *string
}

// Validate checks that the request is well-formed.
func (r *UpdateServiceRecordRequest) Validate() error {
	if r.ContactID != nil && *r.ContactID <= 0 {
		return ErrInvalidReference("contact id cannot be cleared")
	}
	if r.Status != nil && strings.TrimSpace(*r.Status) == "" {
		return ErrValidation("status cannot be empty")
	}
	return nil
}

// TouchesTimes reports whether the update changes either timestamp.
func (r *UpdateServiceRecordRequest) TouchesTimes() bool {
	return r.EntryTime != nil || r.ExitTime != nil
}

// Apply merges the update into an existing record. Duration handling is the
// caller's responsibility.
func (r *UpdateServiceRecordRequest) Apply(rec *ServiceRecord) {
	if r.ContactID != nil {
		rec.ContactID = *r.ContactID
	}
	if r.Status != nil {
		rec.Status = *r.Status
	}
	if r.Travel != nil {
		rec.Travel = *r.Travel
	}
	if r.EntryTime != nil {
		rec.EntryTime = *r.EntryTime
	}
	if r.ExitTime != nil {
		rec.ExitTime = *r.ExitTime
	}
	if r.Origin != nil {
		rec.Origin = *r.Origin
	}
	if r.Notes != nil {
		rec.Notes = *r.Notes
	}
	if r.InternalNotes != nil {
		rec.InternalNotes = *r.InternalNotes
	}
	if r.KmOut != nil {
		rec.KmOut = *r.KmOut
	}
	if r.KmBack != nil {
		rec.KmBack = *r.KmBack
	}
	if r.TollCost != nil {
		rec.TollCost = *r.TollCost
	}
	if r.Activities != nil {
		rec.Activities = *r.Activities
	}
	if r.Tasks != nil {
		rec.Tasks = *r.Tasks
	}
	if r.Pending != nil {
		rec.Pending = *r.Pending
	}
}
