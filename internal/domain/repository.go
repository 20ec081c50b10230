package domain

import "context"

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, page PageRequest) ([]User, int64, error)
	UpdateRole(ctx context.Context, id int64, role Role) error
}

// ClientRepository persists clients and owns the cascading delete.
type ClientRepository interface {
	// Create inserts the client and, in the same transaction, links the
	// system contact and files a bootstrap service record for createdBy so
	// the creator can see the client they just made.
	Create(ctx context.Context, c *Client, createdBy int64) (*Client, error)
	GetByID(ctx context.Context, id int64) (*Client, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, page PageRequest) ([]Client, int64, error)
	ListByIDs(ctx context.Context, ids []int64, page PageRequest) ([]Client, int64, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Update(ctx context.Context, c *Client) (*Client, error)
	// Delete removes the client and everything hanging off it in one
	// transaction: contact links (dropping contacts orphaned by the
	// removal), emails, service records, then the client row.
	Delete(ctx context.Context, id int64) error
}

// ContactRepository persists contacts and the client-contact link table.
type ContactRepository interface {
	// Create inserts the contact and links it to clientID in one transaction.
	Create(ctx context.Context, c *Contact, clientID int64) (*Contact, error)
	GetByID(ctx context.Context, id int64) (*Contact, error)
	Update(ctx context.Context, c *Contact) (*Contact, error)
	// Delete removes all of the contact's links and then the contact row.
	Delete(ctx context.Context, id int64) error

	// Link associates a contact with a client. Re-linking an existing pair
	// is a no-op.
	Link(ctx context.Context, clientID, contactID int64) error
	// Unlink removes one association and deletes the contact in the same
	// transaction when no links remain.
	Unlink(ctx context.Context, clientID, contactID int64) error
	IsLinked(ctx context.Context, clientID, contactID int64) (bool, error)
	ClientIDsOf(ctx context.Context, contactID int64) ([]int64, error)
	ListByClient(ctx context.Context, clientID int64, page PageRequest) ([]Contact, int64, error)
	ListByClients(ctx context.Context, clientIDs []int64, page PageRequest) ([]Contact, int64, error)
	List(ctx context.Context, page PageRequest) ([]Contact, int64, error)
}

// RecordRepository persists service records.
type RecordRepository interface {
	Create(ctx context.Context, r *ServiceRecord) (*ServiceRecord, error)
	GetByID(ctx context.Context, id int64) (*ServiceRecord, error)
	Update(ctx context.Context, r *ServiceRecord) (*ServiceRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) ([]ServiceRecord, int64, error)
	ListByUser(ctx context.Context, userID int64, page PageRequest) ([]ServiceRecord, int64, error)
	ListByClient(ctx context.Context, clientID int64, page PageRequest) ([]ServiceRecord, int64, error)
	// DistinctClientIDsByUser returns the client IDs the user has recorded
	// visits for. This set is the user's access grant.
	DistinctClientIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}

// EmailRepository persists client emails.
type EmailRepository interface {
	Create(ctx context.Context, e *ClientEmail) (*ClientEmail, error)
	GetByID(ctx context.Context, id int64) (*ClientEmail, error)
	ListByClient(ctx context.Context, clientID int64, page PageRequest) ([]ClientEmail, int64, error)
	Update(ctx context.Context, e *ClientEmail) (*ClientEmail, error)
	Delete(ctx context.Context, id int64) error
}
