package repository

import (
	"context"
	"database/sql"

	"fieldtrack/internal/domain"
)

type ContactRepo struct {
	db *sql.DB
}

func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

const contactColumns = `id, name, job_title, email, phone, whatsapp, active, notes, created_at`

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	var whatsapp, active int64
	err := row.Scan(&c.ID, &c.Name, &c.JobTitle, &c.Email, &c.Phone,
		&whatsapp, &active, &c.Notes, &c.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	c.WhatsApp = whatsapp != 0
	c.Active = active != 0
	return &c, nil
}

// Create inserts the contact and links it to clientID in one transaction.
func (r *ContactRepo) Create(ctx context.Context, c *domain.Contact, clientID int64) (*domain.Contact, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int64
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, clientID).Scan(&one); err != nil {
			return mapDBError(err)
		}

		res, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (name, job_title, email, phone, whatsapp, active, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.Name, c.JobTitle, c.Email, c.Phone,
			boolToInt(c.WhatsApp), boolToInt(c.Active), c.Notes,
		)
		if err != nil {
			return mapDBError(err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO client_contacts (client_id, contact_id) VALUES (?, ?)`,
			clientID, id,
		); err != nil {
			return mapDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = ?`, id)
	return scanContact(row)
}

func (r *ContactRepo) Update(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contacts SET name = ?, job_title = ?, email = ?, phone = ?,
			whatsapp = ?, active = ?, notes = ?
		 WHERE id = ?`,
		c.Name, c.JobTitle, c.Email, c.Phone,
		boolToInt(c.WhatsApp), boolToInt(c.Active), c.Notes, c.ID,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("contact %d not found", c.ID)
	}
	return r.GetByID(ctx, c.ID)
}

// Delete removes all of the contact's links and then the contact row.
func (r *ContactRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM client_contacts WHERE contact_id = ?`, id); err != nil {
			return mapDBError(err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
		if err != nil {
			return mapDBError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound("contact %d not found", id)
		}
		return nil
	})
}

// Link associates a contact with a client. Re-linking an existing pair is a
// no-op.
func (r *ContactRepo) Link(ctx context.Context, clientID, contactID int64) error {
	var one int64
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, clientID).Scan(&one); err != nil {
		return mapDBError(err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM contacts WHERE id = ?`, contactID).Scan(&one); err != nil {
		return mapDBError(err)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO client_contacts (client_id, contact_id) VALUES (?, ?)`,
		clientID, contactID)
	return mapDBError(err)
}

// Unlink removes one association. When the contact is left with zero links it
// is deleted in the same transaction, except for the reserved system contact.
func (r *ContactRepo) Unlink(ctx context.Context, clientID, contactID int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM client_contacts WHERE client_id = ? AND contact_id = ?`,
			clientID, contactID)
		if err != nil {
			return mapDBError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound("contact %d is not linked to client %d", contactID, clientID)
		}

		if contactID == domain.SystemContactID {
			return nil
		}

		var remaining int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM client_contacts WHERE contact_id = ?`,
			contactID).Scan(&remaining); err != nil {
			return err
		}
		if remaining == 0 {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM contacts WHERE id = ?`, contactID); err != nil {
				return mapDBError(err)
			}
		}
		return nil
	})
}

func (r *ContactRepo) IsLinked(ctx context.Context, clientID, contactID int64) (bool, error) {
	var one int64
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM client_contacts WHERE client_id = ? AND contact_id = ?`,
		clientID, contactID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ContactRepo) ClientIDsOf(ctx context.Context, contactID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT client_id FROM client_contacts WHERE contact_id = ? ORDER BY client_id`,
		contactID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ContactRepo) ListByClient(ctx context.Context, clientID int64, page domain.PageRequest) ([]domain.Contact, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM client_contacts WHERE client_id = ?`,
		clientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+prefixedContactColumns+`
		 FROM contacts c
		 JOIN client_contacts cc ON cc.contact_id = c.id
		 WHERE cc.client_id = ?
		 ORDER BY c.id LIMIT ? OFFSET ?`,
		clientID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	contacts, err := collectContacts(rows)
	return contacts, total, err
}

func (r *ContactRepo) ListByClients(ctx context.Context, clientIDs []int64, page domain.PageRequest) ([]domain.Contact, int64, error) {
	if len(clientIDs) == 0 {
		return nil, 0, nil
	}

	args := int64Args(clientIDs)
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT contact_id) FROM client_contacts
		 WHERE client_id IN (`+placeholders(len(clientIDs))+`)`,
		args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, page.Limit(), page.Offset())
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT `+prefixedContactColumns+`
		 FROM contacts c
		 JOIN client_contacts cc ON cc.contact_id = c.id
		 WHERE cc.client_id IN (`+placeholders(len(clientIDs))+`)
		 ORDER BY c.id LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	contacts, err := collectContacts(rows)
	return contacts, total, err
}

func (r *ContactRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Contact, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contacts ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	contacts, err := collectContacts(rows)
	return contacts, total, err
}

const prefixedContactColumns = `c.id, c.name, c.job_title, c.email, c.phone, c.whatsapp, c.active, c.notes, c.created_at`

func collectContacts(rows *sql.Rows) ([]domain.Contact, error) {
	var contacts []domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}
