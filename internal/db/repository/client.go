package repository

import (
	"context"
	"database/sql"
	"time"

	"fieldtrack/internal/domain"
)

type ClientRepo struct {
	db *sql.DB
}

func NewClientRepo(db *sql.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

const clientColumns = `id, name, legal_name, tax_id, website, address, city, state,
	zip_code, region, headquarters, active, has_contract, contract_date,
	minimum_hours, notes, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var headquarters, active, hasContract int64
	var contractDate sql.NullTime
	err := row.Scan(&c.ID, &c.Name, &c.LegalName, &c.TaxID, &c.Website, &c.Address,
		&c.City, &c.State, &c.ZipCode, &c.Region, &headquarters, &active,
		&hasContract, &contractDate, &c.MinimumHours, &c.Notes, &c.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	c.Headquarters = headquarters != 0
	c.Active = active != 0
	c.HasContract = hasContract != 0
	if contractDate.Valid {
		t := contractDate.Time
		c.ContractDate = &t
	}
	return &c, nil
}

// Create inserts the client, links the system contact, and files a bootstrap
// service record for createdBy, all in one transaction. The bootstrap record
// is what makes the freshly created client visible to its creator.
func (r *ClientRepo) Create(ctx context.Context, c *domain.Client, createdBy int64) (*domain.Client, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO clients (name, legal_name, tax_id, website, address, city,
				state, zip_code, region, headquarters, active, has_contract,
				contract_date, minimum_hours, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, c.LegalName, c.TaxID, c.Website, c.Address, c.City,
			c.State, c.ZipCode, c.Region, boolToInt(c.Headquarters),
			boolToInt(c.Active), boolToInt(c.HasContract),
			nullTime(c.ContractDate), c.MinimumHours, c.Notes,
		)
		if err != nil {
			return mapDBError(err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO client_contacts (client_id, contact_id) VALUES (?, ?)`,
			id, domain.SystemContactID,
		); err != nil {
			return mapDBError(err)
		}

		entry := time.Now().UTC().Truncate(time.Second)
		exit := entry.Add(time.Second)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO service_records (user_id, client_id, contact_id, status,
				entry_time, exit_time, duration, origin)
			 VALUES (?, ?, ?, 'system', ?, ?, '00:00:01', 'client-created')`,
			createdBy, id, domain.SystemContactID, entry, exit,
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

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	return scanClient(row)
}

func (r *ClientRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var one int64
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ClientRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.Client, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY id LIMIT ? OFFSET ?`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	clients, err := collectClients(rows)
	return clients, total, err
}

func (r *ClientRepo) ListByIDs(ctx context.Context, ids []int64, page domain.PageRequest) ([]domain.Client, int64, error) {
	if len(ids) == 0 {
		return nil, 0, nil
	}

	args := int64Args(ids)
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM clients WHERE id IN (`+placeholders(len(ids))+`)`,
		args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(args, page.Limit(), page.Offset())
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id IN (`+placeholders(len(ids))+`)
		 ORDER BY id LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	clients, err := collectClients(rows)
	return clients, total, err
}

func (r *ClientRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM clients ORDER BY id`)
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

func (r *ClientRepo) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = ?, legal_name = ?, tax_id = ?, website = ?,
			address = ?, city = ?, state = ?, zip_code = ?, region = ?,
			headquarters = ?, active = ?, has_contract = ?, contract_date = ?,
			minimum_hours = ?, notes = ?
		 WHERE id = ?`,
		c.Name, c.LegalName, c.TaxID, c.Website, c.Address, c.City, c.State,
		c.ZipCode, c.Region, boolToInt(c.Headquarters), boolToInt(c.Active),
		boolToInt(c.HasContract), nullTime(c.ContractDate), c.MinimumHours,
		c.Notes, c.ID,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("client %d not found", c.ID)
	}
	return r.GetByID(ctx, c.ID)
}

// Delete removes the client and its dependents in one transaction: contact
// links first (dropping contacts orphaned by the removal), then emails,
// service records, and finally the client row.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int64
		if err := tx.QueryRowContext(ctx, `SELECT 1 FROM clients WHERE id = ?`, id).Scan(&one); err != nil {
			return mapDBError(err)
		}

		linked, err := linkedContactIDs(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM client_contacts WHERE client_id = ?`, id); err != nil {
			return mapDBError(err)
		}

		if len(linked) > 0 {
			args := append(int64Args(linked), domain.SystemContactID)
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM contacts
				 WHERE id IN (`+placeholders(len(linked))+`)
				   AND id != ?
				   AND id NOT IN (SELECT contact_id FROM client_contacts)`,
				args...); err != nil {
				return mapDBError(err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM client_emails WHERE client_id = ?`, id); err != nil {
			return mapDBError(err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM service_records WHERE client_id = ?`, id); err != nil {
			return mapDBError(err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM clients WHERE id = ?`, id); err != nil {
			return mapDBError(err)
		}
		return nil
	})
}

func linkedContactIDs(ctx context.Context, tx *sql.Tx, clientID int64) ([]int64, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT contact_id FROM client_contacts WHERE client_id = ?`, clientID)
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

func collectClients(rows *sql.Rows) ([]domain.Client, error) {
	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
