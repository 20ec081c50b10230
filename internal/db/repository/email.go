package repository

import (
	"context"
	"database/sql"

	"fieldtrack/internal/domain"
)

type EmailRepo struct {
	db *sql.DB
}

func NewEmailRepo(db *sql.DB) *EmailRepo {
	return &EmailRepo{db: db}
}

const emailColumns = `id, client_id, email, created_at`

func scanEmail(row rowScanner) (*domain.ClientEmail, error) {
	var e domain.ClientEmail
	if err := row.Scan(&e.ID, &e.ClientID, &e.Email, &e.CreatedAt); err != nil {
		return nil, mapDBError(err)
	}
	return &e, nil
}

func (r *EmailRepo) Create(ctx context.Context, e *domain.ClientEmail) (*domain.ClientEmail, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO client_emails (client_id, email) VALUES (?, ?)`,
		e.ClientID, e.Email)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *EmailRepo) GetByID(ctx context.Context, id int64) (*domain.ClientEmail, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+emailColumns+` FROM client_emails WHERE id = ?`, id)
	return scanEmail(row)
}

func (r *EmailRepo) ListByClient(ctx context.Context, clientID int64, page domain.PageRequest) ([]domain.ClientEmail, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM client_emails WHERE client_id = ?`,
		clientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+emailColumns+` FROM client_emails WHERE client_id = ?
		 ORDER BY id LIMIT ? OFFSET ?`,
		clientID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var emails []domain.ClientEmail
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, 0, err
		}
		emails = append(emails, *e)
	}
	return emails, total, rows.Err()
}

func (r *EmailRepo) Update(ctx context.Context, e *domain.ClientEmail) (*domain.ClientEmail, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE client_emails SET email = ? WHERE id = ?`, e.Email, e.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("client email %d not found", e.ID)
	}
	return r.GetByID(ctx, e.ID)
}

func (r *EmailRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM client_emails WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("client email %d not found", id)
	}
	return nil
}
