package repository

import (
	"context"
	"database/sql"

	"fieldtrack/internal/domain"
)

type RecordRepo struct {
	db *sql.DB
}

func NewRecordRepo(db *sql.DB) *RecordRepo {
	return &RecordRepo{db: db}
}

const recordColumns = `id, user_id, client_id, contact_id, status, travel,
	entry_time, exit_time, duration, origin, notes, internal_notes,
	km_out, km_back, toll_cost, activities, tasks, pending, created_at`

func scanRecord(row rowScanner) (*domain.ServiceRecord, error) {
	var rec domain.ServiceRecord
	var travel int64
	var contactID sql.NullInt64
	err := row.Scan(&rec.ID, &rec.UserID, &rec.ClientID, &contactID, &rec.Status,
		&travel, &rec.EntryTime, &rec.ExitTime, &rec.Duration, &rec.Origin,
		&rec.Notes, &rec.InternalNotes, &rec.KmOut, &rec.KmBack, &rec.TollCost,
		&rec.Activities, &rec.Tasks, &rec.Pending, &rec.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	rec.Travel = travel != 0
	if contactID.Valid {
		rec.ContactID = contactID.Int64
	}
	return &rec, nil
}

func (r *RecordRepo) Create(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO service_records (user_id, client_id, contact_id, status,
			travel, entry_time, exit_time, duration, origin, notes,
			internal_notes, km_out, km_back, toll_cost, activities, tasks, pending)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.ClientID, nullID(rec.ContactID), rec.Status,
		boolToInt(rec.Travel), rec.EntryTime, rec.ExitTime, rec.Duration,
		rec.Origin, rec.Notes, rec.InternalNotes, rec.KmOut, rec.KmBack,
		rec.TollCost, rec.Activities, rec.Tasks, rec.Pending,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *RecordRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM service_records WHERE id = ?`, id)
	return scanRecord(row)
}

func (r *RecordRepo) Update(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE service_records SET contact_id = ?, status = ?, travel = ?,
			entry_time = ?, exit_time = ?, duration = ?, origin = ?, notes = ?,
			internal_notes = ?, km_out = ?, km_back = ?, toll_cost = ?,
			activities = ?, tasks = ?, pending = ?
		 WHERE id = ?`,
		nullID(rec.ContactID), rec.Status, boolToInt(rec.Travel), rec.EntryTime,
		rec.ExitTime, rec.Duration, rec.Origin, rec.Notes, rec.InternalNotes,
		rec.KmOut, rec.KmBack, rec.TollCost, rec.Activities, rec.Tasks,
		rec.Pending, rec.ID,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrNotFound("service record %d not found", rec.ID)
	}
	return r.GetByID(ctx, rec.ID)
}

func (r *RecordRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_records WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("service record %d not found", id)
	}
	return nil
}

func (r *RecordRepo) List(ctx context.Context, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	return r.list(ctx, ``, nil, page)
}

func (r *RecordRepo) ListByUser(ctx context.Context, userID int64, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	return r.list(ctx, `WHERE user_id = ?`, []any{userID}, page)
}

func (r *RecordRepo) ListByClient(ctx context.Context, clientID int64, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	return r.list(ctx, `WHERE client_id = ?`, []any{clientID}, page)
}

func (r *RecordRepo) list(ctx context.Context, where string, args []any, page domain.PageRequest) ([]domain.ServiceRecord, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM service_records `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), page.Limit(), page.Offset())
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM service_records `+where+`
		 ORDER BY entry_time DESC, id DESC LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.ServiceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *rec)
	}
	return records, total, rows.Err()
}

// nullID maps a zero ID to NULL so records keep their history after the
// referenced contact is removed.
func nullID(id int64) sql.NullInt64 {
	if id <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: id, Valid: true}
}

// DistinctClientIDsByUser returns the client IDs the user has recorded visits
// for, which is the user's derived access grant set.
func (r *RecordRepo) DistinctClientIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT client_id FROM service_records WHERE user_id = ? ORDER BY client_id`,
		userID)
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
