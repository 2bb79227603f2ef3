package vouchers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridian-erp/meridian-erp/internal/platform/db"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id uuid.UUID) (*Voucher, error)
	List(ctx context.Context) ([]Voucher, error)
	CountByType(ctx context.Context, t Type) (int, error)
	Create(ctx context.Context, voucher Voucher) error
	Delete(ctx context.Context, id uuid.UUID) error
	LedgerMovement(ctx context.Context, ledgerID uuid.UUID) (debit float64, credit float64, err error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Voucher, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, type, number, date, reference_number, narration, party_name, total_debit, total_credit, created_at
		FROM vouchers WHERE id = $1`, id)
	var v Voucher
	err := row.Scan(&v.ID, &v.Type, &v.Number, &v.Date, &v.ReferenceNumber, &v.Narration, &v.PartyName, &v.TotalDebit, &v.TotalCredit, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	entries, err := r.entriesFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	v.Entries = entries[id]
	return &v, nil
}

func (r *repository) List(ctx context.Context) ([]Voucher, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, type, number, date, reference_number, narration, party_name, total_debit, total_credit, created_at
		FROM vouchers ORDER BY date, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Voucher
	var ids []uuid.UUID
	for rows.Next() {
		var v Voucher
		if err := rows.Scan(&v.ID, &v.Type, &v.Number, &v.Date, &v.ReferenceNumber, &v.Narration, &v.PartyName, &v.TotalDebit, &v.TotalCredit, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	entries, err := r.entriesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Entries = entries[out[i].ID]
	}
	return out, nil
}

func (r *repository) entriesFor(ctx context.Context, voucherIDs []uuid.UUID) (map[uuid.UUID][]LedgerEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, voucher_id, ledger_id, ledger_name, amount, side, description
		FROM voucher_entries WHERE voucher_id = ANY($1) ORDER BY position`, voucherIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make(map[uuid.UUID][]LedgerEntry, len(voucherIDs))
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.VoucherID, &e.LedgerID, &e.LedgerName, &e.Amount, &e.Side, &e.Description); err != nil {
			return nil, err
		}
		result[e.VoucherID] = append(result[e.VoucherID], e)
	}
	return result, rows.Err()
}

func (r *repository) CountByType(ctx context.Context, t Type) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM vouchers WHERE type = $1`, t).Scan(&n)
	return n, err
}

func (r *repository) Create(ctx context.Context, voucher Voucher) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO vouchers (id, type, number, date, reference_number, narration, party_name, total_debit, total_credit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		voucher.ID, voucher.Type, voucher.Number, voucher.Date, voucher.ReferenceNumber,
		voucher.Narration, voucher.PartyName, voucher.TotalDebit, voucher.TotalCredit, voucher.CreatedAt)
	if err != nil {
		return err
	}
	for position, entry := range voucher.Entries {
		_, err := r.db.Exec(ctx, `
			INSERT INTO voucher_entries (id, voucher_id, ledger_id, ledger_name, amount, side, description, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			entry.ID, voucher.ID, entry.LedgerID, entry.LedgerName, entry.Amount, entry.Side, entry.Description, position)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM voucher_entries WHERE voucher_id = $1`, id); err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM vouchers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) LedgerMovement(ctx context.Context, ledgerID uuid.UUID) (float64, float64, error) {
	var debit, credit float64
	err := r.db.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE side = 'DEBIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE side = 'CREDIT'), 0)
		FROM voucher_entries WHERE ledger_id = $1`, ledgerID).Scan(&debit, &credit)
	return debit, credit, err
}
