package invoicing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListByKind(ctx context.Context, kind Kind) ([]Invoice, error)
	Create(ctx context.Context, invoice Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const invoiceColumns = `id, kind, product_id, product_name, party_name, date, quantity, rate, gst_percent, total_value, gst_amount, grand_total, voucher_id, created_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.ID, &inv.Kind, &inv.ProductID, &inv.ProductName, &inv.PartyName,
		&inv.Date, &inv.Quantity, &inv.Rate, &inv.GSTPercent,
		&inv.TotalValue, &inv.GSTAmount, &inv.GrandTotal, &inv.VoucherID, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	row := r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

func (r *repository) ListByKind(ctx context.Context, kind Kind) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE kind = $1 ORDER BY date, created_at`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Invoice
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.Kind, &inv.ProductID, &inv.ProductName, &inv.PartyName,
			&inv.Date, &inv.Quantity, &inv.Rate, &inv.GSTPercent,
			&inv.TotalValue, &inv.GSTAmount, &inv.GrandTotal, &inv.VoucherID, &inv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, invoice Invoice) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invoices (id, kind, product_id, product_name, party_name, date, quantity, rate, gst_percent, total_value, gst_amount, grand_total, voucher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		invoice.ID, invoice.Kind, invoice.ProductID, invoice.ProductName, invoice.PartyName,
		invoice.Date, invoice.Quantity, invoice.Rate, invoice.GSTPercent,
		invoice.TotalValue, invoice.GSTAmount, invoice.GrandTotal, invoice.VoucherID, invoice.CreatedAt)
	return err
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
