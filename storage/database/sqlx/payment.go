package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/payment"
)

type paymentRow struct {
	ID            string      `db:"id"`
	ClientID      string      `db:"client_id"`
	ClientName    string      `db:"client_name"`
	Amount        float64     `db:"amount"`
	PaymentDate   core.Date   `db:"payment_date"`
	PaymentMethod string      `db:"payment_method"`
	Notes         null.String `db:"notes"`
	CreatedAt     time.Time   `db:"created_at"`
}

func (r paymentRow) toRecord() payment.Record {
	return payment.Record{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate,
		PaymentMethod: payment.Method(r.PaymentMethod),
		Notes:         r.Notes.String,
	}
}

func newPaymentRow(r payment.Record) paymentRow {
	return paymentRow{
		ID:            r.ID,
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		Amount:        r.Amount,
		PaymentDate:   r.PaymentDate,
		PaymentMethod: string(r.PaymentMethod),
		Notes:         null.NewString(r.Notes, r.Notes != ""),
	}
}

type paymentRepository struct {
	db *sqlx.DB
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *sqlx.DB) payment.Repository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) QueryAllRecords(ctx context.Context) ([]payment.Record, error) {
	var rows []paymentRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM payment_records ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying payment records")
	}
	records := make([]payment.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return records, nil
}

func (repo *paymentRepository) GetRecordByID(ctx context.Context, id string) (payment.Record, error) {
	var row paymentRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM payment_records WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return payment.Record{}, core.NewNotFoundError("payment record", id)
	}
	if err != nil {
		return payment.Record{}, errors.Wrap(err, "getting payment record")
	}
	return row.toRecord(), nil
}

func (repo *paymentRepository) CreateRecord(ctx context.Context, r payment.Record) (payment.Record, error) {
	r.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO payment_records (id, client_id, client_name, amount, payment_date, payment_method, notes)
		VALUES (:id, :client_id, :client_name, :amount, :payment_date, :payment_method, :notes)`,
		newPaymentRow(r))
	if err != nil {
		return payment.Record{}, errors.Wrap(err, "creating payment record")
	}
	return r, nil
}
