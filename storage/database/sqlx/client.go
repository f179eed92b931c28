// Package sqlxrepos implements the repository interfaces against postgres
// using sqlx. Partial updates are done read-merge-write inside a transaction
// so a single-record operation stays atomic.
package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/client"
)

type clientRow struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	MembershipType  string    `db:"membership_type"`
	Status          string    `db:"status"`
	JoinDate        core.Date `db:"join_date"`
	PaymentPlan     string    `db:"payment_plan"`
	PaymentAmount   float64   `db:"payment_amount"`
	NextPaymentDate core.Date `db:"next_payment_date"`
	PaymentStatus   string    `db:"payment_status"`
	Notes           string    `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r clientRow) toClient() client.Client {
	return client.Client{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		MembershipType:  r.MembershipType,
		Status:          client.Status(r.Status),
		JoinDate:        r.JoinDate,
		PaymentPlan:     client.PaymentPlan(r.PaymentPlan),
		PaymentAmount:   r.PaymentAmount,
		NextPaymentDate: r.NextPaymentDate,
		PaymentStatus:   client.PaymentStatus(r.PaymentStatus),
		Notes:           r.Notes,
	}
}

func newClientRow(c client.Client) clientRow {
	return clientRow{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		MembershipType:  c.MembershipType,
		Status:          string(c.Status),
		JoinDate:        c.JoinDate,
		PaymentPlan:     string(c.PaymentPlan),
		PaymentAmount:   c.PaymentAmount,
		NextPaymentDate: c.NextPaymentDate,
		PaymentStatus:   string(c.PaymentStatus),
		Notes:           c.Notes,
	}
}

type clientRepository struct {
	db *sqlx.DB
}

var _ client.Repository = (*clientRepository)(nil) // interface compliance check

func NewClientRepository(db *sqlx.DB) client.Repository {
	return &clientRepository{db: db}
}

func (repo *clientRepository) QueryAllClients(ctx context.Context) ([]client.Client, error) {
	var rows []clientRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM clients ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying clients")
	}
	clients := make([]client.Client, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, r.toClient())
	}
	return clients, nil
}

func (repo *clientRepository) GetClientByID(ctx context.Context, id string) (client.Client, error) {
	var row clientRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM clients WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return client.Client{}, core.NewNotFoundError("client", id)
	}
	if err != nil {
		return client.Client{}, errors.Wrap(err, "getting client")
	}
	return row.toClient(), nil
}

func (repo *clientRepository) CreateClient(ctx context.Context, c client.Client) (client.Client, error) {
	c.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone, membership_type, status, join_date,
			payment_plan, payment_amount, next_payment_date, payment_status, notes)
		VALUES (:id, :name, :email, :phone, :membership_type, :status, :join_date,
			:payment_plan, :payment_amount, :next_payment_date, :payment_status, :notes)`,
		newClientRow(c))
	if err != nil {
		return client.Client{}, errors.Wrap(err, "creating client")
	}
	return c, nil
}

func (repo *clientRepository) UpdateClient(ctx context.Context, id string, uc client.UpdateClient) (client.Client, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return client.Client{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	var row clientRow
	err = tx.GetContext(ctx, &row, `SELECT * FROM clients WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return client.Client{}, core.NewNotFoundError("client", id)
	}
	if err != nil {
		return client.Client{}, errors.Wrap(err, "getting client")
	}

	c := row.toClient()
	if uc.Name != nil {
		c.Name = *uc.Name
	}
	if uc.Email != nil {
		c.Email = *uc.Email
	}
	if uc.Phone != nil {
		c.Phone = *uc.Phone
	}
	if uc.MembershipType != nil {
		c.MembershipType = *uc.MembershipType
	}
	if uc.Status != nil {
		c.Status = *uc.Status
	}
	if uc.JoinDate != nil {
		c.JoinDate = *uc.JoinDate
	}
	if uc.PaymentPlan != nil {
		c.PaymentPlan = *uc.PaymentPlan
	}
	if uc.PaymentAmount != nil {
		c.PaymentAmount = *uc.PaymentAmount
	}
	if uc.NextPaymentDate != nil {
		c.NextPaymentDate = *uc.NextPaymentDate
	}
	if uc.PaymentStatus != nil {
		c.PaymentStatus = *uc.PaymentStatus
	}
	if uc.Notes != nil {
		c.Notes = *uc.Notes
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE clients SET name = :name, email = :email, phone = :phone,
			membership_type = :membership_type, status = :status, join_date = :join_date,
			payment_plan = :payment_plan, payment_amount = :payment_amount,
			next_payment_date = :next_payment_date, payment_status = :payment_status,
			notes = :notes
		WHERE id = :id`,
		newClientRow(c))
	if err != nil {
		return client.Client{}, errors.Wrap(err, "updating client")
	}
	if err = tx.Commit(); err != nil {
		return client.Client{}, errors.Wrap(err, "committing tx")
	}
	return c, nil
}

func (repo *clientRepository) DeleteClientByID(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting client")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.NewNotFoundError("client", id)
	}
	return nil
}
