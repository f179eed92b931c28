package payment

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
)

var errUnknownClient = "client does not exist"

type (
	// Repository has no update and no delete; payments are immutable once
	// recorded.
	Repository interface {
		QueryAllRecords(ctx context.Context) ([]Record, error)
		GetRecordByID(ctx context.Context, id string) (Record, error)
		CreateRecord(ctx context.Context, r Record) (Record, error)
	}

	// ClientDirectory resolves a client id to its contact details; NotFound
	// when the reference is dangling.
	ClientDirectory interface {
		ClientContact(ctx context.Context, id string) (name, email string, err error)
	}

	Service struct {
		repo    Repository
		clients ClientDirectory
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, clients ClientDirectory, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, clients: clients, mailSvc: mailSvc}
}

// Create records a payment against an existing client, snapshotting the
// client's name, and emails a receipt.
func (svc *Service) Create(ctx context.Context, nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}

	name, email, err := svc.clients.ClientContact(ctx, nr.ClientID)
	if err != nil {
		if core.IsNotFound(err) {
			return Record{}, core.NewValidationError(err,
				core.FieldError{Field: "client_id", Error: errUnknownClient})
		}
		return Record{}, errors.Wrap(err, "resolving client")
	}

	date := nr.PaymentDate
	if date.IsZero() {
		date = core.Today()
	}
	r := Record{
		ClientID:      nr.ClientID,
		ClientName:    name,
		Amount:        nr.Amount,
		PaymentDate:   date,
		PaymentMethod: nr.PaymentMethod,
		Notes:         nr.Notes,
	}
	r, err = svc.repo.CreateRecord(ctx, r)
	if err != nil {
		return Record{}, err
	}

	svc.sendReceipt(r, name, email)
	return r, nil
}

func (svc *Service) QueryAll(ctx context.Context) ([]Record, error) {
	return svc.repo.QueryAllRecords(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return svc.repo.GetRecordByID(ctx, id)
}

// Summaries recomputes the summary projection from the records on every call.
func (svc *Service) Summaries(ctx context.Context) ([]Summary, error) {
	records, err := svc.repo.QueryAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(records), nil
}

func (svc *Service) sendReceipt(r Record, name, email string) {
	if svc.mailSvc == nil || email == "" {
		return
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your %s payment of %.2f on %s. Thank you!\n",
		name, r.PaymentMethod, r.Amount, r.PaymentDate,
	)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: name, Address: email}},
		Subject: "Payment received",
		Body:    body,
	})
}
