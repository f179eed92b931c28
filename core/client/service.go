package client

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/zenflowhq/zenflow/core"
)

type (
	Repository interface {
		QueryAllClients(ctx context.Context) ([]Client, error)
		GetClientByID(ctx context.Context, id string) (Client, error)
		CreateClient(ctx context.Context, c Client) (Client, error)
		UpdateClient(ctx context.Context, id string, uc UpdateClient) (Client, error)
		DeleteClientByID(ctx context.Context, id string) error
	}

	// RosterSync removes a deleted client from all class rosters. Implemented
	// by the class service; injected to avoid a hard dependency.
	RosterSync interface {
		RemoveClientFromRosters(ctx context.Context, clientID string) error
	}

	Service struct {
		repo    Repository
		roster  RosterSync
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, roster RosterSync, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, roster: roster, mailSvc: mailSvc}
}

// BindRosterSync injects the roster dependency after construction. The client
// and class services reference each other, so one side must bind late.
func (svc *Service) BindRosterSync(roster RosterSync) {
	svc.roster = roster
}

func (svc *Service) Create(ctx context.Context, nc NewClient) (Client, error) {
	if err := nc.Validate(); err != nil {
		return Client{}, err
	}

	status := nc.Status
	if status == "" {
		status = StatusActive
	}
	pmtStatus := nc.PaymentStatus
	if pmtStatus == "" {
		pmtStatus = PaymentActive
	}
	joinDate := nc.JoinDate
	if joinDate.IsZero() {
		joinDate = core.Today()
	}
	c := Client{
		Name:            nc.Name,
		Email:           nc.Email,
		Phone:           nc.Phone,
		MembershipType:  nc.MembershipType,
		Status:          status,
		JoinDate:        joinDate,
		PaymentPlan:     nc.PaymentPlan,
		PaymentAmount:   nc.PaymentAmount,
		NextPaymentDate: nc.NextPaymentDate,
		PaymentStatus:   pmtStatus,
		Notes:           nc.Notes,
	}
	return svc.repo.CreateClient(ctx, c)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Client, error) {
	return svc.repo.QueryAllClients(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Client, error) {
	return svc.repo.GetClientByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateClient) (Client, error) {
	if err := uc.Validate(); err != nil {
		return Client{}, err
	}
	return svc.repo.UpdateClient(ctx, id, uc)
}

// Delete removes the client and scrubs it from every class roster. Rosters
// reference clients by id only; leaving the id behind would dangle.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if _, err := svc.repo.GetClientByID(ctx, id); err != nil {
		return err
	}
	if err := svc.repo.DeleteClientByID(ctx, id); err != nil {
		return err
	}
	if svc.roster != nil {
		return svc.roster.RemoveClientFromRosters(ctx, id)
	}
	return nil
}

// ClientExists reports whether a client with the given id exists.
func (svc *Service) ClientExists(ctx context.Context, id string) (bool, error) {
	if _, err := svc.repo.GetClientByID(ctx, id); err != nil {
		if core.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// SendOverdueReminders emails every client overdue as of `now` and returns how
// many reminders went out. Clients without an email address are skipped.
func (svc *Service) SendOverdueReminders(ctx context.Context, now time.Time) (int, error) {
	if svc.mailSvc == nil {
		return 0, nil
	}
	clients, err := svc.repo.QueryAllClients(ctx)
	if err != nil {
		return 0, err
	}

	var msgs []*core.EmailMessage
	for _, c := range clients {
		if !IsOverdue(c, now) || c.Email == "" {
			continue
		}
		body := fmt.Sprintf(
			"Hi %s,\n\nOur records show your %s payment of %.2f is overdue. "+
				"Please settle it at your earliest convenience.\n",
			c.Name, c.PaymentPlan, c.PaymentAmount,
		)
		msgs = append(msgs, &core.EmailMessage{
			To:      []mail.Address{{Name: c.Name, Address: c.Email}},
			Subject: "Payment reminder",
			Body:    body,
		})
	}
	svc.mailSvc.SendMessages(msgs...)
	return len(msgs), nil
}

// ClientContact returns the client's name and email for snapshots and receipts.
func (svc *Service) ClientContact(ctx context.Context, id string) (name, email string, err error) {
	c, err := svc.repo.GetClientByID(ctx, id)
	if err != nil {
		return "", "", err
	}
	return c.Name, c.Email, nil
}
