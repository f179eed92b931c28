package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/client"
)

type clientRepository struct {
	db *clientTable
}

var _ client.Repository = (*clientRepository)(nil) // interface compliance check

func NewClientRepository(db *DB) client.Repository {
	return &clientRepository{db: db.clients}
}

// query returns all clients in insertion order. Callers must hold the lock.
func (repo *clientRepository) query() []client.Client {
	clients := make([]client.Client, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		clients = append(clients, *repo.db.table[id])
	}
	return clients
}

func (repo *clientRepository) QueryAllClients(_ context.Context) ([]client.Client, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *clientRepository) GetClientByID(_ context.Context, id string) (client.Client, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return client.Client{}, core.NewNotFoundError("client", id)
}

func (repo *clientRepository) CreateClient(_ context.Context, c client.Client) (client.Client, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c.ID = uuid.NewString()
	repo.db.table[c.ID] = &c
	repo.db.order = append(repo.db.order, c.ID)
	return c, nil
}

func (repo *clientRepository) UpdateClient(_ context.Context, id string, uc client.UpdateClient) (client.Client, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[id]
	if !ok {
		return client.Client{}, core.NewNotFoundError("client", id)
	}
	// only save set fields
	if uc.Name != nil {
		orig.Name = *uc.Name
	}
	if uc.Email != nil {
		orig.Email = *uc.Email
	}
	if uc.Phone != nil {
		orig.Phone = *uc.Phone
	}
	if uc.MembershipType != nil {
		orig.MembershipType = *uc.MembershipType
	}
	if uc.Status != nil {
		orig.Status = *uc.Status
	}
	if uc.JoinDate != nil {
		orig.JoinDate = *uc.JoinDate
	}
	if uc.PaymentPlan != nil {
		orig.PaymentPlan = *uc.PaymentPlan
	}
	if uc.PaymentAmount != nil {
		orig.PaymentAmount = *uc.PaymentAmount
	}
	if uc.NextPaymentDate != nil {
		orig.NextPaymentDate = *uc.NextPaymentDate
	}
	if uc.PaymentStatus != nil {
		orig.PaymentStatus = *uc.PaymentStatus
	}
	if uc.Notes != nil {
		orig.Notes = *uc.Notes
	}
	return *orig, nil
}

func (repo *clientRepository) DeleteClientByID(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.NewNotFoundError("client", id)
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}

func removeID(order []string, id string) []string {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
