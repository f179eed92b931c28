package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/payment"
)

type paymentRepository struct {
	db *paymentTable
}

var _ payment.Repository = (*paymentRepository)(nil) // interface compliance check

func NewPaymentRepository(db *DB) payment.Repository {
	return &paymentRepository{db: db.payments}
}

func (repo *paymentRepository) query() []payment.Record {
	records := make([]payment.Record, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		records = append(records, *repo.db.table[id])
	}
	return records
}

func (repo *paymentRepository) QueryAllRecords(_ context.Context) ([]payment.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *paymentRepository) GetRecordByID(_ context.Context, id string) (payment.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if r, ok := repo.db.table[id]; ok {
		return *r, nil
	}
	return payment.Record{}, core.NewNotFoundError("payment record", id)
}

func (repo *paymentRepository) CreateRecord(_ context.Context, r payment.Record) (payment.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r.ID = uuid.NewString()
	repo.db.table[r.ID] = &r
	repo.db.order = append(repo.db.order, r.ID)
	return r, nil
}
