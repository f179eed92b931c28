package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Record {
	records := make([]attendance.Record, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		records = append(records, *repo.db.table[id])
	}
	return records
}

func (repo *attendanceRepository) QueryAllRecords(_ context.Context) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) GetRecordByID(_ context.Context, id string) (attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if r, ok := repo.db.table[id]; ok {
		return *r, nil
	}
	return attendance.Record{}, core.NewNotFoundError("attendance record", id)
}

func (repo *attendanceRepository) FindRecord(
	_ context.Context,
	personID string,
	personType attendance.PersonType,
	classID string,
	date core.Date,
) (attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, r := range repo.query() {
		if r.PersonID == personID && r.PersonType == personType && r.ClassID == classID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return attendance.Record{}, core.NewNotFoundError("attendance record", "")
}

func (repo *attendanceRepository) CreateRecord(_ context.Context, r attendance.Record) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	r.ID = uuid.NewString()
	repo.db.table[r.ID] = &r
	repo.db.order = append(repo.db.order, r.ID)
	return r, nil
}

func (repo *attendanceRepository) UpdateRecord(_ context.Context, id string, ur attendance.UpdateRecord) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[id]
	if !ok {
		return attendance.Record{}, core.NewNotFoundError("attendance record", id)
	}
	// only save set fields
	if ur.Status != nil {
		orig.Status = *ur.Status
	}
	if ur.Notes != nil {
		orig.Notes = *ur.Notes
	}
	return *orig, nil
}
