package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/class"
)

type classRepository struct {
	db *classTable
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) class.Repository {
	return &classRepository{db: db.classes}
}

func (repo *classRepository) query() []class.Class {
	classes := make([]class.Class, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		classes = append(classes, *repo.db.table[id])
	}
	return classes
}

func (repo *classRepository) QueryAllClasses(_ context.Context) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(_ context.Context, id string) (class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return class.Class{}, core.NewNotFoundError("class", id)
}

func (repo *classRepository) QueryClassesByTeacherID(_ context.Context, teacherID string) ([]class.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var classes []class.Class
	for _, c := range repo.query() {
		if c.TeacherID == teacherID {
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (repo *classRepository) CreateClass(_ context.Context, c class.Class) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	c.ID = uuid.NewString()
	repo.db.table[c.ID] = &c
	repo.db.order = append(repo.db.order, c.ID)
	return c, nil
}

func (repo *classRepository) UpdateClass(_ context.Context, id string, uc class.UpdateClass) (class.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[id]
	if !ok {
		return class.Class{}, core.NewNotFoundError("class", id)
	}
	// only save set fields
	if uc.Name != nil {
		orig.Name = *uc.Name
	}
	if uc.TeacherID != nil {
		orig.TeacherID = *uc.TeacherID
	}
	if uc.TeacherName != nil {
		orig.TeacherName = *uc.TeacherName
	}
	if uc.Day != nil {
		orig.Day = *uc.Day
	}
	if uc.StartTime != nil {
		orig.StartTime = *uc.StartTime
	}
	if uc.EndTime != nil {
		orig.EndTime = *uc.EndTime
	}
	if uc.MaxCapacity != nil {
		orig.MaxCapacity = *uc.MaxCapacity
	}
	if uc.CurrentEnrollment != nil {
		orig.CurrentEnrollment = *uc.CurrentEnrollment
	}
	if uc.Description != nil {
		orig.Description = *uc.Description
	}
	if uc.Type != nil {
		orig.Type = *uc.Type
	}
	if uc.Price != nil {
		orig.Price = *uc.Price
	}
	if uc.Status != nil {
		orig.Status = *uc.Status
	}
	if uc.EnrolledClients != nil {
		orig.EnrolledClients = uc.EnrolledClients
	}
	return *orig, nil
}

func (repo *classRepository) SetTeacherName(_ context.Context, teacherID, name string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, c := range repo.db.table {
		if c.TeacherID == teacherID {
			c.TeacherName = name
		}
	}
	return nil
}

func (repo *classRepository) RemoveEnrolledClient(_ context.Context, clientID string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, c := range repo.db.table {
		for i, cid := range c.EnrolledClients {
			if cid == clientID {
				c.EnrolledClients = append(c.EnrolledClients[:i], c.EnrolledClients[i+1:]...)
				if c.CurrentEnrollment > 0 {
					c.CurrentEnrollment--
				}
				break
			}
		}
	}
	return nil
}

func (repo *classRepository) DeleteClassByID(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.NewNotFoundError("class", id)
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
