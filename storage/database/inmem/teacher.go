package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teachers}
}

func (repo *teacherRepository) query() []teacher.Teacher {
	teachers := make([]teacher.Teacher, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		teachers = append(teachers, *repo.db.table[id])
	}
	return teachers
}

func (repo *teacherRepository) QueryAllTeachers(_ context.Context) ([]teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(_ context.Context, id string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, core.NewNotFoundError("teacher", id)
}

func (repo *teacherRepository) CreateTeacher(_ context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	t.ID = uuid.NewString()
	repo.db.table[t.ID] = &t
	repo.db.order = append(repo.db.order, t.ID)
	return t, nil
}

func (repo *teacherRepository) UpdateTeacher(_ context.Context, id string, ut teacher.UpdateTeacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[id]
	if !ok {
		return teacher.Teacher{}, core.NewNotFoundError("teacher", id)
	}
	// only save set fields
	if ut.Name != nil {
		orig.Name = *ut.Name
	}
	if ut.Email != nil {
		orig.Email = *ut.Email
	}
	if ut.Phone != nil {
		orig.Phone = *ut.Phone
	}
	if ut.Specialties != nil {
		orig.Specialties = ut.Specialties
	}
	if ut.ExperienceLevel != nil {
		orig.ExperienceLevel = *ut.ExperienceLevel
	}
	if ut.Status != nil {
		orig.Status = *ut.Status
	}
	if ut.HourlyRate != nil {
		orig.HourlyRate = *ut.HourlyRate
	}
	if ut.Color != nil {
		orig.Color = *ut.Color
	}
	if ut.Bio != nil {
		orig.Bio = *ut.Bio
	}
	return *orig, nil
}

func (repo *teacherRepository) DeleteTeacherByID(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.NewNotFoundError("teacher", id)
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
