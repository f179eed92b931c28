package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/class"
)

type classRow struct {
	ID                string         `db:"id"`
	Name              string         `db:"name"`
	TeacherID         string         `db:"teacher_id"`
	TeacherName       string         `db:"teacher_name"`
	Day               string         `db:"day"`
	StartTime         string         `db:"start_time"`
	EndTime           string         `db:"end_time"`
	MaxCapacity       int            `db:"max_capacity"`
	CurrentEnrollment int            `db:"current_enrollment"`
	Description       string         `db:"description"`
	Type              string         `db:"type"`
	Price             float64        `db:"price"`
	Status            string         `db:"status"`
	EnrolledClients   pq.StringArray `db:"enrolled_clients"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (r classRow) toClass() class.Class {
	return class.Class{
		ID:                r.ID,
		Name:              r.Name,
		TeacherID:         r.TeacherID,
		TeacherName:       r.TeacherName,
		Day:               r.Day,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		MaxCapacity:       r.MaxCapacity,
		CurrentEnrollment: r.CurrentEnrollment,
		Description:       r.Description,
		Type:              r.Type,
		Price:             r.Price,
		Status:            class.Status(r.Status),
		EnrolledClients:   r.EnrolledClients,
	}
}

func newClassRow(c class.Class) classRow {
	return classRow{
		ID:                c.ID,
		Name:              c.Name,
		TeacherID:         c.TeacherID,
		TeacherName:       c.TeacherName,
		Day:               c.Day,
		StartTime:         c.StartTime,
		EndTime:           c.EndTime,
		MaxCapacity:       c.MaxCapacity,
		CurrentEnrollment: c.CurrentEnrollment,
		Description:       c.Description,
		Type:              c.Type,
		Price:             c.Price,
		Status:            string(c.Status),
		EnrolledClients:   c.EnrolledClients,
	}
}

type classRepository struct {
	db *sqlx.DB
}

var _ class.Repository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) class.Repository {
	return &classRepository{db: db}
}

func (repo *classRepository) QueryAllClasses(ctx context.Context) ([]class.Class, error) {
	var rows []classRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM classes ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	classes := make([]class.Class, 0, len(rows))
	for _, r := range rows {
		classes = append(classes, r.toClass())
	}
	return classes, nil
}

func (repo *classRepository) GetClassByID(ctx context.Context, id string) (class.Class, error) {
	var row classRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM classes WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return class.Class{}, core.NewNotFoundError("class", id)
	}
	if err != nil {
		return class.Class{}, errors.Wrap(err, "getting class")
	}
	return row.toClass(), nil
}

func (repo *classRepository) QueryClassesByTeacherID(ctx context.Context, teacherID string) ([]class.Class, error) {
	var rows []classRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM classes WHERE teacher_id = $1 ORDER BY created_at`, teacherID)
	if err != nil {
		return nil, errors.Wrap(err, "querying classes by teacher")
	}
	classes := make([]class.Class, 0, len(rows))
	for _, r := range rows {
		classes = append(classes, r.toClass())
	}
	return classes, nil
}

func (repo *classRepository) CreateClass(ctx context.Context, c class.Class) (class.Class, error) {
	c.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO classes (id, name, teacher_id, teacher_name, day, start_time, end_time,
			max_capacity, current_enrollment, description, type, price, status, enrolled_clients)
		VALUES (:id, :name, :teacher_id, :teacher_name, :day, :start_time, :end_time,
			:max_capacity, :current_enrollment, :description, :type, :price, :status, :enrolled_clients)`,
		newClassRow(c))
	if err != nil {
		return class.Class{}, errors.Wrap(err, "creating class")
	}
	return c, nil
}

func (repo *classRepository) UpdateClass(ctx context.Context, id string, uc class.UpdateClass) (class.Class, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return class.Class{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	var row classRow
	err = tx.GetContext(ctx, &row, `SELECT * FROM classes WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return class.Class{}, core.NewNotFoundError("class", id)
	}
	if err != nil {
		return class.Class{}, errors.Wrap(err, "getting class")
	}

	c := row.toClass()
	if uc.Name != nil {
		c.Name = *uc.Name
	}
	if uc.TeacherID != nil {
		c.TeacherID = *uc.TeacherID
	}
	if uc.TeacherName != nil {
		c.TeacherName = *uc.TeacherName
	}
	if uc.Day != nil {
		c.Day = *uc.Day
	}
	if uc.StartTime != nil {
		c.StartTime = *uc.StartTime
	}
	if uc.EndTime != nil {
		c.EndTime = *uc.EndTime
	}
	if uc.MaxCapacity != nil {
		c.MaxCapacity = *uc.MaxCapacity
	}
	if uc.CurrentEnrollment != nil {
		c.CurrentEnrollment = *uc.CurrentEnrollment
	}
	if uc.Description != nil {
		c.Description = *uc.Description
	}
	if uc.Type != nil {
		c.Type = *uc.Type
	}
	if uc.Price != nil {
		c.Price = *uc.Price
	}
	if uc.Status != nil {
		c.Status = *uc.Status
	}
	if uc.EnrolledClients != nil {
		c.EnrolledClients = uc.EnrolledClients
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE classes SET name = :name, teacher_id = :teacher_id, teacher_name = :teacher_name,
			day = :day, start_time = :start_time, end_time = :end_time,
			max_capacity = :max_capacity, current_enrollment = :current_enrollment,
			description = :description, type = :type, price = :price, status = :status,
			enrolled_clients = :enrolled_clients
		WHERE id = :id`,
		newClassRow(c))
	if err != nil {
		return class.Class{}, errors.Wrap(err, "updating class")
	}
	if err = tx.Commit(); err != nil {
		return class.Class{}, errors.Wrap(err, "committing tx")
	}
	return c, nil
}

func (repo *classRepository) SetTeacherName(ctx context.Context, teacherID, name string) error {
	_, err := repo.db.ExecContext(ctx,
		`UPDATE classes SET teacher_name = $1 WHERE teacher_id = $2`, name, teacherID)
	return errors.Wrap(err, "syncing teacher name")
}

func (repo *classRepository) RemoveEnrolledClient(ctx context.Context, clientID string) error {
	_, err := repo.db.ExecContext(ctx, `
		UPDATE classes
		SET enrolled_clients = array_remove(enrolled_clients, $1),
			current_enrollment = GREATEST(current_enrollment - 1, 0)
		WHERE $1 = ANY(enrolled_clients)`, clientID)
	return errors.Wrap(err, "removing enrolled client")
}

func (repo *classRepository) DeleteClassByID(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting class")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.NewNotFoundError("class", id)
	}
	return nil
}
