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
	"github.com/zenflowhq/zenflow/core/teacher"
)

type teacherRow struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Email           string         `db:"email"`
	Phone           string         `db:"phone"`
	Specialties     pq.StringArray `db:"specialties"`
	ExperienceLevel string         `db:"experience_level"`
	Status          string         `db:"status"`
	HourlyRate      float64        `db:"hourly_rate"`
	Color           string         `db:"color"`
	Bio             string         `db:"bio"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r teacherRow) toTeacher() teacher.Teacher {
	return teacher.Teacher{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Specialties:     r.Specialties,
		ExperienceLevel: r.ExperienceLevel,
		Status:          teacher.Status(r.Status),
		HourlyRate:      r.HourlyRate,
		Color:           r.Color,
		Bio:             r.Bio,
	}
}

func newTeacherRow(t teacher.Teacher) teacherRow {
	return teacherRow{
		ID:              t.ID,
		Name:            t.Name,
		Email:           t.Email,
		Phone:           t.Phone,
		Specialties:     t.Specialties,
		ExperienceLevel: t.ExperienceLevel,
		Status:          string(t.Status),
		HourlyRate:      t.HourlyRate,
		Color:           t.Color,
		Bio:             t.Bio,
	}
}

type teacherRepository struct {
	db *sqlx.DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *sqlx.DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) QueryAllTeachers(ctx context.Context) ([]teacher.Teacher, error) {
	var rows []teacherRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM teachers ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	teachers := make([]teacher.Teacher, 0, len(rows))
	for _, r := range rows {
		teachers = append(teachers, r.toTeacher())
	}
	return teachers, nil
}

func (repo *teacherRepository) GetTeacherByID(ctx context.Context, id string) (teacher.Teacher, error) {
	var row teacherRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM teachers WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return teacher.Teacher{}, core.NewNotFoundError("teacher", id)
	}
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "getting teacher")
	}
	return row.toTeacher(), nil
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	t.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO teachers (id, name, email, phone, specialties, experience_level,
			status, hourly_rate, color, bio)
		VALUES (:id, :name, :email, :phone, :specialties, :experience_level,
			:status, :hourly_rate, :color, :bio)`,
		newTeacherRow(t))
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "creating teacher")
	}
	return t, nil
}

func (repo *teacherRepository) UpdateTeacher(ctx context.Context, id string, ut teacher.UpdateTeacher) (teacher.Teacher, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	var row teacherRow
	err = tx.GetContext(ctx, &row, `SELECT * FROM teachers WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return teacher.Teacher{}, core.NewNotFoundError("teacher", id)
	}
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "getting teacher")
	}

	t := row.toTeacher()
	if ut.Name != nil {
		t.Name = *ut.Name
	}
	if ut.Email != nil {
		t.Email = *ut.Email
	}
	if ut.Phone != nil {
		t.Phone = *ut.Phone
	}
	if ut.Specialties != nil {
		t.Specialties = ut.Specialties
	}
	if ut.ExperienceLevel != nil {
		t.ExperienceLevel = *ut.ExperienceLevel
	}
	if ut.Status != nil {
		t.Status = *ut.Status
	}
	if ut.HourlyRate != nil {
		t.HourlyRate = *ut.HourlyRate
	}
	if ut.Color != nil {
		t.Color = *ut.Color
	}
	if ut.Bio != nil {
		t.Bio = *ut.Bio
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE teachers SET name = :name, email = :email, phone = :phone,
			specialties = :specialties, experience_level = :experience_level,
			status = :status, hourly_rate = :hourly_rate, color = :color, bio = :bio
		WHERE id = :id`,
		newTeacherRow(t))
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "updating teacher")
	}
	if err = tx.Commit(); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "committing tx")
	}
	return t, nil
}

func (repo *teacherRepository) DeleteTeacherByID(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.NewNotFoundError("teacher", id)
	}
	return nil
}
