package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
)

type attendanceRow struct {
	ID         string      `db:"id"`
	PersonID   string      `db:"person_id"`
	PersonType string      `db:"person_type"`
	PersonName string      `db:"person_name"`
	ClassID    null.String `db:"class_id"`
	ClassName  null.String `db:"class_name"`
	Date       core.Date   `db:"date"`
	Status     string      `db:"status"`
	Notes      null.String `db:"notes"`
	CreatedAt  time.Time   `db:"created_at"`
}

func (r attendanceRow) toRecord() attendance.Record {
	return attendance.Record{
		ID:         r.ID,
		PersonID:   r.PersonID,
		PersonType: attendance.PersonType(r.PersonType),
		PersonName: r.PersonName,
		ClassID:    r.ClassID.String,
		ClassName:  r.ClassName.String,
		Date:       r.Date,
		Status:     attendance.Status(r.Status),
		Notes:      r.Notes.String,
	}
}

func newAttendanceRow(r attendance.Record) attendanceRow {
	return attendanceRow{
		ID:         r.ID,
		PersonID:   r.PersonID,
		PersonType: string(r.PersonType),
		PersonName: r.PersonName,
		ClassID:    null.NewString(r.ClassID, r.ClassID != ""),
		ClassName:  null.NewString(r.ClassName, r.ClassName != ""),
		Date:       r.Date,
		Status:     string(r.Status),
		Notes:      null.NewString(r.Notes, r.Notes != ""),
	}
}

type attendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *sqlx.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) QueryAllRecords(ctx context.Context) ([]attendance.Record, error) {
	var rows []attendanceRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM attendance_records ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying attendance records")
	}
	records := make([]attendance.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return records, nil
}

func (repo *attendanceRepository) GetRecordByID(ctx context.Context, id string) (attendance.Record, error) {
	var row attendanceRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM attendance_records WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return attendance.Record{}, core.NewNotFoundError("attendance record", id)
	}
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "getting attendance record")
	}
	return row.toRecord(), nil
}

func (repo *attendanceRepository) FindRecord(
	ctx context.Context,
	personID string,
	personType attendance.PersonType,
	classID string,
	date core.Date,
) (attendance.Record, error) {
	var row attendanceRow
	err := repo.db.GetContext(ctx, &row, `
		SELECT * FROM attendance_records
		WHERE person_id = $1 AND person_type = $2 AND COALESCE(class_id::TEXT, '') = $3 AND date = $4`,
		personID, string(personType), classID, date)
	if err == sql.ErrNoRows {
		return attendance.Record{}, core.NewNotFoundError("attendance record", "")
	}
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "finding attendance record")
	}
	return row.toRecord(), nil
}

func (repo *attendanceRepository) CreateRecord(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	r.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO attendance_records (id, person_id, person_type, person_name,
			class_id, class_name, date, status, notes)
		VALUES (:id, :person_id, :person_type, :person_name,
			:class_id, :class_name, :date, :status, :notes)`,
		newAttendanceRow(r))
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "creating attendance record")
	}
	return r, nil
}

func (repo *attendanceRepository) UpdateRecord(ctx context.Context, id string, ur attendance.UpdateRecord) (attendance.Record, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	var row attendanceRow
	err = tx.GetContext(ctx, &row, `SELECT * FROM attendance_records WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return attendance.Record{}, core.NewNotFoundError("attendance record", id)
	}
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "getting attendance record")
	}

	r := row.toRecord()
	if ur.Status != nil {
		r.Status = *ur.Status
	}
	if ur.Notes != nil {
		r.Notes = *ur.Notes
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE attendance_records SET status = :status, notes = :notes WHERE id = :id`,
		newAttendanceRow(r))
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "updating attendance record")
	}
	if err = tx.Commit(); err != nil {
		return attendance.Record{}, errors.Wrap(err, "committing tx")
	}
	return r, nil
}
