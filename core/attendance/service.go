package attendance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
)

var (
	errUnknownPerson   = "person does not exist"
	errUnknownClass    = "class does not exist"
	errDuplicateRecord = "attendance already recorded for this person, class and date"
)

type (
	// Repository deliberately has no delete; attendance is an append-and-amend log.
	Repository interface {
		QueryAllRecords(ctx context.Context) ([]Record, error)
		GetRecordByID(ctx context.Context, id string) (Record, error)
		// FindRecord locates the record for (personID, personType, classID, date);
		// NotFound when absent. classID may be empty.
		FindRecord(ctx context.Context, personID string, personType PersonType, classID string, date core.Date) (Record, error)
		CreateRecord(ctx context.Context, r Record) (Record, error)
		UpdateRecord(ctx context.Context, id string, ur UpdateRecord) (Record, error)
	}

	// PersonDirectory resolves a polymorphic person reference to its current
	// name; NotFound when the referenced entity does not exist.
	PersonDirectory interface {
		PersonName(ctx context.Context, pt PersonType, id string) (string, error)
	}

	// ClassLookup resolves a class id to its name.
	ClassLookup interface {
		ClassName(ctx context.Context, id string) (string, error)
	}

	Service struct {
		repo    Repository
		persons PersonDirectory
		classes ClassLookup
	}
)

func NewService(repo Repository, persons PersonDirectory, classes ClassLookup) *Service {
	return &Service{repo: repo, persons: persons, classes: classes}
}

// Create records attendance. The person must exist in the repository selected
// by person_type; at most one record per (person, type, class, date) is
// accepted. person_name and class_name are snapshotted here, once.
func (svc *Service) Create(ctx context.Context, nr NewRecord) (Record, error) {
	if err := nr.Validate(); err != nil {
		return Record{}, err
	}

	personName, err := svc.persons.PersonName(ctx, nr.PersonType, nr.PersonID)
	if err != nil {
		if core.IsNotFound(err) {
			return Record{}, core.NewValidationError(err,
				core.FieldError{Field: "person_id", Error: errUnknownPerson})
		}
		return Record{}, errors.Wrap(err, "resolving person")
	}

	var className string
	if nr.ClassID != "" {
		className, err = svc.classes.ClassName(ctx, nr.ClassID)
		if err != nil {
			if core.IsNotFound(err) {
				return Record{}, core.NewValidationError(err,
					core.FieldError{Field: "class_id", Error: errUnknownClass})
			}
			return Record{}, errors.Wrap(err, "resolving class")
		}
	}

	if _, err = svc.repo.FindRecord(ctx, nr.PersonID, nr.PersonType, nr.ClassID, nr.Date); err == nil {
		return Record{}, core.NewValidationError(errors.New(errDuplicateRecord),
			core.FieldError{Field: "date", Error: errDuplicateRecord})
	} else if !core.IsNotFound(err) {
		return Record{}, errors.Wrap(err, "checking for duplicate record")
	}

	r := Record{
		PersonID:   nr.PersonID,
		PersonType: nr.PersonType,
		PersonName: personName,
		ClassID:    nr.ClassID,
		ClassName:  className,
		Date:       nr.Date,
		Status:     nr.Status,
		Notes:      nr.Notes,
	}
	return svc.repo.CreateRecord(ctx, r)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Record, error) {
	return svc.repo.QueryAllRecords(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Record, error) {
	return svc.repo.GetRecordByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ur UpdateRecord) (Record, error) {
	if err := ur.Validate(); err != nil {
		return Record{}, err
	}
	return svc.repo.UpdateRecord(ctx, id, ur)
}
