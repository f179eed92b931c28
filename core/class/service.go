package class

import (
	"context"

	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
)

var (
	errCapacityExceeded = "capacity_exceeded"
	errUnknownTeacher   = "teacher does not exist"
	errUnknownClient    = "client does not exist"
)

type (
	Repository interface {
		QueryAllClasses(ctx context.Context) ([]Class, error)
		GetClassByID(ctx context.Context, id string) (Class, error)
		QueryClassesByTeacherID(ctx context.Context, teacherID string) ([]Class, error)
		CreateClass(ctx context.Context, c Class) (Class, error)
		UpdateClass(ctx context.Context, id string, uc UpdateClass) (Class, error)
		// SetTeacherName rewrites the denormalized teacher_name on every class
		// taught by the teacher.
		SetTeacherName(ctx context.Context, teacherID, name string) error
		// RemoveEnrolledClient drops the client id from every roster it
		// appears in and decrements current_enrollment accordingly.
		RemoveEnrolledClient(ctx context.Context, clientID string) error
		DeleteClassByID(ctx context.Context, id string) error
	}

	// TeacherLookup resolves a teacher id to its current name. NotFound means
	// the reference is dangling.
	TeacherLookup interface {
		TeacherName(ctx context.Context, id string) (string, error)
	}

	// ClientLookup reports whether a client id exists.
	ClientLookup interface {
		ClientExists(ctx context.Context, id string) (bool, error)
	}

	Service struct {
		repo     Repository
		teachers TeacherLookup
		clients  ClientLookup
	}
)

func NewService(repo Repository, teachers TeacherLookup, clients ClientLookup) *Service {
	return &Service{repo: repo, teachers: teachers, clients: clients}
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	if err := nc.Validate(); err != nil {
		return Class{}, err
	}

	teacherName, err := svc.teachers.TeacherName(ctx, nc.TeacherID)
	if err != nil {
		if core.IsNotFound(err) {
			return Class{}, core.NewValidationError(err,
				core.FieldError{Field: "teacher_id", Error: errUnknownTeacher})
		}
		return Class{}, errors.Wrap(err, "resolving teacher")
	}
	// the roster is authoritative for enrollment whenever it is supplied
	enrollment := nc.CurrentEnrollment
	if nc.EnrolledClients != nil {
		enrollment = len(nc.EnrolledClients)
	}
	if err = svc.checkRoster(ctx, nc.EnrolledClients, nc.MaxCapacity, enrollment); err != nil {
		return Class{}, err
	}

	status := nc.Status
	if status == "" {
		status = StatusActive
	}
	enrolled := nc.EnrolledClients
	if enrolled == nil {
		enrolled = []string{}
	}
	c := Class{
		Name:              nc.Name,
		TeacherID:         nc.TeacherID,
		TeacherName:       teacherName,
		Day:               nc.Day,
		StartTime:         nc.StartTime,
		EndTime:           nc.EndTime,
		MaxCapacity:       nc.MaxCapacity,
		CurrentEnrollment: enrollment,
		Description:       nc.Description,
		Type:              nc.Type,
		Price:             nc.Price,
		Status:            status,
		EnrolledClients:   enrolled,
	}
	return svc.repo.CreateClass(ctx, c)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Class, error) {
	return svc.repo.QueryAllClasses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Class, error) {
	return svc.repo.GetClassByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateClass) (Class, error) {
	if err := uc.Validate(); err != nil {
		return Class{}, err
	}

	orig, err := svc.repo.GetClassByID(ctx, id)
	if err != nil {
		return Class{}, err
	}

	// the merged times must still be ordered
	start, end := orig.StartTime, orig.EndTime
	if uc.StartTime != nil {
		start = *uc.StartTime
	}
	if uc.EndTime != nil {
		end = *uc.EndTime
	}
	if err = validateTimes(start, end); err != nil {
		return Class{}, err
	}

	// re-snapshot teacher_name when the reference moves
	if uc.TeacherID != nil && *uc.TeacherID != orig.TeacherID {
		name, err := svc.teachers.TeacherName(ctx, *uc.TeacherID)
		if err != nil {
			if core.IsNotFound(err) {
				return Class{}, core.NewValidationError(err,
					core.FieldError{Field: "teacher_id", Error: errUnknownTeacher})
			}
			return Class{}, errors.Wrap(err, "resolving teacher")
		}
		uc.TeacherName = &name
	}

	// capacity holds against the merged record
	capacity := orig.MaxCapacity
	if uc.MaxCapacity != nil {
		capacity = *uc.MaxCapacity
	}
	enrollment := orig.CurrentEnrollment
	if uc.CurrentEnrollment != nil {
		enrollment = *uc.CurrentEnrollment
	}
	roster := orig.EnrolledClients
	if uc.EnrolledClients != nil {
		roster = uc.EnrolledClients
		// only newly added ids need an existence check
		known := make(map[string]struct{}, len(orig.EnrolledClients))
		for _, cid := range orig.EnrolledClients {
			known[cid] = struct{}{}
		}
		var added []string
		for _, cid := range roster {
			if _, ok := known[cid]; !ok {
				added = append(added, cid)
			}
		}
		if err = svc.checkClientsExist(ctx, added); err != nil {
			return Class{}, err
		}
		// the replacement roster is authoritative for enrollment
		n := len(roster)
		enrollment = n
		uc.CurrentEnrollment = &n
	}
	if err = checkCapacity(roster, capacity, enrollment); err != nil {
		return Class{}, err
	}

	return svc.repo.UpdateClass(ctx, id, uc)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if _, err := svc.repo.GetClassByID(ctx, id); err != nil {
		return err
	}
	return svc.repo.DeleteClassByID(ctx, id)
}

// SyncTeacherName implements teacher.ClassSync.
func (svc *Service) SyncTeacherName(ctx context.Context, teacherID, name string) error {
	return svc.repo.SetTeacherName(ctx, teacherID, name)
}

// TeacherHasClasses implements teacher.ClassSync.
func (svc *Service) TeacherHasClasses(ctx context.Context, teacherID string) (bool, error) {
	classes, err := svc.repo.QueryClassesByTeacherID(ctx, teacherID)
	if err != nil {
		return false, err
	}
	return len(classes) > 0, nil
}

// RemoveClientFromRosters implements client.RosterSync.
func (svc *Service) RemoveClientFromRosters(ctx context.Context, clientID string) error {
	return svc.repo.RemoveEnrolledClient(ctx, clientID)
}

// ClassName resolves a class id to its name; used by the attendance service
// to snapshot class_name at record-creation time.
func (svc *Service) ClassName(ctx context.Context, id string) (string, error) {
	c, err := svc.repo.GetClassByID(ctx, id)
	if err != nil {
		return "", err
	}
	return c.Name, nil
}

func (svc *Service) checkRoster(ctx context.Context, roster []string, capacity, enrollment int) error {
	if err := svc.checkClientsExist(ctx, roster); err != nil {
		return err
	}
	return checkCapacity(roster, capacity, enrollment)
}

func (svc *Service) checkClientsExist(ctx context.Context, ids []string) error {
	for _, cid := range ids {
		exists, err := svc.clients.ClientExists(ctx, cid)
		if err != nil {
			return errors.Wrap(err, "resolving enrolled client")
		}
		if !exists {
			return core.NewValidationError(nil,
				core.FieldError{Field: "enrolled_clients", Error: errUnknownClient + ": " + cid})
		}
	}
	return nil
}

func checkCapacity(roster []string, capacity, enrollment int) error {
	if len(roster) > capacity || enrollment > capacity {
		return core.NewValidationError(errors.New(errCapacityExceeded),
			core.FieldError{Field: "enrolled_clients", Error: errCapacityExceeded})
	}
	return nil
}
