package teacher

import (
	"context"

	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
)

var ErrTeacherInUse = errors.New("teacher is referenced by one or more classes")

type (
	Repository interface {
		QueryAllTeachers(ctx context.Context) ([]Teacher, error)
		GetTeacherByID(ctx context.Context, id string) (Teacher, error)
		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		UpdateTeacher(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error)
		DeleteTeacherByID(ctx context.Context, id string) error
	}

	// ClassSync keeps the denormalized teacher_name on classes in step with
	// teacher renames, and guards deletes. Implemented by the class service.
	ClassSync interface {
		SyncTeacherName(ctx context.Context, teacherID, name string) error
		TeacherHasClasses(ctx context.Context, teacherID string) (bool, error)
	}

	Service struct {
		repo    Repository
		classes ClassSync
	}
)

func NewService(repo Repository, classes ClassSync) *Service {
	return &Service{repo: repo, classes: classes}
}

// BindClassSync injects the class dependency after construction. The teacher
// and class services reference each other, so one side must bind late.
func (svc *Service) BindClassSync(classes ClassSync) {
	svc.classes = classes
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	if err := nt.Validate(); err != nil {
		return Teacher{}, err
	}

	status := nt.Status
	if status == "" {
		status = StatusActive
	}
	t := Teacher{
		Name:            nt.Name,
		Email:           nt.Email,
		Phone:           nt.Phone,
		Specialties:     nt.Specialties,
		ExperienceLevel: nt.ExperienceLevel,
		Status:          status,
		HourlyRate:      nt.HourlyRate,
		Color:           nt.Color,
		Bio:             nt.Bio,
	}
	return svc.repo.CreateTeacher(ctx, t)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryAllTeachers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Teacher, error) {
	return svc.repo.GetTeacherByID(ctx, id)
}

// Update applies the partial update and, on a rename, propagates the new name
// to all classes taught by this teacher. The snapshot is never left stale.
func (svc *Service) Update(ctx context.Context, id string, ut UpdateTeacher) (Teacher, error) {
	if err := ut.Validate(); err != nil {
		return Teacher{}, err
	}
	t, err := svc.repo.UpdateTeacher(ctx, id, ut)
	if err != nil {
		return Teacher{}, err
	}
	if ut.Name != nil && svc.classes != nil {
		if err := svc.classes.SyncTeacherName(ctx, id, t.Name); err != nil {
			return Teacher{}, errors.Wrap(err, "syncing teacher name to classes")
		}
	}
	return t, nil
}

// Delete refuses to remove a teacher that classes still reference.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if _, err := svc.repo.GetTeacherByID(ctx, id); err != nil {
		return err
	}
	if svc.classes != nil {
		inUse, err := svc.classes.TeacherHasClasses(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return core.NewValidationError(ErrTeacherInUse,
				core.FieldError{Field: "id", Error: ErrTeacherInUse.Error()})
		}
	}
	return svc.repo.DeleteTeacherByID(ctx, id)
}

// TeacherName returns the teacher's current name; used by the class service
// to snapshot teacher_name at class-creation time.
func (svc *Service) TeacherName(ctx context.Context, id string) (string, error) {
	t, err := svc.repo.GetTeacherByID(ctx, id)
	if err != nil {
		return "", err
	}
	return t.Name, nil
}
