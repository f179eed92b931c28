package attendance

import (
	"context"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/teacher"
)

// Directory adapts the client, teacher and employee services into a
// PersonDirectory for polymorphic person references.
type Directory struct {
	Clients   *client.Service
	Teachers  *teacher.Service
	Employees *employee.Service
}

var _ PersonDirectory = (*Directory)(nil)

func (d Directory) PersonName(ctx context.Context, pt PersonType, id string) (string, error) {
	switch pt {
	case PersonClient:
		c, err := d.Clients.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return c.Name, nil
	case PersonTeacher:
		return d.Teachers.TeacherName(ctx, id)
	case PersonEmployee:
		e, err := d.Employees.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return e.Name, nil
	}
	return "", core.NewNotFoundError("person", id)
}
