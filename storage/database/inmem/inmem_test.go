package inmemdb

import (
	"context"
	"testing"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
)

func TestClientRepository(t *testing.T) {
	ctx := context.Background()
	db, _ := Open()
	repo := NewClientRepository(db)

	c1, err := repo.CreateClient(ctx, client.Client{Name: "Sarah Johnson", Email: "sarah.j@email.com"})
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}
	c2, _ := repo.CreateClient(ctx, client.Client{Name: "Mike Ross", Email: "mike.r@email.com"})
	if c1.ID == "" || c1.ID == c2.ID {
		t.Fatalf("ids must be generated and unique: %q, %q", c1.ID, c2.ID)
	}

	t.Run("query preserves insertion order", func(t *testing.T) {
		all, err := repo.QueryAllClients(ctx)
		if err != nil {
			t.Fatalf("QueryAllClients() error = %v", err)
		}
		if len(all) != 2 || all[0].ID != c1.ID || all[1].ID != c2.ID {
			t.Errorf("unexpected order: %+v", all)
		}
	})

	t.Run("lookups miss with not found", func(t *testing.T) {
		if _, err := repo.GetClientByID(ctx, "nope"); !core.IsNotFound(err) {
			t.Errorf("GetClientByID() error = %v, want not found", err)
		}
		if _, err := repo.UpdateClient(ctx, "nope", client.UpdateClient{}); !core.IsNotFound(err) {
			t.Errorf("UpdateClient() error = %v, want not found", err)
		}
		if err := repo.DeleteClientByID(ctx, "nope"); !core.IsNotFound(err) {
			t.Errorf("DeleteClientByID() error = %v, want not found", err)
		}
	})

	t.Run("update merges only set fields", func(t *testing.T) {
		notes := "prefers morning classes"
		updated, err := repo.UpdateClient(ctx, c1.ID, client.UpdateClient{Notes: &notes})
		if err != nil {
			t.Fatalf("UpdateClient() error = %v", err)
		}
		if updated.Notes != notes {
			t.Errorf("notes = %q", updated.Notes)
		}
		if updated.Name != c1.Name || updated.Email != c1.Email {
			t.Error("unset fields must not change")
		}
	})

	t.Run("delete removes from order too", func(t *testing.T) {
		if err := repo.DeleteClientByID(ctx, c1.ID); err != nil {
			t.Fatalf("DeleteClientByID() error = %v", err)
		}
		all, _ := repo.QueryAllClients(ctx)
		if len(all) != 1 || all[0].ID != c2.ID {
			t.Errorf("unexpected clients after delete: %+v", all)
		}
	})
}

func TestClassRepository_SetTeacherName(t *testing.T) {
	ctx := context.Background()
	db, _ := Open()
	repo := NewClassRepository(db)

	k1, _ := repo.CreateClass(ctx, class.Class{Name: "Vinyasa Flow", TeacherID: "t1", TeacherName: "Maya Patel"})
	k2, _ := repo.CreateClass(ctx, class.Class{Name: "Yin Yoga", TeacherID: "t1", TeacherName: "Maya Patel"})
	k3, _ := repo.CreateClass(ctx, class.Class{Name: "Power Hour", TeacherID: "t2", TeacherName: "Leo Kim"})

	if err := repo.SetTeacherName(ctx, "t1", "Maya P.-Sharma"); err != nil {
		t.Fatalf("SetTeacherName() error = %v", err)
	}

	for _, id := range []string{k1.ID, k2.ID} {
		c, _ := repo.GetClassByID(ctx, id)
		if c.TeacherName != "Maya P.-Sharma" {
			t.Errorf("class %s teacher_name = %q", c.Name, c.TeacherName)
		}
	}
	c, _ := repo.GetClassByID(ctx, k3.ID)
	if c.TeacherName != "Leo Kim" {
		t.Errorf("other teachers' classes must not change: %q", c.TeacherName)
	}
}

func TestClassRepository_RemoveEnrolledClient(t *testing.T) {
	ctx := context.Background()
	db, _ := Open()
	repo := NewClassRepository(db)

	k1, _ := repo.CreateClass(ctx, class.Class{
		Name: "Vinyasa Flow", EnrolledClients: []string{"c1", "c2"}, CurrentEnrollment: 2,
	})
	// enrollment already zero despite the roster entry
	k2, _ := repo.CreateClass(ctx, class.Class{
		Name: "Yin Yoga", EnrolledClients: []string{"c1"}, CurrentEnrollment: 0,
	})
	k3, _ := repo.CreateClass(ctx, class.Class{
		Name: "Power Hour", EnrolledClients: []string{"c2"}, CurrentEnrollment: 1,
	})

	if err := repo.RemoveEnrolledClient(ctx, "c1"); err != nil {
		t.Fatalf("RemoveEnrolledClient() error = %v", err)
	}

	c, _ := repo.GetClassByID(ctx, k1.ID)
	if len(c.EnrolledClients) != 1 || c.EnrolledClients[0] != "c2" || c.CurrentEnrollment != 1 {
		t.Errorf("unexpected state: %+v", c)
	}
	c, _ = repo.GetClassByID(ctx, k2.ID)
	if len(c.EnrolledClients) != 0 {
		t.Errorf("roster = %v; want empty", c.EnrolledClients)
	}
	if c.CurrentEnrollment != 0 {
		t.Errorf("current_enrollment = %d; must never go negative", c.CurrentEnrollment)
	}
	c, _ = repo.GetClassByID(ctx, k3.ID)
	if len(c.EnrolledClients) != 1 || c.CurrentEnrollment != 1 {
		t.Errorf("untouched class changed: %+v", c)
	}
}

func TestEmployeeRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	db, _ := Open()
	repo := NewEmployeeRepository(db)

	created, err := repo.CreateEmployee(ctx, employee.Employee{Name: "Sam Admin", Email: "sam@test.cd"})
	if err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}

	got, err := repo.GetEmployeeByEmail(ctx, "sam@test.cd")
	if err != nil {
		t.Fatalf("GetEmployeeByEmail() error = %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("id = %q, want %q", got.ID, created.ID)
	}

	if _, err = repo.GetEmployeeByEmail(ctx, "lol@test.cd"); !core.IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestEmployeeRepository_UpdatePasswordHash(t *testing.T) {
	ctx := context.Background()
	db, _ := Open()
	repo := NewEmployeeRepository(db)

	created, _ := repo.CreateEmployee(ctx, employee.Employee{
		Name: "Sam Admin", Email: "sam@test.cd", PasswordHash: []byte("old"),
	})

	// nil hash leaves the stored one alone
	updated, err := repo.UpdateEmployee(ctx, created.ID, employee.UpdateEmployee{}, nil)
	if err != nil {
		t.Fatalf("UpdateEmployee() error = %v", err)
	}
	if string(updated.PasswordHash) != "old" {
		t.Errorf("hash = %q, want unchanged", updated.PasswordHash)
	}

	updated, err = repo.UpdateEmployee(ctx, created.ID, employee.UpdateEmployee{}, []byte("new"))
	if err != nil {
		t.Fatalf("UpdateEmployee() error = %v", err)
	}
	if string(updated.PasswordHash) != "new" {
		t.Errorf("hash = %q, want %q", updated.PasswordHash, "new")
	}
}
