package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/teacher"
)

func Test_teacherApi_crud(t *testing.T) {
	env := setupServer(t)

	staff := createEmployee(t, env, "Jamie Assistant", "jamie@zenflow.cd", "s3cr3tpwd", employee.RoleEmployee, employee.PermTeachers)
	token := getToken(t, staff)

	t.Run("requires authentication", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/teachers")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	var created teacher.Teacher
	t.Run("create", func(t *testing.T) {
		body := marshallObj(t, teacher.NewTeacher{
			Name:        "Maya Patel",
			Email:       "maya@zenflow.cd",
			Specialties: []string{"vinyasa", "meditation"},
			HourlyRate:  45,
			Color:       "#4F8A8B",
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling Teacher failed: %v", err)
		}
		if created.Status != teacher.StatusActive {
			t.Errorf("status = %s; want %s", created.Status, teacher.StatusActive)
		}
	})

	t.Run("create rejects a bad color", func(t *testing.T) {
		body := marshallObj(t, teacher.NewTeacher{Name: "Bad Color", Email: "bad@zenflow.cd", Color: "teal"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/teachers", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, created)}, rec)
	})

	t.Run("rename follows through to classes", func(t *testing.T) {
		cls := createClass(t, env, "Vinyasa Flow", created.ID, 15)
		if cls.TeacherName != created.Name {
			t.Fatalf("teacher_name = %q; want %q", cls.TeacherName, created.Name)
		}

		name := "Maya P.-Sharma"
		body := marshallObj(t, teacher.UpdateTeacher{Name: &name})
		req, rec := newAuthRequest(http.MethodPut, "/v1/teachers/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}

		refreshed, err := env.classSvc.GetByID(context.Background(), cls.ID)
		if err != nil {
			t.Fatalf("GetByID() failed: %v", err)
		}
		if refreshed.TeacherName != name {
			t.Errorf("teacher_name = %q; want %q", refreshed.TeacherName, name)
		}
	})

	t.Run("delete refuses while classes reference the teacher", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/teachers/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v; body %s", rec.Code, http.StatusBadRequest, rec.Body.String())
		}
	})

	t.Run("delete once unreferenced", func(t *testing.T) {
		classes, err := env.classSvc.QueryAll(context.Background())
		if err != nil {
			t.Fatalf("QueryAll() failed: %v", err)
		}
		for _, c := range classes {
			if c.TeacherID == created.ID {
				if err := env.classSvc.Delete(context.Background(), c.ID); err != nil {
					t.Fatalf("Delete() failed: %v", err)
				}
			}
		}

		req, rec := newAuthRequest(http.MethodDelete, "/v1/teachers/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %v; want %v; body %s", rec.Code, http.StatusNoContent, rec.Body.String())
		}
	})

	t.Run("retrieve unknown is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/teachers/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}
