package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/employee"
)

func Test_classApi_crud(t *testing.T) {
	env := setupServer(t)

	staff := createEmployee(t, env, "Jamie Assistant", "jamie@zenflow.cd", "s3cr3tpwd", employee.RoleEmployee, employee.PermClasses)
	token := getToken(t, staff)

	tch := createTeacher(t, env, "Maya Patel", "maya@zenflow.cd")
	c1 := createClient(t, env, "Sarah Johnson", "sarah.j@email.com")
	c2 := createClient(t, env, "Mike Ross", "mike.r@email.com")

	newClass := func(mutate func(*class.NewClass)) []byte {
		nc := class.NewClass{
			Name:        "Vinyasa Flow",
			TeacherID:   tch.ID,
			Day:         "Monday",
			StartTime:   "09:00",
			EndTime:     "10:00",
			MaxCapacity: 2,
		}
		if mutate != nil {
			mutate(&nc)
		}
		return marshallObj(t, nc)
	}

	t.Run("requires authentication", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/classes")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("create rejects an unknown teacher", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) { nc.TeacherID = "nope" }))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("create rejects an unknown enrolled client", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) { nc.EnrolledClients = []string{"nope"} }))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("create rejects a roster over capacity", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) {
				nc.MaxCapacity = 1
				nc.EnrolledClients = []string{c1.ID, c2.ID}
			}))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("create rejects end before start", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) { nc.StartTime, nc.EndTime = "10:00", "09:00" }))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("create rejects a bad weekday", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) { nc.Day = "Mondays" }))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	var created class.Class
	t.Run("create snapshots the teacher name", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/classes", token,
			newClass(func(nc *class.NewClass) { nc.EnrolledClients = []string{c1.ID} }))
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling Class failed: %v", err)
		}
		if created.TeacherName != tch.Name {
			t.Errorf("teacher_name = %q; want %q", created.TeacherName, tch.Name)
		}
		if created.Status != class.StatusActive {
			t.Errorf("status = %s; want %s", created.Status, class.StatusActive)
		}
		if created.CurrentEnrollment != 1 {
			t.Errorf("current_enrollment = %d; want 1", created.CurrentEnrollment)
		}
	})

	t.Run("replacing the roster recounts enrollment", func(t *testing.T) {
		body := marshallObj(t, class.UpdateClass{EnrolledClients: []string{c1.ID, c2.ID}})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var updated class.Class
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling Class failed: %v", err)
		}
		if updated.CurrentEnrollment != 2 {
			t.Errorf("current_enrollment = %d; want 2", updated.CurrentEnrollment)
		}

		// shrink it back so the later subtests see the original roster
		body = marshallObj(t, class.UpdateClass{EnrolledClients: []string{c1.ID}})
		req, rec = newAuthRequest(http.MethodPut, "/v1/classes/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling Class failed: %v", err)
		}
		if updated.CurrentEnrollment != 1 {
			t.Errorf("current_enrollment = %d; want 1", updated.CurrentEnrollment)
		}
	})

	t.Run("update rejects a roster over capacity", func(t *testing.T) {
		body := marshallObj(t, class.UpdateClass{EnrolledClients: []string{c1.ID, c2.ID, c1.ID}})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("update rejects merged times out of order", func(t *testing.T) {
		start := "10:30"
		body := marshallObj(t, class.UpdateClass{StartTime: &start}) // end stays 10:00
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("moving the teacher re-snapshots the name", func(t *testing.T) {
		other := createTeacher(t, env, "Leo Kim", "leo@zenflow.cd")
		body := marshallObj(t, class.UpdateClass{TeacherID: &other.ID})
		req, rec := newAuthRequest(http.MethodPut, "/v1/classes/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var updated class.Class
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling Class failed: %v", err)
		}
		if updated.TeacherID != other.ID {
			t.Errorf("teacher_id = %q; want %q", updated.TeacherID, other.ID)
		}
		if updated.TeacherName != other.Name {
			t.Errorf("teacher_name = %q; want %q", updated.TeacherName, other.Name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/classes/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusNoContent)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/classes/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}
