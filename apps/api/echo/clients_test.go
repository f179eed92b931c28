package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
)

func Test_clientApi_crud(t *testing.T) {
	env := setupServer(t)

	staff := createEmployee(t, env, "Jamie Assistant", "jamie@zenflow.cd", "s3cr3tpwd", employee.RoleEmployee, employee.PermClients)
	outsider := createEmployee(t, env, "No Grants", "none@zenflow.cd", "s3cr3tpwd", employee.RoleEmployee)
	token := getToken(t, staff)

	t.Run("requires authentication", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/clients")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("requires the clients grant", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/clients", getToken(t, outsider))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("query empty", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/clients", token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte("[]")}, rec)
	})

	var created client.Client
	t.Run("create applies defaults", func(t *testing.T) {
		body := marshallObj(t, client.NewClient{
			Name:          "Sarah Johnson",
			Email:         "sarah.j@email.com",
			PaymentPlan:   client.PlanMonthly,
			PaymentAmount: 120,
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/clients", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling Client failed: %v", err)
		}
		if created.ID == "" {
			t.Error("expected a generated id")
		}
		if created.Status != client.StatusActive {
			t.Errorf("status = %s; want %s", created.Status, client.StatusActive)
		}
		if created.PaymentStatus != client.PaymentActive {
			t.Errorf("payment_status = %s; want %s", created.PaymentStatus, client.PaymentActive)
		}
		if !created.JoinDate.Equal(core.Today()) {
			t.Errorf("join_date = %s; want today", created.JoinDate)
		}
	})

	t.Run("create requires a valid payload", func(t *testing.T) {
		body := marshallObj(t, client.NewClient{Name: "No Email", PaymentPlan: "weekly"})
		req, rec := newAuthRequest(http.MethodPost, "/v1/clients", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("retrieve", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/clients/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, created)}, rec)
	})

	t.Run("retrieve unknown is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/clients/nope", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		notes := "prefers morning classes"
		body := marshallObj(t, client.UpdateClient{Notes: &notes})
		req, rec := newAuthRequest(http.MethodPut, "/v1/clients/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var updated client.Client
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling Client failed: %v", err)
		}
		if updated.Notes != notes {
			t.Errorf("notes = %q; want %q", updated.Notes, notes)
		}
		if updated.Name != created.Name || updated.Email != created.Email {
			t.Error("unset fields must not change")
		}
	})

	t.Run("update unknown is not found", func(t *testing.T) {
		notes := "x"
		body := marshallObj(t, client.UpdateClient{Notes: &notes})
		req, rec := newAuthRequest(http.MethodPut, "/v1/clients/nope", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("delete scrubs class rosters", func(t *testing.T) {
		tch := createTeacher(t, env, "Maya Patel", "maya@zenflow.cd")
		cls := createClass(t, env, "Vinyasa Flow", tch.ID, 15, created.ID)
		if cls.CurrentEnrollment != 1 {
			t.Fatalf("current_enrollment = %d; want 1", cls.CurrentEnrollment)
		}

		req, rec := newAuthRequest(http.MethodDelete, "/v1/clients/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusNoContent)
		}

		refreshed, err := env.classSvc.GetByID(context.Background(), cls.ID)
		if err != nil {
			t.Fatalf("GetByID() failed: %v", err)
		}
		if len(refreshed.EnrolledClients) != 0 {
			t.Errorf("roster = %v; want empty", refreshed.EnrolledClients)
		}
		if refreshed.CurrentEnrollment != 0 {
			t.Errorf("current_enrollment = %d; want 0", refreshed.CurrentEnrollment)
		}
	})

	t.Run("delete unknown is not found", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/clients/nope", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}
