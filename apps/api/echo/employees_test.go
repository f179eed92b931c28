package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/zenflowhq/zenflow/core/employee"
)

func Test_employeeApi_permissions(t *testing.T) {
	env := setupServer(t)

	manager := createEmployee(t, env, "Alex Manager", "alex@zenflow.cd", "s3cr3tpwd", employee.RoleManager)
	admin := createEmployee(t, env, "Sam Admin", "sam@zenflow.cd", "s3cr3tpwd", employee.RoleManager, employee.PermAll)

	t.Run("a manager implicitly reaches other resources", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/clients", getToken(t, manager))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusOK)
		}
	})

	t.Run("employee management needs an explicit grant, even for managers", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/employees", getToken(t, manager))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("the all grant covers employee management", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/employees", getToken(t, admin))
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusOK)
		}
	})
}

func Test_employeeApi_crud(t *testing.T) {
	env := setupServer(t)

	admin := createEmployee(t, env, "Sam Admin", "sam@zenflow.cd", "s3cr3tpwd", employee.RoleManager, employee.PermAll)
	token := getToken(t, admin)

	var created employee.Employee
	t.Run("create", func(t *testing.T) {
		body := marshallObj(t, employee.NewEmployee{
			Name:        "Jamie Assistant",
			Email:       "jamie@zenflow.cd",
			Role:        employee.RoleEmployee,
			Permissions: []employee.Permission{employee.PermClients, employee.PermAttendance},
			Password:    "s3cr3tpwd",
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/employees", token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
			t.Fatalf("unmarshalling Employee failed: %v", err)
		}
		if created.Status != employee.StatusActive {
			t.Errorf("status = %s; want %s", created.Status, employee.StatusActive)
		}
	})

	t.Run("create rejects a short password", func(t *testing.T) {
		body := marshallObj(t, employee.NewEmployee{
			Name:     "Short Pwd",
			Email:    "short@zenflow.cd",
			Role:     employee.RoleEmployee,
			Password: "short",
		})
		req, rec := newAuthRequest(http.MethodPost, "/v1/employees", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("the response never carries the password hash", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/employees/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusOK)
		}
		var raw map[string]interface{}
		if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
			t.Fatalf("unmarshalling response failed: %v", err)
		}
		for _, key := range []string{"password", "password_hash", "PasswordHash"} {
			if _, ok := raw[key]; ok {
				t.Errorf("response exposes %q", key)
			}
		}
	})

	t.Run("update grants", func(t *testing.T) {
		body := marshallObj(t, employee.UpdateEmployee{
			Permissions: []employee.Permission{employee.PermClients, employee.PermPayments},
		})
		req, rec := newAuthRequest(http.MethodPut, "/v1/employees/"+created.ID, token, body)
		env.server.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var updated employee.Employee
		if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
			t.Fatalf("unmarshalling Employee failed: %v", err)
		}
		if !updated.HasPermission(employee.PermPayments) {
			t.Error("expected the payments grant")
		}
		if updated.HasPermission(employee.PermAttendance) {
			t.Error("the attendance grant should have been replaced")
		}
	})

	t.Run("self-delete is forbidden", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/employees/"+admin.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusForbidden)
		}
	})

	t.Run("delete", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/v1/employees/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("code = %v; want %v", rec.Code, http.StatusNoContent)
		}

		req, rec = newAuthRequest(http.MethodGet, "/v1/employees/"+created.ID, token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusNotFound)
		}
	})
}
