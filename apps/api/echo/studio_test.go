package echoapi

import (
	"net/http"
	"testing"

	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/studio"
)

func Test_studioApi(t *testing.T) {
	env := setupServer(t)

	staff := createEmployee(t, env, "Jamie Assistant", "jamie@zenflow.cd", "s3cr3tpwd", employee.RoleEmployee, employee.PermSettings)
	token := getToken(t, staff)

	t.Run("requires authentication", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/studio-profile")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marshallObj(t, errMissingToken)}, rec)
	})

	t.Run("a profile always exists", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/studio-profile", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("code = %v; want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})

	t.Run("update rejects an incomplete profile", func(t *testing.T) {
		body := marshallObj(t, studio.Profile{Name: "ZenFlow Studio"}) // no email
		req, rec := newAuthRequest(http.MethodPut, "/v1/studio-profile", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %v; want %v", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("update replaces the profile wholesale", func(t *testing.T) {
		profile := studio.Profile{
			Name:    "ZenFlow Studio",
			Email:   "hello@zenflow.cd",
			Phone:   "+243 81 000 0000",
			Address: "12 Avenue des Cliniques, Kinshasa",
			Website: "https://zenflow.cd",
		}
		req, rec := newAuthRequest(http.MethodPut, "/v1/studio-profile", token, marshallObj(t, profile))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, profile)}, rec)

		// a later partial replace drops the fields it omits
		smaller := studio.Profile{Name: "ZenFlow", Email: "hello@zenflow.cd"}
		req, rec = newAuthRequest(http.MethodPut, "/v1/studio-profile", token, marshallObj(t, smaller))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: marshallObj(t, smaller)}, rec)
	})
}
