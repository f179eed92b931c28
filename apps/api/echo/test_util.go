package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/studio"
	"github.com/zenflowhq/zenflow/core/teacher"
	emailsvc "github.com/zenflowhq/zenflow/services/email"
	inmemdb "github.com/zenflowhq/zenflow/storage/database/inmem"
)

var errMissingToken = httpErr{Error: "missing or malformed jwt"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
	extra    interface{}
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type testEnv struct {
	server Server

	clientSvc     *client.Service
	teacherSvc    *teacher.Service
	classSvc      *class.Service
	employeeSvc   *employee.Service
	attendanceSvc *attendance.Service
	paymentSvc    *payment.Service
	studioSvc     *studio.Service
}

func setupServer(t *testing.T) *testEnv {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}

	conf := &core.Config{
		AppName:          "ZenFlow",
		Env:              "TEST",
		TestMode:         true,
		SecretKey:        "secret",
		DefaultFromEmail: mail.Address{Name: "ZenFlow", Address: "noreply@localhost"},
		Server: core.ServerConfig{
			Host:               "localhost",
			Port:               "8000",
			JWTExpirationDelta: 10 * time.Minute,
		},
	}
	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	clientSvc := client.NewService(inmemdb.NewClientRepository(db), nil, mailSvc)
	teacherSvc := teacher.NewService(inmemdb.NewTeacherRepository(db), nil)
	classSvc := class.NewService(inmemdb.NewClassRepository(db), teacherSvc, clientSvc)
	clientSvc.BindRosterSync(classSvc)
	teacherSvc.BindClassSync(classSvc)

	employeeSvc := employee.NewService(inmemdb.NewEmployeeRepository(db))
	attendanceSvc := attendance.NewService(inmemdb.NewAttendanceRepository(db), attendance.Directory{
		Clients:   clientSvc,
		Teachers:  teacherSvc,
		Employees: employeeSvc,
	}, classSvc)
	paymentSvc := payment.NewService(inmemdb.NewPaymentRepository(db), clientSvc, mailSvc)
	studioSvc := studio.NewService(inmemdb.NewStudioRepository(db))

	server := NewServer(&ServerDeps{
		Conf:           conf,
		Logger:         nopLogger{},
		DisableReqLogs: true,
		ClientSvc:      clientSvc,
		TeacherSvc:     teacherSvc,
		ClassSvc:       classSvc,
		EmployeeSvc:    employeeSvc,
		AttendanceSvc:  attendanceSvc,
		PaymentSvc:     paymentSvc,
		StudioSvc:      studioSvc,
	})

	return &testEnv{
		server:        server,
		clientSvc:     clientSvc,
		teacherSvc:    teacherSvc,
		classSvc:      classSvc,
		employeeSvc:   employeeSvc,
		attendanceSvc: attendanceSvc,
		paymentSvc:    paymentSvc,
		studioSvc:     studioSvc,
	}
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func createEmployee(
	t *testing.T,
	env *testEnv,
	name, email, pwd string,
	role employee.Role,
	perms ...employee.Permission,
) employee.Employee {
	t.Helper()
	emp, err := env.employeeSvc.Create(context.Background(), employee.NewEmployee{
		Name:        name,
		Email:       email,
		Role:        role,
		Permissions: perms,
		Password:    pwd,
	})
	if err != nil {
		t.Fatalf("createEmployee() failed: %v", err)
	}
	return emp
}

func createClient(t *testing.T, env *testEnv, name, email string) client.Client {
	t.Helper()
	c, err := env.clientSvc.Create(context.Background(), client.NewClient{
		Name:        name,
		Email:       email,
		PaymentPlan: client.PlanMonthly,
	})
	if err != nil {
		t.Fatalf("createClient() failed: %v", err)
	}
	return c
}

func createTeacher(t *testing.T, env *testEnv, name, email string) teacher.Teacher {
	t.Helper()
	tch, err := env.teacherSvc.Create(context.Background(), teacher.NewTeacher{
		Name:  name,
		Email: email,
	})
	if err != nil {
		t.Fatalf("createTeacher() failed: %v", err)
	}
	return tch
}

func createClass(t *testing.T, env *testEnv, name, teacherID string, maxCapacity int, roster ...string) class.Class {
	t.Helper()
	c, err := env.classSvc.Create(context.Background(), class.NewClass{
		Name:            name,
		TeacherID:       teacherID,
		Day:             "Monday",
		StartTime:       "09:00",
		EndTime:         "10:00",
		MaxCapacity:     maxCapacity,
		EnrolledClients: roster,
	})
	if err != nil {
		t.Fatalf("createClass() failed: %v", err)
	}
	return c
}

func getToken(t *testing.T, emp employee.Employee) string {
	t.Helper()
	token, err := GenerateToken(GetEmployeeClaims(emp))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
