package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/studio"
	"github.com/zenflowhq/zenflow/core/teacher"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		DisableReqLogs bool

		ClientSvc     *client.Service
		TeacherSvc    *teacher.Service
		ClassSvc      *class.Service
		EmployeeSvc   *employee.Service
		AttendanceSvc *attendance.Service
		PaymentSvc    *payment.Service
		StudioSvc     *studio.Service
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		deps     *ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps *ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, syscall.SIGINT, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf
	initAuth(conf)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)

	registerAuthAPI(v1, s.deps.EmployeeSvc)
	registerClientAPI(v1, jwt, s.deps.ClientSvc)
	registerTeacherAPI(v1, jwt, s.deps.TeacherSvc)
	registerClassAPI(v1, jwt, s.deps.ClassSvc)
	registerEmployeeAPI(v1, jwt, s.deps.EmployeeSvc)
	registerAttendanceAPI(v1, jwt, s.deps.AttendanceSvc)
	registerPaymentAPI(v1, jwt, s.deps.PaymentSvc)
	registerStudioAPI(v1, jwt, s.deps.StudioSvc)
	registerReportsAPI(v1, jwt, s.deps.PaymentSvc, s.deps.ClientSvc)
}

func (s *server) Start() {
	s.errs <- s.app.Start(s.deps.Conf.Server.Address())
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown is handed to the error handler so an unrecoverable error can
// trigger the same graceful-shutdown path as SIGTERM.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to ZenFlow API!")
}
