package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/studio"
	"github.com/zenflowhq/zenflow/core/teacher"

	echoapi "github.com/zenflowhq/zenflow/apps/api/echo"
	emailsvc "github.com/zenflowhq/zenflow/services/email"
	logsvc "github.com/zenflowhq/zenflow/services/logger"
	"github.com/zenflowhq/zenflow/storage/database"
	inmemdb "github.com/zenflowhq/zenflow/storage/database/inmem"
	sqlxrepos "github.com/zenflowhq/zenflow/storage/database/sqlx"
)

type repositories struct {
	clients    client.Repository
	teachers   teacher.Repository
	classes    class.Repository
	employees  employee.Repository
	attendance attendance.Repository
	payments   payment.Repository
	studio     studio.Repository
	close      func() error
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	repos, err := setUpRepositories(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer func() {
		if err = repos.close(); err != nil {
			logger.Error(fmt.Sprintf("closing storage: %v", err), err)
		}
	}()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// client <-> class and teacher <-> class reference each other; bind the
	// sync side once the class service exists.
	clientSvc := client.NewService(repos.clients, nil, mailSvc)
	teacherSvc := teacher.NewService(repos.teachers, nil)
	classSvc := class.NewService(repos.classes, teacherSvc, clientSvc)
	clientSvc.BindRosterSync(classSvc)
	teacherSvc.BindClassSync(classSvc)

	employeeSvc := employee.NewService(repos.employees)
	attendanceSvc := attendance.NewService(repos.attendance, attendance.Directory{
		Clients:   clientSvc,
		Teachers:  teacherSvc,
		Employees: employeeSvc,
	}, classSvc)
	paymentSvc := payment.NewService(repos.payments, clientSvc, mailSvc)
	studioSvc := studio.NewService(repos.studio)

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(&echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		ClientSvc:     clientSvc,
		TeacherSvc:    teacherSvc,
		ClassSvc:      classSvc,
		EmployeeSvc:   employeeSvc,
		AttendanceSvc: attendanceSvc,
		PaymentSvc:    paymentSvc,
		StudioSvc:     studioSvc,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// setUpRepositories selects the storage backend: the seeded in-memory tables
// for local development, postgres everywhere else.
func setUpRepositories(conf *core.Config) (*repositories, error) {
	if conf.Database.Engine == "inmem" {
		db, err := inmemdb.OpenSeeded()
		if err != nil {
			return nil, err
		}
		return &repositories{
			clients:    inmemdb.NewClientRepository(db),
			teachers:   inmemdb.NewTeacherRepository(db),
			classes:    inmemdb.NewClassRepository(db),
			employees:  inmemdb.NewEmployeeRepository(db),
			attendance: inmemdb.NewAttendanceRepository(db),
			payments:   inmemdb.NewPaymentRepository(db),
			studio:     inmemdb.NewStudioRepository(db),
			close:      func() error { return nil },
		}, nil
	}

	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = database.Ping(db); err != nil {
		return nil, err
	}
	if err = database.Migrate(db.DB, conf); err != nil {
		return nil, err
	}
	return &repositories{
		clients:    sqlxrepos.NewClientRepository(db),
		teachers:   sqlxrepos.NewTeacherRepository(db),
		classes:    sqlxrepos.NewClassRepository(db),
		employees:  sqlxrepos.NewEmployeeRepository(db),
		attendance: sqlxrepos.NewAttendanceRepository(db),
		payments:   sqlxrepos.NewPaymentRepository(db),
		studio:     sqlxrepos.NewStudioRepository(db),
		close:      db.Close,
	}, nil
}
