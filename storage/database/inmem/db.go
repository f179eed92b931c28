// Package inmemdb is the in-memory reference backend: mutex-guarded tables
// seeded fresh per process. It backs tests and local development; the sqlx
// backend is the persistent counterpart.
package inmemdb

import (
	"sync"

	"github.com/zenflowhq/zenflow/core/attendance"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/studio"
	"github.com/zenflowhq/zenflow/core/teacher"
)

type (
	DB struct {
		clients    *clientTable
		teachers   *teacherTable
		classes    *classTable
		employees  *employeeTable
		attendance *attendanceTable
		payments   *paymentTable
		studio     *studioTable
	}

	clientTable struct {
		sync.RWMutex
		table map[string]*client.Client
		order []string
	}

	teacherTable struct {
		sync.RWMutex
		table map[string]*teacher.Teacher
		order []string
	}

	classTable struct {
		sync.RWMutex
		table map[string]*class.Class
		order []string
	}

	employeeTable struct {
		sync.RWMutex
		table map[string]*employee.Employee
		order []string
	}

	attendanceTable struct {
		sync.RWMutex
		table map[string]*attendance.Record
		order []string
	}

	paymentTable struct {
		sync.RWMutex
		table map[string]*payment.Record
		order []string
	}

	studioTable struct {
		sync.RWMutex
		profile studio.Profile
	}
)

func Open() (*DB, error) {
	db := &DB{
		clients:    &clientTable{table: make(map[string]*client.Client)},
		teachers:   &teacherTable{table: make(map[string]*teacher.Teacher)},
		classes:    &classTable{table: make(map[string]*class.Class)},
		employees:  &employeeTable{table: make(map[string]*employee.Employee)},
		attendance: &attendanceTable{table: make(map[string]*attendance.Record)},
		payments:   &paymentTable{table: make(map[string]*payment.Record)},
		studio:     &studioTable{},
	}
	return db, nil
}

// OpenSeeded opens a DB pre-populated with the reference fixture.
func OpenSeeded() (*DB, error) {
	db, err := Open()
	if err != nil {
		return nil, err
	}
	seed(db)
	return db, nil
}
