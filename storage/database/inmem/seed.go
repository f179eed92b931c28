package inmemdb

import (
	"time"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/attendance"
	"github.com/zenflowhq/zenflow/core/class"
	"github.com/zenflowhq/zenflow/core/client"
	"github.com/zenflowhq/zenflow/core/employee"
	"github.com/zenflowhq/zenflow/core/payment"
	"github.com/zenflowhq/zenflow/core/studio"
	"github.com/zenflowhq/zenflow/core/teacher"
)

// seed loads the reference fixture: a small studio with three clients, three
// teachers, five weekly classes, two employees and a short payment and
// attendance history.
func seed(db *DB) {
	addClient := func(c client.Client) string {
		c.ID = uuid.NewString()
		db.clients.table[c.ID] = &c
		db.clients.order = append(db.clients.order, c.ID)
		return c.ID
	}
	addTeacher := func(t teacher.Teacher) string {
		t.ID = uuid.NewString()
		db.teachers.table[t.ID] = &t
		db.teachers.order = append(db.teachers.order, t.ID)
		return t.ID
	}
	addClass := func(c class.Class) string {
		c.ID = uuid.NewString()
		db.classes.table[c.ID] = &c
		db.classes.order = append(db.classes.order, c.ID)
		return c.ID
	}
	addEmployee := func(e employee.Employee) string {
		e.ID = uuid.NewString()
		db.employees.table[e.ID] = &e
		db.employees.order = append(db.employees.order, e.ID)
		return e.ID
	}
	addAttendance := func(r attendance.Record) {
		r.ID = uuid.NewString()
		db.attendance.table[r.ID] = &r
		db.attendance.order = append(db.attendance.order, r.ID)
	}
	addPayment := func(r payment.Record) {
		r.ID = uuid.NewString()
		db.payments.table[r.ID] = &r
		db.payments.order = append(db.payments.order, r.ID)
	}

	emma := addClient(client.Client{
		Name: "Emma Wilson", Email: "emma@example.com", Phone: "+1 (555) 123-4567",
		MembershipType: "Premium", Status: client.StatusActive,
		JoinDate:    core.NewDate(2023, time.January, 15),
		PaymentPlan: client.PlanMonthly, PaymentAmount: 150,
		NextPaymentDate: core.NewDate(2024, time.February, 15),
		PaymentStatus:   client.PaymentActive, Notes: "Prefers morning classes",
	})
	john := addClient(client.Client{
		Name: "John Smith", Email: "john@example.com", Phone: "+1 (555) 234-5678",
		MembershipType: "Basic", Status: client.StatusActive,
		JoinDate:    core.NewDate(2023, time.March, 20),
		PaymentPlan: client.PlanQuarterly, PaymentAmount: 400,
		NextPaymentDate: core.NewDate(2024, time.January, 20),
		PaymentStatus:   client.PaymentOverdue, Notes: "Beginner level",
	})
	lisa := addClient(client.Client{
		Name: "Lisa Chen", Email: "lisa@example.com", Phone: "+1 (555) 345-6789",
		MembershipType: "Premium", Status: client.StatusActive,
		JoinDate:    core.NewDate(2023, time.May, 10),
		PaymentPlan: client.PlanAnnual, PaymentAmount: 1500,
		NextPaymentDate: core.NewDate(2024, time.May, 10),
		PaymentStatus:   client.PaymentActive, Notes: "Advanced practitioner",
	})

	sarah := addTeacher(teacher.Teacher{
		Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "+1 (555) 123-4567",
		Specialties: []string{"Hatha Yoga", "Meditation"}, ExperienceLevel: "5+ years",
		Status: teacher.StatusActive, HourlyRate: 75, Color: "#10B981",
		Bio: "Certified yoga instructor with 8 years of experience",
	})
	mike := addTeacher(teacher.Teacher{
		Name: "Mike Chen", Email: "mike@example.com", Phone: "+1 (555) 234-5678",
		Specialties: []string{"Vinyasa", "Power Yoga"}, ExperienceLevel: "3-5 years",
		Status: teacher.StatusActive, HourlyRate: 65, Color: "#3B82F6",
		Bio: "Dynamic instructor specializing in flow sequences",
	})
	anna := addTeacher(teacher.Teacher{
		Name: "Anna Rodriguez", Email: "anna@example.com", Phone: "+1 (555) 345-6789",
		Specialties: []string{"Pilates", "Strength Training"}, ExperienceLevel: "3-5 years",
		Status: teacher.StatusActive, HourlyRate: 70, Color: "#8B5CF6",
		Bio: "Pilates expert with focus on core strength",
	})

	morningVinyasa := addClass(class.Class{
		Name: "Morning Vinyasa", TeacherID: sarah, TeacherName: "Sarah Johnson",
		Day: "Monday", StartTime: "08:00", EndTime: "09:00",
		MaxCapacity: 20, CurrentEnrollment: 15,
		Description: "Energizing flow to start your week", Type: "Yoga", Price: 25,
		Status: class.StatusActive, EnrolledClients: []string{emma, john, lisa},
	})
	addClass(class.Class{
		Name: "Power Yoga", TeacherID: mike, TeacherName: "Mike Chen",
		Day: "Tuesday", StartTime: "18:00", EndTime: "19:00",
		MaxCapacity: 15, CurrentEnrollment: 12,
		Description: "High-intensity yoga for strength building", Type: "Yoga", Price: 30,
		Status: class.StatusActive, EnrolledClients: []string{emma, lisa},
	})
	addClass(class.Class{
		Name: "Pilates Core", TeacherID: anna, TeacherName: "Anna Rodriguez",
		Day: "Wednesday", StartTime: "10:00", EndTime: "11:00",
		MaxCapacity: 12, CurrentEnrollment: 8,
		Description: "Focus on core strength and stability", Type: "Pilates", Price: 28,
		Status: class.StatusActive, EnrolledClients: []string{john},
	})
	addClass(class.Class{
		Name: "Early Bird Yoga", TeacherID: sarah, TeacherName: "Sarah Johnson",
		Day: "Friday", StartTime: "06:00", EndTime: "07:00",
		MaxCapacity: 15, CurrentEnrollment: 8,
		Description: "Start your day with gentle stretches", Type: "Yoga", Price: 20,
		Status: class.StatusActive, EnrolledClients: []string{emma},
	})
	addClass(class.Class{
		Name: "Evening Flow", TeacherID: mike, TeacherName: "Mike Chen",
		Day: "Thursday", StartTime: "19:30", EndTime: "20:30",
		MaxCapacity: 18, CurrentEnrollment: 14,
		Description: "Unwind with a relaxing flow", Type: "Yoga", Price: 25,
		Status: class.StatusActive, EnrolledClients: []string{john, lisa},
	})

	addEmployee(employee.Employee{
		Name: "Alex Manager", Email: "alex@zenyoga.com", Role: employee.RoleManager,
		Permissions: []employee.Permission{employee.PermAll},
		Status:      employee.StatusActive, HireDate: core.NewDate(2023, time.January, 1),
	})
	jamie := addEmployee(employee.Employee{
		Name: "Jamie Assistant", Email: "jamie@zenyoga.com", Role: employee.RoleEmployee,
		Permissions: []employee.Permission{employee.PermClients, employee.PermTeachers},
		Status:      employee.StatusActive, HireDate: core.NewDate(2023, time.June, 15),
	})

	addAttendance(attendance.Record{
		PersonID: emma, PersonType: attendance.PersonClient, PersonName: "Emma Wilson",
		ClassID: morningVinyasa, ClassName: "Morning Vinyasa",
		Date: core.NewDate(2024, time.January, 22), Status: attendance.StatusPresent,
	})
	addAttendance(attendance.Record{
		PersonID: sarah, PersonType: attendance.PersonTeacher, PersonName: "Sarah Johnson",
		ClassID: morningVinyasa, ClassName: "Morning Vinyasa",
		Date: core.NewDate(2024, time.January, 22), Status: attendance.StatusPresent,
	})
	addAttendance(attendance.Record{
		PersonID: jamie, PersonType: attendance.PersonEmployee, PersonName: "Jamie Assistant",
		Date: core.NewDate(2024, time.January, 22), Status: attendance.StatusPresent,
		Notes: "Full day shift",
	})

	addPayment(payment.Record{
		ClientID: emma, ClientName: "Emma Wilson", Amount: 150,
		PaymentDate:   core.NewDate(2024, time.January, 15),
		PaymentMethod: payment.MethodCard, Notes: "Monthly Premium Membership",
	})
	addPayment(payment.Record{
		ClientID: john, ClientName: "John Smith", Amount: 400,
		PaymentDate:   core.NewDate(2023, time.October, 20),
		PaymentMethod: payment.MethodTransfer, Notes: "Quarterly payment - OVERDUE",
	})
	addPayment(payment.Record{
		ClientID: lisa, ClientName: "Lisa Chen", Amount: 1500,
		PaymentDate:   core.NewDate(2023, time.May, 10),
		PaymentMethod: payment.MethodCard, Notes: "Annual membership payment",
	})

	db.studio.profile = studio.Profile{
		Name:        "Zen Yoga Studio",
		Email:       "info@zenyoga.com",
		Phone:       "+1 (555) 987-6543",
		Address:     "123 Wellness Street, Mindful City, MC 12345",
		Website:     "https://zenyoga.com",
		Description: "A peaceful sanctuary for yoga and wellness practices.",
	}
}
