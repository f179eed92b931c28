package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/zenflowhq/zenflow/core"
)

type fakeRepo struct {
	records []Record
}

func (f *fakeRepo) QueryAllRecords(_ context.Context) ([]Record, error) { return f.records, nil }

func (f *fakeRepo) GetRecordByID(_ context.Context, id string) (Record, error) {
	for _, r := range f.records {
		if r.ID == id {
			return r, nil
		}
	}
	return Record{}, core.NewNotFoundError("attendance record", id)
}

func (f *fakeRepo) FindRecord(_ context.Context, personID string, pt PersonType, classID string, date core.Date) (Record, error) {
	for _, r := range f.records {
		if r.PersonID == personID && r.PersonType == pt && r.ClassID == classID && r.Date.Equal(date) {
			return r, nil
		}
	}
	return Record{}, core.NewNotFoundError("attendance record", "")
}

func (f *fakeRepo) CreateRecord(_ context.Context, r Record) (Record, error) {
	r.ID = "r" + string(rune('1'+len(f.records)))
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeRepo) UpdateRecord(_ context.Context, id string, ur UpdateRecord) (Record, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			if ur.Status != nil {
				f.records[i].Status = *ur.Status
			}
			if ur.Notes != nil {
				f.records[i].Notes = *ur.Notes
			}
			return f.records[i], nil
		}
	}
	return Record{}, core.NewNotFoundError("attendance record", id)
}

// fakeDirectory knows a fixed set of people keyed by type.
type fakeDirectory map[PersonType]map[string]string

func (f fakeDirectory) PersonName(_ context.Context, pt PersonType, id string) (string, error) {
	if name, ok := f[pt][id]; ok {
		return name, nil
	}
	return "", core.NewNotFoundError(string(pt), id)
}

type fakeClasses map[string]string

func (f fakeClasses) ClassName(_ context.Context, id string) (string, error) {
	if name, ok := f[id]; ok {
		return name, nil
	}
	return "", core.NewNotFoundError("class", id)
}

func newTestService() (*Service, *fakeRepo) {
	repo := &fakeRepo{}
	dir := fakeDirectory{
		PersonClient:  {"c1": "Sarah Johnson"},
		PersonTeacher: {"t1": "Maya Patel"},
	}
	classes := fakeClasses{"k1": "Vinyasa Flow"}
	return NewService(repo, dir, classes), repo
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	date := core.NewDate(2026, time.August, 24)

	tests := []struct {
		name    string
		nr      NewRecord
		wantErr bool
	}{
		{name: "client with class", nr: NewRecord{PersonID: "c1", PersonType: PersonClient, ClassID: "k1", Date: date, Status: StatusPresent}},
		{name: "teacher without class", nr: NewRecord{PersonID: "t1", PersonType: PersonTeacher, Date: date, Status: StatusPresent}},
		{name: "unknown person", nr: NewRecord{PersonID: "nope", PersonType: PersonClient, Date: date, Status: StatusPresent}, wantErr: true},
		{name: "wrong person type", nr: NewRecord{PersonID: "c1", PersonType: PersonTeacher, Date: date, Status: StatusPresent}, wantErr: true},
		{name: "unknown class", nr: NewRecord{PersonID: "c1", PersonType: PersonClient, ClassID: "nope", Date: date, Status: StatusPresent}, wantErr: true},
		{name: "bad status", nr: NewRecord{PersonID: "c1", PersonType: PersonClient, Date: date, Status: "maybe"}, wantErr: true},
		{name: "no date", nr: NewRecord{PersonID: "c1", PersonType: PersonClient, Status: StatusPresent}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.Create(ctx, tt.nr)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	t.Run("snapshots person and class names", func(t *testing.T) {
		svc, _ := newTestService()
		r, err := svc.Create(ctx, NewRecord{PersonID: "c1", PersonType: PersonClient, ClassID: "k1", Date: date, Status: StatusPresent})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if r.PersonName != "Sarah Johnson" {
			t.Errorf("person_name = %q", r.PersonName)
		}
		if r.ClassName != "Vinyasa Flow" {
			t.Errorf("class_name = %q", r.ClassName)
		}
	})

	t.Run("rejects duplicates per person, class and date", func(t *testing.T) {
		svc, _ := newTestService()
		nr := NewRecord{PersonID: "c1", PersonType: PersonClient, ClassID: "k1", Date: date, Status: StatusPresent}
		if _, err := svc.Create(ctx, nr); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if _, err := svc.Create(ctx, nr); err == nil {
			t.Error("Create() accepted a duplicate")
		}

		// the same person on the same date without a class is distinct
		nr.ClassID = ""
		if _, err := svc.Create(ctx, nr); err != nil {
			t.Errorf("Create() error = %v", err)
		}
		// and on another date
		nr.ClassID, nr.Date = "k1", date.AddDays(1)
		if _, err := svc.Create(ctx, nr); err != nil {
			t.Errorf("Create() error = %v", err)
		}
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	r, err := svc.Create(ctx, NewRecord{
		PersonID: "c1", PersonType: PersonClient, Date: core.NewDate(2026, time.August, 24), Status: StatusPresent,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	status := StatusLate
	notes := "arrived late"
	updated, err := svc.Update(ctx, r.ID, UpdateRecord{Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != StatusLate || updated.Notes != notes {
		t.Errorf("unexpected record: %+v", updated)
	}
	if updated.PersonName != r.PersonName || !updated.Date.Equal(r.Date) {
		t.Error("the snapshot and date must not change")
	}

	bad := Status("maybe")
	if _, err = svc.Update(ctx, r.ID, UpdateRecord{Status: &bad}); err == nil {
		t.Error("Update() accepted a bad status")
	}

	if _, err = svc.Update(ctx, "nope", UpdateRecord{Status: &status}); !core.IsNotFound(err) {
		t.Errorf("Update() error = %v, want not found", err)
	}
}
