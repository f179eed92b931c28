package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "valid", in: `"2026-08-24"`, want: NewDate(2026, time.August, 24)},
		{name: "null is zero", in: `null`, want: Date{}},
		{name: "empty string is zero", in: `""`, want: Date{}},
		{name: "bad layout", in: `"24/08/2026"`, wantErr: true},
		{name: "not a string", in: `20260824`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !d.Equal(tt.want) {
				t.Errorf("got %v, want %v", d, tt.want)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		d := NewDate(2026, time.August, 24)
		data, err := json.Marshal(d)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `"2026-08-24"` {
			t.Errorf("got %s, want %q", data, "2026-08-24")
		}
	})

	t.Run("zero marshals empty", func(t *testing.T) {
		data, err := json.Marshal(Date{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `""` {
			t.Errorf("got %s, want \"\"", data)
		}
	})
}

func TestDate_Scan(t *testing.T) {
	want := NewDate(2026, time.August, 24)

	tests := []struct {
		name    string
		src     interface{}
		want    Date
		wantErr bool
	}{
		{name: "nil", src: nil, want: Date{}},
		{name: "time.Time", src: time.Date(2026, time.August, 24, 15, 4, 5, 0, time.UTC), want: want},
		{name: "string", src: "2026-08-24", want: want},
		{name: "bytes", src: []byte("2026-08-24"), want: want},
		{name: "unsupported type", src: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !d.Equal(tt.want) {
				t.Errorf("got %v, want %v", d, tt.want)
			}
		})
	}
}

func TestDate_ordering(t *testing.T) {
	d1 := NewDate(2026, time.August, 24)
	d2 := d1.AddDays(7)

	if !d1.Before(d2) || d2.Before(d1) {
		t.Error("Before() is inconsistent")
	}
	if !d2.After(d1) {
		t.Error("After() is inconsistent")
	}
	if !d1.AddDays(0).Equal(d1) {
		t.Error("AddDays(0) must be a no-op")
	}
	if got := d1.AddDays(8); !got.Equal(NewDate(2026, time.September, 1)) {
		t.Errorf("AddDays() did not roll over the month: %v", got)
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 23:30 at UTC+9 is 14:30 UTC, same calendar day
	d := DateOf(time.Date(2026, time.August, 24, 23, 30, 0, 0, loc))
	if !d.Equal(NewDate(2026, time.August, 24)) {
		t.Errorf("DateOf() = %v; the date is taken in UTC", d)
	}
}
