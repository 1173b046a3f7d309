package entity

import (
	"testing"
	"time"
)

func TestEnrollment_CompletionValid(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	before, same, after := start.AddDate(0, 0, -1), start, start.AddDate(0, 1, 0)

	tests := []struct {
		name string
		done *time.Time
		want bool
	}{
		{name: "open", done: nil, want: true},
		{name: "same day", done: &same, want: true},
		{name: "later", done: &after, want: true},
		{name: "earlier", done: &before, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Enrollment{EnrollmentDate: start, CompletionDate: tt.done}
			if got := e.CompletionValid(); got != tt.want {
				t.Fatalf("CompletionValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudent_FullName(t *testing.T) {
	if got := (Student{FirstName: "Ada", LastName: "Lovelace"}).FullName(); got != "Ada Lovelace" {
		t.Fatalf("FullName() = %q", got)
	}
}
