package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) String() string {
	return string(p)
}

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentSuspended EnrollmentStatus = "suspended"
)

func (e EnrollmentStatus) String() string {
	return string(e)
}

type Enrollment struct {
	ID               int64
	StudentID        int64
	CourseID         int64
	EnrollmentDate   time.Time
	AmountPaid       valueobject.Money
	PaymentStatus    PaymentStatus
	EnrollmentStatus EnrollmentStatus
	CompletionDate   *time.Time
	Remarks          *string
	Student          StudentRef
	Course           CourseRef
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CompletionValid reports whether the completion date, when set, is not
// before the enrollment date.
func (e Enrollment) CompletionValid() bool {
	return e.CompletionDate == nil || !e.CompletionDate.Before(e.EnrollmentDate)
}

type StudentRef struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

type CourseRef struct {
	ID    int64
	Title string
	Code  string
}

type EnrollmentFilter struct {
	StudentID        int64
	CourseID         int64
	PaymentStatus    *PaymentStatus
	EnrollmentStatus *EnrollmentStatus
	Size             int32
	Offset           int32
}
