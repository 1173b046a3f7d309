package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusInReview  Status = "in_review"
	StatusContacted Status = "contacted"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// Submission is a form sent from the public site (admission, contact,
// career and similar forms share the table, told apart by FormType).
type Submission struct {
	ID            int64
	FormType      string
	FullName      string
	Email         string
	Phone         *string
	Title         *string
	Status        Status
	Payload       valueobject.JSONMap
	AdminNotes    *string
	AdminViewedAt *time.Time
	IP            *string
	UserAgent     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Filter struct {
	FormType *string
	Status   *Status
	Search   string
	Size     int32
	Offset   int32
}
