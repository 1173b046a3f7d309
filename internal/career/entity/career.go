package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full-time"
	EmploymentPartTime EmploymentType = "part-time"
	EmploymentContract EmploymentType = "contract"
)

type JobPosting struct {
	ID             int64
	Title          string
	Department     *string
	Description    *string
	Requirements   *string
	Location       *string
	EmploymentType *EmploymentType
	SalaryMin      *valueobject.Money
	SalaryMax      *valueobject.Money
	Deadline       *time.Time
	IsActive       bool
	Order          int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SalaryRangeValid reports whether the upper bound, when both are set, is not
// below the lower one.
func (j JobPosting) SalaryRangeValid() bool {
	return j.SalaryMin == nil || j.SalaryMax == nil || *j.SalaryMax >= *j.SalaryMin
}

type Career struct {
	ID             int64
	Title          string
	Description    *string
	Requirements   *string
	Location       *string
	EmploymentType *EmploymentType
	Department     *string
	ApplyURL       *string
	IsActive       bool
	Order          int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter selects a page of postings or careers. Rows come ordered by
// display order, newest first within the same order.
type Filter struct {
	IsActive *bool
	Size     int32
	Offset   int32
}
