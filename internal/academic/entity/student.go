package entity

import "time"

type Student struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	DateOfBirth      *time.Time
	Address          *string
	City             *string
	Country          *string
	EducationLevel   *string
	ResumePath       *string
	IsActive         bool
	EnrollmentsCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

type StudentFilter struct {
	Search   string
	IsActive *bool
	Size     int32
	Offset   int32
}
