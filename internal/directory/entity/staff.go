package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/imaging"
)

// Kind separates the two staff directories that share one table.
type Kind string

const (
	KindManagement      Kind = "management"
	KindAcademicCouncil Kind = "academic_council"
)

func (k Kind) String() string {
	return string(k)
}

// Label is the singular name used in messages.
func (k Kind) Label() string {
	if k == KindAcademicCouncil {
		return "Academic council member"
	}
	return "Management member"
}

type StaffProfile struct {
	ID             int64
	Kind           Kind
	Name           string
	Position       *string
	Designation    *string
	Bio            *string
	Qualifications *string
	Email          *string
	Phone          *string
	Department     *string
	Image          *string
	ImageMime      *string
	ImageSize      imaging.Size
	ImageWidth     *int
	ImageHeight    *int
	Order          int32
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type StaffFilter struct {
	Kind     Kind
	IsActive *bool
	Size     int32
	Offset   int32
}
