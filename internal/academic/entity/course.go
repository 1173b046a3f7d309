package entity

import (
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (l Level) String() string {
	return string(l)
}

type Course struct {
	ID               int64
	Title            string
	Description      *string
	Code             string
	DurationHours    int32
	Price            valueobject.Money
	Level            Level
	Instructor       *string
	IsActive         bool
	EnrollmentsCount int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CourseFilter struct {
	Search   string
	Level    *Level
	IsActive *bool
	Size     int32
	Offset   int32
}
