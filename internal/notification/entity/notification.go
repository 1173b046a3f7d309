package entity

import (
	"errors"
	"time"

	"github.com/shandysiswandi/academia/internal/pkg/valueobject"
)

var ErrTypeUnknown = errors.New("unknown notification type")

type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
	TypeSuccess Type = "success"
)

func (t Type) String() string {
	return string(t)
}

// ParseType maps raw to a Type, treating empty as info.
func ParseType(raw string) (Type, error) {
	switch Type(raw) {
	case "":
		return TypeInfo, nil
	case TypeInfo, TypeWarning, TypeError, TypeSuccess:
		return Type(raw), nil
	default:
		return "", ErrTypeUnknown
	}
}

// Notification is an in-app message addressed to one admin.
type Notification struct {
	ID          int64
	RecipientID int64
	Title       string
	Message     string
	Type        Type
	Data        valueobject.JSONMap
	ReadAt      *time.Time
	CreatedAt   time.Time
}

func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}

type Filter struct {
	RecipientID int64
	UnreadOnly  bool
	Size        int32
	Offset      int32
}
