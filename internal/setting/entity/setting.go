package entity

import (
	"slices"
	"time"
)

// MaskedValue replaces sensitive values in list responses.
const MaskedValue = "********"

// GroupSMTP holds the outgoing mail settings.
const GroupSMTP = "smtp"

var sensitiveKeys = []string{
	"smtp.password",
	"smtp.username",
	"smtp.resend_api_key",
}

// IsSensitiveKey reports whether values under key are encrypted at rest.
func IsSensitiveKey(key string) bool {
	return slices.Contains(sensitiveKeys, key)
}

type Type string

const (
	TypeText    Type = "text"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeJSON    Type = "json"
)

func (t Type) String() string {
	return string(t)
}

type Setting struct {
	ID          int64
	Key         string
	Value       *string
	Type        Type
	Group       string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Setting) Sensitive() bool {
	return IsSensitiveKey(s.Key)
}

// Masked returns a copy whose value is hidden when the key is sensitive.
func (s Setting) Masked() Setting {
	if s.Sensitive() && s.Value != nil && *s.Value != "" {
		v := MaskedValue
		s.Value = &v
	}
	return s
}

type SettingFilter struct {
	Group    *string
	IsPublic *bool
	Size     int32
	Offset   int32
}
