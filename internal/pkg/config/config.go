package config

import (
	"io"
	"time"
)

// Config reads typed values by dotted key, e.g. "modules.admin.otp.ttl_seconds".
// Missing keys yield the zero value of the requested type.
type Config interface {
	io.Closer

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetInt32(key string) int32
	GetUint16(key string) uint16
	GetFloat64(key string) float64

	// GetSecond reads an integer count of seconds.
	GetSecond(key string) time.Duration
	// GetMinute reads an integer count of minutes.
	GetMinute(key string) time.Duration

	// GetBinary decodes a base64 value. Invalid base64 yields nil.
	GetBinary(key string) []byte
	// GetArray reads either a YAML list or a comma separated string, with
	// blank elements dropped.
	GetArray(key string) []string
}
