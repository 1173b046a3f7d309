// Package valueobject holds small value types shared by several modules.
package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"maps"
)

// ErrScanValueNotBytes indicates the database value is not JSON text.
var ErrScanValueNotBytes = errors.New("valueobject: jsonmap scan value is not []byte")

// JSONMap stores a JSON object: OTP metadata, application payloads and
// notification data.
// @swaggertype object
type JSONMap map[string]any

// Value implements driver.Valuer. A nil map is stored as {}.
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSONMap) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*j = JSONMap{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case map[string]any:
		*j = JSONMap(v)
		return nil
	default:
		return ErrScanValueNotBytes
	}

	result := JSONMap{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// GetString returns the value under key when it is a string, else "".
func (j JSONMap) GetString(key string) string {
	if v, ok := j[key].(string); ok {
		return v
	}
	return ""
}

// Merge returns a copy of j with other's keys written over it.
func (j JSONMap) Merge(other JSONMap) JSONMap {
	out := make(JSONMap, len(j)+len(other))
	maps.Copy(out, j)
	maps.Copy(out, other)
	return out
}
