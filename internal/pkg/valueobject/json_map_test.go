package valueobject

import (
	"errors"
	"testing"
)

func TestJSONMap_Scan(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		wantKey string
		wantVal string
		wantErr error
	}{
		{name: "bytes", value: []byte(`{"ip":"10.0.0.1"}`), wantKey: "ip", wantVal: "10.0.0.1"},
		{name: "string", value: `{"intent":"login"}`, wantKey: "intent", wantVal: "login"},
		{name: "decoded map", value: map[string]any{"new_email": "a@b.test"}, wantKey: "new_email", wantVal: "a@b.test"},
		{name: "nil", value: nil},
		{name: "unsupported", value: 42, wantErr: ErrScanValueNotBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var m JSONMap

			// Act
			err := m.Scan(tt.value)

			// Assert
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Scan() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantKey != "" && m.GetString(tt.wantKey) != tt.wantVal {
				t.Fatalf("GetString(%q) = %q, want %q", tt.wantKey, m.GetString(tt.wantKey), tt.wantVal)
			}
		})
	}
}

func TestJSONMap_ValueNil(t *testing.T) {
	var m JSONMap

	v, err := m.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != "{}" {
		t.Fatalf("Value() = %s, want {}", v)
	}
}

func TestJSONMap_Merge(t *testing.T) {
	// Arrange
	base := JSONMap{"course": "Go 101", "message": "old"}

	// Act
	got := base.Merge(JSONMap{"message": "Hello"})

	// Assert
	if got.GetString("message") != "Hello" || got.GetString("course") != "Go 101" {
		t.Fatalf("Merge() = %v", got)
	}
	if base.GetString("message") != "old" {
		t.Fatal("Merge() mutated the receiver")
	}
}
