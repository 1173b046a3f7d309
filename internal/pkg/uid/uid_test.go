package uid

import (
	"testing"

	"github.com/oklog/ulid/v2"
)

func TestSnowflake_Generate(t *testing.T) {
	// Arrange
	gen, err := NewSnowflakeWithNode(7)
	if err != nil {
		t.Fatalf("NewSnowflakeWithNode() error = %v", err)
	}

	// Act
	seen := make(map[int64]struct{}, 1000)
	var last int64
	for range 1000 {
		id := gen.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d", id)
		}
		if id <= last {
			t.Fatalf("ids not increasing: %d after %d", id, last)
		}
		seen[id] = struct{}{}
		last = id
	}
}

func TestSnowflake_InvalidNode(t *testing.T) {
	if _, err := NewSnowflakeWithNode(5000); err == nil {
		t.Fatal("expected error for out of range node")
	}
}

func TestULID_GenerateSortable(t *testing.T) {
	// Arrange
	gen := NewULID()

	// Act
	a := gen.Generate()
	b := gen.Generate()

	// Assert
	if len(a) != ulid.EncodedSize {
		t.Fatalf("len = %d, want %d", len(a), ulid.EncodedSize)
	}
	if _, err := ulid.ParseStrict(a); err != nil {
		t.Fatalf("ParseStrict() error = %v", err)
	}
	if a >= b {
		t.Fatalf("expected %s < %s", a, b)
	}
}

func TestUUID_Generate(t *testing.T) {
	gen := NewUUID()
	if a, b := gen.Generate(), gen.Generate(); a == b || len(a) != 36 {
		t.Fatalf("unexpected uuids %q %q", a, b)
	}
}
