package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `
app:
  name: academia
modules:
  admin:
    login_otp: true
    otp:
      ttl_seconds: 300
  notification:
    consumer_names: "application_submitted, ,admin_credential_changed"
app_cors:
  - https://a.test
  - https://b.test
setting:
  secret_key: "c2VjcmV0"
  broken_key: "%%%"
`

func TestViper_Getters(t *testing.T) {
	// Arrange
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	// Assert
	if got := cfg.GetString("app.name"); got != "academia" {
		t.Fatalf("GetString() = %q", got)
	}
	if !cfg.GetBool("modules.admin.login_otp") {
		t.Fatal("GetBool() = false")
	}
	if got := cfg.GetSecond("modules.admin.otp.ttl_seconds"); got != 5*time.Minute {
		t.Fatalf("GetSecond() = %s", got)
	}
	if got := cfg.GetArray("modules.notification.consumer_names"); len(got) != 2 || got[1] != "admin_credential_changed" {
		t.Fatalf("GetArray() = %#v", got)
	}
	if got := cfg.GetArray("app_cors"); len(got) != 2 || got[0] != "https://a.test" {
		t.Fatalf("GetArray(list) = %#v", got)
	}
	if got := string(cfg.GetBinary("setting.secret_key")); got != "secret" {
		t.Fatalf("GetBinary() = %q", got)
	}
	if got := cfg.GetBinary("setting.broken_key"); got != nil {
		t.Fatalf("GetBinary(invalid) = %v", got)
	}
	if got := cfg.GetArray("missing.key"); len(got) != 0 {
		t.Fatalf("GetArray(missing) = %#v", got)
	}
}

func TestViper_EnvOverride(t *testing.T) {
	// Arrange
	t.Setenv("ACADEMIA_APP_NAME", "from-env")
	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	// Act
	got := cfg.GetString("app.name")

	// Assert
	if got != "from-env" {
		t.Fatalf("GetString() = %q, want from-env", got)
	}
}

func TestNewViperFromBytes_RequiresType(t *testing.T) {
	if _, err := NewViperFromBytes(" ", nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestViper_Defaults(t *testing.T) {
	// Arrange
	t.Setenv("ACADEMIA_JWT_TTL_MINUTES", "30")
	cfg, err := NewViperFromBytes("yaml", []byte("app:\n  name: academia\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	// Assert
	if got := cfg.GetString("app.server.http.address"); got != ":8080" {
		t.Fatalf("address = %q", got)
	}
	if got := cfg.GetInt("hash.bcrypt.cost"); got != 12 {
		t.Fatalf("bcrypt cost = %d", got)
	}
	if got := cfg.GetMinute("jwt.ttl_minutes"); got != 30*time.Minute {
		t.Fatalf("env must win over defaults, got %s", got)
	}
}

func TestNewViper_File(t *testing.T) {
	// Arrange
	file := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(file, []byte(testYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Act
	cfg, err := NewViper(file)
	_, errMissing := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))

	// Assert
	if err != nil {
		t.Fatalf("NewViper() error = %v", err)
	}
	if got := cfg.GetString("app.name"); got != "academia" {
		t.Fatalf("GetString() = %q", got)
	}
	if errMissing == nil {
		t.Fatal("expected error for missing file")
	}
}
