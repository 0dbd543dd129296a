package utils

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestContainsString(t *testing.T) {
	cities := []string{"chicago", "new york city", "washington"}
	if !ContainsString("washington", cities) {
		t.Error("washington should be found")
	}
	if ContainsString("boston", cities) {
		t.Error("boston should not be found")
	}
}

func TestInitLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	if err := InitLogger("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}

	if err := InitLogger("loud"); err == nil {
		t.Error("invalid level should fail")
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := GetConfigFile(path)
	if err != nil || string(content) != "log_level: info\n" {
		t.Errorf("unexpected content %q (%v)", content, err)
	}

	if _, err := GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
