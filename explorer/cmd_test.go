package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testTrips = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-01-02 08:00:00,2017-01-02 08:10:00,600,A,B,Subscriber
2017-01-03 09:00:00,2017-01-03 09:05:00,300,A,C,Customer
`

const testConfig = `log_level: error
page_size: 5
data:
  time_layout: "2006-01-02 15:04:05"
  cities:
    chicago: {trips_file: chicago.csv, schema: {has_gender: true, has_birth_year: true}}
    new york city: {trips_file: new_york_city.csv, schema: {has_gender: true, has_birth_year: true}}
    washington: {trips_file: washington.csv}
`

func TestRootCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RABBIT_URL", "")
	t.Setenv("DATA_DIR", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(testTrips), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", configPath, "--data-dir", dir})
	cmd.SetIn(strings.NewReader("washington\nall\nall\nyes\nyes\nno\n"))
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, e := range []string{"Trips analyzed: 2", "Most commonly used start station is:", "A (2 trips)", "no other data to display"} {
		if !strings.Contains(output, e) {
			t.Errorf("output does not contain %q", e)
		}
	}
}

func TestRootCommandMissingData(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RABBIT_URL", "")
	t.Setenv("DATA_DIR", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", configPath, "--data-dir", dir})
	cmd.SetIn(strings.NewReader("chicago\nall\nall\nyes\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "data unavailable") {
		t.Errorf("expected a data unavailable error, got %v", err)
	}
}

func TestRootCommandBadConfig(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
