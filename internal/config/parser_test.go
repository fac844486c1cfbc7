package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseKV(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue any
		wantErr   bool
	}{
		{
			name:      "simple string",
			input:     "bucket=screenshots",
			wantKey:   "bucket",
			wantValue: "screenshots",
			wantErr:   false,
		},
		{
			name:      "integer value",
			input:     "port=9000",
			wantKey:   "port",
			wantValue: 9000,
			wantErr:   false,
		},
		{
			name:      "float value",
			input:     "ratio=0.5",
			wantKey:   "ratio",
			wantValue: 0.5,
			wantErr:   false,
		},
		{
			name:      "boolean true",
			input:     "secure=true",
			wantKey:   "secure",
			wantValue: true,
			wantErr:   false,
		},
		{
			name:      "boolean false",
			input:     "secure=false",
			wantKey:   "secure",
			wantValue: false,
			wantErr:   false,
		},
		{
			name:      "value with equals sign",
			input:     "token=abc=def",
			wantKey:   "token",
			wantValue: "abc=def",
			wantErr:   false,
		},
		{
			name:      "spaces trimmed",
			input:     " region = us-east-1 ",
			wantKey:   "region",
			wantValue: "us-east-1",
			wantErr:   false,
		},
		{
			name:    "missing equals",
			input:   "bucket",
			wantErr: true,
		},
		{
			name:    "empty key",
			input:   "=value",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := ParseKV(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if key != tt.wantKey {
				t.Errorf("Expected key %q, got %q", tt.wantKey, key)
			}
			if !reflect.DeepEqual(value, tt.wantValue) {
				t.Errorf("Expected value %v (%T), got %v (%T)", tt.wantValue, tt.wantValue, value, value)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	result, err := ParseJSON(`{"endpoint":"localhost:9000","secure":false}`)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result["endpoint"] != "localhost:9000" {
		t.Errorf("Expected endpoint localhost:9000, got %v", result["endpoint"])
	}
	if result["secure"] != false {
		t.Errorf("Expected secure false, got %v", result["secure"])
	}

	if _, err := ParseJSON(`{"endpoint":`); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
	if _, err := ParseJSON(`["not","a","map"]`); err == nil {
		t.Error("Expected error for non-object JSON, got nil")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	if err := os.WriteFile(path, []byte(`{"bucket":"screenshots"}`), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	result, err := ParseFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result["bucket"] != "screenshots" {
		t.Errorf("Expected bucket screenshots, got %v", result["bucket"])
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("TESTCFG", `{"bucket":"from-json"}`)
	t.Setenv("TESTCFG_ENDPOINT", "localhost:9000")
	t.Setenv("TESTCFG_SECURE", "false")

	result := ParseEnvWithPrefix("TESTCFG")
	if result == nil {
		t.Fatal("Expected config from environment, got nil")
	}
	if result["bucket"] != "from-json" {
		t.Errorf("Expected bucket from-json, got %v", result["bucket"])
	}
	if result["endpoint"] != "localhost:9000" {
		t.Errorf("Expected endpoint localhost:9000, got %v", result["endpoint"])
	}
	if result["secure"] != false {
		t.Errorf("Expected secure false (typed), got %v (%T)", result["secure"], result["secure"])
	}

	if got := ParseEnvWithPrefix("TESTCFG_UNSET_PREFIX"); got != nil {
		t.Errorf("Expected nil for unset prefix, got %v", got)
	}
}

func TestBuildWithPrefixPrecedence(t *testing.T) {
	t.Setenv("TESTBUILD_BUCKET", "from-env")
	t.Setenv("TESTBUILD_REGION", "us-east-1")

	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"bucket":"from-file","endpoint":"localhost:9000"}`), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	result, err := BuildWithPrefix(
		"TESTBUILD",
		`{"bucket":"from-json"}`,
		[]string{"bucket=from-kv"},
		path,
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// KV beats JSON beats file beats env.
	if result["bucket"] != "from-kv" {
		t.Errorf("Expected bucket from-kv, got %v", result["bucket"])
	}
	// Lower-priority sources still contribute keys they alone define.
	if result["endpoint"] != "localhost:9000" {
		t.Errorf("Expected endpoint localhost:9000, got %v", result["endpoint"])
	}
	if result["region"] != "us-east-1" {
		t.Errorf("Expected region us-east-1, got %v", result["region"])
	}
}

func TestBuildWithPrefixEmpty(t *testing.T) {
	result, err := BuildWithPrefix("TESTEMPTY_UNSET", "", nil, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("Expected nil config, got %v", result)
	}
}
