package config

import (
	"os"
	"path/filepath"
	"testing"

	"edugestao/internal/kv"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.StorageDriver != "sqlite" || cfg.SQLitePath != "edugestao.db" || cfg.LogLevel != "info" || cfg.ExportDir != "." {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Storage().Driver != kv.DriverSQLite {
		t.Fatalf("expected sqlite driver, got %s", cfg.Storage().Driver)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("EDUGESTAO_STORAGE_DRIVER", "s3")
	t.Setenv("EDUGESTAO_S3_BUCKET", "registry")
	t.Setenv("EDUGESTAO_S3_PATH_STYLE", "true")
	t.Setenv("EDUGESTAO_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("EDUGESTAO_LOG_FORMAT", "pretty")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	st := cfg.Storage()
	if st.Driver != kv.DriverS3 || st.S3.Bucket != "registry" || !st.S3.PathStyle || st.S3.Endpoint != "http://localhost:9000" {
		t.Fatalf("unexpected storage config %+v", st)
	}
	if cfg.LogFormat != "pretty" {
		t.Fatalf("log format not read: %s", cfg.LogFormat)
	}
}

func TestParseRejectsMalformedBool(t *testing.T) {
	t.Setenv("EDUGESTAO_S3_PATH_STYLE", "maybe")
	if _, err := Parse(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "EDUGESTAO_STORAGE_DRIVER=fs\nEDUGESTAO_FS_ROOT=/tmp/from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("EDUGESTAO_FS_ROOT", "/tmp/from-env")
	// t.Setenv restores the variable godotenv is about to set.
	t.Setenv("EDUGESTAO_STORAGE_DRIVER", "")
	if err := os.Unsetenv("EDUGESTAO_STORAGE_DRIVER"); err != nil {
		t.Fatalf("unsetenv: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorageDriver != "fs" {
		t.Fatalf("expected driver from file, got %s", cfg.StorageDriver)
	}
	if cfg.FSRoot != "/tmp/from-env" {
		t.Fatalf("environment should win, got %s", cfg.FSRoot)
	}
}
