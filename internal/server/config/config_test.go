package config

import (
	"os"
	"path/filepath"
	"testing"
)

func resetArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t, []string{"test"})

	cfg := LoadConfig()

	if cfg.EndpointAddr != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.EndpointAddr)
	}
	if cfg.Backend != BackendFile {
		t.Errorf("unexpected backend: %s", cfg.Backend)
	}
	if cfg.DatasetKey != "data.json" {
		t.Errorf("unexpected dataset key: %s", cfg.DatasetKey)
	}
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	resetArgs(t, []string{"test", "-a", ":9090", "-k", "s3", "-b", "dashboards"})

	cfg := LoadConfig()

	if cfg.EndpointAddr != ":9090" {
		t.Errorf("flag -a not applied: %s", cfg.EndpointAddr)
	}
	if cfg.Backend != BackendS3 {
		t.Errorf("flag -k not applied: %s", cfg.Backend)
	}
	if cfg.S3Bucket != "dashboards" {
		t.Errorf("flag -b not applied: %s", cfg.S3Bucket)
	}
}

func TestLoadConfig_JsonOverlayThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.json")
	body := `{"endpoint_addr": ":7070", "backend": "postgres", "database_dsn": "postgres://u:p@h:5432/db"}`
	if err := os.WriteFile(path, []byte(body), 0o660); err != nil {
		t.Fatal(err)
	}

	resetArgs(t, []string{"test", "-c", path, "-a", ":6060"})

	cfg := LoadConfig()

	// flags win over the JSON overlay
	if cfg.EndpointAddr != ":6060" {
		t.Errorf("flag should override json: %s", cfg.EndpointAddr)
	}
	if cfg.Backend != BackendPostgres {
		t.Errorf("json backend not applied: %s", cfg.Backend)
	}
	if cfg.DatabaseDSN != "postgres://u:p@h:5432/db" {
		t.Errorf("json dsn not applied: %s", cfg.DatabaseDSN)
	}
}
