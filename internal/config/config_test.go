package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileMissingUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if *cfg != *want {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db_path: /tmp/stage.db\ncheck_timeout_secs: 3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/stage.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.CheckTimeout() != 3*time.Second {
		t.Errorf("CheckTimeout = %v", cfg.CheckTimeout())
	}
	// untouched keys keep their defaults
	if cfg.InitTimeoutSecs != Default().InitTimeoutSecs {
		t.Errorf("InitTimeoutSecs = %d", cfg.InitTimeoutSecs)
	}
	if cfg.SnapshotKeep != Default().SnapshotKeep {
		t.Errorf("SnapshotKeep = %d", cfg.SnapshotKeep)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := os.WriteFile(path, []byte("check_timeout_secs: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("negative timeout should fail")
	}

	if err := os.WriteFile(path, []byte("not: [valid\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed yaml should fail")
	}
}
