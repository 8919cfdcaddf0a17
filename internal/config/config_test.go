package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8099" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "battles.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.BatchWorkers != 0 {
		t.Errorf("BatchWorkers = %d", cfg.BatchWorkers)
	}
	if cfg.ScriptTimeout != time.Second {
		t.Errorf("ScriptTimeout = %v", cfg.ScriptTimeout)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BATTLED_LISTEN_ADDR", "0.0.0.0:9000")
	t.Setenv("BATTLED_DB_PATH", "/tmp/replays.db")
	t.Setenv("BATTLED_BATCH_WORKERS", "4")
	t.Setenv("BATTLED_SCRIPT_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "/tmp/replays.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.BatchWorkers != 4 {
		t.Errorf("BatchWorkers = %d", cfg.BatchWorkers)
	}
	if cfg.ScriptTimeout != 250*time.Millisecond {
		t.Errorf("ScriptTimeout = %v", cfg.ScriptTimeout)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("BATTLED_SCRIPT_TIMEOUT", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatal("malformed duration was accepted")
	}
}
