package config

import (
	"os"
	"testing"
)

func unsetEnv() {
	_ = os.Unsetenv("TIMECONV_HTTP_PORT")
	_ = os.Unsetenv("TIMECONV_SOURCE_ZONE")
	_ = os.Unsetenv("TIMECONV_TARGET_ZONE")
	_ = os.Unsetenv("TIMECONV_BATCH_PARALLELISM")
	_ = os.Unsetenv("TIMECONV_BATCH_SEQUENTIAL_THRESHOLD")
	_ = os.Unsetenv("TIMECONV_LIVE_TICK_MILLIS")
	_ = os.Unsetenv("TIMECONV_HISTORY_ENABLED")
	_ = os.Unsetenv("TIMECONV_HISTORY_PATH")
}

func TestConfigLoad_Defaults(t *testing.T) {
	unsetEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.SourceZone != "UTC" || cfg.TargetZone != "UTC" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.BatchSequentialThreshold != 16 || cfg.LiveTickMillis != 1000 {
		t.Fatalf("unexpected batch/live defaults: %+v", cfg)
	}
	if cfg.HistoryEnabled {
		t.Fatalf("history should default off")
	}
}

func TestConfigLoad_EnvOverride(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("TIMECONV_HTTP_PORT", "9090")
	_ = os.Setenv("TIMECONV_TARGET_ZONE", "Asia/Tokyo")
	defer unsetEnv()

	cfg, err := New()
	if err != nil {
		t.Fatalf("config load: %v", err)
	}
	if cfg.HTTPPort != 9090 {
		t.Fatalf("port env override failed, got %d", cfg.HTTPPort)
	}
	if cfg.TargetZone != "Asia/Tokyo" {
		t.Fatalf("zone env override failed, got %s", cfg.TargetZone)
	}
}

func TestResolveDefaults_RejectsBadPort(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("TIMECONV_HTTP_PORT", "70000")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestResolveDefaults_RejectsZeroTick(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("TIMECONV_LIVE_TICK_MILLIS", "0")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for zero tick period")
	}
}

func TestResolveDefaults_HistoryNeedsPath(t *testing.T) {
	unsetEnv()
	_ = os.Setenv("TIMECONV_HISTORY_ENABLED", "true")
	defer unsetEnv()

	if _, err := New(); err == nil {
		t.Fatal("expected error for history without a path")
	}
}

func TestResolveDefaults_EmptyZonesFallBackToUTC(t *testing.T) {
	cfg := &Config{HTTPPort: 8080, SourceZone: "", TargetZone: "", BatchSequentialThreshold: 16, LiveTickMillis: 1000}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.SourceZone != "UTC" || cfg.TargetZone != "UTC" {
		t.Fatalf("zones not defaulted: %+v", cfg)
	}
}
