package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/greenpoints",
	}))
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}

	if cfg.RunAddress != ":8080" {
		t.Errorf("RunAddress = %q, want :8080", cfg.RunAddress)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.CatalogCacheTTL != 30*time.Second {
		t.Errorf("CatalogCacheTTL = %v, want 30s", cfg.CatalogCacheTTL)
	}
	if cfg.SweepInterval != time.Minute {
		t.Errorf("SweepInterval = %v, want 1m", cfg.SweepInterval)
	}
	if cfg.SweepBatchSize != 64 {
		t.Errorf("SweepBatchSize = %d, want 64", cfg.SweepBatchSize)
	}
	if cfg.WorkerPoolSize != 4 {
		t.Errorf("WorkerPoolSize = %d, want 4", cfg.WorkerPoolSize)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Error("load() without DATABASE_URI must fail")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":      "postgres://localhost/greenpoints",
		"RUN_ADDRESS":       ":9090",
		"REDIS_ADDR":        "localhost:6379",
		"TOKEN_SECRET":      "env-secret",
		"CATALOG_CACHE_TTL": "2m",
		"SWEEP_INTERVAL":    "30s",
		"SWEEP_BATCH_SIZE":  "10",
		"WORKER_POOL_SIZE":  "2",
	}))
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("RunAddress = %q, want :9090", cfg.RunAddress)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.TokenSecret != "env-secret" {
		t.Errorf("TokenSecret = %q, want env-secret", cfg.TokenSecret)
	}
	if cfg.CatalogCacheTTL != 2*time.Minute {
		t.Errorf("CatalogCacheTTL = %v, want 2m", cfg.CatalogCacheTTL)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Errorf("SweepInterval = %v, want 30s", cfg.SweepInterval)
	}
	if cfg.SweepBatchSize != 10 || cfg.WorkerPoolSize != 2 {
		t.Errorf("batch/pool = %d/%d, want 10/2", cfg.SweepBatchSize, cfg.WorkerPoolSize)
	}
}

func TestLoadFlagsBeatEnv(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/db",
		"-redis", "flag-redis:6379",
		"-sweep-interval", "45s",
		"-worker-pool", "8",
	}
	cfg, err := load(args, lookupFrom(map[string]string{
		"RUN_ADDRESS":  ":9090",
		"DATABASE_URI": "postgres://env/db",
	}))
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Errorf("RunAddress = %q, want :7070", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Errorf("DatabaseURI = %q, want flag value", cfg.DatabaseURI)
	}
	if cfg.RedisAddr != "flag-redis:6379" {
		t.Errorf("RedisAddr = %q, want flag-redis:6379", cfg.RedisAddr)
	}
	if cfg.SweepInterval != 45*time.Second {
		t.Errorf("SweepInterval = %v, want 45s", cfg.SweepInterval)
	}
	if cfg.WorkerPoolSize != 8 {
		t.Errorf("WorkerPoolSize = %d, want 8", cfg.WorkerPoolSize)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	_, err := load([]string{"-cache-ttl", "soon"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/greenpoints",
	}))
	if err == nil {
		t.Error("load() with malformed duration must fail")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	cfg, err := load([]string{"-worker-pool", "-1", "-sweep-batch", "0"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/greenpoints",
	}))
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}
	if cfg.WorkerPoolSize != 4 {
		t.Errorf("WorkerPoolSize = %d, want default 4", cfg.WorkerPoolSize)
	}
	if cfg.SweepBatchSize != 64 {
		t.Errorf("SweepBatchSize = %d, want default 64", cfg.SweepBatchSize)
	}
}

func TestLoadTokenSecretFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":      "postgres://localhost/greenpoints",
		"TOKEN_SECRET":      "env-secret",
		"TOKEN_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("load() unexpected error: %v", err)
	}
	if cfg.TokenSecret != "file-secret" {
		t.Errorf("TokenSecret = %q, want file-secret", cfg.TokenSecret)
	}

	_, err = load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":      "postgres://localhost/greenpoints",
		"TOKEN_SECRET_FILE": filepath.Join(dir, "missing"),
	}))
	if err == nil {
		t.Error("load() with unreadable secret file must fail")
	}
}
