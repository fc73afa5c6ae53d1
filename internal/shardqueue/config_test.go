package shardqueue

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 4 {
		t.Errorf("Shards = %d, want 4", cfg.Shards)
	}
	if cfg.QueueSize != 128 {
		t.Errorf("QueueSize = %d, want 128", cfg.QueueSize)
	}
	if cfg.EnqueueTimeout != 100*time.Millisecond {
		t.Errorf("EnqueueTimeout = %v, want 100ms", cfg.EnqueueTimeout)
	}
	if cfg.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, want 1", cfg.MaxAttempts)
	}
	if cfg.BaseBackoff != 100*time.Millisecond {
		t.Errorf("BaseBackoff = %v, want 100ms", cfg.BaseBackoff)
	}
	if cfg.MaxInterval != 20*time.Second {
		t.Errorf("MaxInterval = %v, want 20s", cfg.MaxInterval)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SQ_SHARDS", "8")
	t.Setenv("SQ_QUEUE_SIZE", "256")
	t.Setenv("SQ_ENQUEUE_TIMEOUT", "250ms")
	t.Setenv("SQ_MAX_ATTEMPTS", "3")
	t.Setenv("SQ_BASE_BACKOFF", "50ms")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 8 {
		t.Errorf("Shards = %d, want 8", cfg.Shards)
	}
	if cfg.QueueSize != 256 {
		t.Errorf("QueueSize = %d, want 256", cfg.QueueSize)
	}
	if cfg.EnqueueTimeout != 250*time.Millisecond {
		t.Errorf("EnqueueTimeout = %v, want 250ms", cfg.EnqueueTimeout)
	}
	if cfg.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.MaxAttempts)
	}
	if cfg.BaseBackoff != 50*time.Millisecond {
		t.Errorf("BaseBackoff = %v, want 50ms", cfg.BaseBackoff)
	}
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("SQ_SHARDS", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for invalid SQ_SHARDS")
	}
}
