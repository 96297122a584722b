package main

import (
	"os"
	"path/filepath"
	"testing"

	"solrops/security/solrhash"
)

// Record for "secret123" with a 32-zero-byte salt.
const knownRecord = "2Y2R+9SLHTDf2nKMijEirmQwS8C2fRbQ/mQbDKVB7ZY= AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="

func TestRun_NoArgsIsUsage(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRun_Hash(t *testing.T) {
	if code := run([]string{"secret123"}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}

func TestRun_Verify(t *testing.T) {
	if code := run([]string{"-verify", "secret123", knownRecord}); code != 0 {
		t.Fatalf("matching verify exit code = %d, want 0", code)
	}
	if code := run([]string{"-verify", "wrong", knownRecord}); code != 1 {
		t.Fatalf("mismatching verify exit code = %d, want 1", code)
	}
	if code := run([]string{"-verify", "only-one-arg"}); code != 1 {
		t.Fatalf("bad verify usage exit code = %d, want 1", code)
	}
}

func TestRun_Reuse(t *testing.T) {
	cfg := solrhash.DefaultConfig()
	record, err := cfg.Hash("secret123", nil)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	store := filepath.Join(t.TempDir(), "security.json")
	body := `{"authentication":{"credentials":{"solr":"` + record + `"}}}`
	if err := os.WriteFile(store, []byte(body), 0o600); err != nil {
		t.Fatalf("write store: %v", err)
	}

	if code := run([]string{"-reuse", "solr", "secret123", store}); code != 0 {
		t.Fatalf("reuse exit code = %d, want 0", code)
	}
	// An absent store still succeeds: it produces a fresh record.
	if code := run([]string{"-reuse", "solr", "secret123", store + ".missing"}); code != 0 {
		t.Fatalf("reuse with absent store exit code = %d, want 0", code)
	}
}

func TestRun_SaltBytesFlag(t *testing.T) {
	if code := run([]string{"-salt-bytes", "16", "secret123"}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}
