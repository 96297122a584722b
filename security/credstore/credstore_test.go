package credstore

import (
	"os"
	"path/filepath"
	"testing"

	"solrops/security/solrhash"
)

func writeStore(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "security.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write store: %v", err)
	}
	return path
}

func TestLoad_OK(t *testing.T) {
	path := writeStore(t, `{
		"authentication": {
			"blockUnknown": true,
			"credentials": {
				"solr": "digest salt",
				"admin": "digest2 salt2"
			}
		}
	}`)

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(creds) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(creds))
	}
	if creds["solr"] != "digest salt" {
		t.Fatalf("solr entry mismatch: %q", creds["solr"])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	creds, err := Load(path)
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	if len(creds) != 0 {
		t.Fatalf("expected empty mapping, got %v", creds)
	}
	if got := Credentials(path); len(got) != 0 {
		t.Fatalf("Credentials should collapse to empty, got %v", got)
	}
}

func TestLoad_CorruptJSON(t *testing.T) {
	path := writeStore(t, `{"authentication": {`)

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for corrupt JSON")
	}
	if got := Credentials(path); len(got) != 0 {
		t.Fatalf("Credentials should collapse to empty, got %v", got)
	}
}

func TestLoad_NoCredentialsObject(t *testing.T) {
	path := writeStore(t, `{"authentication": {"class": "solr.BasicAuthPlugin"}}`)

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(creds) != 0 {
		t.Fatalf("expected empty mapping, got %v", creds)
	}
}

func TestReuse_KeepsMatchingRecord(t *testing.T) {
	cfg := solrhash.DefaultConfig()

	existing, err := cfg.Hash("secret123", nil)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	path := writeStore(t, `{"authentication":{"credentials":{"solr":"`+existing+`"}}}`)

	got, reused, err := Reuse("solr", "secret123", path, cfg)
	if err != nil {
		t.Fatalf("Reuse error: %v", err)
	}
	if !reused || got != existing {
		t.Fatalf("expected stored record back (reused=true), got reused=%v record=%q", reused, got)
	}

	// Idempotent: a second run with an unmodified store returns the exact
	// same string.
	again, reused, err := Reuse("solr", "secret123", path, cfg)
	if err != nil {
		t.Fatalf("Reuse error: %v", err)
	}
	if !reused || again != existing {
		t.Fatalf("second run rotated the record: reused=%v record=%q", reused, again)
	}
}

func TestReuse_RotatesOnPasswordChange(t *testing.T) {
	cfg := solrhash.DefaultConfig()

	existing, err := cfg.Hash("old password", nil)
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	path := writeStore(t, `{"authentication":{"credentials":{"solr":"`+existing+`"}}}`)

	got, reused, err := Reuse("solr", "new password", path, cfg)
	if err != nil {
		t.Fatalf("Reuse error: %v", err)
	}
	if reused {
		t.Fatalf("expected a fresh record for a changed password")
	}
	if got == existing {
		t.Fatalf("rotation returned the stale record")
	}
	if !cfg.Verify("new password", got) {
		t.Fatalf("fresh record does not verify against the new password")
	}
}

func TestReuse_UnknownUserAndEmptyStore(t *testing.T) {
	cfg := solrhash.DefaultConfig()
	path := filepath.Join(t.TempDir(), "absent.json")

	got, reused, err := Reuse("solr", "secret123", path, cfg)
	if err != nil {
		t.Fatalf("Reuse error: %v", err)
	}
	if reused {
		t.Fatalf("nothing to reuse in an absent store")
	}
	if !cfg.Verify("secret123", got) {
		t.Fatalf("fresh record does not verify")
	}

	// Same for a store that exists but lacks the user.
	path = writeStore(t, `{"authentication":{"credentials":{"other":"x y"}}}`)
	_, reused, err = Reuse("solr", "secret123", path, cfg)
	if err != nil {
		t.Fatalf("Reuse error: %v", err)
	}
	if reused {
		t.Fatalf("reused a record for a user the store lacks")
	}
}
