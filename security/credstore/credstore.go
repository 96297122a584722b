// Package credstore reads Solr security.json credential stores.
//
// The store maps usernames to encoded hash records (see security/solrhash)
// under authentication.credentials. It is owned by Solr; this package only
// ever reads it.
package credstore

import (
	"encoding/json"
	"fmt"
	"os"

	"solrops/security/solrhash"
)

type securityFile struct {
	Authentication struct {
		Credentials map[string]string `json:"credentials"`
	} `json:"authentication"`
}

// Load reads the credential mapping from path.
//
// Unlike Credentials it surfaces the failure, so callers that want to log
// why a store was treated as empty can. An absent credentials object in an
// otherwise valid file is not an error; it is an empty store.
func Load(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}, fmt.Errorf("credstore: read %s: %w", path, err)
	}

	var f securityFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return map[string]string{}, fmt.Errorf("credstore: parse %s: %w", path, err)
	}

	if f.Authentication.Credentials == nil {
		return map[string]string{}, nil
	}
	return f.Authentication.Credentials, nil
}

// Credentials is the boundary form of Load: a missing, unreadable or
// malformed store collapses to an empty mapping and never fails the caller.
func Credentials(path string) map[string]string {
	creds, _ := Load(path)
	return creds
}

// Reuse returns the stored record for username unchanged when password
// still verifies against it, making repeated provisioning runs idempotent.
// Otherwise (unknown user, malformed record, or changed password) it
// returns a freshly generated record with a new random salt. The second
// return value reports whether the stored record was reused.
func Reuse(username, password, path string, cfg solrhash.Config) (string, bool, error) {
	existing, ok := Credentials(path)[username]
	if ok && cfg.Verify(password, existing) {
		return existing, true, nil
	}

	record, err := cfg.Hash(password, nil)
	if err != nil {
		return "", false, err
	}
	return record, false, nil
}
