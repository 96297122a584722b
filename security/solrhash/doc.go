// Package solrhash produces and verifies Solr-compatible salted password
// hashes.
//
// Solr's basic authentication plugin stores each credential as a single
// text record:
//
//	base64(sha256(sha256(salt || password))) + " " + base64(salt)
//
// digest first, salt second, standard padded base64. This package
// reproduces that pipeline byte-for-byte so generated records can be
// written straight into an existing security.json.
//
// Security notes:
// - Records are untrusted input during Verify; malformed records are a
//   mismatch, never an error.
// - The double-SHA-256 construction is fixed by the stored-credential
//   format and cannot be swapped for a modern KDF without invalidating
//   every existing record.
package solrhash
