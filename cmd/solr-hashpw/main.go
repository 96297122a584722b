// Command solr-hashpw generates and verifies Solr credential hashes.
//
//	solr-hashpw [flags] PASSWORD            hash a password
//	solr-hashpw -prompt [flags]             hash a password read from the terminal
//	solr-hashpw -verify PASSWORD HASH       check a password against a record
//	solr-hashpw -reuse USER PASSWORD STORE  reuse the stored hash when it still matches
package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"solrops/security/credstore"
	"solrops/security/solrhash"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("solr-hashpw", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	saltBytes := fs.Int("salt-bytes", solrhash.DefaultSaltLength, "salt size in bytes")
	verify := fs.Bool("verify", false, "verify PASSWORD against HASH")
	reuse := fs.Bool("reuse", false, "reuse the stored hash for USER in STORE when PASSWORD still matches")
	prompt := fs.Bool("prompt", false, "read the password from the terminal without echo")

	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := solrhash.Config{SaltLength: *saltBytes}
	rest := fs.Args()

	switch {
	case *verify:
		if len(rest) != 2 {
			usage(fs)
			return 1
		}
		if cfg.Verify(rest[0], rest[1]) {
			fmt.Println("✓ Password matches hash")
			return 0
		}
		fmt.Println("✗ Password does NOT match hash")
		return 1

	case *reuse:
		if len(rest) != 3 {
			usage(fs)
			return 1
		}
		record, _, err := credstore.Reuse(rest[0], rest[1], rest[2], cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(record)
		return 0

	case len(rest) == 1:
		return hashAndPrint(cfg, rest[0])

	case *prompt && len(rest) == 0:
		password, err := readPassword("Password: ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return hashAndPrint(cfg, password)

	default:
		usage(fs)
		return 1
	}
}

func hashAndPrint(cfg solrhash.Config, password string) int {
	record, err := cfg.Hash(password, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(record)
	return 0
}

// readPassword reads a password without echo. A non-terminal stdin is an
// error; scripted callers pass the password as an argument instead.
func readPassword(promptText string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("stdin is not a terminal; pass the password as an argument")
	}
	fmt.Fprint(os.Stderr, promptText)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func usage(fs *flag.FlagSet) {
	fmt.Fprint(os.Stderr, `solr-hashpw - Solr password hasher (double SHA-256 with random salt)

USAGE:
    solr-hashpw [flags] PASSWORD
    solr-hashpw -prompt [flags]
    solr-hashpw -verify PASSWORD HASH
    solr-hashpw -reuse USERNAME PASSWORD SECURITY_JSON

FLAGS:
`)
	fs.PrintDefaults()
	fmt.Fprint(os.Stderr, `
EXIT CODES:
    0  hash printed, or password matched
    1  mismatch, bad usage, or error

The record format is "HASH_B64 SALT_B64" (hash first, then salt).
Hashing is not idempotent by itself (fresh random salt per call);
-reuse keeps the stored record when the password still verifies.
`)
}
